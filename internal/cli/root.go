package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/spf13/cobra"
)

// Global flags
var (
	cfgFile string
	verbose bool
	noColor bool
)

// rootCmd launches the interactive wheel.
var rootCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Spin a wheel to pick something at random",
	Long: `Spin a wheel in your terminal to pick one option at random.

Add options, give them colors, and spin. Every option has the same chance
of winning; the wheel eases out and lands its indicator on the winner.

Examples:
  wheel
  wheel --option Pizza --option "Tacos=#ff2e97"
  wheel pick Alice Bob Carol`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupOutput()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := rootOpts
		markSeed(cmd, &opts.spinFlags)
		return runTUI(opts)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: .wheel.yaml, searched upward)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	addSpinFlags(rootCmd, &rootOpts.spinFlags)
	rootCmd.Flags().IntVar(&rootOpts.Radius, "radius", 0, "wheel radius in rows (0 fits the terminal)")
}

// setupOutput applies --no-color and --verbose before any command runs.
func setupOutput() {
	if noColor || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
	if verbose {
		_ = os.Setenv(logger.DebugEnv, "1")
		logger.SetDefault(logger.NewEnvLogger(""))
	}
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if isUnknownCommandError(err) {
			if name := extractUnknownCommand(err); name != "" {
				fmt.Fprintf(os.Stderr, "\n'%s' isn't a wheel command. To pick from names, use: wheel pick %s\n", name, name)
			}
			fmt.Fprintln(os.Stderr, "Run 'wheel --help' to see available commands.")
		}
		os.Exit(1)
	}
}

// isUnknownCommandError reports whether cobra rejected the command line.
func isUnknownCommandError(err error) bool {
	msg := err.Error()
	return strings.HasPrefix(msg, "unknown command") || strings.HasPrefix(msg, "unknown flag")
}

// extractUnknownCommand pulls the quoted command name out of cobra's
// `unknown command "foo" for "wheel"` message.
func extractUnknownCommand(err error) string {
	msg := err.Error()
	start := strings.Index(msg, `"`)
	if start < 0 {
		return ""
	}
	end := strings.Index(msg[start+1:], `"`)
	if end < 0 {
		return ""
	}
	return msg[start+1 : start+1+end]
}
