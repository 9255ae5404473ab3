package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/wheel/internal/config"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/util"
	"github.com/spf13/cobra"
)

// InitOptions holds options for the init command.
type InitOptions struct {
	Dir            string   // Directory to write .wheel.yaml into (default: cwd)
	Options        []string // Pre-specified options, as name or name=#hex
	Overwrite      bool     // Overwrite existing config without asking
	NonInteractive bool     // Skip prompts, use defaults
	Out            io.Writer
}

var initOpts InitOptions

// initCmd writes a seed config file.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a .wheel.yaml config",
	Long: `Create a .wheel.yaml file in the current directory.

The file seeds the wheel's options and spin settings each time it starts.
Edits made while the wheel is running are never written back.

Examples:
  wheel init
  wheel init --non-interactive -o Pizza -o "Tacos=#ff2e97"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := initOpts
		opts.Out = cmd.OutOrStdout()
		return Init(opts)
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initOpts.Overwrite, "force", "f", false, "overwrite an existing config")
	initCmd.Flags().BoolVar(&initOpts.NonInteractive, "non-interactive", false, "skip prompts and use flags and defaults")
	initCmd.Flags().StringArrayVarP(&initOpts.Options, "option", "o", nil, "seed option, as name or name=#hex (repeatable)")
}

// Init creates a new .wheel.yaml configuration file.
func Init(opts InitOptions) error {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	configPath := filepath.Join(dir, config.ConfigFileName)

	if _, err := os.Stat(configPath); err == nil && !opts.Overwrite {
		if opts.NonInteractive {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("Config file already exists: %s", configPath),
				"Use --force to overwrite")
		}

		var overwrite bool
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewConfirm().
					Title(fmt.Sprintf("Config file '%s' already exists. Overwrite?", config.ConfigFileName)).
					Value(&overwrite),
			),
		)
		if err := form.Run(); err != nil {
			return errors.WrapWithCode(err, errors.ErrTerm,
				"Failed to get user input",
				"Try running with --force to overwrite")
		}
		if !overwrite {
			fmt.Fprintln(opts.Out, "Cancelled.")
			return nil
		}
	}

	cfg := config.DefaultConfig()

	seeded, err := parseOptionFlags(opts.Options)
	if err != nil {
		return err
	}
	cfg.Options = seeded

	if !opts.NonInteractive {
		if err := promptConfig(cfg); err != nil {
			return err
		}
	}

	if err := config.Validate(cfg); err != nil {
		return err
	}
	if err := config.Write(configPath, cfg); err != nil {
		return err
	}

	ok := lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess)
	names := make([]string, 0, len(cfg.Options))
	for _, o := range cfg.Options {
		names = append(names, o.Name)
	}
	fmt.Fprintf(opts.Out, "%s Wrote %s with %s\n", ok, configPath, util.Count(len(names), "option", "options"))
	fmt.Fprintf(opts.Out, "  Options: %s\n", util.JoinOrNone(names))
	hint := lipgloss.NewStyle().Foreground(ui.ColorInfo)
	fmt.Fprintln(opts.Out, hint.Render("  Run 'wheel' to spin."))
	return nil
}

// promptConfig asks for options and spin settings, starting from cfg.
func promptConfig(cfg *config.Config) error {
	lines := make([]string, 0, len(cfg.Options))
	for _, o := range cfg.Options {
		lines = append(lines, formatOptionLine(o))
	}
	optionsText := strings.Join(lines, "\n")
	duration := cfg.Spin.Duration.String()
	freeze := cfg.Spin.FreezeOptions

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Options").
				Description("One per line. Add a color with name=#hex.").
				Placeholder("Pizza\nTacos=#ff2e97").
				Value(&optionsText).
				Validate(func(s string) error {
					_, err := parseOptionLines(s)
					return err
				}),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Spin duration").
				Description("How long each spin animates").
				Placeholder("10s").
				Value(&duration).
				Validate(func(s string) error {
					d, err := time.ParseDuration(strings.TrimSpace(s))
					if err != nil || d <= 0 {
						return fmt.Errorf("use a positive duration like 5s or 1500ms")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Freeze the option list while spinning?").
				Description("Edits made mid-spin won't change who wins").
				Value(&freeze),
		),
	)

	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"Failed to get user input",
			"Check terminal compatibility or use --non-interactive flag")
	}

	opts, err := parseOptionLines(optionsText)
	if err != nil {
		return err
	}
	d, err := time.ParseDuration(strings.TrimSpace(duration))
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrInput,
			fmt.Sprintf("'%s' doesn't look like a valid duration", duration),
			"Try something like 5s, 2m, or 500ms.")
	}

	cfg.Options = opts
	cfg.Spin.Duration = d
	cfg.Spin.FreezeOptions = freeze
	return nil
}

// parseOptionLines parses one option per line, skipping blank lines.
func parseOptionLines(text string) ([]config.OptionConfig, error) {
	var opts []config.OptionConfig
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		o, err := ParseOptionFlag(line)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}

func formatOptionLine(o config.OptionConfig) string {
	if o.Color == "" {
		return o.Name
	}
	return o.Name + "=" + o.Color
}
