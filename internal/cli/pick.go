package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/wheel"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// pickOptions holds the pick command's flags.
type pickOptions struct {
	spinFlags
	Names     []string
	NoAnimate bool
	JSON      bool
}

var pickOpts pickOptions

// pickCmd spins once without the full-screen UI.
var pickCmd = &cobra.Command{
	Use:   "pick [names...]",
	Short: "Spin once and print the winner",
	Long: `Spin the wheel once and print the winning option.

Names given as arguments (or with --option) replace the options from
.wheel.yaml. With none given, the config's options are used.

On a terminal the spin animates on one line; pass --no-animate to skip it.
When output isn't a terminal only the winner's name is printed.

Examples:
  wheel pick Alice Bob Carol
  wheel pick --seed 42 --json Pizza Tacos Sushi
  wheel pick -o "Red=#ff0000" -o "Blue=#0000ff" --duration 3s`,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := pickOpts
		markSeed(cmd, &opts.spinFlags)
		opts.Names = args

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		return runPick(ctx, opts, out, isTerminal(out))
	},
}

func init() {
	addSpinFlags(pickCmd, &pickOpts.spinFlags)
	pickCmd.Flags().BoolVar(&pickOpts.NoAnimate, "no-animate", false, "skip the animation and print the result")
	pickCmd.Flags().BoolVar(&pickOpts.JSON, "json", false, "print the result as JSON")
}

// runPick spins once and writes the winner to out. The animation only runs
// when tty is set and neither --no-animate nor --json was given.
func runPick(ctx context.Context, opts pickOptions, out io.Writer, tty bool) error {
	err := pick(ctx, opts, out, tty)
	if err != nil && opts.JSON {
		_ = WriteJSONFromError(out, err)
	}
	return err
}

func pick(ctx context.Context, opts pickOptions, out io.Writer, tty bool) error {
	log := logger.Noop()
	if verbose {
		log = logger.Default()
	}

	cfg, _, err := loadConfig(cfgFile, opts.spinFlags)
	if err != nil {
		return err
	}
	w, err := buildWheel(cfg, opts.spinFlags, namesToOptions(opts.Names), true, log)
	if err != nil {
		return err
	}

	s, ok := w.Spin()
	if !ok {
		return errors.New(errors.ErrInput,
			"Nothing to pick from",
			"Pass names (wheel pick Alice Bob), use --option, or add options to .wheel.yaml.")
	}

	var final wheel.Frame
	var line *ui.SpinLine
	if tty && !opts.NoAnimate && !opts.JSON {
		line = ui.NewSpinLine("Spinning", out)
		line.SetWidth(barWidth(terminalWidth(out)))
		anim := wheel.NewAnimator(cfg.Spin.FrameInterval)
		final, err = anim.Run(ctx, w, func(f wheel.Frame) {
			line.Update(f.Elapsed, f.Progress, f.Display)
		})
		if err != nil {
			w.Cancel()
			line.Fail("Spin interrupted")
			return errors.WrapWithCode(err, errors.ErrTerm,
				"Spin interrupted before it settled",
				"Run it again, or pass --no-animate to skip the animation.")
		}
	} else {
		// Jump straight to the end of the curve.
		final, _ = w.Advance(s.Start.Add(s.Duration))
	}

	winner, ok := w.Selected()
	if !ok {
		return errors.New(errors.ErrInput,
			"The spin finished without a winner",
			"Make sure no options were removed mid-spin.")
	}

	switch {
	case opts.JSON:
		return WriteJSON(out, newPickResult(winner, s.Plan, final.Display))
	case line != nil:
		line.Success(winner.Name, winner.Color, final.Elapsed)
	case tty:
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(winner.Color)).Bold(true)
		fmt.Fprintf(out, "%s %s\n", lipgloss.NewStyle().Foreground(ui.ColorSuccess).Render(ui.SymbolSuccess), style.Render(winner.Name))
	default:
		fmt.Fprintln(out, winner.Name)
	}
	return nil
}

// barWidth fits the spin line's progress bar to a terminal cols wide,
// leaving room for the spinner, label, percentage, and angle.
func barWidth(cols int) int {
	const reserved, minBar, maxBar = 30, 10, 30
	if cols <= 0 {
		return maxBar
	}
	return min(max(cols-reserved, minBar), maxBar)
}

// terminalWidth returns w's column count, or 0 when it isn't a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	cols, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return cols
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
