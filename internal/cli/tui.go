package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/tui"
	"golang.org/x/term"
)

// tuiOptions holds the root command's flags.
type tuiOptions struct {
	spinFlags
	Radius int
}

var rootOpts tuiOptions

// runTUI launches the interactive wheel in the alt screen.
func runTUI(opts tuiOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New(errors.ErrTerm,
			"The interactive wheel needs a terminal",
			"Use 'wheel pick' in scripts and pipes.")
	}

	cfg, cfgPath, err := loadConfig(cfgFile, opts.spinFlags)
	if err != nil {
		return err
	}

	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	fileLog, err := logger.NewFileLogger(logger.FileOptions{
		Path:   cfg.Log.File,
		Level:  level,
		Prefix: "[tui]",
	})
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Couldn't open the log file",
			"Set log.file in .wheel.yaml to a writable path.")
	}
	defer fileLog.Close()

	if cfgPath != "" {
		fileLog.Info("config: %s", cfgPath)
	}

	w, err := buildWheel(cfg, opts.spinFlags, nil, false, fileLog)
	if err != nil {
		return err
	}

	radius := cfg.UI.Radius
	if opts.Radius > 0 {
		radius = opts.Radius
	}

	model := tui.NewModel(w, tui.Options{
		Title:         cfg.UI.Title,
		Radius:        radius,
		FrameInterval: cfg.Spin.FrameInterval,
		Logger:        fileLog,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrTerm,
			"The wheel UI crashed",
			"Try a different terminal, or use 'wheel pick'.")
	}
	return nil
}
