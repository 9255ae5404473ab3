package cli

import (
	"github.com/rileyhilliard/wheel/internal/config"
	"github.com/rileyhilliard/wheel/internal/logger"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

// loadConfig finds the config (or falls back to defaults), applies the
// --duration override, and validates the result.
func loadConfig(explicit string, flags spinFlags) (*config.Config, string, error) {
	if err := validateDuration(flags.Duration); err != nil {
		return nil, "", err
	}

	cfg, path, err := config.LoadOrDefault(explicit)
	if err != nil {
		return nil, "", err
	}

	if flags.Duration > 0 {
		cfg.Spin.Duration = flags.Duration
		if cfg.Spin.FrameInterval > cfg.Spin.Duration {
			cfg.Spin.FrameInterval = cfg.Spin.Duration
		}
	}
	if err := config.Validate(cfg); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// buildWheel creates a wheel from cfg. Config options come first, then
// --option values, then extra. When replaceOptions is set and any options
// were given on the command line, config options are skipped.
func buildWheel(cfg *config.Config, flags spinFlags, extra []config.OptionConfig, replaceOptions bool, log logger.Logger) (*wheel.Wheel, error) {
	flagOpts, err := parseOptionFlags(flags.Options)
	if err != nil {
		return nil, err
	}
	given := append(flagOpts, extra...)

	wopts := []wheel.Opt{wheel.WithLogger(log)}
	if flags.SeedSet {
		wopts = append(wopts, wheel.WithSource(wheel.NewSeededSource(flags.Seed)))
	}
	w := wheel.New(cfg.WheelSettings(), wopts...)

	if !replaceOptions || len(given) == 0 {
		cfg.Seed(w)
	}
	for _, o := range given {
		w.Add(o.Name, o.Color)
	}
	return w, nil
}

// namesToOptions turns positional names into uncolored options.
func namesToOptions(names []string) []config.OptionConfig {
	opts := make([]config.OptionConfig, 0, len(names))
	for _, n := range names {
		opts = append(opts, config.OptionConfig{Name: n})
	}
	return opts
}
