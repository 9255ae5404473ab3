package config

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

// MaxRadius caps ui.radius; anything larger won't fit a real terminal.
const MaxRadius = 40

// Validate checks the config for errors and returns structured error messages.
func Validate(cfg *Config) error {
	if cfg.Version > CurrentConfigVersion {
		return errors.New(errors.ErrConfig,
			fmt.Sprintf("This config is from the future (version %d, but wheel only knows up to %d)", cfg.Version, CurrentConfigVersion),
			"Grab the latest wheel release.")
	}

	if err := validateOptions(cfg.Options); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'options' section in your .wheel.yaml.")
	}

	if err := validateSpin(cfg.Spin); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'spin' section in your .wheel.yaml.")
	}

	for i, c := range cfg.Palette {
		if _, ok := wheel.NormalizeColor(c); !ok {
			return errors.New(errors.ErrConfig,
				fmt.Sprintf("palette[%d] '%s' isn't a hex color", i, c),
				"Use colors like '#00ffff' or '#0ff'.")
		}
	}

	if err := validateUI(cfg.UI); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'ui' section in your .wheel.yaml.")
	}

	if err := validateLog(cfg.Log); err != nil {
		return errors.New(errors.ErrConfig, err.Error(), "Check the 'log' section in your .wheel.yaml.")
	}

	return nil
}

// validateOptions checks seeded options.
func validateOptions(opts []OptionConfig) error {
	for i, o := range opts {
		if strings.TrimSpace(o.Name) == "" {
			return fmt.Errorf("options[%d] has an empty name - every option needs one", i)
		}
		if o.Color == "" {
			continue
		}
		if _, ok := wheel.NormalizeColor(o.Color); !ok {
			return fmt.Errorf("options[%d] color '%s' isn't a hex color - use something like '#ff00ff'", i, o.Color)
		}
	}
	return nil
}

// validateSpin checks the animation settings.
func validateSpin(spin SpinConfig) error {
	if spin.Duration <= 0 {
		return fmt.Errorf("spin.duration must be positive, got %v", spin.Duration)
	}
	if spin.MinRotations < 1 {
		return fmt.Errorf("spin.min_rotations must be at least 1, got %d", spin.MinRotations)
	}
	if spin.FrameInterval <= 0 {
		return fmt.Errorf("spin.frame_interval must be positive, got %v", spin.FrameInterval)
	}
	if spin.FrameInterval > spin.Duration {
		return fmt.Errorf("spin.frame_interval (%v) is longer than spin.duration (%v) - you'd never see a frame", spin.FrameInterval, spin.Duration)
	}
	return nil
}

// validateUI checks UI settings.
func validateUI(ui UIConfig) error {
	if ui.Radius < 0 {
		return fmt.Errorf("ui.radius can't be negative - use 0 to fit the terminal")
	}
	if ui.Radius > MaxRadius {
		return fmt.Errorf("ui.radius %d is too big - keep it at %d or below", ui.Radius, MaxRadius)
	}
	return nil
}

// validateLog checks log settings.
func validateLog(l LogConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true, "": true}
	if !validLevels[strings.ToLower(l.Level)] {
		return fmt.Errorf("log.level '%s' isn't valid - use 'debug', 'info', 'warn', or 'error'", l.Level)
	}
	return nil
}
