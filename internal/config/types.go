package config

import "time"

// CurrentConfigVersion is the schema version for the config file.
// Increment when making breaking changes to the config structure.
const CurrentConfigVersion = 1

// Config represents the complete .wheel.yaml configuration file.
type Config struct {
	Version int            `yaml:"version" mapstructure:"version"`
	Options []OptionConfig `yaml:"options" mapstructure:"options"`
	Spin    SpinConfig     `yaml:"spin" mapstructure:"spin"`
	Palette []string       `yaml:"palette" mapstructure:"palette"`
	UI      UIConfig       `yaml:"ui" mapstructure:"ui"`
	Log     LogConfig      `yaml:"log" mapstructure:"log"`
}

// OptionConfig seeds one option on startup.
type OptionConfig struct {
	Name string `yaml:"name" mapstructure:"name"`

	// Color is a hex color (#rrggbb or #rgb). Empty picks from the palette.
	Color string `yaml:"color,omitempty" mapstructure:"color"`
}

// SpinConfig controls the spin animation.
type SpinConfig struct {
	// Duration is how long a spin animates.
	Duration time.Duration `yaml:"duration" mapstructure:"duration"`

	// MinRotations is the number of full turns before settling.
	MinRotations int `yaml:"min_rotations" mapstructure:"min_rotations"`

	// FreezeOptions snapshots the option list when a spin starts. Setting it
	// to false indexes the live list when the spin settles instead.
	FreezeOptions bool `yaml:"freeze_options" mapstructure:"freeze_options"`

	// FrameInterval is the delay between animation frames.
	FrameInterval time.Duration `yaml:"frame_interval" mapstructure:"frame_interval"`
}

// UIConfig controls the terminal UI.
type UIConfig struct {
	// Radius of the wheel in rows. 0 fits the terminal.
	Radius int `yaml:"radius" mapstructure:"radius"`

	// Title shown above the wheel.
	Title string `yaml:"title" mapstructure:"title"`
}

// LogConfig controls the TUI's log file.
type LogConfig struct {
	// File path; empty uses the user cache dir. Supports ~ and ${HOME}.
	File string `yaml:"file" mapstructure:"file"`

	// Level: debug, info, warn, or error.
	Level string `yaml:"level" mapstructure:"level"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Options: []OptionConfig{},
		Spin: SpinConfig{
			Duration:      10 * time.Second,
			MinRotations:  3,
			FreezeOptions: true,
			FrameInterval: 16 * time.Millisecond,
		},
		Palette: []string{},
		UI: UIConfig{
			Radius: 0,
			Title:  "Quantum Selector",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
