package config

import (
	"os"
	"path/filepath"

	"github.com/rileyhilliard/wheel/internal/errors"
	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape. Durations are written as strings like
// "10s" so the file stays hand-editable.
type fileConfig struct {
	Version int            `yaml:"version"`
	Options []OptionConfig `yaml:"options"`
	Spin    fileSpin       `yaml:"spin"`
	Palette []string       `yaml:"palette,omitempty"`
	UI      UIConfig       `yaml:"ui"`
	Log     LogConfig      `yaml:"log"`
}

type fileSpin struct {
	Duration      string `yaml:"duration"`
	MinRotations  int    `yaml:"min_rotations"`
	FreezeOptions bool   `yaml:"freeze_options"`
	FrameInterval string `yaml:"frame_interval"`
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version: cfg.Version,
		Options: cfg.Options,
		Spin: fileSpin{
			Duration:      cfg.Spin.Duration.String(),
			MinRotations:  cfg.Spin.MinRotations,
			FreezeOptions: cfg.Spin.FreezeOptions,
			FrameInterval: cfg.Spin.FrameInterval.String(),
		},
		Palette: cfg.Palette,
		UI:      cfg.UI,
		Log:     cfg.Log,
	}
	if fc.Options == nil {
		fc.Options = []OptionConfig{}
	}

	data, err := yaml.Marshal(&fc)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Couldn't encode config",
			"This is a bug - please report it")
	}
	return data, nil
}

// Write saves cfg to path, creating parent directories as needed.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.WrapWithCode(err, errors.ErrIO,
				"Couldn't create config directory "+dir,
				"Check directory permissions")
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrIO,
			"Couldn't write "+path,
			"Check you have write permission for that location")
	}
	return nil
}
