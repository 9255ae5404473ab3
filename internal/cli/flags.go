package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rileyhilliard/wheel/internal/config"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/wheel"
	"github.com/spf13/cobra"
)

// spinFlags are the flags shared by every command that spins.
type spinFlags struct {
	Options  []string
	Seed     uint64
	SeedSet  bool
	Duration time.Duration
}

// addSpinFlags registers --option, --seed, and --duration on a command.
func addSpinFlags(cmd *cobra.Command, f *spinFlags) {
	cmd.Flags().StringArrayVarP(&f.Options, "option", "o", nil, "add an option, as name or name=#hex (repeatable)")
	cmd.Flags().Uint64Var(&f.Seed, "seed", 0, "seed the random source for a repeatable pick")
	cmd.Flags().DurationVar(&f.Duration, "duration", 0, "spin duration (e.g., 3s); overrides spin.duration")
}

// markSeed records whether --seed was given, since 0 is a valid seed.
func markSeed(cmd *cobra.Command, f *spinFlags) {
	f.SeedSet = cmd.Flags().Changed("seed")
}

// ParseOptionFlag parses "name" or "name=#hex". The split is on the last
// '=' so names may contain '='.
func ParseOptionFlag(s string) (config.OptionConfig, error) {
	name, color := s, ""
	if i := strings.LastIndex(s, "="); i >= 0 {
		name, color = s[:i], s[i+1:]
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return config.OptionConfig{}, errors.New(errors.ErrInput,
			fmt.Sprintf("'%s' has no option name", s),
			"Use --option Pizza or --option \"Pizza=#ff0000\".")
	}

	color = strings.TrimSpace(color)
	if color != "" {
		hex, ok := wheel.NormalizeColor(color)
		if !ok {
			return config.OptionConfig{}, errors.New(errors.ErrInput,
				fmt.Sprintf("'%s' isn't a hex color", color),
				"Use colors like #ff0000 or #f00.")
		}
		color = hex
	}

	return config.OptionConfig{Name: name, Color: color}, nil
}

// parseOptionFlags parses every --option value.
func parseOptionFlags(values []string) ([]config.OptionConfig, error) {
	opts := make([]config.OptionConfig, 0, len(values))
	for _, v := range values {
		o, err := ParseOptionFlag(v)
		if err != nil {
			return nil, err
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// validateDuration rejects negative --duration values. Zero means "use config".
func validateDuration(d time.Duration) error {
	if d < 0 {
		return errors.New(errors.ErrInput,
			fmt.Sprintf("--duration can't be negative (got %v)", d),
			"Try something like 3s or 500ms.")
	}
	return nil
}
