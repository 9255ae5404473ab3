package cli

import (
	"testing"
	"time"

	"github.com/rileyhilliard/wheel/internal/config"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOptionFlag(t *testing.T) {
	tests := []struct {
		in      string
		want    config.OptionConfig
		wantErr bool
	}{
		{"Pizza", config.OptionConfig{Name: "Pizza"}, false},
		{"  Pizza  ", config.OptionConfig{Name: "Pizza"}, false},
		{"Pizza=#FF0000", config.OptionConfig{Name: "Pizza", Color: "#ff0000"}, false},
		{"Pizza=f00", config.OptionConfig{Name: "Pizza", Color: "#ff0000"}, false},
		{"Deep dish = #00ffff", config.OptionConfig{Name: "Deep dish", Color: "#00ffff"}, false},
		{"E=mc2=#123456", config.OptionConfig{Name: "E=mc2", Color: "#123456"}, false},
		{"Pizza=", config.OptionConfig{Name: "Pizza"}, false},
		{"Pizza=red", config.OptionConfig{}, true},
		{"=#ff0000", config.OptionConfig{}, true},
		{"   ", config.OptionConfig{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseOptionFlag(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsCode(err, errors.ErrInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionFlags(t *testing.T) {
	opts, err := parseOptionFlags([]string{"A", "B=#00ff00"})
	require.NoError(t, err)
	assert.Equal(t, []config.OptionConfig{{Name: "A"}, {Name: "B", Color: "#00ff00"}}, opts)

	_, err = parseOptionFlags([]string{"A", "B=nope"})
	assert.Error(t, err)
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, validateDuration(0))
	assert.NoError(t, validateDuration(time.Second))

	err := validateDuration(-time.Second)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}

func TestMarkSeed(t *testing.T) {
	cmd := &cobra.Command{Use: "x", RunE: func(*cobra.Command, []string) error { return nil }}
	var f spinFlags
	addSpinFlags(cmd, &f)

	markSeed(cmd, &f)
	assert.False(t, f.SeedSet)

	require.NoError(t, cmd.ParseFlags([]string{"--seed", "0", "--duration", "2s", "-o", "A", "-o", "B"}))
	markSeed(cmd, &f)
	assert.True(t, f.SeedSet)
	assert.Equal(t, uint64(0), f.Seed)
	assert.Equal(t, 2*time.Second, f.Duration)
	assert.Equal(t, []string{"A", "B"}, f.Options)
}

func TestBuildWheel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Options = []config.OptionConfig{{Name: "FromConfig"}}
	flags := spinFlags{Options: []string{"FromFlag=#ff0000"}}

	w, err := buildWheel(cfg, flags, namesToOptions([]string{"FromArg"}), false, nil)
	require.NoError(t, err)
	names := []string{}
	for _, o := range w.Options() {
		names = append(names, o.Name)
	}
	assert.Equal(t, []string{"FromConfig", "FromFlag", "FromArg"}, names)

	w, err = buildWheel(cfg, flags, nil, true, nil)
	require.NoError(t, err)
	require.Equal(t, 1, w.Len())
	assert.Equal(t, "FromFlag", w.Options()[0].Name)

	// Nothing on the command line: config options are kept.
	w, err = buildWheel(cfg, spinFlags{}, nil, true, nil)
	require.NoError(t, err)
	assert.Equal(t, "FromConfig", w.Options()[0].Name)
}

func TestLoadConfig_DurationOverride(t *testing.T) {
	isolate(t)

	cfg, path, err := loadConfig("", spinFlags{Duration: 5 * time.Millisecond})
	require.NoError(t, err)
	assert.Empty(t, path)
	assert.Equal(t, 5*time.Millisecond, cfg.Spin.Duration)
	assert.Equal(t, 5*time.Millisecond, cfg.Spin.FrameInterval)

	_, _, err = loadConfig("", spinFlags{Duration: -time.Second})
	assert.True(t, errors.IsCode(err, errors.ErrInput))
}
