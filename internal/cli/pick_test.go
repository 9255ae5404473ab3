package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rileyhilliard/wheel/internal/config"
	"github.com/rileyhilliard/wheel/internal/errors"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/wheel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func seeded(seed uint64, names ...string) pickOptions {
	return pickOptions{
		spinFlags: spinFlags{Seed: seed, SeedSet: true},
		Names:     names,
	}
}

func TestRunPick_Plain(t *testing.T) {
	isolate(t)
	names := []string{"Alice", "Bob", "Carol"}

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), seeded(7, names...), &buf, false))

	out := strings.TrimSuffix(buf.String(), "\n")
	assert.Contains(t, names, out)
	assert.NotContains(t, out, "\n")
}

func TestRunPick_SeedIsRepeatable(t *testing.T) {
	isolate(t)
	names := []string{"A", "B", "C", "D", "E"}

	var first, second bytes.Buffer
	require.NoError(t, runPick(context.Background(), seeded(99, names...), &first, false))
	require.NoError(t, runPick(context.Background(), seeded(99, names...), &second, false))
	assert.Equal(t, first.String(), second.String())
}

func TestRunPick_JSON(t *testing.T) {
	isolate(t)
	names := []string{"Pizza", "Tacos", "Sushi", "Ramen"}
	opts := seeded(3, names...)
	opts.JSON = true

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), opts, &buf, true))

	var res PickResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))

	require.GreaterOrEqual(t, res.Index, 0)
	require.Less(t, res.Index, len(names))
	assert.Equal(t, names[res.Index], res.Winner.Name)
	assert.Equal(t, int64(res.Index+1), res.Winner.ID)
	assert.Contains(t, wheel.DefaultPalette, res.Winner.Color)

	plan := wheel.PlanFor(len(names), res.Index, wheel.DefaultMinRotations)
	assert.InDelta(t, plan.TotalRotation, res.TotalRotation, 1e-9)
	assert.InDelta(t, wheel.NormalizeAngle(plan.TotalRotation), res.DisplayAngle, 1e-9)

	// JSON keys match the documented shape.
	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	for _, k := range []string{"winner", "index", "total_rotation", "display_angle"} {
		assert.Contains(t, raw, k)
	}
}

func TestRunPick_OptionFlagsKeepColor(t *testing.T) {
	isolate(t)
	opts := seeded(1)
	opts.Options = []string{"Only=#123456"}
	opts.JSON = true

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), opts, &buf, false))

	var res PickResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, "Only", res.Winner.Name)
	assert.Equal(t, "#123456", res.Winner.Color)
	assert.Equal(t, 0, res.Index)
}

func TestRunPick_NoOptions(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	err := runPick(context.Background(), pickOptions{}, &buf, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrInput))
	assert.Empty(t, buf.String())
}

func TestRunPick_NoOptionsJSON(t *testing.T) {
	isolate(t)

	var buf bytes.Buffer
	err := runPick(context.Background(), pickOptions{JSON: true}, &buf, false)
	require.Error(t, err)

	var env struct {
		Error JSONError `json:"error"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &env))
	assert.Equal(t, errors.ErrInput, env.Error.Code)
	assert.Equal(t, "Nothing to pick from", env.Error.Message)
}

func TestRunPick_UsesConfigOptions(t *testing.T) {
	work := isolate(t)
	cfg := config.DefaultConfig()
	cfg.Options = []config.OptionConfig{{Name: "OnlyFromConfig"}}
	require.NoError(t, config.Write(filepath.Join(work, config.ConfigFileName), cfg))

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), seeded(5), &buf, false))
	assert.Equal(t, "OnlyFromConfig\n", buf.String())

	// Names on the command line replace the config's options.
	buf.Reset()
	require.NoError(t, runPick(context.Background(), seeded(5, "Arg"), &buf, false))
	assert.Equal(t, "Arg\n", buf.String())
}

func TestRunPick_InvalidConfig(t *testing.T) {
	work := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(work, config.ConfigFileName),
		[]byte("spin:\n  min_rotations: 0\n"), 0o644))

	err := runPick(context.Background(), seeded(1, "A"), &bytes.Buffer{}, false)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))
}

func TestRunPick_Animated(t *testing.T) {
	isolate(t)
	opts := seeded(11, "Red", "Green", "Blue")
	opts.Duration = 60 * time.Millisecond

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), opts, &buf, true))

	out := buf.String()
	assert.Contains(t, out, "Spinning")
	assert.Contains(t, out, "100%")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\r")
	last := lines[len(lines)-1]
	assert.True(t, strings.HasPrefix(last, ui.SymbolSuccess+" "), "got %q", last)
}

func TestRunPick_NoAnimateOnTTY(t *testing.T) {
	isolate(t)
	opts := seeded(2, "Solo")
	opts.NoAnimate = true

	var buf bytes.Buffer
	require.NoError(t, runPick(context.Background(), opts, &buf, true))
	assert.Equal(t, ui.SymbolSuccess+" Solo\n", buf.String())
}

func TestRunPick_Interrupted(t *testing.T) {
	isolate(t)
	opts := seeded(4, "A", "B")
	opts.Duration = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := runPick(ctx, opts, &buf, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, buf.String(), "Spin interrupted")
}

func TestBarWidth(t *testing.T) {
	tests := []struct {
		cols, want int
	}{
		{0, 30},
		{-1, 30},
		{20, 10},
		{45, 15},
		{200, 30},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, barWidth(tt.cols), "cols=%d", tt.cols)
	}
}

func TestTerminalWidth_NotATerminal(t *testing.T) {
	assert.Zero(t, terminalWidth(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()
	assert.Zero(t, terminalWidth(f))
}
