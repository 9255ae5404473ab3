package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Progress bar block characters.
const (
	BarFilled = '█'
	BarEmpty  = '░'
)

// ProgressColor returns colors for progress bars.
// Higher values are better: 0-50% secondary (blue), 50-80% warning (yellow), 80%+ success (green).
func ProgressColor(percent float64) lipgloss.Color {
	switch {
	case percent >= 80:
		return ColorSuccess
	case percent >= 50:
		return ColorWarning
	default:
		return ColorSecondary
	}
}

// ClampUnit clamps v to [0, 1].
func ClampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// CalculateBarCounts returns the number of filled and empty characters for
// a normalized (0-1) fraction.
func CalculateBarCounts(fraction float64, width int) (filled, empty int) {
	if width <= 0 {
		return 0, 0
	}
	filled = int(ClampUnit(fraction) * float64(width))
	if filled > width {
		filled = width
	}
	empty = width - filled
	return
}

// RenderBar renders a colored progress bar for a 0-1 fraction.
func RenderBar(fraction float64, width int) string {
	if width <= 0 {
		return ""
	}
	filled, empty := CalculateBarCounts(fraction, width)

	filledStyle := lipgloss.NewStyle().Foreground(ProgressColor(ClampUnit(fraction) * 100))
	emptyStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	return "[" +
		filledStyle.Render(strings.Repeat(string(BarFilled), filled)) +
		emptyStyle.Render(strings.Repeat(string(BarEmpty), empty)) +
		"]"
}

// FormatDuration renders d as seconds with one decimal, or two below 100ms.
func FormatDuration(d time.Duration) string {
	secs := d.Seconds()
	if secs < 0.1 {
		return fmt.Sprintf("%.2fs", secs)
	}
	return fmt.Sprintf("%.1fs", secs)
}
