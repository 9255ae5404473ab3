package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Semantic colors for status indication. ANSI codes so they degrade
// gracefully on 16-color terminals.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// Neon accents shared by the TUI and the pick output.
const (
	ColorNeonCyan   lipgloss.Color = "#00FFFF"
	ColorNeonPink   lipgloss.Color = "#FF2E97"
	ColorNeonPurple lipgloss.Color = "#BF40FF"
	ColorNeonGreen  lipgloss.Color = "#39FF14"
	ColorNeonAmber  lipgloss.Color = "#FFAA00"
)

// DisableColors forces monochrome output for every lipgloss renderer
// (--no-color, NO_COLOR, or a non-TTY stdout).
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
