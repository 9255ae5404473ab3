package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/wheel/internal/ui"
)

// Palette for the wheel screen, shared with the rr-style neon theme in ui.
const (
	ColorDarkBg    = lipgloss.Color("#0A0A0F")
	ColorSurfaceBg = lipgloss.Color("#12121A")
	ColorBorder    = lipgloss.Color("#2A2A4A")

	ColorTextPrimary   = lipgloss.Color("#FFFFFF")
	ColorTextSecondary = lipgloss.Color("#B4B4D0")
	ColorTextMuted     = lipgloss.Color("#6B6B8D")

	ColorAccent    = ui.ColorNeonPink
	ColorAccentDim = ui.ColorNeonPurple
	ColorHighlight = ui.ColorNeonCyan
)

// Runes used by the pie renderer.
const (
	runeFill    = '█'
	runeOutline = '▓'
	runeEmpty   = '░'
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	InputLabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Width(7)

	InputFocusedLabelStyle = InputLabelStyle.
				Foreground(ColorHighlight).
				Bold(true)

	RowStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	RowCursorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	DisabledStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Faint(true)

	SpinButtonStyle = lipgloss.NewStyle().
			Foreground(ColorDarkBg).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	SpinButtonDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Background(ColorSurfaceBg).
				Padding(0, 2)

	ResultStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary).
			Bold(true)

	StatusStyle = lipgloss.NewStyle().
			Foreground(ui.ColorNeonAmber)

	IndicatorStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	EmptyWheelStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)

// SwatchStyle returns a style that paints a color sample.
func SwatchStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}
