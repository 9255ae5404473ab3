package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rileyhilliard/wheel/internal/ui"
	"github.com/rileyhilliard/wheel/internal/wheel"
)

const (
	// panelWidth is the width of the option panel, borders included.
	panelWidth = 52
	nameWidth  = 16
)

// renderScreen lays out the header, wheel, option panel, and footer.
func (m Model) renderScreen() string {
	header := m.renderHeader()
	footer := FooterStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp()))

	left := lipgloss.JoinVertical(lipgloss.Center,
		RenderWheel(m.wheel.Slices(), m.wheel.Rotation(), m.selectedIndex(), m.wheelRadius()),
		"",
		m.renderResult(),
	)
	right := PanelStyle.Width(panelWidth - 2).Render(m.renderPanel())

	var body string
	if m.width > 0 && m.width < lipgloss.Width(left)+panelWidth+2 {
		body = lipgloss.JoinVertical(lipgloss.Left, right, left)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", footer)
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render(m.title)
	if !m.wheel.Spinning() {
		return title
	}
	return title + " " + m.spinner.View()
}

// renderResult shows the committed winner once the wheel is idle.
func (m Model) renderResult() string {
	if m.wheel.Spinning() {
		return ""
	}
	if opt, ok := m.wheel.Selected(); ok {
		name := lipgloss.NewStyle().Foreground(lipgloss.Color(opt.Color)).Bold(true).Render(opt.Name)
		return ResultStyle.Render("Selected:") + " " + name
	}
	if m.wheel.Len() == 0 {
		return HintStyle.Render("Add some options to spin")
	}
	return HintStyle.Render(ui.SymbolPending + " Nothing selected yet")
}

func (m Model) renderPanel() string {
	var lines []string

	lines = append(lines, m.renderInput("Name", m.nameInput.View(), m.focus == FocusName))
	lines = append(lines, m.renderInput("Color", m.colorInput.View(), m.focus == FocusColor))
	lines = append(lines, "")

	opts := m.wheel.Options()
	if len(opts) == 0 {
		lines = append(lines, HintStyle.Render("No options yet"))
	}
	for i, opt := range opts {
		lines = append(lines, m.renderRow(i, opt))
	}

	lines = append(lines, "", m.renderSpinButton())
	if m.status != "" {
		lines = append(lines, StatusStyle.Render(m.status))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderInput(label, view string, focused bool) string {
	style := InputLabelStyle
	if focused {
		style = InputFocusedLabelStyle
	}
	return style.Render(label) + view
}

func (m Model) renderRow(i int, opt wheel.Option) string {
	cursor := " "
	if m.focus == FocusList && i == m.cursor {
		cursor = RowCursorStyle.Render(ui.SymbolCursor)
	}

	marker := " "
	if m.selectedIndex() == i && !m.wheel.Spinning() {
		marker = SwatchStyle(opt.Color).Render(ui.SymbolComplete)
	}

	nameCell := lipgloss.NewStyle().Width(nameWidth)
	var name string
	if id, editing := m.wheel.Editing(); editing && id == opt.ID {
		name = nameCell.Render(m.editInput.View())
	} else {
		name = nameCell.Foreground(lipgloss.Color(opt.Color)).Render(truncate(opt.Name, nameWidth))
	}

	var color string
	if m.recoloringID == opt.ID {
		color = m.recolorInput.View()
	} else {
		color = SwatchStyle(opt.Color).Render("■") + " " + LabelStyle.Render(opt.Color)
	}

	hintStyle := HintStyle
	if m.wheel.Spinning() {
		hintStyle = DisabledStyle
	}
	hints := hintStyle.Render("e edit  d del")

	return fmt.Sprintf("%s%s %s %s  %s", cursor, marker, name, color, hints)
}

func (m Model) renderSpinButton() string {
	if m.wheel.Spinning() {
		return SpinButtonDisabledStyle.Render(m.spinner.View() + " Spinning...")
	}
	if !m.wheel.CanSpin() {
		return SpinButtonDisabledStyle.Render("Spin")
	}
	return SpinButtonStyle.Render("Spin")
}

// wheelRadius is the configured radius, or the largest that fits.
func (m Model) wheelRadius() int {
	if m.radius > 0 {
		return m.radius
	}
	// Header, blank lines, result, and footer take six rows.
	return FitRadius(m.width-panelWidth-2, m.height-6)
}

func (m Model) selectedIndex() int {
	if m.wheel.Spinning() {
		return -1
	}
	return m.wheel.SelectedIndex()
}

// truncate shortens s to width runes, ending in an ellipsis when cut.
func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 1 {
		return string(r[:width])
	}
	return string(r[:width-1]) + "…"
}
