package ui

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// SpinLine renders a spin on a single terminal line for CLI use (outside
// Bubble Tea). Each Update rewrites the line in place with \r.
type SpinLine struct {
	mu           sync.Mutex
	label        string
	output       io.Writer
	width        int
	lastRendered string
}

// NewSpinLine creates a spin line writing to output.
func NewSpinLine(label string, output io.Writer) *SpinLine {
	return &SpinLine{
		label:  label,
		output: output,
		width:  30,
	}
}

// SetWidth sets the progress bar width.
func (l *SpinLine) SetWidth(w int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.width = w
}

// Update redraws the line for a frame. progress is 0-1, angle is the
// displayed wheel rotation in degrees.
func (l *SpinLine) Update(elapsed time.Duration, progress, angle float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	symbolStyle := lipgloss.NewStyle().Foreground(ColorNeonPink)
	pctStyle := lipgloss.NewStyle().Foreground(ColorPrimary)
	statsStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	line := fmt.Sprintf("\r%s %s %s %s %s",
		symbolStyle.Render(SpinnerFrameAt(elapsed)),
		l.label,
		RenderBar(progress, l.width),
		pctStyle.Render(fmt.Sprintf("%3.0f%%", ClampUnit(progress)*100)),
		statsStyle.Render(fmt.Sprintf("%5.1f°", angle)),
	)

	l.clearLocked()
	fmt.Fprint(l.output, line)
	l.lastRendered = line
}

// Success clears the line and prints the winner in its color.
func (l *SpinLine) Success(name, color string, elapsed time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearLocked()
	symbolStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	nameStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	timingStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	fmt.Fprintf(l.output, "%s %s %s\n",
		symbolStyle.Render(SymbolSuccess),
		nameStyle.Render(name),
		timingStyle.Render(FormatDuration(elapsed)),
	)
}

// Fail clears the line and prints msg.
func (l *SpinLine) Fail(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.clearLocked()
	style := lipgloss.NewStyle().Foreground(ColorError)
	fmt.Fprintf(l.output, "%s %s\n", style.Render(SymbolFail), msg)
}

// Must be called with lock held.
func (l *SpinLine) clearLocked() {
	if l.lastRendered == "" {
		return
	}
	clearLen := lipgloss.Width(strings.TrimPrefix(l.lastRendered, "\r"))
	fmt.Fprintf(l.output, "\r%s\r", strings.Repeat(" ", clearLen))
	l.lastRendered = ""
}
