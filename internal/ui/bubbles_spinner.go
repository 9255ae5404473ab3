package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the custom animation frames (◐ ◓ ◑ ◒) for use in Bubble Tea programs.
// This keeps the TUI status spinner and the inline pick line in step.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// NewSpinner returns a bubbles spinner using SpinnerFrames in the accent color.
func NewSpinner() spinner.Model {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorNeonPink)
	return sp
}

// SpinnerFrameAt returns the frame to show after elapsed time.
func SpinnerFrameAt(elapsed time.Duration) string {
	if elapsed < 0 {
		elapsed = 0
	}
	i := int(elapsed/SpinnerFrames.FPS) % len(SpinnerFrames.Frames)
	return SpinnerFrames.Frames[i]
}
