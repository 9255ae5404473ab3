// Package ui provides the shared terminal building blocks used by the wheel
// TUI and the pick command's inline output.
//
// # Colors
//
// Semantic colors are ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Settled spins
//	ColorError     (red)    - Failures
//	ColorWarning   (yellow) - Warnings
//	ColorInfo      (cyan)   - Informational messages
//	ColorMuted     (gray)   - Secondary text, timing info
//
// Neon accents (ColorNeonCyan, ColorNeonPink, ...) are truecolor hex values
// used for the title, borders, and the indicator.
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Spin line
//
// SpinLine draws a spin on one line, rewriting it in place:
//
//	line := ui.NewSpinLine("Spinning", os.Stdout)
//	line.Update(elapsed, progress, angle) // once per frame
//	line.Success(winner.Name, winner.Color, elapsed)
//
// # Bubble Tea Components
//
// NewSpinner returns a bubbles spinner using SpinnerFrames so the TUI's
// status indicator matches the inline output.
package ui
