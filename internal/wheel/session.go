package wheel

import "time"

// DefaultDuration is how long a spin animates.
const DefaultDuration = 10 * time.Second

// Frame is one animation step.
type Frame struct {
	Elapsed  time.Duration
	Progress float64 // elapsed fraction, clamped to [0, 1]
	Angle    float64 // unwrapped rotation in degrees
	Display  float64 // Angle mod 360
	Done     bool
}

// Session is a single spin in flight. It is owned by one Wheel and is
// discarded when the spin completes, is cancelled, or a new spin begins.
type Session struct {
	ID       uint64
	Plan     Plan
	Start    time.Time
	Duration time.Duration

	// Options is the list the winning index was drawn against.
	Options []Option
}

// Frame computes the animation state at now.
func (s *Session) Frame(now time.Time) Frame {
	elapsed := now.Sub(s.Start)
	if elapsed < 0 {
		elapsed = 0
	}

	progress := 1.0
	if s.Duration > 0 {
		progress = float64(elapsed) / float64(s.Duration)
		if progress > 1 {
			progress = 1
		}
	}

	angle := s.Plan.TotalRotation
	if progress < 1 {
		angle = s.Plan.TotalRotation * EaseOutQuart(progress)
	}

	return Frame{
		Elapsed:  elapsed,
		Progress: progress,
		Angle:    angle,
		Display:  NormalizeAngle(angle),
		Done:     progress >= 1,
	}
}

// Advance lets a bare Session be driven by an Animator.
func (s *Session) Advance(now time.Time) (Frame, bool) {
	return s.Frame(now), true
}

// Winner returns the pre-drawn option from the session snapshot.
func (s *Session) Winner() (Option, bool) {
	i := s.Plan.WinningIndex
	if i < 0 || i >= len(s.Options) {
		return Option{}, false
	}
	return s.Options[i], true
}
