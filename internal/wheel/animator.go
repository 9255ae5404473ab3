package wheel

import (
	"context"
	"errors"
	"time"
)

// DefaultFrameInterval is roughly one display frame at 60Hz.
const DefaultFrameInterval = 16 * time.Millisecond

// ErrNotSpinning is returned when the stepper has no spin to advance.
var ErrNotSpinning = errors.New("wheel is not spinning")

// Stepper advances an animation to a point in time. Both *Session and
// *Wheel implement it.
type Stepper interface {
	Advance(now time.Time) (Frame, bool)
}

// Animator is a cancellable repeating task that computes frames from
// wall-clock time until the spin completes.
type Animator struct {
	Interval time.Duration
	Now      func() time.Time
}

// NewAnimator creates an animator ticking at interval (DefaultFrameInterval
// when interval <= 0).
func NewAnimator(interval time.Duration) *Animator {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Animator{Interval: interval, Now: time.Now}
}

// Run advances st on every tick, calling onFrame (if non-nil) with each
// frame. It returns the final frame once Done, or the last frame and
// ctx.Err() on cancellation. The ticker is always stopped on return.
func (a *Animator) Run(ctx context.Context, st Stepper, onFrame func(Frame)) (Frame, error) {
	now := a.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(a.Interval)
	defer ticker.Stop()

	var last Frame
	step := func() (bool, error) {
		f, ok := st.Advance(now())
		if !ok {
			return true, ErrNotSpinning
		}
		last = f
		if onFrame != nil {
			onFrame(f)
		}
		return f.Done, nil
	}

	if done, err := step(); done || err != nil {
		return last, err
	}

	for {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-ticker.C:
			if done, err := step(); done || err != nil {
				return last, err
			}
		}
	}
}
