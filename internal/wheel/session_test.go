package wheel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestSession(plan Plan) *Session {
	return &Session{
		ID:       1,
		Plan:     plan,
		Start:    epoch,
		Duration: 10 * time.Second,
		Options:  []Option{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}, {ID: 4, Name: "D"}},
	}
}

func TestSession_Frame(t *testing.T) {
	s := newTestSession(PlanFor(4, 2, 3))

	tests := []struct {
		name     string
		at       time.Duration
		progress float64
		angle    float64
		done     bool
	}{
		{"start", 0, 0, 0, false},
		{"before start clamps", -time.Second, 0, 0, false},
		{"halfway", 5 * time.Second, 0.5, 1215 * 0.9375, false},
		{"end snaps", 10 * time.Second, 1, 1215, true},
		{"after end", 30 * time.Second, 1, 1215, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := s.Frame(epoch.Add(tt.at))
			assert.InDelta(t, tt.progress, f.Progress, 1e-9)
			assert.InDelta(t, tt.angle, f.Angle, 1e-9)
			assert.InDelta(t, NormalizeAngle(tt.angle), f.Display, 1e-9)
			assert.Equal(t, tt.done, f.Done)
		})
	}
}

func TestSession_FinalDisplayAngle(t *testing.T) {
	s := newTestSession(PlanFor(4, 2, 3))
	f := s.Frame(epoch.Add(10 * time.Second))

	assert.Equal(t, 1215.0, f.Angle)
	assert.Equal(t, 135.0, f.Display)
}

func TestSession_AngleNeverDecreases(t *testing.T) {
	s := newTestSession(PlanFor(7, 5, 3))
	prev := -1.0
	for ms := 0; ms <= 10000; ms += 16 {
		f := s.Frame(epoch.Add(time.Duration(ms) * time.Millisecond))
		assert.GreaterOrEqual(t, f.Angle, prev)
		prev = f.Angle
	}
}

func TestSession_ZeroDurationCompletesImmediately(t *testing.T) {
	s := newTestSession(PlanFor(4, 1, 3))
	s.Duration = 0

	f := s.Frame(epoch)
	assert.True(t, f.Done)
	assert.Equal(t, s.Plan.TotalRotation, f.Angle)
}

func TestSession_Winner(t *testing.T) {
	s := newTestSession(PlanFor(4, 2, 3))
	w, ok := s.Winner()
	assert.True(t, ok)
	assert.Equal(t, "C", w.Name)

	s.Options = s.Options[:2]
	_, ok = s.Winner()
	assert.False(t, ok)
}
