package wheel

import (
	"math"
	"math/rand/v2"
)

// DefaultMinRotations is the number of full turns before the wheel settles.
const DefaultMinRotations = 3

// Source draws uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// defaultSource uses the auto-seeded math/rand/v2 global generator.
type defaultSource struct{}

func (defaultSource) IntN(n int) int { return rand.IntN(n) }

// NewSeededSource returns a deterministic source for reproducible picks.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Plan is the outcome of a draw plus the rotation that displays it.
type Plan struct {
	WinningIndex   int
	Count          int
	MinRotations   int
	AnglePerOption float64
	TargetAngle    float64
	TotalRotation  float64
}

// PlanFor computes the rotation that parks the center of slice winningIndex
// under the indicator after minRotations full turns.
func PlanFor(count, winningIndex, minRotations int) Plan {
	anglePerOption := 360 / float64(count)
	targetAngle := anglePerOption * float64(winningIndex)
	return Plan{
		WinningIndex:   winningIndex,
		Count:          count,
		MinRotations:   minRotations,
		AnglePerOption: anglePerOption,
		TargetAngle:    targetAngle,
		TotalRotation:  360*float64(minRotations) + targetAngle - anglePerOption/2,
	}
}

// Selector draws winning indexes.
type Selector struct {
	src          Source
	minRotations int
}

// NewSelector creates a selector. A nil src uses math/rand/v2; minRotations
// below 1 uses DefaultMinRotations.
func NewSelector(src Source, minRotations int) *Selector {
	if src == nil {
		src = defaultSource{}
	}
	if minRotations < 1 {
		minRotations = DefaultMinRotations
	}
	return &Selector{src: src, minRotations: minRotations}
}

// Plan draws a winning index uniformly from [0, count). It returns false
// when count is zero.
func (s *Selector) Plan(count int) (Plan, bool) {
	if count <= 0 {
		return Plan{}, false
	}
	return PlanFor(count, s.src.IntN(count), s.minRotations), true
}

// MinRotations returns the configured number of full turns.
func (s *Selector) MinRotations() int {
	return s.minRotations
}

// NormalizeAngle maps any angle into [0, 360).
func NormalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// SliceAt returns the index of the slice shown at screen angle screenDeg
// (clockwise from the indicator) when the wheel is rotated by rotation.
func SliceAt(screenDeg, rotation float64, count int) int {
	if count <= 0 {
		return -1
	}
	a := 360 / float64(count)
	psi := NormalizeAngle(screenDeg + rotation)
	idx := int(math.Floor(psi/a+1)) % count
	if idx < 0 {
		idx += count
	}
	return idx
}

// SliceCenter returns the screen angle of the center of slice i when the
// wheel is rotated by rotation.
func SliceCenter(i int, rotation float64, count int) float64 {
	a := 360 / float64(count)
	return NormalizeAngle((float64(i)-0.5)*a - rotation)
}
