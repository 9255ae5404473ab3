package wheel

import "math"

// EaseOutQuart decelerates toward the end: 1 - (1-t)^4. t is clamped to [0, 1].
func EaseOutQuart(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return 1 - math.Pow(1-t, 4)
}
