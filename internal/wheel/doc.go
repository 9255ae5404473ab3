// Package wheel holds the picker's domain state: the ordered option list,
// the uniform selector, the ease-out spin math, and the Wheel state machine
// that ties them together.
//
// # Spin lifecycle
//
//	Idle -> Spinning -> Idle
//
// Spin draws the winning index up front (Selector.Plan) and opens a Session.
// Frames are pure functions of wall-clock time (Session.Frame), so any driver
// can advance them: the TUI feeds Bubble Tea tick times into Wheel.Advance,
// the pick command runs an Animator over a time.Ticker. The winner committed
// on the final frame is always the pre-drawn index, never a value derived
// from the final angle.
//
// # Geometry
//
// Angles are degrees measured clockwise from the indicator at the top of the
// wheel. Slice i covers wheel angles [(i-1)*a, i*a) where a = 360/n, and a
// wheel rotated by r shows wheel angle psi at screen angle psi-r. With that
// layout the planned total rotation parks the center of the winning slice
// under the indicator.
package wheel
