package angle

// Pointer is the last known pointer state, in canvas pixels.
type Pointer struct {
	// Pressed reports whether the primary button is held.
	Pressed bool
	// X and Y are the last reported pointer position.
	X, Y float64
}

// State is the mutable visualizer state: the current angle plus the
// pointer that drives it.
//
// A State has a single owner that creates it and hands the same pointer
// to the input router, the angle model and the scene. It is not safe for
// concurrent use; event handlers and the frame loop must run on the same
// goroutine.
type State struct {
	// Angle is the current angle in radians. It is never wrapped.
	Angle float64

	// Pointer is written by the input router and read by Model.Update.
	Pointer Pointer
}

// NewState returns a state holding the initial angle with the pointer
// released at (0, 0).
func NewState(initial float64) *State {
	return &State{Angle: initial}
}
