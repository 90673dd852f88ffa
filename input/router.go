// Package input translates host pointer events into pointer state updates.
//
// The router performs no geometry; each event is a single field update on
// the shared angle.State, applied by the next angle.Model.Update.
package input

import "github.com/gogpu/trigviz/angle"

// Router routes pointer events onto a state.
type Router struct {
	state *angle.State
}

// NewRouter returns a router writing to s.
func NewRouter(s *angle.State) *Router {
	return &Router{state: s}
}

// Press marks the pointer as pressed at (x, y).
func (r *Router) Press(x, y float64) {
	r.state.Pointer = angle.Pointer{Pressed: true, X: x, Y: y}
}

// Release marks the pointer as released. The last position is kept.
func (r *Router) Release() {
	r.state.Pointer.Pressed = false
}

// Move records the pointer position whether or not it is pressed.
func (r *Router) Move(x, y float64) {
	r.state.Pointer.X = x
	r.state.Pointer.Y = y
}

// Pointer returns a copy of the current pointer state.
func (r *Router) Pointer() angle.Pointer {
	return r.state.Pointer
}
