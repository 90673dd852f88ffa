// Package angle holds the visualizer state and the pointer-to-angle
// mapping that updates it.
package angle

import (
	"math"

	"github.com/gogpu/trigviz/frame"
)

// Mode is the state of the angle model.
type Mode uint8

const (
	// Idle means the pointer is released and the angle is held.
	Idle Mode = iota
	// Tracking means the pointer is pressed and the angle follows it while
	// the pointer stays inside the first-quadrant bounds.
	Tracking
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Idle:
		return "Idle"
	case Tracking:
		return "Tracking"
	default:
		return "Unknown"
	}
}

// Model applies pointer input to the angle.
type Model struct {
	state *State
	frame *frame.Frame
}

// NewModel returns a model updating s against the origin of f.
func NewModel(s *State, f *frame.Frame) *Model {
	return &Model{state: s, frame: f}
}

// State returns the state the model updates.
func (m *Model) State() *State { return m.state }

// Angle returns the current angle in radians.
func (m *Model) Angle() float64 { return m.state.Angle }

// Mode reports whether the model is tracking the pointer.
func (m *Model) Mode() Mode {
	if m.state.Pointer.Pressed {
		return Tracking
	}
	return Idle
}

// InBounds reports whether a pixel position is on or right of the Y axis
// and on or above the X axis.
func (m *Model) InBounds(x, y float64) bool {
	o := m.frame.Origin()
	return x >= o.X && y <= o.Y
}

// Update runs one frame step: while tracking and in bounds, the angle is
// recomputed from the pointer position. It reports whether the angle
// changed.
func (m *Model) Update() bool {
	p := m.state.Pointer
	if !p.Pressed || !m.InBounds(p.X, p.Y) {
		return false
	}

	dx := m.frame.Origin().X - p.X
	dy := m.frame.Origin().Y - p.Y
	next := FromDeltas(dx, dy)
	if next == m.state.Angle {
		return false
	}
	m.state.Angle = next
	return true
}

// FromDeltas converts raw origin-minus-pointer deltas into the displayed
// angle. atan2 measures the deltas counter-clockwise from the positive X
// axis; reflecting through 2π and then rotating by π puts the result in
// the diagram's y-down convention, so a pointer at (cos θ, sin θ) on the
// unit arc yields θ.
func FromDeltas(dx, dy float64) float64 {
	raw := math.Atan2(dy, dx)
	inverted := 2*math.Pi - raw
	return inverted - math.Pi
}
