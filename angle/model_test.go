package angle

import (
	"math"
	"testing"

	"github.com/gogpu/trigviz/frame"
	"gonum.org/v1/gonum/floats/scalar"
)

func newTestModel(initial float64) *Model {
	return NewModel(NewState(initial), frame.MustNew(frame.DefaultLayout()))
}

func TestFromDeltas(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"along x axis", -1, 0, 0},
		{"diagonal", -1, 1, math.Pi / 4},
		{"straight up", 0, 1, math.Pi / 2},
		{"second quadrant", 1, 1, 3 * math.Pi / 4},
		{"negative x axis", 1, 0, math.Pi},
		{"fourth quadrant", -1, -1, 7 * math.Pi / 4},
		{"third quadrant", 1, -1, 5 * math.Pi / 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromDeltas(tt.dx, tt.dy)
			if !scalar.EqualWithinAbs(got, tt.want, 1e-12) {
				t.Errorf("FromDeltas(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestUpdate_RoundTrip(t *testing.T) {
	f := frame.MustNew(frame.DefaultLayout())

	for _, theta := range []float64{0.01, 0.1, math.Pi / 6, math.Pi / 4, 1, math.Pi / 3, 1.5, math.Pi/2 - 0.01} {
		m := NewModel(NewState(0), f)
		p := f.Project(math.Cos(theta), math.Sin(theta))
		m.State().Pointer = Pointer{Pressed: true, X: p.X, Y: p.Y}

		m.Update()
		if !scalar.EqualWithinAbs(m.Angle(), theta, 1e-6) {
			t.Errorf("round trip %v: Angle() = %v", theta, m.Angle())
		}
	}
}

func TestUpdate_Idle(t *testing.T) {
	m := newTestModel(math.Pi / 4)
	m.State().Pointer = Pointer{Pressed: false, X: 300, Y: 100}

	if changed := m.Update(); changed {
		t.Error("Update() changed angle while idle")
	}
	if got := m.Angle(); got != math.Pi/4 {
		t.Errorf("Angle() = %v, want %v", got, math.Pi/4)
	}
	if got := m.Mode(); got != Idle {
		t.Errorf("Mode() = %v, want Idle", got)
	}
}

func TestUpdate_BoundsGuard(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{"left of y axis", 49.9, 300},
		{"below x axis", 300, 550.1},
		{"third quadrant", 0, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(0.5)
			m.State().Pointer = Pointer{Pressed: true, X: tt.x, Y: tt.y}

			if changed := m.Update(); changed {
				t.Error("Update() reported a change out of bounds")
			}
			if got := m.Angle(); got != 0.5 {
				t.Errorf("Angle() = %v, want 0.5", got)
			}
			if got := m.Mode(); got != Tracking {
				t.Errorf("Mode() = %v, want Tracking", got)
			}
		})
	}
}

func TestUpdate_OnAxes(t *testing.T) {
	m := newTestModel(1)
	o := frame.MustNew(frame.DefaultLayout()).Origin()

	// On the X axis: angle 0.
	m.State().Pointer = Pointer{Pressed: true, X: o.X + 200, Y: o.Y}
	if !m.Update() {
		t.Fatal("Update() on X axis reported no change")
	}
	if got := m.Angle(); !scalar.EqualWithinAbs(got, 0, 1e-12) {
		t.Errorf("Angle() on X axis = %v, want 0", got)
	}

	// On the Y axis: angle π/2.
	m.State().Pointer = Pointer{Pressed: true, X: o.X, Y: o.Y - 200}
	m.Update()
	if got := m.Angle(); !scalar.EqualWithinAbs(got, math.Pi/2, 1e-12) {
		t.Errorf("Angle() on Y axis = %v, want π/2", got)
	}
}

func TestUpdate_Idempotent(t *testing.T) {
	m := newTestModel(0)
	m.State().Pointer = Pointer{Pressed: true, X: 250, Y: 350}

	if !m.Update() {
		t.Fatal("first Update() reported no change")
	}
	first := m.Angle()
	if m.Update() {
		t.Error("second Update() reported a change with the same pointer")
	}
	if m.Angle() != first {
		t.Errorf("Angle() = %v after second update, want %v", m.Angle(), first)
	}
}

func TestInBounds(t *testing.T) {
	m := newTestModel(0)
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 550, true},
		{50, 0, true},
		{600, 550, true},
		{49, 300, false},
		{300, 551, false},
	}
	for _, tt := range tests {
		if got := m.InBounds(tt.x, tt.y); got != tt.want {
			t.Errorf("InBounds(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{Idle, "Idle"},
		{Tracking, "Tracking"},
		{Mode(9), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
