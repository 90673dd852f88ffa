package trigviz

import (
	"fmt"
	"time"

	"github.com/gogpu/trigviz/angle"
	"github.com/gogpu/trigviz/draw"
	"github.com/gogpu/trigviz/frame"
	"github.com/gogpu/trigviz/input"
	"github.com/gogpu/trigviz/scene"
	"github.com/gogpu/trigviz/trig"
)

// Visualizer ties the angle state to its input, model and scene.
//
// All methods must be called from the goroutine that delivers pointer
// events; a Visualizer is not safe for concurrent use.
type Visualizer struct {
	state  *angle.State
	frame  *frame.Frame
	model  *angle.Model
	router *input.Router
	scene  *scene.Scene
}

// New creates a Visualizer. It fails only when the layout is invalid.
func New(opts ...Option) (*Visualizer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := frame.New(o.layout)
	if err != nil {
		return nil, fmt.Errorf("trigviz: %w", err)
	}

	s := angle.NewState(o.initialAngle)
	v := &Visualizer{
		state:  s,
		frame:  f,
		model:  angle.NewModel(s, f),
		router: input.NewRouter(s),
		scene:  scene.New(s, f, o.sceneOpts...),
	}

	Logger().Info("trigviz: visualizer created",
		"width", o.layout.Width, "height", o.layout.Height, "angle", o.initialAngle)
	return v, nil
}

// Router returns the router that pointer events should be sent to.
func (v *Visualizer) Router() *input.Router { return v.router }

// Frame returns the coordinate frame.
func (v *Visualizer) Frame() *frame.Frame { return v.frame }

// Scene returns the scene.
func (v *Visualizer) Scene() *scene.Scene { return v.scene }

// Angle returns the current angle in radians.
func (v *Visualizer) Angle() float64 { return v.state.Angle }

// Mode reports whether the pointer is currently driving the angle.
func (v *Visualizer) Mode() angle.Mode { return v.model.Mode() }

// Update runs the angle update once and reports whether the angle
// changed.
func (v *Visualizer) Update() bool {
	before := v.state.Angle
	if !v.model.Update() {
		return false
	}
	Logger().Debug("trigviz: angle changed",
		"from", before, "to", v.state.Angle, "degrees", trig.Degrees(v.state.Angle))
	return true
}

// Draw returns the commands for the current state without updating it.
func (v *Visualizer) Draw() *draw.List {
	return v.scene.Build()
}

// Tick advances one frame: it updates the angle from the pointer and
// returns the frame's draw commands. The update does not depend on the
// elapsed time.
func (v *Visualizer) Tick(time.Duration) *draw.List {
	v.Update()
	return v.Draw()
}
