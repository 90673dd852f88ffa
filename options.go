package trigviz

import (
	"math"

	"github.com/gogpu/trigviz/frame"
	"github.com/gogpu/trigviz/scene"
)

// DefaultAngle is the angle shown before any input: 45°.
const DefaultAngle = math.Pi / 4

// Option configures a Visualizer during creation.
//
// Example:
//
//	v, err := trigviz.New(
//	    trigviz.WithInitialAngle(math.Pi/6),
//	    trigviz.WithSceneOptions(scene.WithFontSizes(10, 20)),
//	)
type Option func(*options)

// options holds optional configuration for Visualizer creation.
type options struct {
	layout       frame.Layout
	initialAngle float64
	sceneOpts    []scene.Option
}

// defaultOptions returns the default visualizer options.
func defaultOptions() options {
	return options{
		layout:       frame.DefaultLayout(),
		initialAngle: DefaultAngle,
	}
}

// WithLayout sets the canvas size, padding and tick layout.
// New reports an error if the layout is invalid.
func WithLayout(l frame.Layout) Option {
	return func(o *options) {
		o.layout = l
	}
}

// WithInitialAngle sets the starting angle in radians.
func WithInitialAngle(theta float64) Option {
	return func(o *options) {
		o.initialAngle = theta
	}
}

// WithSceneOptions passes styling options to the scene.
func WithSceneOptions(opts ...scene.Option) Option {
	return func(o *options) {
		o.sceneOpts = append(o.sceneOpts, opts...)
	}
}
