package scene

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/trigviz/draw"
)

// Palette holds the colors of the diagram.
type Palette struct {
	Background gg.RGBA
	// Axes also colors the unit arc and the angle arc and label.
	Axes       gg.RGBA
	// Sine colors the sine, the cosine and the angle ray.
	Sine       gg.RGBA
	// Tangent colors the tangent and the secant.
	Tangent    gg.RGBA
	// Cotangent colors the cotangent and the cosecant.
	Cotangent  gg.RGBA
}

// DefaultPalette is near-white on dark blue with red, yellow and green
// constructions.
var DefaultPalette = Palette{
	Background: gg.Hex("#000055"),
	Axes:       gg.Hex("#EEEEEE"),
	Sine:       gg.Hex("#FF2222"),
	Tangent:    gg.Hex("#DDDD00"),
	Cotangent:  gg.Hex("#00DD00"),
}

// Style controls how the scene is drawn.
type Style struct {
	Palette Palette

	// TickFontSize is used for axis tick labels, LabelFontSize for the
	// angle and ratio labels.
	TickFontSize  float64
	LabelFontSize float64

	// AxisWidth strokes the axes and ticks, LineWidth everything else.
	AxisWidth float64
	LineWidth float64

	ArrowHead draw.ArrowHead
}

// DefaultStyle returns the default style.
func DefaultStyle() Style {
	return Style{
		Palette:       DefaultPalette,
		TickFontSize:  12,
		LabelFontSize: 24,
		AxisWidth:     1,
		LineWidth:     2,
		ArrowHead:     draw.DefaultArrowHead,
	}
}

// Option configures a Scene.
type Option func(*Style)

// WithPalette replaces the color palette.
func WithPalette(p Palette) Option {
	return func(s *Style) {
		s.Palette = p
	}
}

// WithFontSizes sets the tick and label font sizes in points.
func WithFontSizes(tick, label float64) Option {
	return func(s *Style) {
		s.TickFontSize = tick
		s.LabelFontSize = label
	}
}

// WithLineWidths sets the axis and construction stroke widths.
func WithLineWidths(axis, line float64) Option {
	return func(s *Style) {
		s.AxisWidth = axis
		s.LineWidth = line
	}
}

// WithArrowHead sets the arrow head used by every construction.
func WithArrowHead(h draw.ArrowHead) Option {
	return func(s *Style) {
		s.ArrowHead = h
	}
}
