// Package frame maps the logical unit square of the trigonometry diagram
// to canvas pixels.
//
// # Coordinate System
//
// The unit square is y-up with (0, 0) at the bottom-left corner of the
// drawing area. Pixel space follows gg: origin at the top-left of the
// canvas, X increases right, Y increases down. The diagram origin sits
// Padding pixels in from the left and bottom edges.
//
// A Frame is created once from a Layout and never mutated.
package frame

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"gonum.org/v1/gonum/floats/scalar"
)

// tickTolerance bounds how far 1/TickIncrement may drift from an integer.
const tickTolerance = 1e-9

// Frame is the immutable pixel layout of the diagram.
type Frame struct {
	layout      Layout
	origin      gg.Point
	xAxisLength float64
	yAxisLength float64
	numTicks    int
}

// New validates the layout and derives the frame from it.
func New(l Layout) (*Frame, error) {
	if math.IsNaN(l.Padding) || math.IsInf(l.Padding, 0) || l.Padding < 0 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPadding, l.Padding)
	}

	w, h := float64(l.Width), float64(l.Height)
	xLen := w - 2*l.Padding
	yLen := h - 2*l.Padding
	if xLen <= 0 || yLen <= 0 {
		return nil, fmt.Errorf("%w: %dx%d with padding %v", ErrCanvasTooSmall, l.Width, l.Height, l.Padding)
	}

	if !(l.TickIncrement > 0 && l.TickIncrement <= 1) {
		return nil, fmt.Errorf("%w: increment %v outside (0, 1]", ErrInvalidTick, l.TickIncrement)
	}
	n := 1 / l.TickIncrement
	if !scalar.EqualWithinAbs(n, math.Round(n), tickTolerance) {
		return nil, fmt.Errorf("%w: increment %v does not divide 1.0", ErrInvalidTick, l.TickIncrement)
	}
	if !(l.TickSize > 0 && l.TickSpacingX > 0 && l.TickSpacingY > 0) {
		return nil, fmt.Errorf("%w: size %v, spacing %vx%v", ErrInvalidTick, l.TickSize, l.TickSpacingX, l.TickSpacingY)
	}

	return &Frame{
		layout:      l,
		origin:      gg.Pt(l.Padding, h-l.Padding),
		xAxisLength: xLen,
		yAxisLength: yLen,
		numTicks:    int(math.Round(n)),
	}, nil
}

// MustNew is like New but panics on an invalid layout.
// Intended for package-level defaults and tests.
func MustNew(l Layout) *Frame {
	f, err := New(l)
	if err != nil {
		panic(err)
	}
	return f
}

// Layout returns the layout the frame was built from.
func (f *Frame) Layout() Layout { return f.layout }

// Width returns the canvas width in pixels.
func (f *Frame) Width() float64 { return float64(f.layout.Width) }

// Height returns the canvas height in pixels.
func (f *Frame) Height() float64 { return float64(f.layout.Height) }

// Origin returns the pixel position of the unit-square origin.
func (f *Frame) Origin() gg.Point { return f.origin }

// XAxisLength returns the pixel length of the X axis.
func (f *Frame) XAxisLength() float64 { return f.xAxisLength }

// YAxisLength returns the pixel length of the Y axis.
func (f *Frame) YAxisLength() float64 { return f.yAxisLength }

// XAxisEnd returns the right end of the X axis.
func (f *Frame) XAxisEnd() gg.Point {
	return gg.Pt(f.origin.X+f.xAxisLength, f.origin.Y)
}

// YAxisEnd returns the top end of the Y axis.
func (f *Frame) YAxisEnd() gg.Point {
	return gg.Pt(f.origin.X, f.origin.Y-f.yAxisLength)
}

// TickSize returns the tick mark length in pixels.
func (f *Frame) TickSize() float64 { return f.layout.TickSize }

// TickSpacingX returns the pixel distance between X axis ticks.
func (f *Frame) TickSpacingX() float64 { return f.layout.TickSpacingX }

// TickSpacingY returns the pixel distance between Y axis ticks.
func (f *Frame) TickSpacingY() float64 { return f.layout.TickSpacingY }

// NumTicks returns the number of ticks per axis, excluding the origin.
func (f *Frame) NumTicks() int { return f.numTicks }

// UnitX returns the pixel X coordinate of the tick marking 1.0 on the X axis.
func (f *Frame) UnitX() float64 {
	return f.origin.X + f.layout.TickSpacingX*float64(f.numTicks)
}

// UnitY returns the pixel Y coordinate of the tick marking 1.0 on the Y axis.
func (f *Frame) UnitY() float64 {
	return f.origin.Y - f.layout.TickSpacingY*float64(f.numTicks)
}

// ArcRadius returns the pixel radius of the unit arc.
func (f *Frame) ArcRadius() float64 {
	return f.layout.TickSpacingY * float64(f.numTicks)
}

// Project maps a unit-square point (y-up) to pixel space (y-down).
func (f *Frame) Project(unitX, unitY float64) gg.Point {
	return gg.Pt(
		f.origin.X+unitX*f.xAxisLength,
		f.origin.Y-unitY*f.yAxisLength,
	)
}

// Unproject returns the raw offsets of p from the origin, measured as
// origin minus point on both axes. It is not the inverse of Project: angle
// recovery works on these pixel deltas directly.
func (f *Frame) Unproject(p gg.Point) (dx, dy float64) {
	return f.origin.X - p.X, f.origin.Y - p.Y
}

// Tick is one labeled tick position shared by both axes.
type Tick struct {
	// Value is the unit-square value the tick marks.
	Value float64
	// X is the tick's position on the X axis.
	X gg.Point
	// Y is the tick's position on the Y axis.
	Y gg.Point
}

// Ticks returns the ticks of both axes from the first increment up to 1.0.
// Values are computed by multiplication so they do not accumulate error.
func (f *Frame) Ticks() []Tick {
	ticks := make([]Tick, f.numTicks)
	for i := range ticks {
		n := float64(i + 1)
		ticks[i] = Tick{
			Value: n * f.layout.TickIncrement,
			X:     gg.Pt(f.origin.X+f.layout.TickSpacingX*n, f.origin.Y),
			Y:     gg.Pt(f.origin.X, f.origin.Y-f.layout.TickSpacingY*n),
		}
	}
	return ticks
}
