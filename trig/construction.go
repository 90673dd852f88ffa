// Package trig computes the geometric constructions of the six
// trigonometric ratios for a given angle on a frame.
//
// Every function here is pure: constructions are recomputed from the angle
// on each frame and never cached. Near multiples of π/2 the ratios diverge;
// the resulting Inf or NaN values are carried into coordinates and labels
// unchanged.
package trig

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/trigviz/frame"
)

// RadiansPerDegree converts between degrees and radians.
const RadiansPerDegree = math.Pi / 180

// labelInset is how far the secant and cosecant labels sit left of their
// endpoints.
const labelInset = 50

// Function identifies a trigonometric ratio.
type Function uint8

const (
	Cosine Function = iota
	Sine
	Tangent
	Secant
	Cosecant
	Cotangent
)

var functionNames = [...]string{
	Cosine:    "Cos",
	Sine:      "Sin",
	Tangent:   "Tan",
	Secant:    "Sec",
	Cosecant:  "Csc",
	Cotangent: "Cot",
}

// String returns the short symbol used in labels, e.g. "Sin".
func (fn Function) String() string {
	if int(fn) < len(functionNames) {
		return functionNames[fn]
	}
	return "Unknown"
}

// Segment is a directed line segment in pixel space.
type Segment struct {
	From, To gg.Point
}

// Length returns the segment length. It is Inf or NaN for degenerate
// segments.
func (s Segment) Length() float64 {
	return s.From.Distance(s.To)
}

// Label is a piece of text anchored at a pixel position.
type Label struct {
	Text string
	At   gg.Point
}

// Construction is the geometry of one ratio.
type Construction struct {
	Function Function

	// Segment is the line whose length represents the ratio.
	Segment Segment

	// Value is the ratio itself.
	Value float64

	// Label shows the function symbol and its value.
	Label Label

	// Ref is an optional reference segment and RefLabel its caption.
	// Only the cosecant has one: the vertical line marking y = 1.0.
	Ref      *Segment
	RefLabel *Label
}

// FormatValue formats a ratio with two decimals. Non-finite values are
// rendered as "∞", "-∞" and "NaN".
func FormatValue(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func valueLabel(prefix string, fn Function, v float64, at gg.Point) Label {
	return Label{
		Text: fmt.Sprintf("%s%s(θ) = %s", prefix, fn, FormatValue(v)),
		At:   at,
	}
}

// CosineOf returns the horizontal cosine segment along the X axis.
func CosineOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	cos := math.Cos(theta)
	x := o.X + cos*f.XAxisLength()
	return Construction{
		Function: Cosine,
		Segment:  Segment{From: o, To: gg.Pt(x, o.Y)},
		Value:    cos,
		Label:    valueLabel("", Cosine, cos, gg.Pt(x, f.Height())),
	}
}

// SineOf returns the vertical sine segment rising from the end of the
// cosine segment to the unit arc.
func SineOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	sin := math.Sin(theta)
	length := sin * f.YAxisLength()
	x := o.X + math.Cos(theta)*f.XAxisLength()
	y := o.Y - length
	return Construction{
		Function: Sine,
		Segment:  Segment{From: gg.Pt(x, o.Y), To: gg.Pt(x, y)},
		Value:    sin,
		Label:    valueLabel(" ", Sine, sin, gg.Pt(x, y+length/2)),
	}
}

// TangentOf returns the vertical tangent segment standing on the X axis
// at 1.0.
func TangentOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	tan := math.Tan(theta)
	length := tan * f.YAxisLength()
	x := f.UnitX()
	y := o.Y - length
	return Construction{
		Function: Tangent,
		Segment:  Segment{From: gg.Pt(x, o.Y), To: gg.Pt(x, y)},
		Value:    tan,
		Label:    valueLabel(" ", Tangent, tan, gg.Pt(x, y+length/2)),
	}
}

// SecantOf returns the segment from the origin to the top of the tangent
// line: x is always 1.0, y is the tangent.
func SecantOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	sec := 1 / math.Cos(theta)
	end := gg.Pt(o.X+f.XAxisLength(), o.Y-math.Tan(theta)*f.YAxisLength())
	return Construction{
		Function: Secant,
		Segment:  Segment{From: o, To: end},
		Value:    sec,
		Label:    valueLabel("", Secant, sec, gg.Pt(end.X-labelInset, end.Y)),
	}
}

// CosecantOf returns the segment from the origin to the line y = 1.0: y is
// always 1.0, x is the cotangent. The reference segment drops from that
// point to the X axis.
func CosecantOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	sin := math.Sin(theta)
	csc := 1 / sin
	cot := math.Cos(theta) / sin
	end := gg.Pt(o.X+cot*f.XAxisLength(), o.Y-f.YAxisLength())
	ref := Segment{From: gg.Pt(end.X, o.Y), To: end}
	refLabel := Label{Text: "1.0 ", At: gg.Pt(end.X, o.Y-(o.Y-end.Y)/2)}
	return Construction{
		Function: Cosecant,
		Segment:  Segment{From: o, To: end},
		Value:    csc,
		Label:    valueLabel("", Cosecant, csc, gg.Pt(end.X-labelInset, end.Y)),
		Ref:      &ref,
		RefLabel: &refLabel,
	}
}

// CotangentOf returns the horizontal cotangent segment along the X axis.
func CotangentOf(theta float64, f *frame.Frame) Construction {
	o := f.Origin()
	cot := math.Cos(theta) / math.Sin(theta)
	x := o.X + cot*f.XAxisLength()
	return Construction{
		Function: Cotangent,
		Segment:  Segment{From: o, To: gg.Pt(x, o.Y)},
		Value:    cot,
		Label:    valueLabel("", Cotangent, cot, gg.Pt(x, f.Height())),
	}
}

// Of returns the construction of fn.
func Of(fn Function, theta float64, f *frame.Frame) Construction {
	switch fn {
	case Cosine:
		return CosineOf(theta, f)
	case Sine:
		return SineOf(theta, f)
	case Tangent:
		return TangentOf(theta, f)
	case Secant:
		return SecantOf(theta, f)
	case Cosecant:
		return CosecantOf(theta, f)
	case Cotangent:
		return CotangentOf(theta, f)
	default:
		panic("trig: unknown function " + strconv.Itoa(int(fn)))
	}
}
