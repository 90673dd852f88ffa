package trig

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/trigviz/frame"
)

// Arc is a circular arc in pixel space. Angles follow gg: radians,
// measured from the positive X axis, increasing clockwise on screen.
type Arc struct {
	Center gg.Point
	Radius float64
	Start  float64
	End    float64

	// CounterClockwise sweeps from Start towards decreasing angles.
	CounterClockwise bool
}

// UnitArc returns the quarter circle of radius 1.0 spanning the first
// quadrant, drawn from the top of the Y axis to the X axis.
func UnitArc(f *frame.Frame) Arc {
	return Arc{
		Center: f.Origin(),
		Radius: f.ArcRadius(),
		Start:  1.5 * math.Pi,
		End:    0,
	}
}

// Indicator is the geometry showing the angle itself: a ray from the
// origin to the unit arc, a small arc at the first tick and a label.
type Indicator struct {
	Angle   float64
	Degrees int
	Ray     Segment
	Arc     Arc
	Label   Label
}

// Degrees converts radians to whole degrees, rounding down.
func Degrees(theta float64) int {
	return int(math.Floor(theta / RadiansPerDegree))
}

// IndicatorOf returns the angle indicator for theta.
func IndicatorOf(theta float64, f *frame.Frame) Indicator {
	o := f.Origin()
	tip := gg.Pt(
		o.X+math.Cos(theta)*f.XAxisLength(),
		o.Y-math.Sin(theta)*f.YAxisLength(),
	)
	deg := Degrees(theta)
	return Indicator{
		Angle:   theta,
		Degrees: deg,
		Ray:     Segment{From: o, To: tip},
		Arc: Arc{
			Center:           o,
			Radius:           f.TickSpacingX(),
			Start:            0,
			End:              -theta,
			CounterClockwise: true,
		},
		Label: Label{
			Text: fmt.Sprintf("θ = %s (%d°)", FormatValue(theta), deg),
			At:   gg.Pt(o.X+f.TickSpacingX(), o.Y-f.TickSpacingY()/2),
		},
	}
}
