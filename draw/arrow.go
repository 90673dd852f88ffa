package draw

import (
	"math"

	"github.com/gogpu/gg"
)

// ArrowHead describes the two strokes at the tip of an arrow.
type ArrowHead struct {
	// Length is the length of each head stroke in pixels.
	Length float64
	// Spread is the angle between the shaft and each head stroke.
	Spread float64
}

// DefaultArrowHead is 20px long with an 18° spread.
var DefaultArrowHead = ArrowHead{Length: 20, Spread: math.Pi / 10}

// NewArrow returns the arrow from from to to. The head strokes point back
// along the shaft direction rotated by ±head.Spread.
func NewArrow(from, to gg.Point, head ArrowHead, s Stroke) ArrowCommand {
	dir := math.Atan2(to.Y-from.Y, to.X-from.X)
	return ArrowCommand{
		From: from,
		To:   to,
		Heads: [2]gg.Point{
			headPoint(to, head.Length, dir-head.Spread),
			headPoint(to, head.Length, dir+head.Spread),
		},
		Stroke: s,
	}
}

func headPoint(tip gg.Point, length, angle float64) gg.Point {
	return gg.Pt(tip.X-length*math.Cos(angle), tip.Y-length*math.Sin(angle))
}
