package raster

import "github.com/gogpu/gg"

// rect is an axis-aligned clip rectangle.
type rect struct {
	minX, minY, maxX, maxY float64
}

// clipLine clips the segment p0-p1 to r using Liang-Barsky. It reports
// false when no part of the segment lies inside r.
func clipLine(p0, p1 gg.Point, r rect) (gg.Point, gg.Point, bool) {
	dx := p1.X - p0.X
	dy := p1.Y - p0.Y
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, p0.X - r.minX},
		{dx, r.maxX - p0.X},
		{-dy, p0.Y - r.minY},
		{dy, r.maxY - p0.Y},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return p0, p1, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return p0, p1, false
			}
			if t > t0 {
				t0 = t
			}
		} else {
			if t < t0 {
				return p0, p1, false
			}
			if t < t1 {
				t1 = t
			}
		}
	}

	return gg.Pt(p0.X+t0*dx, p0.Y+t0*dy), gg.Pt(p0.X+t1*dx, p0.Y+t1*dy), true
}
