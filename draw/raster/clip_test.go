package raster

import (
	"testing"

	"github.com/gogpu/gg"
)

func TestClipLine(t *testing.T) {
	r := rect{minX: 0, minY: 0, maxX: 100, maxY: 100}

	tests := []struct {
		name   string
		p0, p1 gg.Point
		want0  gg.Point
		want1  gg.Point
		wantOK bool
	}{
		{"inside", gg.Pt(10, 10), gg.Pt(90, 90), gg.Pt(10, 10), gg.Pt(90, 90), true},
		{"crosses right", gg.Pt(50, 50), gg.Pt(150, 50), gg.Pt(50, 50), gg.Pt(100, 50), true},
		{"crosses top", gg.Pt(50, 50), gg.Pt(50, -1e16), gg.Pt(50, 50), gg.Pt(50, 0), true},
		{"spans both sides", gg.Pt(-50, 20), gg.Pt(150, 20), gg.Pt(0, 20), gg.Pt(100, 20), true},
		{"outside left", gg.Pt(-10, 10), gg.Pt(-5, 90), gg.Point{}, gg.Point{}, false},
		{"outside above", gg.Pt(10, -10), gg.Pt(90, -20), gg.Point{}, gg.Point{}, false},
		{"vertical outside", gg.Pt(150, 0), gg.Pt(150, 100), gg.Point{}, gg.Point{}, false},
		{"diagonal corner miss", gg.Pt(90, -20), gg.Pt(120, 10), gg.Point{}, gg.Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got0, got1, ok := clipLine(tt.p0, tt.p1, r)
			if ok != tt.wantOK {
				t.Fatalf("clipLine() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if got0.Distance(tt.want0) > 1e-6 || got1.Distance(tt.want1) > 1e-6 {
				t.Errorf("clipLine() = %v, %v, want %v, %v", got0, got1, tt.want0, tt.want1)
			}
		})
	}
}
