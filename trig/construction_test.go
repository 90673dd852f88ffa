package trig

import (
	"math"
	"strings"
	"testing"

	"github.com/gogpu/trigviz/frame"
	"gonum.org/v1/gonum/floats/scalar"
)

var testFrame = frame.MustNew(frame.DefaultLayout())

var allFunctions = []Function{Cosine, Sine, Tangent, Secant, Cosecant, Cotangent}

func TestFunction_String(t *testing.T) {
	tests := []struct {
		fn   Function
		want string
	}{
		{Cosine, "Cos"},
		{Sine, "Sin"},
		{Tangent, "Tan"},
		{Secant, "Sec"},
		{Cosecant, "Csc"},
		{Cotangent, "Cot"},
		{Function(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.fn.String(); got != tt.want {
			t.Errorf("Function(%d).String() = %q, want %q", tt.fn, got, tt.want)
		}
	}
}

func TestValues_QuarterPi(t *testing.T) {
	theta := math.Pi / 4
	want := map[Function]float64{
		Cosine:    0.7071,
		Sine:      0.7071,
		Tangent:   1.0,
		Secant:    1.4142,
		Cosecant:  1.4142,
		Cotangent: 1.0,
	}

	for _, fn := range allFunctions {
		t.Run(fn.String(), func(t *testing.T) {
			got := Of(fn, theta, testFrame).Value
			if !scalar.EqualWithinAbs(got, want[fn], 1e-3) {
				t.Errorf("%s(π/4) = %v, want %v", fn, got, want[fn])
			}
		})
	}
}

func TestValues_Zero(t *testing.T) {
	exact := map[Function]float64{
		Cosine:  1,
		Sine:    0,
		Tangent: 0,
		Secant:  1,
	}
	for fn, want := range exact {
		if got := Of(fn, 0, testFrame).Value; got != want {
			t.Errorf("%s(0) = %v, want %v", fn, got, want)
		}
	}

	for _, fn := range []Function{Cosecant, Cotangent} {
		c := Of(fn, 0, testFrame)
		if !math.IsInf(c.Value, 0) {
			t.Errorf("%s(0) = %v, want ±Inf", fn, c.Value)
		}
		if !strings.Contains(c.Label.Text, "∞") {
			t.Errorf("%s(0) label = %q, want infinity", fn, c.Label.Text)
		}
		if !math.IsInf(c.Segment.To.X, 0) {
			t.Errorf("%s(0) endpoint X = %v, want ±Inf", fn, c.Segment.To.X)
		}
	}
}

func TestDegenerate_NoPanic(t *testing.T) {
	for _, theta := range []float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2, -math.Pi, math.NaN(), math.Inf(1)} {
		for _, fn := range allFunctions {
			c := Of(fn, theta, testFrame)
			if c.Label.Text == "" {
				t.Errorf("%s(%v) has empty label", fn, theta)
			}
		}
		_ = IndicatorOf(theta, testFrame)
	}
}

func TestSineSharesCosineX(t *testing.T) {
	for theta := 0.05; theta < math.Pi/2; theta += 0.05 {
		cos := CosineOf(theta, testFrame)
		sin := SineOf(theta, testFrame)
		if sin.Segment.From.X != cos.Segment.To.X || sin.Segment.To.X != cos.Segment.To.X {
			t.Errorf("θ=%v: sine x = (%v, %v), cosine end x = %v",
				theta, sin.Segment.From.X, sin.Segment.To.X, cos.Segment.To.X)
		}
	}
}

func TestSineEndsOnUnitArc(t *testing.T) {
	o := testFrame.Origin()
	for _, theta := range []float64{0.2, 0.7, 1.3} {
		end := SineOf(theta, testFrame).Segment.To
		if r := end.Distance(o); !scalar.EqualWithinAbs(r, testFrame.ArcRadius(), 1e-9) {
			t.Errorf("θ=%v: sine tip at radius %v, want %v", theta, r, testFrame.ArcRadius())
		}
		if tip := IndicatorOf(theta, testFrame).Ray.To; tip.Distance(end) > 1e-9 {
			t.Errorf("θ=%v: indicator tip %v, sine tip %v", theta, tip, end)
		}
	}
}

func TestGeometry_QuarterPi(t *testing.T) {
	theta := math.Pi / 4
	o := testFrame.Origin()
	const eps = 1e-9

	tan := TangentOf(theta, testFrame)
	if tan.Segment.From.X != testFrame.UnitX() || tan.Segment.To.X != testFrame.UnitX() {
		t.Errorf("tangent x = %v, want %v", tan.Segment.To.X, testFrame.UnitX())
	}
	if !scalar.EqualWithinAbs(tan.Segment.To.Y, o.Y-testFrame.YAxisLength(), eps) {
		t.Errorf("tangent top = %v, want %v", tan.Segment.To.Y, o.Y-testFrame.YAxisLength())
	}

	sec := SecantOf(theta, testFrame)
	if sec.Segment.From != o {
		t.Errorf("secant start = %v, want origin", sec.Segment.From)
	}
	if sec.Segment.To.X != o.X+testFrame.XAxisLength() {
		t.Errorf("secant end x = %v, want %v", sec.Segment.To.X, o.X+testFrame.XAxisLength())
	}
	if !scalar.EqualWithinAbs(sec.Segment.To.Y, tan.Segment.To.Y, eps) {
		t.Errorf("secant end y = %v, want tangent top %v", sec.Segment.To.Y, tan.Segment.To.Y)
	}

	csc := CosecantOf(theta, testFrame)
	if csc.Segment.To.Y != o.Y-testFrame.YAxisLength() {
		t.Errorf("cosecant end y = %v, want %v", csc.Segment.To.Y, o.Y-testFrame.YAxisLength())
	}
	if csc.Ref == nil || csc.RefLabel == nil {
		t.Fatal("cosecant has no reference segment")
	}
	if csc.Ref.From.X != csc.Segment.To.X || csc.Ref.From.Y != o.Y || csc.Ref.To != csc.Segment.To {
		t.Errorf("cosecant reference = %+v, want vertical drop from %v", *csc.Ref, csc.Segment.To)
	}
	if csc.RefLabel.Text != "1.0 " {
		t.Errorf("cosecant reference label = %q", csc.RefLabel.Text)
	}

	cot := CotangentOf(theta, testFrame)
	if cot.Segment.To.Y != o.Y {
		t.Errorf("cotangent end y = %v, want on X axis %v", cot.Segment.To.Y, o.Y)
	}
	if !scalar.EqualWithinAbs(cot.Segment.To.X, csc.Segment.To.X, eps) {
		t.Errorf("cotangent end x = %v, want cosecant x %v", cot.Segment.To.X, csc.Segment.To.X)
	}
}

func TestLabels(t *testing.T) {
	theta := math.Pi / 4
	tests := []struct {
		fn   Function
		want string
	}{
		{Cosine, "Cos(θ) = 0.71"},
		{Sine, " Sin(θ) = 0.71"},
		{Tangent, " Tan(θ) = 1.00"},
		{Secant, "Sec(θ) = 1.41"},
		{Cosecant, "Csc(θ) = 1.41"},
		{Cotangent, "Cot(θ) = 1.00"},
	}
	for _, tt := range tests {
		if got := Of(tt.fn, theta, testFrame).Label.Text; got != tt.want {
			t.Errorf("%s label = %q, want %q", tt.fn, got, tt.want)
		}
	}
}

func TestLabelPositions(t *testing.T) {
	theta := 0.6
	o := testFrame.Origin()

	cos := CosineOf(theta, testFrame)
	if cos.Label.At.X != cos.Segment.To.X || cos.Label.At.Y != testFrame.Height() {
		t.Errorf("cosine label at %v, want under endpoint at canvas bottom", cos.Label.At)
	}

	sin := SineOf(theta, testFrame)
	mid := (sin.Segment.From.Y + sin.Segment.To.Y) / 2
	if !scalar.EqualWithinAbs(sin.Label.At.Y, mid, 1e-9) {
		t.Errorf("sine label y = %v, want midpoint %v", sin.Label.At.Y, mid)
	}

	sec := SecantOf(theta, testFrame)
	if sec.Label.At.X != sec.Segment.To.X-50 || sec.Label.At.Y != sec.Segment.To.Y {
		t.Errorf("secant label at %v, want 50px left of %v", sec.Label.At, sec.Segment.To)
	}

	csc := CosecantOf(theta, testFrame)
	wantRefY := o.Y - testFrame.YAxisLength()/2
	if !scalar.EqualWithinAbs(csc.RefLabel.At.Y, wantRefY, 1e-9) {
		t.Errorf("cosecant reference label y = %v, want %v", csc.RefLabel.At.Y, wantRefY)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{0, "0.00"},
		{1, "1.00"},
		{0.70710678, "0.71"},
		{-2.346, "-2.35"},
		{1e16, "10000000000000000.00"},
		{math.Inf(1), "∞"},
		{math.Inf(-1), "-∞"},
		{math.NaN(), "NaN"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.v); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestOf_UnknownPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Of(unknown) did not panic")
		}
	}()
	Of(Function(42), 0, testFrame)
}
