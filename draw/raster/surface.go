// Package raster provides a draw.Surface that renders onto a gg.Context.
//
// The surface either owns its context (created in Begin, saved as PNG) or
// draws onto a caller's context, which is how a live window hands each
// frame to it.
//
// # Degenerate geometry
//
// Frames may contain Inf or NaN coordinates when a ratio diverges. Such
// primitives are skipped. Finite lines are clipped to the canvas plus a
// small margin before they reach the rasterizer, so an almost-vertical
// tangent (length ~1e16 px) costs the same as a short one.
//
// # Example
//
//	import _ "github.com/gogpu/trigviz/draw/raster"
//
//	s, _ := draw.NewSurface("raster")
//	_ = list.Playback(s)
//	_ = s.(draw.FileSurface).SaveToFile("frame.png")
package raster

import (
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/trigviz/draw"
)

func init() {
	draw.Register("raster", func() draw.Surface {
		return NewSurface()
	})
}

// PixelOffset shifts all strokes and text by half a pixel so 1px lines
// land on pixel centers.
const PixelOffset = 0.5

// clipMargin is how far outside the canvas clipped lines may extend, so
// wide strokes and round ends are not cut at the edge.
const clipMargin = 32

// Surface renders draw commands with gg.
type Surface struct {
	dc       *gg.Context
	borrowed bool
	width    int
	height   int
	fonts    *fontCache
}

// Ensure Surface implements all output interfaces.
var (
	_ draw.Surface       = (*Surface)(nil)
	_ draw.ImageSurface  = (*Surface)(nil)
	_ draw.WriterSurface = (*Surface)(nil)
	_ draw.FileSurface   = (*Surface)(nil)
)

// NewSurface returns a surface that creates its own context in Begin.
func NewSurface() *Surface {
	return &Surface{fonts: newFontCache()}
}

// NewSurfaceFor returns a surface drawing onto dc. Begin keeps dc and
// ignores the requested size.
func NewSurfaceFor(dc *gg.Context) *Surface {
	return &Surface{
		dc:       dc,
		borrowed: true,
		width:    dc.Width(),
		height:   dc.Height(),
		fonts:    newFontCache(),
	}
}

// SetContext switches the surface to draw onto dc from the next Begin,
// keeping the loaded fonts. An owned context is closed first.
func (s *Surface) SetContext(dc *gg.Context) {
	if s.dc != nil && !s.borrowed && s.dc != dc {
		_ = s.dc.Close()
	}
	s.dc = dc
	s.borrowed = true
	s.width, s.height = dc.Width(), dc.Height()
}

// Begin prepares a frame. An owned context is reused while the size is
// unchanged.
func (s *Surface) Begin(width, height int) error {
	if s.borrowed {
		if width != s.width || height != s.height {
			logger().Debug("raster: frame size differs from target",
				"frame_w", width, "frame_h", height, "target_w", s.width, "target_h", s.height)
		}
		return nil
	}
	if s.dc == nil || width != s.width || height != s.height {
		if s.dc != nil {
			_ = s.dc.Close()
		}
		s.dc = gg.NewContext(width, height)
		s.width, s.height = width, height
		logger().Info("raster: context created", "width", width, "height", height)
	}
	return nil
}

// End finishes the frame.
func (s *Surface) End() error {
	return nil
}

// Clear fills the whole canvas.
func (s *Surface) Clear(c gg.RGBA) {
	s.dc.ClearWithColor(c)
}

// StrokeLine strokes the part of the line that falls near the canvas.
func (s *Surface) StrokeLine(from, to gg.Point, st draw.Stroke) {
	if !finite(from.X, from.Y, to.X, to.Y) {
		logger().Debug("raster: skipping non-finite line", "from", from, "to", to)
		return
	}
	from, to, ok := clipLine(from, to, s.bounds())
	if !ok {
		return
	}

	s.dc.ClearPath()
	s.dc.SetRGBA(st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	s.dc.SetLineWidth(st.Width)
	s.dc.MoveTo(from.X+PixelOffset, from.Y+PixelOffset)
	s.dc.LineTo(to.X+PixelOffset, to.Y+PixelOffset)
	if err := s.dc.Stroke(); err != nil {
		logger().Warn("raster: stroke line failed", "error", err)
	}
}

// StrokeArc strokes a circular arc. A counter-clockwise arc from a to b
// covers the same pixels as a clockwise arc from b to a. Angles of any
// magnitude are accepted.
func (s *Surface) StrokeArc(center gg.Point, radius, start, end float64, counterClockwise bool, st draw.Stroke) {
	if !finite(center.X, center.Y, radius, start, end) || radius < 0 {
		logger().Debug("raster: skipping degenerate arc", "center", center, "radius", radius, "start", start, "end", end)
		return
	}
	start, end = arcSpan(start, end, counterClockwise)

	s.dc.ClearPath()
	s.dc.SetRGBA(st.Color.R, st.Color.G, st.Color.B, st.Color.A)
	s.dc.SetLineWidth(st.Width)
	s.dc.DrawArc(center.X+PixelOffset, center.Y+PixelOffset, radius, start, end)
	if err := s.dc.Stroke(); err != nil {
		logger().Warn("raster: stroke arc failed", "error", err)
	}
}

// FillText draws text anchored at the given point.
func (s *Surface) FillText(text string, at gg.Point, size float64, align draw.Align, baseline draw.Baseline, c gg.RGBA) {
	if text == "" || !finite(at.X, at.Y, size) {
		return
	}
	face, err := s.fonts.face(size)
	if err != nil {
		logger().Warn("raster: font unavailable", "error", err)
		return
	}

	s.dc.SetFont(face)
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawStringAnchored(text, at.X+PixelOffset, at.Y+PixelOffset, anchorX(align), anchorY(baseline))
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// WriteTo writes the rendered image as PNG.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	err := s.dc.EncodePNG(cw)
	return cw.n, err
}

// SaveToFile saves the rendered image as PNG.
func (s *Surface) SaveToFile(path string) error {
	return s.dc.SavePNG(path)
}

// Context returns the underlying context, or nil before the first Begin.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Close releases the font source and, when owned, the context.
func (s *Surface) Close() error {
	s.fonts.close()
	if s.dc != nil && !s.borrowed {
		err := s.dc.Close()
		s.dc = nil
		return err
	}
	return nil
}

// arcSpan turns an arc into the clockwise span gg draws, with the start in
// [0, 2π) and a sweep of at most 2π. A sweep of 2π or more in the arc's
// own direction is a full circle; shorter sweeps wrap modulo 2π.
func arcSpan(start, end float64, counterClockwise bool) (from, to float64) {
	if counterClockwise {
		start, end = end, start
	}
	from = math.Mod(start, 2*math.Pi)
	if from < 0 {
		from += 2 * math.Pi
	}

	d := end - start
	if d >= 2*math.Pi {
		return from, from + 2*math.Pi
	}
	sweep := math.Mod(d, 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}
	return from, from + sweep
}

func (s *Surface) bounds() rect {
	return rect{
		minX: -clipMargin,
		minY: -clipMargin,
		maxX: float64(s.width) + clipMargin,
		maxY: float64(s.height) + clipMargin,
	}
}

// anchorX maps alignment to gg's horizontal anchor fraction.
func anchorX(a draw.Align) float64 {
	switch a {
	case draw.AlignCenter:
		return 0.5
	case draw.AlignRight:
		return 1
	default:
		return 0
	}
}

// anchorY maps a baseline to gg's vertical anchor fraction, where 0 puts
// the baseline on the anchor and 1 moves the text a full line height down.
func anchorY(b draw.Baseline) float64 {
	switch b {
	case draw.BaselineTop:
		return 1
	case draw.BaselineMiddle:
		return 0.5
	default:
		return 0
	}
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// countingWriter wraps an io.Writer and counts bytes written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
