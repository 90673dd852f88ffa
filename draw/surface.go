package draw

import (
	"image"
	"io"

	"github.com/gogpu/gg"
)

// Surface is the interface that rendering targets implement. A surface
// receives the primitive operations a List decomposes into and draws them
// in call order; later calls paint over earlier ones.
//
// Surfaces are created via the registry using NewSurface(name) and
// registered via Register() in their init() functions.
//
// # Implementation Contract
//
// Each surface must:
//  1. Accept Begin before any drawing and End after the last one
//  2. Tolerate non-finite coordinates without panicking
//  3. Treat every call as self-contained (no style carried between calls)
type Surface interface {
	// Begin prepares the surface for a frame of the given size.
	Begin(width, height int) error

	// End finishes the frame. Output methods are valid afterwards.
	End() error

	// Clear fills the whole surface with c.
	Clear(c gg.RGBA)

	// StrokeLine strokes a straight line.
	StrokeLine(from, to gg.Point, s Stroke)

	// StrokeArc strokes a circular arc with the sweep rules of ArcCommand.
	StrokeArc(center gg.Point, radius, start, end float64, counterClockwise bool, s Stroke)

	// FillText draws a line of text aligned around at.
	FillText(text string, at gg.Point, size float64, align Align, baseline Baseline, c gg.RGBA)
}

// ImageSurface extends Surface with access to the rendered image.
type ImageSurface interface {
	Surface

	// Image returns the rendered frame. Valid after End.
	Image() image.Image
}

// WriterSurface extends Surface with the ability to write its output.
type WriterSurface interface {
	Surface

	// WriteTo writes the rendered frame to w. Valid after End.
	WriteTo(w io.Writer) (int64, error)
}

// FileSurface extends Surface with the ability to save its output.
type FileSurface interface {
	Surface

	// SaveToFile saves the rendered frame to path. Valid after End.
	SaveToFile(path string) error
}
