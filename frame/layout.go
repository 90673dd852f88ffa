package frame

// Layout holds the startup layout parameters of the diagram.
// All lengths are in pixels except TickIncrement, which is a fraction
// of the unit square.
type Layout struct {
	// Width and Height are the canvas dimensions.
	Width, Height int

	// Padding is the distance from each canvas edge to the axes.
	Padding float64

	// TickIncrement is the unit-square distance between ticks (e.g. 0.2).
	// It must divide 1.0 evenly.
	TickIncrement float64

	// TickSize is the length of a tick mark measured from the axis line.
	TickSize float64

	// TickSpacingX and TickSpacingY are the pixel distances between
	// consecutive ticks on each axis.
	TickSpacingX, TickSpacingY float64
}

// DefaultLayout returns a 600x600 canvas with 50px padding and ticks every
// 0.2 units spaced 100px apart, so one unit spans the full axis.
func DefaultLayout() Layout {
	return Layout{
		Width:         600,
		Height:        600,
		Padding:       50,
		TickIncrement: 0.2,
		TickSize:      5,
		TickSpacingX:  100,
		TickSpacingY:  100,
	}
}

// FitLayout returns a layout for the given canvas where the ticks span
// each axis exactly, so 1.0 lands on the end of both axes.
func FitLayout(width, height int, padding, increment float64) Layout {
	l := DefaultLayout()
	l.Width, l.Height = width, height
	l.Padding = padding
	l.TickIncrement = increment
	l.TickSpacingX = (float64(width) - 2*padding) * increment
	l.TickSpacingY = (float64(height) - 2*padding) * increment
	return l
}
