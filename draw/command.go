// Package draw defines the abstract draw commands emitted per frame and the
// Surface interface that renders them.
//
// Commands are typed structs rather than callbacks so that a frame can be
// inspected, compared and replayed. A List holds one frame; Playback
// replays it onto any registered Surface.
//
// # Example
//
//	l := draw.NewList(600, 600)
//	l.Add(draw.ClearCommand{Color: gg.Hex("#000055")})
//	l.Add(draw.NewArrow(gg.Pt(50, 550), gg.Pt(400, 200), draw.DefaultArrowHead, stroke))
//
//	s, _ := draw.NewSurface("raster")
//	_ = l.Playback(s)
package draw

import "github.com/gogpu/gg"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear CommandType = iota // Fill the whole surface
	CmdLine                     // Stroke a straight line
	CmdArrow                    // Stroke a line with an arrow head
	CmdArc                      // Stroke a circular arc
	CmdText                     // Fill a text label
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear: "Clear",
	CmdLine:  "Line",
	CmdArrow: "Arrow",
	CmdArc:   "Arc",
	CmdText:  "Text",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// Stroke is the pen used for lines, arrows and arcs.
type Stroke struct {
	Color gg.RGBA
	Width float64
}

// Align is the horizontal alignment of text relative to its anchor.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Baseline is the vertical alignment of text relative to its anchor.
type Baseline uint8

const (
	BaselineTop Baseline = iota
	BaselineMiddle
	BaselineBottom
)

// --------------------------------------------------------------------------
// Commands
// --------------------------------------------------------------------------

// ClearCommand fills the whole surface with a color.
type ClearCommand struct {
	Color gg.RGBA
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// LineCommand strokes a straight line.
type LineCommand struct {
	From, To gg.Point
	Stroke   Stroke
}

// Type implements Command.
func (LineCommand) Type() CommandType { return CmdLine }

// ArrowCommand strokes a line from From to To plus two head strokes from To
// to each of Heads. Build it with NewArrow.
type ArrowCommand struct {
	From, To gg.Point
	Heads    [2]gg.Point
	Stroke   Stroke
}

// Type implements Command.
func (ArrowCommand) Type() CommandType { return CmdArrow }

// Lines returns the shaft followed by the two head strokes.
func (a ArrowCommand) Lines() [3]LineCommand {
	return [3]LineCommand{
		{From: a.From, To: a.To, Stroke: a.Stroke},
		{From: a.To, To: a.Heads[0], Stroke: a.Stroke},
		{From: a.To, To: a.Heads[1], Stroke: a.Stroke},
	}
}

// ArcCommand strokes a circular arc. Angles are in radians in screen space
// (increasing clockwise). A clockwise arc sweeps from Start with
// increasing angle until it reaches End; a counter-clockwise arc sweeps
// with decreasing angle.
type ArcCommand struct {
	Center           gg.Point
	Radius           float64
	Start, End       float64
	CounterClockwise bool
	Stroke           Stroke
}

// Type implements Command.
func (ArcCommand) Type() CommandType { return CmdArc }

// TextCommand fills a single line of text aligned around At.
type TextCommand struct {
	Text     string
	At       gg.Point
	Align    Align
	Baseline Baseline

	// Size is the font size in points.
	Size  float64
	Color gg.RGBA
}

// Type implements Command.
func (TextCommand) Type() CommandType { return CmdText }
