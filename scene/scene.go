// Package scene turns the visualizer state into a draw.List for one frame.
//
// The axes, ticks and unit arc do not depend on the angle, so they are
// built once in New and copied into every frame. The constructions are
// recomputed from the current angle on each Build.
//
// Paint order is fixed: background, axes, unit arc, then the long lines
// (secant, cosecant, cotangent) under the short ones (angle indicator,
// cosine, sine, tangent).
package scene

import (
	"slices"
	"strconv"

	"github.com/gogpu/gg"
	"github.com/gogpu/trigviz/angle"
	"github.com/gogpu/trigviz/draw"
	"github.com/gogpu/trigviz/frame"
	"github.com/gogpu/trigviz/trig"
)

// originLabelOffset places the "0.0" label below and left of the origin.
const originLabelOffset = 5

// Scene renders a State on a Frame.
type Scene struct {
	state  *angle.State
	frame  *frame.Frame
	style  Style
	static []draw.Command
}

// New returns a scene reading the angle from s.
func New(s *angle.State, f *frame.Frame, opts ...Option) *Scene {
	style := DefaultStyle()
	for _, opt := range opts {
		opt(&style)
	}
	sc := &Scene{
		state: s,
		frame: f,
		style: style,
	}
	sc.static = sc.buildStatic()
	return sc
}

// Style returns the style in effect.
func (sc *Scene) Style() Style { return sc.style }

// Frame returns the frame the scene is laid out on.
func (sc *Scene) Frame() *frame.Frame { return sc.frame }

// Static returns the angle-independent commands: axes, ticks, tick labels
// and the unit arc. The slice is a copy.
func (sc *Scene) Static() []draw.Command { return slices.Clone(sc.static) }

// Build returns the commands for the current angle. It only reads the
// state, so calling it twice without an update yields equal lists.
func (sc *Scene) Build() *draw.List {
	f := sc.frame
	theta := sc.state.Angle
	p := sc.style.Palette

	l := draw.NewList(f.Layout().Width, f.Layout().Height)
	l.Add(draw.ClearCommand{Color: p.Background})
	l.Add(sc.static...)

	sc.addConstruction(l, trig.SecantOf(theta, f), p.Tangent, draw.AlignRight, draw.BaselineTop)
	sc.addConstruction(l, trig.CosecantOf(theta, f), p.Cotangent, draw.AlignRight, draw.BaselineTop)
	sc.addConstruction(l, trig.CotangentOf(theta, f), p.Cotangent, draw.AlignCenter, draw.BaselineBottom)
	sc.addIndicator(l, trig.IndicatorOf(theta, f))
	sc.addConstruction(l, trig.CosineOf(theta, f), p.Sine, draw.AlignCenter, draw.BaselineBottom)
	sc.addConstruction(l, trig.SineOf(theta, f), p.Sine, draw.AlignLeft, draw.BaselineMiddle)
	sc.addConstruction(l, trig.TangentOf(theta, f), p.Tangent, draw.AlignLeft, draw.BaselineMiddle)

	return l
}

func (sc *Scene) buildStatic() []draw.Command {
	f := sc.frame
	st := sc.style
	o := f.Origin()
	axis := draw.Stroke{Color: st.Palette.Axes, Width: st.AxisWidth}
	tick := f.TickSize()

	cmds := []draw.Command{
		draw.LineCommand{From: f.YAxisEnd(), To: o, Stroke: axis},
		draw.LineCommand{From: o, To: f.XAxisEnd(), Stroke: axis},
	}

	for _, t := range f.Ticks() {
		label := strconv.FormatFloat(t.Value, 'f', 1, 64)
		cmds = append(cmds,
			draw.LineCommand{From: t.X, To: gg.Pt(t.X.X, t.X.Y+tick), Stroke: axis},
			draw.LineCommand{From: t.Y, To: gg.Pt(t.Y.X-tick, t.Y.Y), Stroke: axis},
			draw.TextCommand{
				Text:     label,
				At:       gg.Pt(t.Y.X-2*tick, t.Y.Y),
				Align:    draw.AlignRight,
				Baseline: draw.BaselineMiddle,
				Size:     st.TickFontSize,
				Color:    st.Palette.Axes,
			},
			draw.TextCommand{
				Text:     label,
				At:       gg.Pt(t.X.X, t.X.Y+2*tick),
				Align:    draw.AlignCenter,
				Baseline: draw.BaselineTop,
				Size:     st.TickFontSize,
				Color:    st.Palette.Axes,
			},
		)
	}

	cmds = append(cmds, draw.TextCommand{
		Text:     "0.0",
		At:       gg.Pt(o.X-originLabelOffset, o.Y+originLabelOffset),
		Align:    draw.AlignCenter,
		Baseline: draw.BaselineTop,
		Size:     st.TickFontSize,
		Color:    st.Palette.Axes,
	})

	arc := trig.UnitArc(f)
	cmds = append(cmds, draw.ArcCommand{
		Center:           arc.Center,
		Radius:           arc.Radius,
		Start:            arc.Start,
		End:              arc.End,
		CounterClockwise: arc.CounterClockwise,
		Stroke:           draw.Stroke{Color: st.Palette.Axes, Width: st.LineWidth},
	})
	return cmds
}

func (sc *Scene) addConstruction(l *draw.List, c trig.Construction, color gg.RGBA, align draw.Align, baseline draw.Baseline) {
	st := sc.style
	pen := draw.Stroke{Color: color, Width: st.LineWidth}

	l.Add(draw.NewArrow(c.Segment.From, c.Segment.To, st.ArrowHead, pen))
	if c.Ref != nil {
		l.Add(draw.NewArrow(c.Ref.From, c.Ref.To, st.ArrowHead, pen))
	}
	l.Add(sc.label(c.Label, color, align, baseline))
	if c.RefLabel != nil {
		l.Add(sc.label(*c.RefLabel, color, align, baseline))
	}
}

func (sc *Scene) addIndicator(l *draw.List, ind trig.Indicator) {
	st := sc.style
	p := st.Palette

	l.Add(
		draw.NewArrow(ind.Ray.From, ind.Ray.To, st.ArrowHead, draw.Stroke{Color: p.Sine, Width: st.LineWidth}),
		draw.ArcCommand{
			Center:           ind.Arc.Center,
			Radius:           ind.Arc.Radius,
			Start:            ind.Arc.Start,
			End:              ind.Arc.End,
			CounterClockwise: ind.Arc.CounterClockwise,
			Stroke:           draw.Stroke{Color: p.Axes, Width: st.LineWidth},
		},
		sc.label(ind.Label, p.Axes, draw.AlignLeft, draw.BaselineMiddle),
	)
}

func (sc *Scene) label(lb trig.Label, color gg.RGBA, align draw.Align, baseline draw.Baseline) draw.TextCommand {
	return draw.TextCommand{
		Text:     lb.Text,
		At:       lb.At,
		Align:    align,
		Baseline: baseline,
		Size:     sc.style.LabelFontSize,
		Color:    color,
	}
}
