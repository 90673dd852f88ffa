package draw

// List is the ordered command sequence of one frame. Order is paint order:
// each command is drawn over the ones before it.
type List struct {
	width, height int
	commands      []Command
}

// NewList returns an empty list for a canvas of the given size.
func NewList(width, height int) *List {
	return &List{width: width, height: height}
}

// Width returns the canvas width.
func (l *List) Width() int { return l.width }

// Height returns the canvas height.
func (l *List) Height() int { return l.height }

// Len returns the number of commands.
func (l *List) Len() int { return len(l.commands) }

// Commands returns the recorded commands.
func (l *List) Commands() []Command { return l.commands }

// Add appends commands in order.
func (l *List) Add(cmds ...Command) {
	l.commands = append(l.commands, cmds...)
}

// Types returns the type of each command, in order.
func (l *List) Types() []CommandType {
	types := make([]CommandType, len(l.commands))
	for i, c := range l.commands {
		types[i] = c.Type()
	}
	return types
}

// Playback replays the list onto s, bracketed by Begin and End.
func (l *List) Playback(s Surface) error {
	if err := s.Begin(l.width, l.height); err != nil {
		return err
	}

	for _, cmd := range l.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			s.Clear(c.Color)
		case LineCommand:
			s.StrokeLine(c.From, c.To, c.Stroke)
		case ArrowCommand:
			for _, line := range c.Lines() {
				s.StrokeLine(line.From, line.To, line.Stroke)
			}
		case ArcCommand:
			s.StrokeArc(c.Center, c.Radius, c.Start, c.End, c.CounterClockwise, c.Stroke)
		case TextCommand:
			s.FillText(c.Text, c.At, c.Size, c.Align, c.Baseline, c.Color)
		}
	}

	return s.End()
}
