package document

// Command represents a single element of a path's command list.
type Command interface {
	isCommand()
}

// MoveTo starts a subpath at a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isCommand() {}

// LineTo draws a straight segment to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isCommand() {}

// QuadTo draws a quadratic Bezier segment with an explicit control point.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isCommand() {}

// SmoothTo draws a smooth-continuation quadratic segment. The control
// point is implicit: serialization emits an SVG "T" command, which
// reflects the previous control point (or degenerates to a line when no
// curve precedes it).
type SmoothTo struct {
	Point Point
}

func (SmoothTo) isCommand() {}

// ClosePath closes the current subpath back to its starting point.
type ClosePath struct{}

func (ClosePath) isCommand() {}

// EndPoint returns the endpoint of a drawing command and whether the
// command has one (ClosePath does not).
func EndPoint(c Command) (Point, bool) {
	switch cmd := c.(type) {
	case MoveTo:
		return cmd.Point, true
	case LineTo:
		return cmd.Point, true
	case QuadTo:
		return cmd.Point, true
	case SmoothTo:
		return cmd.Point, true
	}
	return Point{}, false
}
