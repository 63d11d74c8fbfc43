package pen

import "github.com/gogpu/pen/document"

// closeTolerance is the maximum distance, in surface units, between a
// path's first and last drawn points for the path to count as a closed
// loop.
const closeTolerance = 0.5

// PathBuilder edits one path's command list in place. All mutation of
// an open path goes through a builder so the editing rules stay in one
// place: the rendered geometry is re-derived from the full command list
// after each edit, which is acceptable because command lists stay short
// relative to redraw cost in the host renderer.
type PathBuilder struct {
	path *document.Path
}

// Edit returns a builder over an existing path.
func Edit(p *document.Path) PathBuilder {
	return PathBuilder{path: p}
}

// MoveTo creates or replaces the path's initial command.
func (b PathBuilder) MoveTo(pt Point) {
	if b.path.Len() == 0 {
		b.path.Append(document.MoveTo{Point: pt})
		return
	}
	b.path.SetAnchor(pt)
}

// LineTo appends a straight segment.
func (b PathBuilder) LineTo(pt Point) {
	b.path.Append(document.LineTo{Point: pt})
}

// CurveTo appends a smooth quadratic segment.
//
// A provisional smooth-continuation marker at the tip is replaced
// rather than duplicated: the marked vertex becomes the control point
// of a committed quadratic ending at the midpoint of the marked vertex
// and the new endpoint, and a fresh marker follows to the new endpoint.
// Consecutive curve segments therefore share one implicit control-point
// convention and render as a single smooth spline.
func (b PathBuilder) CurveTo(pt Point) {
	if tip, ok := b.path.Tip().(document.SmoothTo); ok {
		b.path.PopTip()
		b.path.Append(smoothSegment(tip.Point, pt))
	}
	b.path.Append(document.SmoothTo{Point: pt})
}

// smoothSegment builds the committed quadratic between two vertices:
// the earlier vertex is the control point, the chord midpoint the
// endpoint. Keeping this an explicit function of the last two committed
// points (rather than a side effect of inspecting the command list)
// pins down the smoothing convention in one place.
func smoothSegment(vertex, next Point) document.QuadTo {
	return document.QuadTo{Control: vertex, Point: vertex.Mid(next)}
}

// PopTip removes and returns the most recently appended command.
func (b PathBuilder) PopTip() document.Command {
	return b.path.PopTip()
}

// Close runs the close-detection heuristic and reports whether the
// path was closed.
//
// The loop test compares the first drawn point (the first segment
// endpoint, not the initial MoveTo, so a path whose very first segment
// is a curve is tolerated) against the final drawn point. Within
// tolerance, a ClosePath is appended. A trailing smooth marker directly
// preceded by a quadratic is first merged into one closing curve: the
// marker is dropped, the quadratic is retargeted to the starting point
// and the initial MoveTo is re-anchored to the merged curve's control
// point, so the loop closes without a visible seam.
func (b PathBuilder) Close() bool {
	// A single drawn segment trivially ends where it began; a loop
	// needs at least two.
	if b.path.Len() < 3 {
		return false
	}
	start, ok := b.path.FirstDrawn()
	if !ok {
		return false
	}
	last, ok := b.path.Current()
	if !ok || start.Distance(last) > closeTolerance {
		return false
	}

	cmds := b.path.Commands()
	if n := len(cmds); n >= 2 {
		if _, smooth := cmds[n-1].(document.SmoothTo); smooth {
			if q, quad := cmds[n-2].(document.QuadTo); quad {
				b.path.PopTip()
				b.path.SetTip(document.QuadTo{Control: q.Control, Point: start})
				b.path.SetAnchor(q.Control)
			}
		}
	}
	b.path.Append(document.ClosePath{})
	return true
}
