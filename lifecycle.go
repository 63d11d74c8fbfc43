package pen

import "github.com/gogpu/pen/document"

// startPath opens a new path at the target's current mapped position,
// snapshotting the state's stroke and fill attributes. Any open path is
// finished first, so start doubles as the restart used on attribute
// changes.
func (e *Engine) startPath(st *PenState, t Target) {
	e.finishPath(st)

	pos := e.mapper.ToSurface(t.Position())
	st.path = document.NewPath()
	Edit(st.path).MoveTo(pos)
	st.node = &document.PathNode{Path: st.path, Style: st.attrs.style()}
	st.doc.Append(st.node)
	Logger().Debug("path started", "at", pos)
}

// extendPath appends one segment to the open path, dispatching on the
// state's line shape.
func (e *Engine) extendPath(st *PenState, pt Point) {
	b := Edit(st.path)
	switch st.shape {
	case Curve:
		b.CurveTo(pt)
	default:
		b.LineTo(pt)
	}
}

// finishPath closes out the open path, if any. A pending provisional
// command is retracted first. A path that never produced visible ink
// (one command or fewer) is removed from the surface instead of being
// persisted; otherwise the close-detection heuristic runs and the path
// commits into the drawing surface as-is.
func (e *Engine) finishPath(st *PenState) {
	if st.path == nil {
		return
	}
	if st.refPoint != nil {
		st.path.PopTip()
		st.refPoint = nil
	}
	if st.path.Len() <= 1 {
		st.doc.Remove(st.node)
	} else if Edit(st.path).Close() {
		Logger().Debug("path closed", "commands", st.path.Len())
	}
	st.path = nil
	st.node = nil
}
