package pen

// Moved is the host's motion notification, delivered once per position
// change. Targets with the pen up are ignored.
//
// Forced motion (the target was dragged or teleported rather than moved
// by a script) never draws a connecting segment: the open path finishes
// and a new one starts at the new location, so no line renders across
// the jump.
//
// In plotter mode each motion event replaces the previous provisional
// segment with one ending at the new position, giving a rubber-band
// preview of where the next committed node would land. In trail mode
// every segment is permanent.
func (e *Engine) Moved(t Target, oldX, oldY float64, forced bool) error {
	st := e.store.Lookup(t)
	if st == nil || st.path == nil {
		return nil
	}

	if forced {
		e.startPath(st, t)
		return e.surfaces.push(st)
	}

	pos := e.mapper.ToSurface(t.Position())
	if st.penType == Plotter {
		if st.refPoint != nil {
			st.path.PopTip()
			st.refPoint = nil
		}
		e.extendPath(st, pos)
		st.refPoint = &pos
	} else {
		e.extendPath(st, pos)
	}
	return e.surfaces.push(st)
}
