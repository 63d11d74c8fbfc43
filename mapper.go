package pen

// Mapper converts stage-space positions to drawing-surface coordinates.
// Stage space has its origin at the stage center with y increasing
// upward; surface space has its origin at the top-left corner with y
// increasing downward.
type Mapper struct {
	// Width and Height are the drawing surface dimensions.
	Width, Height float64
}

// ToSurface maps a stage-space position to surface coordinates.
func (m Mapper) ToSurface(x, y float64) Point {
	return Pt(x+m.Width/2, m.Height/2-y)
}
