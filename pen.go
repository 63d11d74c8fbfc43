package pen

import (
	"image/color"

	"github.com/gogpu/pen/document"
)

// PenType selects how motion events extend the current path.
type PenType uint8

const (
	// Trail extends the path permanently on every motion event.
	Trail PenType = iota

	// Plotter previews the next node on motion; an explicit Plot call
	// commits it.
	Plotter
)

// LineShape selects the geometry of newly drawn segments.
type LineShape uint8

const (
	// Straight draws line segments.
	Straight LineShape = iota

	// Curve draws smooth quadratic segments.
	Curve
)

// Attributes is the per-target drawing style. Every field is always
// populated; partial attribute bags are not representable.
type Attributes struct {
	// StrokeColor is the ink color. Alpha is carried separately in
	// StrokeOpacity.
	StrokeColor color.RGBA

	// StrokeOpacity is the ink opacity in [0, 1].
	StrokeOpacity float64

	// Diameter is the stroke width in stage length units.
	Diameter float64

	// FillColor fills closed paths when FillOpacity is above zero.
	FillColor color.RGBA

	// FillOpacity is the fill opacity in [0, 1]. Zero disables filling.
	FillOpacity float64
}

// DefaultAttributes returns the attributes a target draws with before
// any pen operation configured it: opaque black ink of diameter 1,
// no fill.
func DefaultAttributes() Attributes {
	return Attributes{
		StrokeColor:   color.RGBA{A: 255},
		StrokeOpacity: 1,
		Diameter:      1,
		FillColor:     color.RGBA{A: 255},
		FillOpacity:   0,
	}
}

// style snapshots the attributes into a document style. Called once at
// path start so that one stroke style applies per path.
func (a Attributes) style() document.Style {
	return document.Style{
		StrokeColor:   a.StrokeColor,
		StrokeOpacity: a.StrokeOpacity,
		StrokeWidth:   a.Diameter,
		FillColor:     a.FillColor,
		FillOpacity:   a.FillOpacity,
	}
}
