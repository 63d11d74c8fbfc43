package pen

import "github.com/gogpu/pen/document"

// Point is a public alias for the document package's Point.
// Engine APIs and the document model share one geometry type.
type Point = document.Point

// Path is a public alias for the document package's Path.
type Path = document.Path

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return document.Pt(x, y)
}
