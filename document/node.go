package document

import "image/color"

// Style carries the stroke and fill attributes of a path node. Every
// field is always populated; defaults come from DefaultStyle.
type Style struct {
	// StrokeColor is the stroke color (alpha ignored; see StrokeOpacity).
	StrokeColor color.RGBA

	// StrokeOpacity is the stroke opacity in [0, 1].
	StrokeOpacity float64

	// StrokeWidth is the stroke diameter in surface length units.
	StrokeWidth float64

	// FillColor is the fill color (alpha ignored; see FillOpacity).
	FillColor color.RGBA

	// FillOpacity is the fill opacity in [0, 1]. Zero means unfilled.
	FillOpacity float64
}

// DefaultStyle returns a Style with default values: opaque black stroke
// of width 1, no fill.
func DefaultStyle() Style {
	return Style{
		StrokeColor:   color.RGBA{A: 255},
		StrokeOpacity: 1,
		StrokeWidth:   1,
		FillColor:     color.RGBA{A: 255},
		FillOpacity:   0,
	}
}

// Node is an element of a document's content tree.
type Node interface {
	// CloneNode returns a deep copy sharing no mutable state.
	CloneNode() Node
}

// Group is a named container of nodes, kept in insertion order.
type Group struct {
	// Name becomes the group's id attribute when serialized.
	Name  string
	Nodes []Node
}

// Append adds a node at the end of the group (topmost in z-order).
func (g *Group) Append(n Node) {
	g.Nodes = append(g.Nodes, n)
}

// Remove deletes the first occurrence of n from the group.
func (g *Group) Remove(n Node) {
	for i, c := range g.Nodes {
		if c == n {
			g.Nodes = append(g.Nodes[:i], g.Nodes[i+1:]...)
			return
		}
	}
}

// CloneNode returns a deep copy of the group and all its children.
func (g *Group) CloneNode() Node {
	c := &Group{Name: g.Name, Nodes: make([]Node, len(g.Nodes))}
	for i, n := range g.Nodes {
		c.Nodes[i] = n.CloneNode()
	}
	return c
}

// PathNode is a styled path in the content tree.
type PathNode struct {
	Path  *Path
	Style Style
}

// CloneNode returns a deep copy of the path node.
func (n *PathNode) CloneNode() Node {
	return &PathNode{Path: n.Path.Clone(), Style: n.Style}
}

// ImageNode is an embedded raster image, stored as a data URI.
type ImageNode struct {
	// Href is the image content, a base64 PNG data URI.
	Href string

	// X, Y, W, H place the image in surface coordinates.
	X, Y, W, H float64

	// Opacity is the image opacity in [0, 1].
	Opacity float64
}

// CloneNode returns a copy of the image node. The href string is
// immutable, so a shallow copy is a full copy.
func (n *ImageNode) CloneNode() Node {
	c := *n
	return &c
}
