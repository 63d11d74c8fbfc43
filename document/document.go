// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package document implements the vector document model accumulated by
// the pen engine: path command lists, a small node tree (paths, groups,
// embedded images) and SVG serialization.
//
// A document's coordinate space has its origin at the top-left corner
// with the y-axis pointing down, matching SVG. Content keeps insertion
// order, which is also z-order (later nodes draw on top).
package document

// Document is one target's drawing surface: a container of vector
// content sized to the stage dimensions.
type Document struct {
	// Width and Height are the surface dimensions in length units.
	Width, Height float64

	root Group
}

// New creates an empty document with the given dimensions.
func New(width, height float64) *Document {
	return &Document{Width: width, Height: height}
}

// Append adds a node on top of the existing content.
func (d *Document) Append(n Node) {
	d.root.Append(n)
}

// Remove deletes the first occurrence of n from the content.
func (d *Document) Remove(n Node) {
	d.root.Remove(n)
}

// Nodes returns the content in back-to-front order.
func (d *Document) Nodes() []Node {
	return d.root.Nodes
}

// Empty reports whether the document holds no content.
func (d *Document) Empty() bool {
	return len(d.root.Nodes) == 0
}

// Clear removes all content.
func (d *Document) Clear() {
	d.root.Nodes = nil
}

// Clone returns a deep copy of the document sharing no mutable state
// with the original.
func (d *Document) Clone() *Document {
	c := New(d.Width, d.Height)
	c.root = *d.root.CloneNode().(*Group)
	return c
}

// ContentGroup returns a named deep copy of the document's content,
// suitable for insertion into another document.
func (d *Document) ContentGroup(name string) *Group {
	g := d.root.CloneNode().(*Group)
	g.Name = name
	return g
}
