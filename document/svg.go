// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package document

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteOption configures SVG serialization.
type WriteOption func(*writeOptions)

type writeOptions struct {
	minStrokeWidth float64
	physicalScale  float64
	physicalUnit   string
}

// WithMinStrokeWidth clamps every serialized stroke width to a floor
// value. This is a display-only adjustment: zero- or sub-pixel strokes
// stay visible on screen without changing the stored style.
func WithMinStrokeWidth(w float64) WriteOption {
	return func(o *writeOptions) {
		o.minStrokeWidth = w
	}
}

// WithPhysicalSize emits the root dimensions as physical lengths:
// surface units times scale, in the given unit (for example "mm").
// The viewBox keeps surface units, so content needs no rescaling.
func WithPhysicalSize(scale float64, unit string) WriteOption {
	return func(o *writeOptions) {
		o.physicalScale = scale
		o.physicalUnit = unit
	}
}

// WriteSVG serializes the document as a standalone SVG file.
func (d *Document) WriteSVG(w io.Writer, opts ...WriteOption) error {
	if _, err := w.Write(d.SVG(opts...)); err != nil {
		return fmt.Errorf("document: write svg: %w", err)
	}
	return nil
}

// SVG returns the serialized document as a byte slice.
func (d *Document) SVG(opts ...WriteOption) []byte {
	sw := &svgWriter{}
	for _, opt := range opts {
		opt(&sw.opts)
	}
	sw.writeHeader(d)
	sw.writeNodes(d.Nodes())
	sw.printf("</svg>\n")
	return []byte(sw.b.String())
}

type svgWriter struct {
	b    strings.Builder
	opts writeOptions
}

func (sw *svgWriter) printf(format string, args ...any) {
	fmt.Fprintf(&sw.b, format, args...)
}

func (sw *svgWriter) writeHeader(d *Document) {
	sw.printf(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	w, h := fnum(d.Width), fnum(d.Height)
	dw, dh := w, h
	if sw.opts.physicalScale > 0 {
		dw = fnum(d.Width*sw.opts.physicalScale) + sw.opts.physicalUnit
		dh = fnum(d.Height*sw.opts.physicalScale) + sw.opts.physicalUnit
	}
	sw.printf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		dw, dh, w, h)
}

func (sw *svgWriter) writeNodes(nodes []Node) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *Group:
			if node.Name != "" {
				sw.printf("<g id=\"%s\">\n", escape(node.Name))
			} else {
				sw.printf("<g>\n")
			}
			sw.writeNodes(node.Nodes)
			sw.printf("</g>\n")
		case *PathNode:
			sw.writePath(node)
		case *ImageNode:
			sw.printf(`<image x="%s" y="%s" width="%s" height="%s" opacity="%s" xlink:href="%s"/>`+"\n",
				fnum(node.X), fnum(node.Y), fnum(node.W), fnum(node.H),
				fnum(node.Opacity), escape(node.Href))
		}
	}
}

func (sw *svgWriter) writePath(n *PathNode) {
	s := n.Style
	width := s.StrokeWidth
	if width < sw.opts.minStrokeWidth {
		width = sw.opts.minStrokeWidth
	}

	fill := "none"
	if s.FillOpacity > 0 {
		fill = rgb(s.FillColor.R, s.FillColor.G, s.FillColor.B)
	}

	sw.printf(`<path d="%s" stroke="%s" stroke-opacity="%s" stroke-width="%s" fill="%s"`,
		PathData(n.Path),
		rgb(s.StrokeColor.R, s.StrokeColor.G, s.StrokeColor.B),
		fnum(s.StrokeOpacity), fnum(width), fill)
	if s.FillOpacity > 0 {
		sw.printf(` fill-opacity="%s"`, fnum(s.FillOpacity))
	}
	sw.printf(` stroke-linecap="round" stroke-linejoin="round"/>` + "\n")
}

// PathData encodes a path's command list as an SVG path data string.
func PathData(p *Path) string {
	var b strings.Builder
	for i, c := range p.Commands() {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch cmd := c.(type) {
		case MoveTo:
			b.WriteString("M " + coords(cmd.Point))
		case LineTo:
			b.WriteString("L " + coords(cmd.Point))
		case QuadTo:
			b.WriteString("Q " + coords(cmd.Control) + " " + coords(cmd.Point))
		case SmoothTo:
			b.WriteString("T " + coords(cmd.Point))
		case ClosePath:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func coords(p Point) string {
	return fnum(p.X) + " " + fnum(p.Y)
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rgb(r, g, b uint8) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}

func escape(s string) string {
	var b strings.Builder
	// EscapeText only fails on a failing writer; strings.Builder never does.
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
