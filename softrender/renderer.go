// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package softrender provides a CPU reference implementation of the
// pen engine's host Renderer interface.
//
// Layers are rasterized from their serialized SVG content with
// srwiley/oksvg and srwiley/rasterx onto RGBA buffers, tracked with a
// draw order and composited back-to-front. Hosts embedding the engine
// in a real runtime supply their own Renderer; softrender exists so
// the engine is usable and testable without one.
package softrender

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/gogpu/pen"
)

type layer struct {
	img   *image.RGBA
	order int
}

// Renderer rasterizes and composites the engine's SVG layers in memory.
//
// The engine itself is single-threaded, but hosts often composite from
// a render goroutine, so the layer table is guarded by a mutex.
type Renderer struct {
	mu        sync.Mutex
	width     int
	height    int
	layers    map[pen.LayerHandle]*layer
	providers map[string]func() *pen.Snapshot
	nextOrder int
	dirty     bool
}

// New creates a renderer with the given canvas size in pixels.
func New(width, height int) *Renderer {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Renderer{
		width:     width,
		height:    height,
		layers:    make(map[pen.LayerHandle]*layer),
		providers: make(map[string]func() *pen.Snapshot),
	}
}

// CreateLayer rasterizes the SVG content into a new layer, placed above
// all existing layers, and returns its handle.
func (r *Renderer) CreateLayer(svg []byte) (pen.LayerHandle, error) {
	img, err := r.rasterize(svg)
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	h := pen.LayerHandle(uuid.NewString())
	r.layers[h] = &layer{img: img, order: r.nextOrder}
	r.nextOrder++
	pen.Logger().Debug("layer created", "handle", string(h), "order", r.nextOrder-1)
	return h, nil
}

// UpdateLayer replaces a layer's content.
func (r *Renderer) UpdateLayer(h pen.LayerHandle, svg []byte) error {
	img, err := r.rasterize(svg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.layers[h]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLayer, string(h))
	}
	l.img = img
	return nil
}

// DestroyLayer releases a layer. Unknown handles are ignored.
func (r *Renderer) DestroyLayer(h pen.LayerHandle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.layers, h)
}

// RequestRedraw marks the composite as stale.
func (r *Renderer) RequestRedraw() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dirty = true
}

// Dirty reports and clears the redraw flag.
func (r *Renderer) Dirty() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	d := r.dirty
	r.dirty = false
	return d
}

// CanvasSize returns the canvas pixel dimensions.
func (r *Renderer) CanvasSize() (w, h int) {
	return r.width, r.height
}

// RegisterTarget installs the appearance provider consulted by
// SnapshotTarget for the given target.
func (r *Renderer) RegisterTarget(id string, provider func() *pen.Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[id] = provider
}

// SnapshotTarget extracts a target's current rendered appearance.
func (r *Renderer) SnapshotTarget(id string) (*pen.Snapshot, error) {
	r.mu.Lock()
	provider, ok := r.providers[id]
	r.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoProvider, id)
	}
	return provider(), nil
}

// LayerOrder returns a layer's draw order. Unknown handles report zero.
func (r *Renderer) LayerOrder(h pen.LayerHandle) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.layers[h]; ok {
		return l.order
	}
	return 0
}

// SetLayerOrder moves a layer to the given draw order.
func (r *Renderer) SetLayerOrder(h pen.LayerHandle, order int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.layers[h]; ok {
		l.order = order
		if order >= r.nextOrder {
			r.nextOrder = order + 1
		}
	}
}

// Composite merges all layers back-to-front into one image.
func (r *Renderer) Composite() *image.RGBA {
	r.mu.Lock()
	ordered := make([]*layer, 0, len(r.layers))
	for _, l := range r.layers {
		ordered = append(ordered, l)
	}
	r.mu.Unlock()
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].order < ordered[j].order
	})

	out := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	for _, l := range ordered {
		draw.Draw(out, out.Bounds(), l.img, image.Point{}, draw.Over)
	}
	return out
}

// rasterize renders SVG content onto an RGBA buffer at canvas size.
func (r *Renderer) rasterize(svg []byte) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSVG, err)
	}
	icon.SetTarget(0, 0, float64(r.width), float64(r.height))

	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	scanner := rasterx.NewScannerGV(r.width, r.height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(r.width, r.height, scanner), 1.0)
	return img, nil
}
