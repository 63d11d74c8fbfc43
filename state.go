package pen

import (
	"fmt"

	"github.com/jinzhu/copier"

	"github.com/gogpu/pen/document"
)

// PenState is one target's drawing state. It is created lazily on the
// first pen operation, deep-copied when the target is cloned and
// destroyed with the target.
//
// Invariant: path is non-nil iff the pen is down. refPoint is non-nil
// only while a provisional command sits at the tip of the open path.
type PenState struct {
	penType PenType
	shape   LineShape
	attrs   Attributes

	// path is the open path, nil while the pen is up. node is the
	// document node holding it while open.
	path *document.Path
	node *document.PathNode

	// doc is the target's drawing surface.
	doc *document.Document

	// refPoint marks the provisional command at the path tip, if any.
	refPoint *Point

	// layer binds the state to its host-rendered image layer.
	layer LayerHandle
}

// PenType returns the state's pen mode.
func (st *PenState) PenType() PenType { return st.penType }

// Attributes returns the state's current drawing attributes.
func (st *PenState) Attributes() Attributes { return st.attrs }

// Document returns the state's drawing surface.
func (st *PenState) Document() *document.Document { return st.doc }

// Down reports whether the pen is currently down.
func (st *PenState) Down() bool { return st.path != nil }

// Store owns all per-target pen state, keyed by target identity.
type Store struct {
	states   map[string]*PenState
	surfaces *surfaceManager
	width    float64
	height   float64
}

func newStore(width, height float64, surfaces *surfaceManager) *Store {
	return &Store{
		states:   make(map[string]*PenState),
		surfaces: surfaces,
		width:    width,
		height:   height,
	}
}

// Get returns the target's state, lazily constructing default state
// with an attached drawing surface and host layer on first use.
func (s *Store) Get(t Target) (*PenState, error) {
	if st, ok := s.states[t.ID()]; ok {
		return st, nil
	}
	st := &PenState{
		attrs: DefaultAttributes(),
		doc:   document.New(s.width, s.height),
	}
	layer, err := s.surfaces.create(st.doc)
	if err != nil {
		return nil, fmt.Errorf("pen: create layer for %q: %w", t.ID(), err)
	}
	st.layer = layer
	s.states[t.ID()] = st
	Logger().Info("pen state created", "target", t.ID(), "layer", string(layer))
	return st, nil
}

// Lookup returns the target's state without creating one. Read-only
// operations use it so querying attributes never allocates a layer.
func (s *Store) Lookup(t Target) *PenState {
	return s.states[t.ID()]
}

// CloneInto deep-copies the source target's state into a new entry for
// dst, sharing no mutable document between them. The clone receives
// its own surface copy and its own host layer, and starts with the
// pen up regardless of the source's pen position.
func (s *Store) CloneInto(dst, src Target) (*PenState, error) {
	from, ok := s.states[src.ID()]
	if !ok {
		return nil, ErrUnknownTarget
	}

	st := &PenState{
		penType: from.penType,
		shape:   from.shape,
		doc:     from.doc.Clone(),
	}
	if err := copier.CopyWithOption(&st.attrs, &from.attrs, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("pen: clone attributes: %w", err)
	}
	// The open path and its reference point are transient drawing
	// state and stay with the source. An open path that has produced
	// no ink yet is dropped from the copy, the same way finishPath
	// discards it, rather than surviving as a stray single-command
	// node.
	if from.path != nil && from.path.Len() <= 1 {
		for i, n := range from.doc.Nodes() {
			if n == from.node {
				st.doc.Remove(st.doc.Nodes()[i])
				break
			}
		}
	}

	layer, err := s.surfaces.create(st.doc)
	if err != nil {
		return nil, fmt.Errorf("pen: create layer for clone %q: %w", dst.ID(), err)
	}
	st.layer = layer
	s.states[dst.ID()] = st
	Logger().Info("pen state cloned", "source", src.ID(), "target", dst.ID())
	return st, nil
}

// Destroy releases the target's layer handle and drops the state entry.
func (s *Store) Destroy(t Target) {
	st, ok := s.states[t.ID()]
	if !ok {
		return
	}
	s.surfaces.destroy(st)
	delete(s.states, t.ID())
	Logger().Info("pen state destroyed", "target", t.ID())
}

// Each calls fn for every stored state.
func (s *Store) Each(fn func(id string, st *PenState)) {
	for id, st := range s.states {
		fn(id, st)
	}
}
