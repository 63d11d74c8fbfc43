package pen

import "image/color"

const (
	// defaultStepLength is the exported physical length of one stage
	// unit, in millimeters.
	defaultStepLength = 0.5

	// defaultMinStrokeWidth keeps sub-pixel strokes visible on screen.
	defaultMinStrokeWidth = 1
)

// Engine is the per-target drawing engine. The host runtime drives it
// with motion and lifecycle notifications; the operation catalog calls
// its drawing and attribute methods.
//
// Engine is not safe for concurrent use: the host delivers events one
// at a time, so no operation ever runs concurrently with another.
type Engine struct {
	mapper   Mapper
	renderer Renderer
	surfaces *surfaceManager
	store    *Store

	stepLength float64
	prompt     func() bool
}

// NewEngine creates an engine for a stage of the given logical size,
// pushing all drawing through the host renderer r.
func NewEngine(width, height float64, r Renderer, opts ...Option) *Engine {
	if r == nil {
		panic("pen: nil renderer")
	}
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	surfaces := &surfaceManager{renderer: r, minStrokeWidth: o.minStrokeWidth}
	return &Engine{
		mapper:     Mapper{Width: width, Height: height},
		renderer:   r,
		surfaces:   surfaces,
		store:      newStore(width, height, surfaces),
		stepLength: o.stepLength,
		prompt:     o.prompt,
	}
}

// Store exposes the engine's pen-state store.
func (e *Engine) Store() *Store { return e.store }

// PenDown puts the target's pen down in the given mode and opens a new
// path at its current position. A path already open is finished first.
func (e *Engine) PenDown(t Target, penType PenType) error {
	st, err := e.store.Get(t)
	if err != nil {
		return err
	}
	st.penType = penType
	e.startPath(st, t)
	return e.surfaces.push(st)
}

// PenUp lifts the target's pen, finishing the open path. Targets with
// no pen state are ignored.
func (e *Engine) PenUp(t Target) error {
	st := e.store.Lookup(t)
	if st == nil || st.path == nil {
		return nil
	}
	e.finishPath(st)
	return e.surfaces.push(st)
}

// Plot commits the current plotter preview: the provisional tip stops
// being provisional and becomes a permanent node. The next motion event
// starts a fresh preview from the committed node. Plot is a no-op in
// trail mode or when no preview exists.
func (e *Engine) Plot(t Target) {
	st := e.store.Lookup(t)
	if st == nil || st.penType != Plotter || st.refPoint == nil {
		return
	}
	Logger().Debug("plot committed", "target", t.ID(), "at", *st.refPoint)
	st.refPoint = nil
}

// Clear finishes any open path and removes all recorded content from
// the target's drawing surface.
func (e *Engine) Clear(t Target) error {
	st := e.store.Lookup(t)
	if st == nil {
		return nil
	}
	e.finishPath(st)
	st.doc.Clear()
	return e.surfaces.push(st)
}

// ClearAll clears every target's drawing surface.
func (e *Engine) ClearAll() error {
	var firstErr error
	e.store.Each(func(id string, st *PenState) {
		e.finishPath(st)
		st.doc.Clear()
		if err := e.surfaces.push(st); err != nil && firstErr == nil {
			firstErr = err
		}
	})
	return firstErr
}

// SetStrokeColor sets the target's ink color, restarting any open path
// so a single stroke style applies per path.
func (e *Engine) SetStrokeColor(t Target, c color.RGBA) error {
	return e.setAttribute(t, func(a *Attributes) { a.StrokeColor = c })
}

// StrokeColor returns the target's ink color.
func (e *Engine) StrokeColor(t Target) color.RGBA {
	if st := e.store.Lookup(t); st != nil {
		return st.attrs.StrokeColor
	}
	return DefaultAttributes().StrokeColor
}

// SetStrokeOpacity sets the target's ink opacity in [0, 1].
func (e *Engine) SetStrokeOpacity(t Target, opacity float64) error {
	return e.setAttribute(t, func(a *Attributes) { a.StrokeOpacity = clamp01(opacity) })
}

// StrokeOpacity returns the target's ink opacity.
func (e *Engine) StrokeOpacity(t Target) float64 {
	if st := e.store.Lookup(t); st != nil {
		return st.attrs.StrokeOpacity
	}
	return DefaultAttributes().StrokeOpacity
}

// SetDiameter sets the target's stroke diameter in stage length units.
func (e *Engine) SetDiameter(t Target, d float64) error {
	return e.setAttribute(t, func(a *Attributes) { a.Diameter = max(d, 0) })
}

// Diameter returns the target's stroke diameter.
func (e *Engine) Diameter(t Target) float64 {
	if st := e.store.Lookup(t); st != nil {
		return st.attrs.Diameter
	}
	return DefaultAttributes().Diameter
}

// SetFillColor sets the fill color applied to closed paths.
func (e *Engine) SetFillColor(t Target, c color.RGBA) error {
	return e.setAttribute(t, func(a *Attributes) { a.FillColor = c })
}

// FillColor returns the target's fill color.
func (e *Engine) FillColor(t Target) color.RGBA {
	if st := e.store.Lookup(t); st != nil {
		return st.attrs.FillColor
	}
	return DefaultAttributes().FillColor
}

// SetFillOpacity sets the fill opacity in [0, 1]. Zero disables filling.
func (e *Engine) SetFillOpacity(t Target, opacity float64) error {
	return e.setAttribute(t, func(a *Attributes) { a.FillOpacity = clamp01(opacity) })
}

// FillOpacity returns the target's fill opacity.
func (e *Engine) FillOpacity(t Target) float64 {
	if st := e.store.Lookup(t); st != nil {
		return st.attrs.FillOpacity
	}
	return DefaultAttributes().FillOpacity
}

// SetLineShape selects the geometry of subsequently drawn segments.
// Unlike stroke and fill attributes, a shape change does not restart an
// open path.
func (e *Engine) SetLineShape(t Target, s LineShape) error {
	st, err := e.store.Get(t)
	if err != nil {
		return err
	}
	st.shape = s
	return nil
}

// LineShape returns the target's segment geometry.
func (e *Engine) LineShape(t Target) LineShape {
	if st := e.store.Lookup(t); st != nil {
		return st.shape
	}
	return Straight
}

// setAttribute applies a stroke or fill attribute change. A change
// while a path is open restarts the path at the current position so
// the new attributes apply to the new path only.
func (e *Engine) setAttribute(t Target, apply func(*Attributes)) error {
	st, err := e.store.Get(t)
	if err != nil {
		return err
	}
	apply(&st.attrs)
	if st.path == nil {
		return nil
	}
	e.startPath(st, t)
	return e.surfaces.push(st)
}

// LayerOrder returns the draw order of the target's pen layer.
func (e *Engine) LayerOrder(t Target) (int, error) {
	st := e.store.Lookup(t)
	if st == nil {
		return 0, ErrUnknownTarget
	}
	return e.renderer.LayerOrder(st.layer), nil
}

// SetLayerOrder moves the target's pen layer to the given draw order.
func (e *Engine) SetLayerOrder(t Target, order int) error {
	st := e.store.Lookup(t)
	if st == nil {
		return ErrUnknownTarget
	}
	e.renderer.SetLayerOrder(st.layer, order)
	e.renderer.RequestRedraw()
	return nil
}

// ChangeLayerOrder moves the target's pen layer by a relative amount.
func (e *Engine) ChangeLayerOrder(t Target, delta int) error {
	st := e.store.Lookup(t)
	if st == nil {
		return ErrUnknownTarget
	}
	e.renderer.SetLayerOrder(st.layer, e.renderer.LayerOrder(st.layer)+delta)
	e.renderer.RequestRedraw()
	return nil
}

// SetStepLength sets the physical length, in millimeters, of one stage
// unit in exported documents.
func (e *Engine) SetStepLength(mm float64) {
	if mm > 0 {
		e.stepLength = mm
	}
}

// StepLength returns the configured millimeters per stage unit.
func (e *Engine) StepLength() float64 { return e.stepLength }

// TargetCreated notifies the engine of a new target. When the target
// was cloned from a source with existing pen state, the state is
// deep-copied; a source drawing a trail keeps drawing through its
// clone, which opens its own path at the clone's position.
func (e *Engine) TargetCreated(t, source Target) error {
	if source == nil || e.store.Lookup(source) == nil {
		return nil
	}
	st, err := e.store.CloneInto(t, source)
	if err != nil {
		return err
	}
	if src := e.store.Lookup(source); src.path != nil && src.penType == Trail {
		e.startPath(st, t)
	}
	return e.surfaces.push(st)
}

// TargetRemoved releases the target's layer and drops its state.
func (e *Engine) TargetRemoved(t Target) {
	e.store.Destroy(t)
}

// Shutdown releases every target's layer during runtime teardown.
func (e *Engine) Shutdown() {
	var ids []string
	e.store.Each(func(id string, st *PenState) {
		e.surfaces.destroy(st)
		ids = append(ids, id)
	})
	for _, id := range ids {
		delete(e.store.states, id)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
