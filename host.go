package pen

import "image"

// LayerHandle is an opaque binding to a host-rendered image layer.
// Handles are issued by the Renderer and owned by one target's state.
type LayerHandle string

// Target is the movable, stylable entity whose motion drives drawing.
// The host runtime implements it; the engine keys all per-target state
// by ID and reads the current stage-space position when extending or
// restarting a path.
type Target interface {
	// ID returns a stable identity for the target's lifetime.
	ID() string

	// Position returns the target's stage-space position
	// (origin at stage center, y increasing upward).
	Position() (x, y float64)
}

// Snapshot is a target's current rendered appearance, extracted by the
// host renderer for stamping.
type Snapshot struct {
	// Image is the off-screen pixel buffer of the target's appearance.
	Image image.Image

	// X, Y, W, H place the appearance on the host canvas, in physical
	// canvas pixels.
	X, Y, W, H float64

	// Opacity is the target's effective opacity in [0, 1], derived from
	// its transparency effect.
	Opacity float64
}

// Renderer is the host platform's rendering surface. The engine only
// talks to the host through this interface: layers are created from
// serialized SVG content and updated wholesale after every mutation.
type Renderer interface {
	// CreateLayer creates an image-backed visual layer from serialized
	// SVG content and returns its handle.
	CreateLayer(svg []byte) (LayerHandle, error)

	// UpdateLayer replaces an existing layer's content.
	UpdateLayer(h LayerHandle, svg []byte) error

	// DestroyLayer releases a layer. Unknown handles are ignored.
	DestroyLayer(h LayerHandle)

	// RequestRedraw asks the host to repaint composited layers.
	RequestRedraw()

	// CanvasSize returns the stage's native pixel dimensions.
	CanvasSize() (w, h int)

	// SnapshotTarget extracts a target's current rendered appearance.
	SnapshotTarget(id string) (*Snapshot, error)

	// LayerOrder returns a layer's draw order. Higher draws later.
	LayerOrder(h LayerHandle) int

	// SetLayerOrder moves a layer to the given draw order.
	SetLayerOrder(h LayerHandle, order int)
}
