package pen

import (
	"fmt"

	"github.com/gogpu/pen/document"
)

// surfaceManager binds drawing surfaces to host-rendered image layers.
// Layers are created once, when a state is created, and updated
// wholesale after every mutation.
type surfaceManager struct {
	renderer       Renderer
	minStrokeWidth float64
}

// create serializes the (possibly empty) document and asks the host
// renderer for a new image-backed layer.
func (m *surfaceManager) create(doc *document.Document) (LayerHandle, error) {
	return m.renderer.CreateLayer(m.serialize(doc))
}

// push re-serializes the state's document and updates its layer, then
// requests a redraw.
//
// A missing layer handle is a programming-contract violation: state
// construction guarantees a layer exists before any mutation can reach
// it, so push panics rather than papering over the broken lifecycle.
func (m *surfaceManager) push(st *PenState) error {
	if st.layer == "" {
		panic("pen: surface push before layer binding")
	}
	if err := m.renderer.UpdateLayer(st.layer, m.serialize(st.doc)); err != nil {
		return fmt.Errorf("pen: update layer %q: %w", string(st.layer), err)
	}
	m.renderer.RequestRedraw()
	return nil
}

// destroy releases the state's layer.
func (m *surfaceManager) destroy(st *PenState) {
	if st.layer == "" {
		return
	}
	m.renderer.DestroyLayer(st.layer)
	st.layer = ""
	m.renderer.RequestRedraw()
}

// serialize renders the document for display. The minimum stroke width
// floor applies here only, never to exported documents.
func (m *surfaceManager) serialize(doc *document.Document) []byte {
	return doc.SVG(document.WithMinStrokeWidth(m.minStrokeWidth))
}
