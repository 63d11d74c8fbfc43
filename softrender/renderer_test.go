package softrender

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/pen"
	"github.com/gogpu/pen/document"
)

func lineDoc(width float64) *document.Document {
	d := document.New(48, 36)
	p := document.NewPath()
	p.Append(document.MoveTo{Point: document.Pt(4, 18)})
	p.Append(document.LineTo{Point: document.Pt(44, 18)})
	s := document.DefaultStyle()
	s.StrokeWidth = width
	d.Append(&document.PathNode{Path: p, Style: s})
	return d
}

func TestRenderer_LayerLifecycle(t *testing.T) {
	r := New(48, 36)

	h, err := r.CreateLayer(lineDoc(4).SVG())
	if err != nil {
		t.Fatal(err)
	}
	if h == "" {
		t.Fatal("expected a layer handle")
	}

	if err := r.UpdateLayer(h, lineDoc(8).SVG()); err != nil {
		t.Fatal(err)
	}

	r.DestroyLayer(h)
	if err := r.UpdateLayer(h, lineDoc(8).SVG()); !errors.Is(err, ErrUnknownLayer) {
		t.Errorf("expected ErrUnknownLayer after destroy, got %v", err)
	}
	// Destroying again is a no-op.
	r.DestroyLayer(h)
}

func TestRenderer_RasterizesInk(t *testing.T) {
	r := New(48, 36)
	if _, err := r.CreateLayer(lineDoc(4).SVG()); err != nil {
		t.Fatal(err)
	}

	out := r.Composite()
	if got := out.Bounds(); got != image.Rect(0, 0, 48, 36) {
		t.Fatalf("composite bounds = %v", got)
	}

	inked := 0
	for y := 0; y < 36; y++ {
		for x := 0; x < 48; x++ {
			if _, _, _, a := out.At(x, y).RGBA(); a > 0 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Error("stroked line left no ink in the composite")
	}
}

func TestRenderer_BadSVG(t *testing.T) {
	r := New(48, 36)
	if _, err := r.CreateLayer([]byte("<svg")); !errors.Is(err, ErrBadSVG) {
		t.Errorf("expected ErrBadSVG, got %v", err)
	}
}

func TestRenderer_OrderAndRedraw(t *testing.T) {
	r := New(48, 36)
	a, _ := r.CreateLayer(lineDoc(2).SVG())
	b, _ := r.CreateLayer(lineDoc(2).SVG())

	if r.LayerOrder(a) >= r.LayerOrder(b) {
		t.Error("later layers must start above earlier ones")
	}

	r.SetLayerOrder(a, r.LayerOrder(b)+5)
	if r.LayerOrder(a) <= r.LayerOrder(b) {
		t.Error("SetLayerOrder did not move the layer")
	}

	if r.Dirty() {
		t.Error("renderer dirty before any redraw request")
	}
	r.RequestRedraw()
	if !r.Dirty() {
		t.Error("redraw request not recorded")
	}
	if r.Dirty() {
		t.Error("Dirty did not clear the flag")
	}
}

func TestRenderer_Snapshots(t *testing.T) {
	r := New(48, 36)
	if _, err := r.SnapshotTarget("ghost"); !errors.Is(err, ErrNoProvider) {
		t.Errorf("expected ErrNoProvider, got %v", err)
	}

	want := &pen.Snapshot{
		Image:   image.NewRGBA(image.Rect(0, 0, 8, 8)),
		W:       8,
		H:       8,
		Opacity: 1,
	}
	r.RegisterTarget("sprite", func() *pen.Snapshot { return want })

	got, err := r.SnapshotTarget("sprite")
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Error("snapshot provider result not returned")
	}
}
