package pen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/pen/document"
)

func drawSquare(t *testing.T, e *Engine, sprite *fakeTarget) {
	t.Helper()
	require.NoError(t, e.PenDown(sprite, Trail))
	moveTo(e, sprite, sprite.x+40, sprite.y, false)
	moveTo(e, sprite, sprite.x, sprite.y+40, false)
	require.NoError(t, e.PenUp(sprite))
}

func TestExportAll_Composition(t *testing.T) {
	e, _ := newTestEngine()
	a := &fakeTarget{id: "a"}
	b := &fakeTarget{id: "b", x: 100}
	idle := &fakeTarget{id: "idle"}

	drawSquare(t, e, a)
	drawSquare(t, e, b)

	res := e.ExportAll([]Target{a, b, idle})
	require.Equal(t, ExportOK, res.Status)
	require.NotNil(t, res.Doc)

	nodes := res.Doc.Nodes()
	require.Len(t, nodes, 2, "one group per eligible target")

	first, ok := nodes[0].(*document.Group)
	require.True(t, ok)
	second, ok := nodes[1].(*document.Group)
	require.True(t, ok)
	assert.Equal(t, "pen-a", first.Name)
	assert.Equal(t, "pen-b", second.Name)

	// Structural copy: later drawing must not leak into the export.
	before := string(res.Doc.SVG())
	drawSquare(t, e, a)
	assert.Equal(t, before, string(res.Doc.SVG()))
}

func TestExportAll_LayerOrder(t *testing.T) {
	e, _ := newTestEngine()
	a := &fakeTarget{id: "a"}
	b := &fakeTarget{id: "b", x: 100}
	drawSquare(t, e, a)
	drawSquare(t, e, b)

	// Move a's layer above b's: export order must follow.
	require.NoError(t, e.SetLayerOrder(a, 10))

	res := e.ExportAll([]Target{a, b})
	require.Equal(t, ExportOK, res.Status)
	first := res.Doc.Nodes()[0].(*document.Group)
	second := res.Doc.Nodes()[1].(*document.Group)
	assert.Equal(t, "pen-b", first.Name)
	assert.Equal(t, "pen-a", second.Name)
}

func TestExportAll_Empty(t *testing.T) {
	e, _ := newTestEngine()
	res := e.ExportAll([]Target{&fakeTarget{id: "a"}})
	assert.Equal(t, ExportEmpty, res.Status)
	assert.Nil(t, res.Doc)
}

func TestExport_Cancelled(t *testing.T) {
	r := newFakeRenderer()
	e := NewEngine(480, 360, r, WithExportPrompt(func() bool { return false }))
	sprite := &fakeTarget{id: "a"}
	drawSquare(t, e, sprite)

	assert.Equal(t, ExportCancelled, e.ExportAll([]Target{sprite}).Status)
	assert.Equal(t, ExportCancelled, e.ExportTarget(sprite).Status)
}

func TestExportTarget_Single(t *testing.T) {
	e, _ := newTestEngine()
	a := &fakeTarget{id: "a"}
	b := &fakeTarget{id: "b"}
	drawSquare(t, e, a)

	res := e.ExportTarget(a)
	require.Equal(t, ExportOK, res.Status)
	require.Len(t, res.Doc.Nodes(), 1)
	assert.Equal(t, "pen-a", res.Doc.Nodes()[0].(*document.Group).Name)

	assert.Equal(t, ExportEmpty, e.ExportTarget(b).Status)
}

func TestExport_PhysicalSize(t *testing.T) {
	r := newFakeRenderer()
	e := NewEngine(480, 360, r, WithStepLength(1))
	sprite := &fakeTarget{id: "a"}
	drawSquare(t, e, sprite)

	res := e.ExportTarget(sprite)
	require.Equal(t, ExportOK, res.Status)
	svg := string(res.SVG)
	assert.Contains(t, svg, `width="480mm"`)
	assert.Contains(t, svg, `height="360mm"`)
	assert.Contains(t, svg, `viewBox="0 0 480 360"`)
}

func TestWritePDF(t *testing.T) {
	e, _ := newTestEngine()
	sprite := &fakeTarget{id: "a"}
	require.NoError(t, e.SetLineShape(sprite, Curve))
	drawSquare(t, e, sprite)

	res := e.ExportTarget(sprite)
	require.Equal(t, ExportOK, res.Status)

	var buf bytes.Buffer
	require.NoError(t, WritePDF(res.Doc, e.StepLength(), &buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output is not a PDF")
	assert.Greater(t, buf.Len(), 500)
}

func TestExportAllPDF(t *testing.T) {
	e, _ := newTestEngine()
	sprite := &fakeTarget{id: "a"}
	drawSquare(t, e, sprite)

	var buf bytes.Buffer
	status, err := e.ExportAllPDF([]Target{sprite}, &buf)
	require.NoError(t, err)
	assert.Equal(t, ExportOK, status)
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"))

	buf.Reset()
	status, err = e.ExportAllPDF([]Target{&fakeTarget{id: "empty"}}, &buf)
	require.NoError(t, err)
	assert.Equal(t, ExportEmpty, status)
	assert.Zero(t, buf.Len())
}
