package pen

import (
	"sort"

	"github.com/gogpu/pen/document"
)

// ExportStatus distinguishes the outcomes of an export.
type ExportStatus uint8

const (
	// ExportOK means a document was composed.
	ExportOK ExportStatus = iota

	// ExportEmpty means no target had recorded content. Not an error.
	ExportEmpty

	// ExportCancelled means the user declined the export prompt.
	// Not an error.
	ExportCancelled
)

// ExportResult is the outcome of composing an export document.
type ExportResult struct {
	Status ExportStatus

	// Doc is the composed document. Nil unless Status is ExportOK.
	Doc *document.Document

	// SVG is the serialized document, self-sized in physical length
	// units. Nil unless Status is ExportOK.
	SVG []byte
}

// ExportAll composes one self-contained vector document holding, for
// each target with recorded content, a named group with a deep copy of
// that target's drawing surface, in ascending layer order.
func (e *Engine) ExportAll(targets []Target) ExportResult {
	if e.prompt != nil && !e.prompt() {
		return ExportResult{Status: ExportCancelled}
	}

	type entry struct {
		id    string
		st    *PenState
		order int
	}
	var entries []entry
	for _, t := range targets {
		st := e.store.Lookup(t)
		if st == nil || st.doc.Empty() {
			continue
		}
		entries = append(entries, entry{
			id:    t.ID(),
			st:    st,
			order: e.renderer.LayerOrder(st.layer),
		})
	}
	if len(entries) == 0 {
		return ExportResult{Status: ExportEmpty}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].order < entries[j].order
	})

	doc := document.New(e.mapper.Width, e.mapper.Height)
	for _, en := range entries {
		doc.Append(en.st.doc.ContentGroup("pen-" + en.id))
	}
	Logger().Info("export composed", "groups", len(entries))
	return e.finishExport(doc)
}

// ExportTarget composes a document holding a single target's content.
func (e *Engine) ExportTarget(t Target) ExportResult {
	if e.prompt != nil && !e.prompt() {
		return ExportResult{Status: ExportCancelled}
	}

	st := e.store.Lookup(t)
	if st == nil || st.doc.Empty() {
		return ExportResult{Status: ExportEmpty}
	}

	doc := document.New(e.mapper.Width, e.mapper.Height)
	doc.Append(st.doc.ContentGroup("pen-" + t.ID()))
	return e.finishExport(doc)
}

func (e *Engine) finishExport(doc *document.Document) ExportResult {
	svg := doc.SVG(document.WithPhysicalSize(e.stepLength, "mm"))
	return ExportResult{Status: ExportOK, Doc: doc, SVG: svg}
}
