package pen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/pen/document"
)

// WritePDF renders a composed export document to PDF. The page is
// sized to the document at mmPerUnit millimeters per surface unit.
func WritePDF(doc *document.Document, mmPerUnit float64, w io.Writer) error {
	if mmPerUnit <= 0 {
		mmPerUnit = defaultStepLength
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size: gofpdf.SizeType{
			Wd: doc.Width * mmPerUnit,
			Ht: doc.Height * mmPerUnit,
		},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pw := pdfWalker{pdf: pdf, scale: mmPerUnit}
	pw.nodes(doc.Nodes())

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("pen: write pdf: %w", err)
	}
	return nil
}

// ExportAllPDF composes all targets' content and writes it as PDF.
// The export prompt and eligibility rules match ExportAll.
func (e *Engine) ExportAllPDF(targets []Target, w io.Writer) (ExportStatus, error) {
	res := e.ExportAll(targets)
	if res.Status != ExportOK {
		return res.Status, nil
	}
	return ExportOK, WritePDF(res.Doc, e.stepLength, w)
}

type pdfWalker struct {
	pdf   *gofpdf.Fpdf
	scale float64
}

func (pw pdfWalker) nodes(nodes []document.Node) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *document.Group:
			pw.nodes(node.Nodes)
		case *document.PathNode:
			pw.path(node)
		case *document.ImageNode:
			pw.image(node)
		}
	}
}

func (pw pdfWalker) path(n *document.PathNode) {
	s := n.Style
	pw.pdf.SetDrawColor(int(s.StrokeColor.R), int(s.StrokeColor.G), int(s.StrokeColor.B))
	pw.pdf.SetLineWidth(s.StrokeWidth * pw.scale)
	pw.pdf.SetLineCapStyle("round")
	pw.pdf.SetLineJoinStyle("round")
	pw.pdf.SetAlpha(s.StrokeOpacity, "Normal")

	style := "D"
	if s.FillOpacity > 0 {
		pw.pdf.SetFillColor(int(s.FillColor.R), int(s.FillColor.G), int(s.FillColor.B))
		style = "B"
	}

	// Current point and previous quadratic control, tracked to resolve
	// smooth-continuation commands the way SVG does: reflect the
	// control after a quadratic, degrade to a line otherwise.
	var cur, prevCtrl document.Point
	afterQuad := false

	for _, c := range n.Path.Commands() {
		switch cmd := c.(type) {
		case document.MoveTo:
			pw.pdf.MoveTo(cmd.Point.X*pw.scale, cmd.Point.Y*pw.scale)
			cur = cmd.Point
			afterQuad = false
		case document.LineTo:
			pw.pdf.LineTo(cmd.Point.X*pw.scale, cmd.Point.Y*pw.scale)
			cur = cmd.Point
			afterQuad = false
		case document.QuadTo:
			pw.pdf.CurveTo(cmd.Control.X*pw.scale, cmd.Control.Y*pw.scale,
				cmd.Point.X*pw.scale, cmd.Point.Y*pw.scale)
			cur = cmd.Point
			prevCtrl = cmd.Control
			afterQuad = true
		case document.SmoothTo:
			if afterQuad {
				ctrl := document.Pt(2*cur.X-prevCtrl.X, 2*cur.Y-prevCtrl.Y)
				pw.pdf.CurveTo(ctrl.X*pw.scale, ctrl.Y*pw.scale,
					cmd.Point.X*pw.scale, cmd.Point.Y*pw.scale)
				prevCtrl = ctrl
			} else {
				pw.pdf.LineTo(cmd.Point.X*pw.scale, cmd.Point.Y*pw.scale)
			}
			cur = cmd.Point
		case document.ClosePath:
			pw.pdf.ClosePath()
			afterQuad = false
		}
	}
	pw.pdf.DrawPath(style)
	pw.pdf.SetAlpha(1, "Normal")
}

func (pw pdfWalker) image(n *document.ImageNode) {
	const prefix = "data:image/png;base64,"
	data, ok := strings.CutPrefix(n.Href, prefix)
	if !ok {
		Logger().Warn("skipping non-PNG image node in pdf export")
		return
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		Logger().Warn("skipping undecodable image node in pdf export", "err", err)
		return
	}

	name := "stamp-" + uuid.NewString()
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pw.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(raw))
	pw.pdf.SetAlpha(clamp01(n.Opacity), "Normal")
	pw.pdf.ImageOptions(name, n.X*pw.scale, n.Y*pw.scale, n.W*pw.scale, n.H*pw.scale,
		false, opts, 0, "")
	pw.pdf.SetAlpha(1, "Normal")
}
