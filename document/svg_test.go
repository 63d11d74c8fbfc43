package document

import (
	"bytes"
	"encoding/xml"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathData(t *testing.T) {
	tests := []struct {
		name string
		cmds []Command
		want string
	}{
		{
			"move only",
			[]Command{MoveTo{Point: Pt(1, 2)}},
			"M 1 2",
		},
		{
			"polyline",
			[]Command{MoveTo{Point: Pt(0, 0)}, LineTo{Point: Pt(10, 0)}, LineTo{Point: Pt(10, 10)}},
			"M 0 0 L 10 0 L 10 10",
		},
		{
			"smooth spline",
			[]Command{
				MoveTo{Point: Pt(0, 0)},
				QuadTo{Control: Pt(10, 0), Point: Pt(10, 5)},
				SmoothTo{Point: Pt(10, 10)},
			},
			"M 0 0 Q 10 0 10 5 T 10 10",
		},
		{
			"closed loop",
			[]Command{MoveTo{Point: Pt(0, 0)}, LineTo{Point: Pt(4, 0)}, ClosePath{}},
			"M 0 0 L 4 0 Z",
		},
		{
			"fractional coordinates",
			[]Command{MoveTo{Point: Pt(0.5, -2.25)}},
			"M 0.5 -2.25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPath()
			for _, c := range tt.cmds {
				p.Append(c)
			}
			assert.Equal(t, tt.want, PathData(p))
		})
	}
}

func squareDoc() *Document {
	d := New(480, 360)
	p := NewPath()
	p.Append(MoveTo{Point: Pt(0, 0)})
	p.Append(LineTo{Point: Pt(40, 0)})
	s := DefaultStyle()
	s.StrokeColor = color.RGBA{R: 255, A: 255}
	s.StrokeWidth = 2.5
	d.Append(&PathNode{Path: p, Style: s})
	return d
}

func TestWriteSVG_WellFormed(t *testing.T) {
	d := squareDoc()
	d.Append(&ImageNode{Href: "data:image/png;base64,AA==", X: 1, Y: 2, W: 3, H: 4, Opacity: 0.5})
	g := &Group{Name: `quotes "&" angles <>`}
	g.Append(&PathNode{Path: NewPath(), Style: DefaultStyle()})
	d.Append(g)

	var buf bytes.Buffer
	require.NoError(t, d.WriteSVG(&buf))

	// The output must survive a strict XML decoder.
	dec := xml.NewDecoder(bytes.NewReader(buf.Bytes()))
	for {
		_, err := dec.Token()
		if err != nil {
			assert.Equal(t, "EOF", err.Error())
			break
		}
	}

	svg := buf.String()
	assert.Contains(t, svg, `viewBox="0 0 480 360"`)
	assert.Contains(t, svg, `stroke="rgb(255,0,0)"`)
	assert.Contains(t, svg, `stroke-width="2.5"`)
	assert.Contains(t, svg, `fill="none"`)
	assert.Contains(t, svg, `stroke-linecap="round"`)
}

func TestWriteSVG_MinStrokeWidth(t *testing.T) {
	d := squareDoc()
	svg := string(d.SVG(WithMinStrokeWidth(4)))
	assert.Contains(t, svg, `stroke-width="4"`)

	// Without the option the nominal width is kept.
	assert.Contains(t, string(d.SVG()), `stroke-width="2.5"`)
}

func TestWriteSVG_PhysicalSize(t *testing.T) {
	d := squareDoc()
	svg := string(d.SVG(WithPhysicalSize(0.5, "mm")))
	assert.Contains(t, svg, `width="240mm"`)
	assert.Contains(t, svg, `height="180mm"`)
	assert.Contains(t, svg, `viewBox="0 0 480 360"`)
}

func TestWriteSVG_Fill(t *testing.T) {
	d := New(10, 10)
	p := NewPath()
	p.Append(MoveTo{Point: Pt(0, 0)})
	p.Append(LineTo{Point: Pt(5, 0)})
	p.Append(ClosePath{})
	s := DefaultStyle()
	s.FillColor = color.RGBA{G: 128, A: 255}
	s.FillOpacity = 0.75
	d.Append(&PathNode{Path: p, Style: s})

	svg := string(d.SVG())
	assert.Contains(t, svg, `fill="rgb(0,128,0)"`)
	assert.Contains(t, svg, `fill-opacity="0.75"`)
}
