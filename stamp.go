package pen

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/pen/document"
)

// Stamp rasterizes the target's current rendered appearance and embeds
// it as an image node in the target's drawing surface.
//
// The host supplies the appearance as a pixel buffer placed in physical
// canvas pixels; placement and size are mapped into surface units, so a
// canvas running at a higher pixel density than the stage's logical
// size lands the stamp at the correct logical position. Buffers whose
// intrinsic resolution exceeds the logical size are downscaled before
// embedding to keep documents small.
func (e *Engine) Stamp(t Target) error {
	st, err := e.store.Get(t)
	if err != nil {
		return err
	}

	snap, err := e.renderer.SnapshotTarget(t.ID())
	if err != nil {
		return fmt.Errorf("%w: %s", ErrNoSnapshot, t.ID())
	}

	cw, _ := e.renderer.CanvasSize()
	scale := 1.0
	if cw > 0 {
		scale = e.mapper.Width / float64(cw)
	}

	w := snap.W * scale
	h := snap.H * scale
	if w <= 0 || h <= 0 {
		return nil
	}

	href, err := encodeStamp(snap.Image, w, h)
	if err != nil {
		return err
	}

	st.doc.Append(&document.ImageNode{
		Href:    href,
		X:       snap.X * scale,
		Y:       snap.Y * scale,
		W:       w,
		H:       h,
		Opacity: clamp01(snap.Opacity),
	})
	Logger().Debug("stamp embedded", "target", t.ID(), "w", w, "h", h)
	return e.surfaces.push(st)
}

// encodeStamp scales the appearance buffer to its display resolution
// when the intrinsic resolution is larger, then encodes it as a base64
// PNG data URI.
func encodeStamp(img image.Image, w, h float64) (string, error) {
	pw := int(math.Ceil(w))
	ph := int(math.Ceil(h))
	bounds := img.Bounds()
	if pw > 0 && ph > 0 && (bounds.Dx() > pw || bounds.Dy() > ph) {
		scaled := image.NewRGBA(image.Rect(0, 0, pw, ph))
		xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
		img = scaled
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("pen: encode stamp: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
