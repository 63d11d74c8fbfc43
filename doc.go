// Package pen implements a per-target vector drawing engine for
// animated-entity runtimes.
//
// # Overview
//
// Each moving, stylable entity ("target") owns a drawing surface: a
// vector document accumulating the ink it leaves behind. The engine
// converts motion notifications and explicit drawing commands into
// persistent vector paths, either as a continuous trail or as
// node-by-node plotting with a rubber-band preview, and composes the
// per-target surfaces into a single exportable SVG or PDF document.
//
// # Quick Start
//
//	r := softrender.New(480, 360)
//	eng := pen.NewEngine(480, 360, r)
//
//	eng.PenDown(sprite, pen.Trail)
//	// ... host delivers motion events:
//	eng.Moved(sprite, oldX, oldY, false)
//	eng.PenUp(sprite)
//
//	res := eng.ExportAll(sprites)
//	if res.Status == pen.ExportOK {
//	    os.WriteFile("drawing.svg", res.SVG, 0o644)
//	}
//
// # Architecture
//
// The library is organized into:
//   - Public API: Engine, PathBuilder, Attributes, Mapper, host interfaces
//   - document/: vector document model and SVG serialization
//   - softrender/: reference CPU implementation of the host Renderer
//
// All engine mutation is synchronous and single-threaded: the host
// delivers motion and lifecycle events one at a time, so the engine
// holds no locks.
package pen
