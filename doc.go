// Package pixedit provides the bitmap editing engine behind the Crix asset
// editor.
//
// # Overview
//
// pixedit is a Pure Go pixel-art editing core. It owns an 8-bit RGBA raster,
// applies square pencil and eraser brushes, sequences pointer drags into
// gap-free strokes, and keeps a bounded undo/redo history of full-buffer
// snapshots. Presentation (skins, dialogs, layout builder) lives outside
// this package and talks to it through image data, colour strings and
// dimensions.
//
// # Quick Start
//
//	import "github.com/gogpu/pixedit"
//
//	s, err := pixedit.NewSession(32, 32)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	s.SetColor("#ff0000")
//	s.PointerDown(0, 0)
//	s.PointerMove(10, 0) // paints (0,0)..(10,0)
//	s.PointerUp(10, 0)
//
//	s.Undo() // reverts the whole stroke
//
//	raw := s.ToImage() // w*h*4 RGBA bytes
//
// Rendering to a zoomed display surface and encoding to PNG, BMP, TIFF or
// PDF is done by the render sub-package.
//
// # Architecture
//
// The library is organized into:
//   - Bitmap: fixed-size RGBA pixel grid (get/set, clone, resize)
//   - Brush: footprint math, paint and erase
//   - History: bounded LIFO snapshot stacks
//   - StrokeController: Idle/Dragging state machine using Bresenham lines
//   - Session: owns one of each and routes pointer and keyboard events
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel data is row-major, channel order R, G, B, A
//
// # Concurrency
//
// Session, History and StrokeController are driven by a single-threaded
// event loop and are not safe for concurrent use. Only SetLogger/Logger may
// be called from any goroutine.
package pixedit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
