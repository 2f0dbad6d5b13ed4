package pixedit

import (
	"image"
	"math"
	"slices"
)

// DefaultZoom is the display scale of a fresh session.
const DefaultZoom = 4

// ZoomLevels lists the display scales the editor offers.
var ZoomLevels = []int{1, 2, 4, 8, 16}

// Viewport maps display coordinates onto bitmap pixels.
// Each bitmap pixel is drawn as a Zoom x Zoom block.
type Viewport struct {
	Zoom int
}

// scale returns the effective zoom, treating non-positive values as 1.
func (v Viewport) scale() int {
	if v.Zoom <= 0 {
		return 1
	}
	return v.Zoom
}

// ScreenToPixel converts a display position, relative to the top-left of
// the drawn bitmap, to the pixel underneath it.
func (v Viewport) ScreenToPixel(sx, sy float64) image.Point {
	z := float64(v.scale())
	return image.Pt(int(math.Floor(sx/z)), int(math.Floor(sy/z)))
}

// Size returns the display size of a w x h bitmap.
func (v Viewport) Size(w, h int) image.Point {
	return image.Pt(w*v.scale(), h*v.scale())
}

// validZoom reports whether z is one of ZoomLevels.
func validZoom(z int) bool {
	return slices.Contains(ZoomLevels, z)
}
