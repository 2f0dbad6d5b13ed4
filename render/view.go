// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/gogpu/pixedit"
	"github.com/gogpu/pixedit/internal/cache"
)

// Display colors.
var (
	// CheckerLight is the light checkerboard cell color.
	CheckerLight = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// CheckerDark is the dark checkerboard cell color.
	CheckerDark = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}

	// GridColor is blended over pixel boundaries, rgba(128,128,128,0.3).
	GridColor = color.NRGBA{R: 128, G: 128, B: 128, A: 77}
)

// minCheckerCell is the smallest checkerboard cell, in display pixels.
const minCheckerCell = 4

// minGridZoom is the smallest zoom at which the grid is drawn.
const minGridZoom = 2

// Options configures View.
type Options struct {
	// Zoom is the integer scale factor. Values below 1 are treated as 1.
	Zoom int

	// Grid draws pixel boundaries when Zoom >= 2.
	Grid bool

	// Transparent shows a checkerboard behind the artwork instead of white.
	Transparent bool
}

// checkers caches one pattern period (2*cell square) per cell size.
// Backdrops are tiled from it, so memory does not grow with the view.
var checkers = cache.New[int, *image.RGBA](8)

// View renders b as an opaque display surface of size
// (Width*Zoom) x (Height*Zoom).
func View(b *pixedit.Bitmap, opts Options) *image.RGBA {
	zoom := max(opts.Zoom, 1)
	size := pixedit.Viewport{Zoom: zoom}.Size(b.Width(), b.Height())
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))

	if opts.Transparent {
		cell := max(minCheckerCell, zoom)
		tile := checkers.GetOrCreate(cell, func() *image.RGBA {
			return checkerboard(2*cell, 2*cell, cell)
		})
		tileBackdrop(dst, tile)
	} else {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(CheckerLight), image.Point{}, draw.Src)
	}

	draw.NearestNeighbor.Scale(dst, dst.Bounds(), b, b.Bounds(), draw.Over, nil)

	if opts.Grid && zoom >= minGridZoom {
		drawGrid(dst, b.Width(), b.Height(), zoom)
	}
	return dst
}

// checkerboard builds a w x h two-tone pattern with square cells.
func checkerboard(w, h, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	light := image.NewUniform(CheckerLight)
	dark := image.NewUniform(CheckerDark)
	for y := 0; y < h; y += cell {
		for x := 0; x < w; x += cell {
			src := light
			if (x/cell+y/cell)%2 != 0 {
				src = dark
			}
			draw.Draw(img, image.Rect(x, y, x+cell, y+cell).Intersect(img.Bounds()), src, image.Point{}, draw.Src)
		}
	}
	return img
}

// tileBackdrop repeats tile across dst.
func tileBackdrop(dst *image.RGBA, tile *image.RGBA) {
	tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += th {
		for x := b.Min.X; x < b.Max.X; x += tw {
			draw.Draw(dst, image.Rect(x, y, x+tw, y+th).Intersect(b), tile, image.Point{}, draw.Src)
		}
	}
}

// drawGrid blends a one-pixel line on the left and top edge of every
// bitmap pixel. The right and bottom canvas edges get no line.
func drawGrid(dst *image.RGBA, w, h, zoom int) {
	line := image.NewUniform(GridColor)
	b := dst.Bounds()
	for x := 0; x < w; x++ {
		px := x * zoom
		draw.Draw(dst, image.Rect(px, 0, px+1, b.Max.Y), line, image.Point{}, draw.Over)
	}
	for y := 0; y < h; y++ {
		py := y * zoom
		draw.Draw(dst, image.Rect(0, py, b.Max.X, py+1), line, image.Point{}, draw.Over)
	}
}
