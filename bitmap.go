package pixedit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
)

// Canvas dimension limits and defaults.
const (
	// MaxDimension is the largest width or height accepted from user input.
	MaxDimension = 1024

	// DefaultWidth is the width of a fresh editing session.
	DefaultWidth = 128

	// DefaultHeight is the height of a fresh editing session.
	DefaultHeight = 128
)

// DimensionPresets are the square canvas sizes offered for quick selection.
var DimensionPresets = []int{16, 32, 64, 128, 256, 512}

// ClampDimension restricts a user-supplied size to [1, MaxDimension].
func ClampDimension(v int) int {
	if v < 1 {
		return 1
	}
	if v > MaxDimension {
		return MaxDimension
	}
	return v
}

// Bitmap is a fixed-size RGBA pixel grid.
//
// Pixel data is row-major, 4 bytes per pixel in R, G, B, A order, and is
// never premultiplied. len(Data()) == Width()*Height()*4 at all times.
//
// Bitmap implements image.Image with the NRGBA color model.
type Bitmap struct {
	width  int
	height int
	data   []uint8
}

// New allocates a zero-filled (fully transparent black) bitmap.
// Returns ErrInvalidDimension if width or height is not positive.
func New(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return &Bitmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// FromImage creates a bitmap holding a non-premultiplied copy of img.
func FromImage(img image.Image) (*Bitmap, error) {
	bounds := img.Bounds()
	b, err := New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowBytes := b.width * 4
		for y := 0; y < b.height; y++ {
			src := nrgba.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(b.data[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[src:src+rowBytes])
		}
		return b, nil
	}

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			b.SetRGBA(x, y, c.R, c.G, c.B, c.A)
		}
	}
	return b, nil
}

// Width returns the width of the bitmap.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height of the bitmap.
func (b *Bitmap) Height() int {
	return b.height
}

// Data returns the raw pixel data. Writes to the slice modify the bitmap.
func (b *Bitmap) Data() []uint8 {
	return b.data
}

// Contains reports whether (x, y) lies inside the bitmap.
func (b *Bitmap) Contains(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// offset returns the byte index of pixel (x, y), or -1 when out of range.
func (b *Bitmap) offset(x, y int) int {
	if !b.Contains(x, y) {
		return -1
	}
	return (y*b.width + x) * 4
}

// Pixel returns the color at (x, y). ok is false outside the bitmap.
func (b *Bitmap) Pixel(x, y int) (c Color, ok bool) {
	i := b.offset(x, y)
	if i < 0 {
		return Color{}, false
	}
	return Color{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}, true
}

// SetRGBA writes four channel bytes at (x, y).
// Out-of-bounds coordinates are silently ignored.
func (b *Bitmap) SetRGBA(x, y int, r, g, bl, a uint8) {
	i := b.offset(x, y)
	if i < 0 {
		return
	}
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// SetPixel writes c at (x, y). Out-of-bounds coordinates are ignored.
func (b *Bitmap) SetPixel(x, y int, c Color) {
	b.SetRGBA(x, y, c.R, c.G, c.B, c.A)
}

// Fill sets every pixel to c.
func (b *Bitmap) Fill(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// Clear resets every pixel to transparent black.
func (b *Bitmap) Clear() {
	clear(b.data)
}

// Clone returns a deep copy that shares no storage with b.
func (b *Bitmap) Clone() *Bitmap {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Bitmap{
		width:  b.width,
		height: b.height,
		data:   data,
	}
}

// Resize returns a new, fully transparent bitmap of the given size.
// Existing artwork is not carried over.
func (b *Bitmap) Resize(width, height int) (*Bitmap, error) {
	return New(width, height)
}

// Equal reports whether o has the same dimensions and pixel bytes as b.
func (b *Bitmap) Equal(o *Bitmap) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.width == o.width && b.height == o.height && bytes.Equal(b.data, o.data)
}

// ToImage converts the bitmap to an image.NRGBA backed by a copy of the data.
func (b *Bitmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	copy(img.Pix, b.data)
	return img
}

// At implements the image.Image interface.
func (b *Bitmap) At(x, y int) color.Color {
	c, _ := b.Pixel(x, y)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Bounds implements the image.Image interface.
func (b *Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

// ColorModel implements the image.Image interface.
func (b *Bitmap) ColorModel() color.Model {
	return color.NRGBAModel
}
