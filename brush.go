package pixedit

import (
	"fmt"
	"image"
	"slices"
	"strings"
)

// Tool selects what a brush application does to the bitmap.
type Tool uint8

const (
	// ToolPencil paints opaque pixels in the current color.
	ToolPencil Tool = iota

	// ToolEraser resets pixels to transparent black.
	ToolEraser
)

// String returns the tool name used by shortcuts, scripts and the UI.
func (t Tool) String() string {
	switch t {
	case ToolPencil:
		return "pencil"
	case ToolEraser:
		return "eraser"
	default:
		return fmt.Sprintf("Tool(%d)", uint8(t))
	}
}

// ParseTool parses a tool name as returned by Tool.String.
func ParseTool(name string) (Tool, error) {
	switch strings.ToLower(name) {
	case "pencil":
		return ToolPencil, nil
	case "eraser":
		return ToolEraser, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
}

// BrushSize is the side length, in pixels, of the square brush footprint.
type BrushSize int

// BrushSizes lists the sizes the editor offers.
var BrushSizes = []BrushSize{1, 2, 4, 8}

// Valid reports whether s is one of BrushSizes.
func (s BrushSize) Valid() bool {
	return slices.Contains(BrushSizes, s)
}

// Footprint returns the pixels covered by a brush of the given size centered
// at (x, y), clipped to bounds. The square starts size/2 pixels up and left
// of the center, so even sizes extend one pixel further right and down.
func Footprint(x, y int, size BrushSize, bounds image.Rectangle) image.Rectangle {
	if size <= 0 {
		return image.Rectangle{}
	}
	half := int(size) / 2
	r := image.Rect(x-half, y-half, x-half+int(size), y-half+int(size))
	return r.Intersect(bounds)
}

// Paint sets every pixel in the footprint at (x, y) to the opaque color
// resolved from colorHex. Malformed hex strings paint black.
// Returns the rectangle that was written.
func Paint(b *Bitmap, x, y int, colorHex string, size BrushSize) image.Rectangle {
	return PaintColor(b, x, y, ParseHex(colorHex), size)
}

// PaintColor is like Paint with a pre-resolved color. Alpha is forced to 255.
func PaintColor(b *Bitmap, x, y int, c Color, size BrushSize) image.Rectangle {
	return fillFootprint(b, Footprint(x, y, size, b.Bounds()), c.Opaque())
}

// Erase sets every pixel in the footprint at (x, y) to (0, 0, 0, 0).
// Returns the rectangle that was written.
func Erase(b *Bitmap, x, y int, size BrushSize) image.Rectangle {
	return fillFootprint(b, Footprint(x, y, size, b.Bounds()), Transparent)
}

// fillFootprint writes c into every pixel of r. r must lie inside b.
func fillFootprint(b *Bitmap, r image.Rectangle, c Color) image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	for py := r.Min.Y; py < r.Max.Y; py++ {
		i := (py*b.width + r.Min.X) * 4
		for px := r.Min.X; px < r.Max.X; px++ {
			b.data[i+0] = c.R
			b.data[i+1] = c.G
			b.data[i+2] = c.B
			b.data[i+3] = c.A
			i += 4
		}
	}
	return r
}

// Brush bundles the tool, size and color used for each application.
type Brush struct {
	Tool  Tool
	Size  BrushSize
	Color Color
}

// Apply paints or erases at (x, y) depending on the tool and returns the
// rectangle that was written.
func (br Brush) Apply(b *Bitmap, x, y int) image.Rectangle {
	if br.Tool == ToolEraser {
		return Erase(b, x, y, br.Size)
	}
	return PaintColor(b, x, y, br.Color, br.Size)
}
