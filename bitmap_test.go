package pixedit

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

// Verify at compile time that Bitmap implements image.Image.
var _ image.Image = (*Bitmap)(nil)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 16, 16, nil},
		{"1x1 minimum", 1, 1, nil},
		{"non-square", 3, 7, nil},
		{"zero width", 0, 16, ErrInvalidDimension},
		{"zero height", 16, 0, ErrInvalidDimension},
		{"negative width", -1, 16, ErrInvalidDimension},
		{"negative height", 16, -4, ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := New(tt.width, tt.height)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				if b != nil {
					t.Error("New() returned a bitmap alongside an error")
				}
				return
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", b.Width(), b.Height(), tt.width, tt.height)
			}
			if len(b.Data()) != tt.width*tt.height*4 {
				t.Errorf("len(Data()) = %d, want %d", len(b.Data()), tt.width*tt.height*4)
			}
			for i, v := range b.Data() {
				if v != 0 {
					t.Fatalf("Data()[%d] = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestBitmapSetRGBA(t *testing.T) {
	b, _ := New(4, 4)
	b.SetRGBA(1, 1, 255, 0, 0, 255)

	data := b.Data()
	for i, v := range data {
		want := uint8(0)
		switch i {
		case 20, 23:
			want = 255
		}
		if v != want {
			t.Errorf("Data()[%d] = %d, want %d", i, v, want)
		}
	}

	c, ok := b.Pixel(1, 1)
	if !ok || c != (Color{255, 0, 0, 255}) {
		t.Errorf("Pixel(1,1) = %v, %v, want red, true", c, ok)
	}
}

// TestBitmapOutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestBitmapOutOfBounds(t *testing.T) {
	b, _ := New(10, 10)
	b.Fill(White)
	original := b.Clone()

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, p := range oob {
		b.SetRGBA(p.x, p.y, 1, 2, 3, 4)
		if _, ok := b.Pixel(p.x, p.y); ok {
			t.Errorf("Pixel(%d,%d) ok = true, want false", p.x, p.y)
		}
		if b.Contains(p.x, p.y) {
			t.Errorf("Contains(%d,%d) = true", p.x, p.y)
		}
	}

	if !b.Equal(original) {
		t.Error("out-of-bounds write modified data")
	}
}

func TestBitmapClone(t *testing.T) {
	b, _ := New(3, 2)
	b.SetPixel(2, 1, Color{9, 8, 7, 6})

	c := b.Clone()
	if !c.Equal(b) {
		t.Fatal("clone differs from source")
	}

	// No shared storage in either direction.
	c.SetPixel(0, 0, White)
	if px, _ := b.Pixel(0, 0); px != Transparent {
		t.Errorf("writing the clone changed the source: %v", px)
	}
	b.SetPixel(1, 1, White)
	if px, _ := c.Pixel(1, 1); px != Transparent {
		t.Errorf("writing the source changed the clone: %v", px)
	}
}

func TestBitmapResize(t *testing.T) {
	b, _ := New(16, 16)
	b.Fill(Black)

	r, err := b.Resize(32, 8)
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if r == b {
		t.Fatal("Resize() must return a new bitmap")
	}
	if r.Width() != 32 || r.Height() != 8 || len(r.Data()) != 32*8*4 {
		t.Errorf("resized to %dx%d with %d bytes", r.Width(), r.Height(), len(r.Data()))
	}
	for i, v := range r.Data() {
		if v != 0 {
			t.Fatalf("resized Data()[%d] = %d, want 0", i, v)
		}
	}
	// Source is untouched.
	if px, _ := b.Pixel(0, 0); px != Black {
		t.Errorf("source pixel = %v, want black", px)
	}

	if _, err := b.Resize(0, 8); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("Resize(0, 8) error = %v, want ErrInvalidDimension", err)
	}
}

func TestBitmapClearAndFill(t *testing.T) {
	b, _ := New(2, 2)
	b.Fill(Color{1, 2, 3, 4})
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if px, _ := b.Pixel(x, y); px != (Color{1, 2, 3, 4}) {
				t.Errorf("Pixel(%d,%d) = %v after Fill", x, y, px)
			}
		}
	}

	b.Clear()
	for i, v := range b.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %d after Clear", i, v)
		}
	}
}

func TestBitmapEqual(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(2, 2)
	c, _ := New(4, 1)

	if !a.Equal(b) {
		t.Error("equal blank bitmaps compare unequal")
	}
	if a.Equal(c) {
		t.Error("bitmaps with the same byte count but different shape compare equal")
	}
	b.SetPixel(0, 0, White)
	if a.Equal(b) {
		t.Error("different pixels compare equal")
	}
	if a.Equal(nil) {
		t.Error("Equal(nil) = true")
	}
}

func TestBitmapImageInterface(t *testing.T) {
	b, _ := New(3, 3)
	b.SetPixel(1, 2, Color{10, 20, 30, 128})

	if b.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Errorf("Bounds() = %v", b.Bounds())
	}
	if b.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	if got := b.At(1, 2); got != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("At(1,2) = %v", got)
	}
	if got := b.At(5, 5); got != (color.NRGBA{}) {
		t.Errorf("At out of range = %v, want zero", got)
	}

	img := b.ToImage()
	b.SetPixel(0, 0, White)
	if img.NRGBAAt(0, 0) != (color.NRGBA{}) {
		t.Error("ToImage() shares storage with the bitmap")
	}
	if img.NRGBAAt(1, 2) != (color.NRGBA{10, 20, 30, 128}) {
		t.Errorf("ToImage() pixel = %v", img.NRGBAAt(1, 2))
	}
}

func TestFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(2, 3, 6, 5))
	src.SetNRGBA(3, 4, color.NRGBA{200, 100, 50, 255})

	b, err := FromImage(src)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", b.Width(), b.Height())
	}
	if px, _ := b.Pixel(1, 1); px != (Color{200, 100, 50, 255}) {
		t.Errorf("Pixel(1,1) = %v", px)
	}

	// Generic path through color conversion.
	gray := image.NewGray(image.Rect(0, 0, 2, 1))
	gray.SetGray(1, 0, color.Gray{Y: 77})
	b, err = FromImage(gray)
	if err != nil {
		t.Fatalf("FromImage(gray) error = %v", err)
	}
	if px, _ := b.Pixel(1, 0); px != (Color{77, 77, 77, 255}) {
		t.Errorf("gray Pixel(1,0) = %v", px)
	}

	if _, err := FromImage(image.NewNRGBA(image.Rectangle{})); !errors.Is(err, ErrInvalidDimension) {
		t.Errorf("empty image error = %v, want ErrInvalidDimension", err)
	}
}

func TestClampDimension(t *testing.T) {
	tests := []struct{ in, want int }{
		{-5, 1}, {0, 1}, {1, 1}, {128, 128}, {1024, 1024}, {5000, 1024},
	}
	for _, tt := range tests {
		if got := ClampDimension(tt.in); got != tt.want {
			t.Errorf("ClampDimension(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
