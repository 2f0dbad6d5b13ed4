// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"

	"github.com/gogpu/pixedit"
)

// Export errors.
var (
	// ErrUnsupportedFormat is returned for unknown export formats.
	ErrUnsupportedFormat = errors.New("render: unsupported format")

	// ErrDataSize is returned when a raw pixel slice does not match w*h*4.
	ErrDataSize = errors.New("render: pixel data size mismatch")
)

// Format is an export file format.
type Format uint8

const (
	// FormatPNG is a lossless PNG with alpha.
	FormatPNG Format = iota

	// FormatBMP is an uncompressed 32-bit BMP.
	FormatBMP

	// FormatTIFF is a deflate-compressed TIFF.
	FormatTIFF

	// FormatPDF is a one-page PDF embedding the image as PNG.
	FormatPDF
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatPDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	if f == FormatTIFF {
		return ".tif"
	}
	return "." + f.String()
}

// ParseFormat parses a format name such as "png" or "tif".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	case "pdf":
		return FormatPDF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// ExportOptions configures Encode.
type ExportOptions struct {
	// Transparent keeps the alpha channel. When false the artwork is
	// composited over opaque white.
	Transparent bool

	// Title is stored in formats that carry metadata (PDF).
	Title string
}

// Flatten returns a copy of b ready for export. With transparent false,
// every pixel is composited over opaque white.
func Flatten(b *pixedit.Bitmap, transparent bool) *image.NRGBA {
	if transparent {
		return b.ToImage()
	}
	dst := image.NewNRGBA(b.Bounds())
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), b, image.Point{}, draw.Over)
	return dst
}

// Encode writes b to w at its natural size in the given format.
func Encode(w io.Writer, b *pixedit.Bitmap, f Format, opts ExportOptions) error {
	img := Flatten(b, opts.Transparent)

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	case FormatPDF:
		err = encodePDF(w, img, opts.Title)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("render: encode %s: %w", f, err)
	}

	pixedit.Logger().Debug("bitmap encoded",
		"format", f.String(), "width", b.Width(), "height", b.Height(), "transparent", opts.Transparent)
	return nil
}

// FromRGBA wraps raw row-major RGBA bytes, as returned by Session.ToImage,
// in an image.NRGBA without copying.
func FromRGBA(data []byte, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", pixedit.ErrInvalidDimension, width, height)
	}
	if len(data) != width*height*4 {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrDataSize, len(data), width*height*4)
	}
	return &image.NRGBA{
		Pix:    data,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}
