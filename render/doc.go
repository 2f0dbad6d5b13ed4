// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render converts pixedit bitmaps into display surfaces and
// portable image files.
//
// # Display
//
// View scales a bitmap by an integer zoom with nearest-neighbour sampling,
// so every bitmap pixel becomes a crisp Zoom x Zoom block. Transparent
// pixels show a checkerboard (or plain white when transparency display is
// off) and an optional grid marks pixel boundaries:
//
//	img := render.View(s.Bitmap(), render.Options{Zoom: 8, Grid: true, Transparent: true})
//
// # Export
//
// Encode writes the bitmap at its natural size as PNG, BMP, TIFF or a
// single-page PDF. With ExportOptions.Transparent false the artwork is
// composited over opaque white first:
//
//	f, _ := os.Create(render.AssetFileName("Hero Sprite", render.FormatPNG))
//	err := render.Encode(f, s.Bitmap(), render.FormatPNG, render.ExportOptions{Transparent: true})
//
// FromRGBA wraps the raw byte sequence returned by Session.ToImage so other
// collaborators (such as a bundle packager) can encode it themselves.
package render
