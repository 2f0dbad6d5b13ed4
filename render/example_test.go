// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render_test

import (
	"bytes"
	"fmt"

	"github.com/gogpu/pixedit"
	"github.com/gogpu/pixedit/render"
)

// ExampleView renders a session's bitmap for display at the session zoom.
func ExampleView() {
	s, err := pixedit.NewSession(16, 16)
	if err != nil {
		fmt.Println(err)
		return
	}
	s.SetColor("#ff0000")
	s.PointerDown(0, 0)
	s.PointerMove(15, 15)
	s.PointerUp(15, 15)

	img := render.View(s.Bitmap(), render.Options{
		Zoom:        s.Viewport().Zoom,
		Grid:        true,
		Transparent: true,
	})
	fmt.Println(img.Bounds().Dx(), img.Bounds().Dy())
	// Output: 64 64
}

// ExampleEncode exports an asset under its sanitized name.
func ExampleEncode() {
	b, _ := pixedit.New(8, 8)
	pixedit.Paint(b, 4, 4, "#00ff00", 4)

	var buf bytes.Buffer
	if err := render.Encode(&buf, b, render.FormatPNG, render.ExportOptions{Transparent: true}); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(render.AssetFileName("Slime Idle", render.FormatPNG))
	// Output: slime_idle.png
}
