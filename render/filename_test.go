// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "testing"

func TestAssetFileName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		f    Format
		want string
	}{
		{"empty", "", FormatPNG, "asset.png"},
		{"simple", "hero", FormatPNG, "hero.png"},
		{"spaces", "Hero  Sprite", FormatPNG, "hero_sprite.png"},
		{"surrounding spaces", "  tile set  ", FormatPNG, "tile_set.png"},
		{"accents", "Café Crème", FormatPNG, "cafe_creme.png"},
		{"path traversal", "../../etc/passwd", FormatPNG, "etcpasswd.png"},
		{"only symbols", "***", FormatBMP, "asset.bmp"},
		{"keeps dashes", "walk-cycle_02", FormatTIFF, "walk-cycle_02.tif"},
		{"pdf", "Sheet", FormatPDF, "sheet.pdf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AssetFileName(tt.in, tt.f); got != tt.want {
				t.Errorf("AssetFileName(%q, %v) = %q, want %q", tt.in, tt.f, got, tt.want)
			}
		})
	}
}
