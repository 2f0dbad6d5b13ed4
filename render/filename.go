// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultAssetName is used when an asset has no name.
const DefaultAssetName = "asset"

// AssetFileName returns the export file name for an asset called name.
//
// The name is decomposed and stripped of combining marks ("Café" becomes
// "cafe"), lower-cased, and each run of whitespace becomes one underscore.
// Path separators and other characters that are unsafe in file names are
// dropped. An empty result falls back to DefaultAssetName.
func AssetFileName(name string, f Format) string {
	return sanitizeName(name) + f.Ext()
}

// sanitizeName implements the name half of AssetFileName.
func sanitizeName(name string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, name)
	if err != nil {
		folded = name
	}
	folded = cases.Lower(language.Und).String(folded)

	var sb strings.Builder
	pendingSep := false
	for _, r := range folded {
		switch {
		case unicode.IsSpace(r):
			pendingSep = sb.Len() > 0
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.':
			if pendingSep {
				sb.WriteByte('_')
				pendingSep = false
			}
			sb.WriteRune(r)
		}
	}

	out := strings.Trim(sb.String(), ".")
	if out == "" {
		return DefaultAssetName
	}
	return out
}
