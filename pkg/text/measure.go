// Package text loads the fonts used on review frames and measures strings
// drawn with them.
package text

import (
	"golang.org/x/image/font"
)

// Measure returns the ink extent of s drawn with face. ok is false when the
// face lacks a glyph for some rune of s, in which case the extent would be
// that of replacement glyphs and is not reported.
func Measure(face *Face, s string) (width, height float64, ok bool) {
	if s == "" || !face.Covers(s) {
		return 0, 0, false
	}
	bounds, _ := font.BoundString(face, s)
	width = float64(bounds.Max.X-bounds.Min.X) / 64
	height = float64(bounds.Max.Y-bounds.Min.Y) / 64
	return width, height, true
}
