package text

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// System DejaVu fonts preferred for frame text.
const (
	DejaVuRegular = "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"
	DejaVuBold    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
)

// FontConfig holds paths to font files used for frame text.
type FontConfig struct {
	Regular string
	Bold    string
}

// DefaultFontConfig returns the system DejaVu fonts.
func DefaultFontConfig() FontConfig {
	return FontConfig{Regular: DejaVuRegular, Bold: DejaVuBold}
}

// Sizes are the point sizes of each text role on a frame.
type Sizes struct {
	Title float64
	Text  float64
	Info  float64
	Piece float64
}

// DefaultSizes returns the sizes used on review frames.
func DefaultSizes() Sizes {
	return Sizes{Title: 24, Text: 14, Info: 12, Piece: 40}
}

// Face is a font face that knows which runes it has glyphs for.
type Face struct {
	font.Face
	covers func(r rune) bool
}

// Covers reports whether the face has a glyph for every rune of s.
func (f *Face) Covers(s string) bool {
	for _, r := range s {
		if !f.covers(r) {
			return false
		}
	}
	return true
}

// Faces holds one face per text role.
type Faces struct {
	Title *Face // bold
	Text  *Face
	Info  *Face
	Piece *Face

	// Fallback is set when the configured fonts could not be loaded and
	// every role uses the built-in bitmap face.
	Fallback bool
}

// LoadFaces loads the configured fonts at the given sizes. If either font
// cannot be loaded every role falls back to basicfont.Face7x13; the
// returned error explains why, but the Faces are always usable.
func LoadFaces(fc FontConfig, sz Sizes) (*Faces, error) {
	regular, err := loadFont(fc.Regular)
	if err != nil {
		return FallbackFaces(), err
	}
	bold, err := loadFont(fc.Bold)
	if err != nil {
		return FallbackFaces(), err
	}
	return &Faces{
		Title: newTrueTypeFace(bold, sz.Title),
		Text:  newTrueTypeFace(regular, sz.Text),
		Info:  newTrueTypeFace(regular, sz.Info),
		Piece: newTrueTypeFace(regular, sz.Piece),
	}, nil
}

// FallbackFaces returns the unstyled built-in face for every role.
func FallbackFaces() *Faces {
	f := &Face{Face: basicfont.Face7x13, covers: basicCovers(basicfont.Face7x13)}
	return &Faces{Title: f, Text: f, Info: f, Piece: f, Fallback: true}
}

func loadFont(path string) (*truetype.Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	return f, nil
}

func newTrueTypeFace(f *truetype.Font, points float64) *Face {
	return &Face{
		Face: truetype.NewFace(f, &truetype.Options{Size: points}),
		covers: func(r rune) bool {
			return f.Index(r) != 0
		},
	}
}

func basicCovers(f *basicfont.Face) func(rune) bool {
	return func(r rune) bool {
		for _, rng := range f.Ranges {
			if rng.Low <= r && r < rng.High {
				return true
			}
		}
		return false
	}
}
