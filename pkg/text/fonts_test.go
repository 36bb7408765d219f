package text

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDejaVu(t *testing.T) {
	t.Helper()
	for _, p := range []string{DejaVuRegular, DejaVuBold} {
		if _, err := os.Stat(p); err != nil {
			t.Skipf("system font not installed: %s", p)
		}
	}
}

func TestLoadFaces_MissingFontFallsBack(t *testing.T) {
	fc := FontConfig{
		Regular: filepath.Join(t.TempDir(), "missing.ttf"),
		Bold:    DejaVuBold,
	}
	faces, err := LoadFaces(fc, DefaultSizes())
	assert.Error(t, err)
	require.NotNil(t, faces)
	assert.True(t, faces.Fallback)
	assert.NotNil(t, faces.Title)
	assert.NotNil(t, faces.Piece)
}

func TestLoadFaces_CorruptFontFallsBack(t *testing.T) {
	bad := filepath.Join(t.TempDir(), "bad.ttf")
	require.NoError(t, os.WriteFile(bad, []byte("not a font"), 0o644))

	faces, err := LoadFaces(FontConfig{Regular: bad, Bold: bad}, DefaultSizes())
	assert.Error(t, err)
	assert.True(t, faces.Fallback)
}

func TestLoadFaces_DejaVu(t *testing.T) {
	requireDejaVu(t)

	faces, err := LoadFaces(DefaultFontConfig(), DefaultSizes())
	require.NoError(t, err)
	assert.False(t, faces.Fallback)
	assert.True(t, faces.Piece.Covers("♔♛"))
}

func TestMeasure_FallbackFace(t *testing.T) {
	f := FallbackFaces().Info

	w, h, ok := Measure(f, "Game ID")
	require.True(t, ok)
	assert.Greater(t, w, 0.0)
	assert.Greater(t, h, 0.0)

	// Chess glyphs are outside the bitmap face's ranges.
	_, _, ok = Measure(f, "♔")
	assert.False(t, ok)
}

func TestMeasure_Empty(t *testing.T) {
	_, _, ok := Measure(FallbackFaces().Text, "")
	assert.False(t, ok)
}

func TestMeasure_PieceFitsSquare(t *testing.T) {
	requireDejaVu(t)

	faces, err := LoadFaces(DefaultFontConfig(), DefaultSizes())
	require.NoError(t, err)

	w, h, ok := Measure(faces.Piece, "♞")
	require.True(t, ok)
	assert.Greater(t, w, 10.0)
	assert.Less(t, w, 60.0)
	assert.Greater(t, h, 10.0)
	assert.Less(t, h, 60.0)
}
