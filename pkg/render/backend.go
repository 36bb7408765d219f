package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"chessreel/pkg/text"
)

// Canvas is the drawing surface a frame is painted on.
type Canvas interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// DrawText draws s with the top of the face's ascent at y.
	DrawText(s string, x, y float64, face *text.Face, c color.Color)
	// MeasureText returns the ink extent of s. ok is false when the face
	// cannot measure s.
	MeasureText(s string, face *text.Face) (w, h float64, ok bool)
	Image() image.Image
	SavePNG(path string) error
}

// Backend creates canvases. A backend that is not Available cannot
// produce frames at all.
type Backend interface {
	Available() bool
	NewCanvas(width, height int) Canvas
}

// GGBackend draws with github.com/fogleman/gg.
type GGBackend struct{}

func (GGBackend) Available() bool { return true }

func (GGBackend) NewCanvas(width, height int) Canvas {
	return &ggCanvas{context: gg.NewContext(width, height)}
}

// NullBackend is a backend with no drawing capability.
type NullBackend struct{}

func (NullBackend) Available() bool { return false }

func (NullBackend) NewCanvas(width, height int) Canvas { return nil }

// NewBackend returns the backend named by kind: "auto" or "gg" for
// GGBackend, "none" for NullBackend.
func NewBackend(kind string) Backend {
	if kind == "none" {
		return NullBackend{}
	}
	return GGBackend{}
}

type ggCanvas struct {
	context *gg.Context
}

func (c *ggCanvas) Clear(col color.Color) {
	c.context.SetColor(col)
	c.context.Clear()
}

func (c *ggCanvas) FillRect(x, y, w, h float64, col color.Color) {
	c.context.SetColor(col)
	c.context.DrawRectangle(x, y, w, h)
	c.context.Fill()
}

func (c *ggCanvas) DrawText(s string, x, y float64, face *text.Face, col color.Color) {
	c.context.SetFontFace(face)
	c.context.SetColor(col)
	// gg draws on the baseline
	c.context.DrawString(s, x, y+float64(face.Metrics().Ascent)/64)
}

func (c *ggCanvas) MeasureText(s string, face *text.Face) (float64, float64, bool) {
	return text.Measure(face, s)
}

func (c *ggCanvas) Image() image.Image {
	return c.context.Image()
}

func (c *ggCanvas) SavePNG(path string) error {
	return c.context.SavePNG(path)
}
