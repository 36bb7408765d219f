package reel

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// WriteComposite pastes frames left to right on a white PNG. Every frame is
// assumed to have the size of the first; frame i starts at i*width.
func WriteComposite(path string, frames []image.Image) (image.Rectangle, error) {
	if len(frames) == 0 {
		return image.Rectangle{}, fmt.Errorf("composite: no frames")
	}
	fw := frames[0].Bounds().Dx()
	fh := frames[0].Bounds().Dy()

	dc := gg.NewContext(fw*len(frames), fh)
	dc.SetColor(color.White)
	dc.Clear()
	for i, frame := range frames {
		dc.DrawImage(frame, i*fw, 0)
	}
	if err := dc.SavePNG(path); err != nil {
		return image.Rectangle{}, fmt.Errorf("save composite: %w", err)
	}
	return image.Rect(0, 0, fw*len(frames), fh), nil
}
