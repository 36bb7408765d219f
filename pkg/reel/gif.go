package reel

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"time"

	"chessreel/pkg/render"
)

// placeholderGIF is a GIF89a stream with a 1x1 logical screen, no color
// table and no image: the smallest container GIF readers accept.
var placeholderGIF = []byte{
	'G', 'I', 'F', '8', '9', 'a',
	0x01, 0x00, 0x01, 0x00, // logical screen 1x1
	0x00, // no global color table
	0x00, // background color index
	0x00, // pixel aspect ratio
	0x3b, // trailer
}

// framePalette maps frames to indexed color: the frame palette exactly,
// then the web-safe cube for antialiased text.
var framePalette = func() color.Palette {
	p := color.Palette{
		render.Background,
		render.TextColor,
		render.LightSquare,
		render.DarkSquare,
		render.PieceColor,
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	}
	return append(p, palette.WebSafe...)
}()

// WriteGIF writes frames as an endlessly looping GIF, each frame shown for
// d. Colors are mapped to a fixed palette without dithering so identical
// frames always encode identically.
func WriteGIF(path string, frames []image.Image, d time.Duration) error {
	delay := int(d / (10 * time.Millisecond))
	anim := &gif.GIF{LoopCount: 0}
	for _, frame := range frames {
		anim.Image = append(anim.Image, toPaletted(frame))
		anim.Delay = append(anim.Delay, delay)
		anim.Disposal = append(anim.Disposal, gif.DisposalNone)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	if err := gif.EncodeAll(f, anim); err != nil {
		f.Close()
		return fmt.Errorf("encode gif: %w", err)
	}
	return f.Close()
}

func toPaletted(img image.Image) *image.Paletted {
	b := img.Bounds()
	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), framePalette)
	draw.Draw(p, p.Bounds(), img, b.Min, draw.Src)
	return p
}

// WritePlaceholders writes an empty GIF container to gifPath and an empty
// file to compositePath so consumers expecting both files find them.
func WritePlaceholders(gifPath, compositePath string) error {
	if err := os.WriteFile(gifPath, placeholderGIF, 0o644); err != nil {
		return fmt.Errorf("write placeholder gif: %w", err)
	}
	if err := os.WriteFile(compositePath, nil, 0o644); err != nil {
		return fmt.Errorf("write placeholder composite: %w", err)
	}
	return nil
}
