// Package images reads back the PNG and GIF files chessreel produces.
package images

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	_ "image/png"
	"os"
)

// LoadImage decodes the image at path. For a GIF this is the first frame.
func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Reel is a decoded animation.
type Reel struct {
	Frames []image.Image
	// Delays holds each frame's display time in 1/100 s.
	Delays []int
	// LoopCount follows image/gif: 0 loops forever, -1 plays once.
	LoopCount int
}

// LoadReel decodes every frame of the GIF at path. Frames are composed onto
// the logical screen so each one is a complete picture.
func LoadReel(path string) (*Reel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	g, err := gif.DecodeAll(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	canvas := image.NewRGBA(screen)
	reel := &Reel{Delays: g.Delay, LoopCount: g.LoopCount}
	for _, frame := range g.Image {
		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		snap := image.NewRGBA(screen)
		draw.Draw(snap, screen, canvas, image.Point{}, draw.Src)
		reel.Frames = append(reel.Frames, snap)
	}
	return reel, nil
}

// GetImageDimensions returns the width and height of an image
func GetImageDimensions(path string) (width, height int, err error) {
	img, err := LoadImage(path)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
