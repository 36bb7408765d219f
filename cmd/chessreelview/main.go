// chessreelview steps through the frames of a GIF written by chessreel.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"chessreel/pkg/images"
)

// stepper tracks the frame on display.
type stepper struct {
	reel  *images.Reel
	index int
}

func (s *stepper) next() {
	if s.index < len(s.reel.Frames)-1 {
		s.index++
	}
}

func (s *stepper) prev() {
	if s.index > 0 {
		s.index--
	}
}

func (s *stepper) label() string {
	return fmt.Sprintf("frame %d/%d", s.index+1, len(s.reel.Frames))
}

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <out.gif>\n", os.Args[0])
		os.Exit(1)
	}
	path := os.Args[1]

	reel, err := images.LoadReel(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", path, err)
		os.Exit(1)
	}
	if len(reel.Frames) == 0 {
		fmt.Fprintf(os.Stderr, "%s has no frames\n", path)
		os.Exit(1)
	}
	s := &stepper{reel: reel}

	a := app.New()
	w := a.NewWindow("chessreel - " + filepath.Base(path))
	bounds := reel.Frames[0].Bounds()
	w.Resize(fyne.NewSize(float32(bounds.Dx()), float32(bounds.Dy()+60)))

	canvasImg := canvas.NewImageFromImage(reel.Frames[0])
	canvasImg.FillMode = canvas.ImageFillOriginal
	status := widget.NewLabel(s.label())

	show := func() {
		canvasImg.Image = reel.Frames[s.index]
		canvasImg.Refresh()
		status.SetText(s.label())
	}
	prevBtn := widget.NewButton("Prev", func() { s.prev(); show() })
	nextBtn := widget.NewButton("Next", func() { s.next(); show() })

	// Layout: buttons and frame counter on the bottom, frame fills center
	bottom := container.NewHBox(prevBtn, nextBtn, status)
	w.SetContent(container.NewBorder(nil, bottom, nil, nil, canvasImg))
	w.ShowAndRun()
}
