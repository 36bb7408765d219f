// Package render paints snapshot records as review frames.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"chessreel/pkg/snapshot"
	"chessreel/pkg/text"
)

// DefaultTitle heads every frame.
const DefaultTitle = "Chess Game - Persistence Example"

// Frame geometry.
const (
	FrameWidth  = 900
	FrameHeight = 750
	SquareSize  = 60
	BoardX      = 150
	BoardY      = 150

	marginX     = 50
	titleY      = 30
	infoY       = 70
	infoSpacing = 25
	pieceLift   = 5
)

// Palette of every frame.
var (
	Background  = color.RGBA{0xf5, 0xf5, 0xf5, 0xff}
	TextColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
	LightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	DarkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}
	PieceColor  = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

// ErrUnavailable is returned when rendering with a backend that cannot draw.
var ErrUnavailable = errors.New("render: backend unavailable")

// Renderer draws frames with a backend and a set of faces.
type Renderer struct {
	backend Backend
	faces   *text.Faces
	title   string
}

// NewRenderer returns a Renderer. An empty title selects DefaultTitle.
func NewRenderer(backend Backend, faces *text.Faces, title string) *Renderer {
	if title == "" {
		title = DefaultTitle
	}
	return &Renderer{backend: backend, faces: faces, title: title}
}

// Render paints rec, saves it as a PNG at path and returns the frame.
// A nil rec produces no frame and no error. step, when non-empty, is
// appended to the title.
func (r *Renderer) Render(rec *snapshot.Record, path, step string) (image.Image, error) {
	if rec == nil {
		return nil, nil
	}
	canvas, err := r.Paint(rec, step)
	if err != nil {
		return nil, err
	}
	if err := canvas.SavePNG(path); err != nil {
		return nil, fmt.Errorf("save frame: %w", err)
	}
	return canvas.Image(), nil
}

// Paint draws rec onto a fresh canvas without persisting it.
func (r *Renderer) Paint(rec *snapshot.Record, step string) (Canvas, error) {
	if !r.backend.Available() {
		return nil, ErrUnavailable
	}
	canvas := r.backend.NewCanvas(FrameWidth, FrameHeight)
	canvas.Clear(Background)

	title := r.title
	if step != "" {
		title += " - " + step
	}
	canvas.DrawText(title, marginX, titleY, r.faces.Title, TextColor)

	y := float64(infoY)
	for _, line := range infoLines(rec) {
		canvas.DrawText(line, marginX, y, r.faces.Info, TextColor)
		y += infoSpacing
	}

	r.drawBoard(canvas, rec.Board)
	return canvas, nil
}

// infoLines returns the metadata lines for the non-empty fields of rec.
func infoLines(rec *snapshot.Record) []string {
	var lines []string
	if rec.GameID != "" {
		lines = append(lines, "Game ID: "+rec.GameID)
	}
	if rec.GameType != "" {
		lines = append(lines, "Game Type: "+rec.GameType)
	}
	if rec.LastUpdated != "" {
		lines = append(lines, "Last Updated: "+rec.LastUpdated)
	}
	return lines
}

// SquareColor returns the fill of the square at row, col.
func SquareColor(row, col int) color.RGBA {
	if (row+col)%2 == 0 {
		return LightSquare
	}
	return DarkSquare
}

func (r *Renderer) drawBoard(canvas Canvas, board [][]string) {
	for row, cells := range board {
		for col, glyph := range cells {
			x := float64(BoardX + col*SquareSize)
			y := float64(BoardY + row*SquareSize)
			canvas.FillRect(x, y, SquareSize, SquareSize, SquareColor(row, col))

			piece := strings.TrimSpace(glyph)
			if piece == "" {
				continue
			}
			// Unmeasurable glyphs are drawn from the square's middle.
			w, h, ok := canvas.MeasureText(piece, r.faces.Piece)
			if !ok {
				w, h = 0, 0
			}
			px := x + float64(int(SquareSize-w)/2)
			py := y + float64(int(SquareSize-h)/2) - pieceLift
			canvas.DrawText(piece, px, py, r.faces.Piece, PieceColor)
		}
	}
}
