// Package reel assembles rendered snapshot frames into an animated GIF and
// a side-by-side composite PNG.
package reel

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"chessreel/pkg/label"
	"chessreel/pkg/render"
	"chessreel/pkg/snapshot"
)

// Extractor reads a snapshot file. A nil record with a nil error means the
// file has nothing to render and is skipped without complaint.
type Extractor interface {
	Extract(path string) (*snapshot.Record, error)
}

// Assembler turns an ordered list of snapshots into a GIF and a composite.
type Assembler struct {
	Backend   render.Backend
	Extractor Extractor
	Renderer  *render.Renderer
	Logger    *zap.Logger

	// Duration is how long each frame is shown in the GIF.
	Duration time.Duration
}

// Result summarizes one Assemble run.
type Result struct {
	Frames  int
	Skipped []string
	// Placeholder is set when the backend was unavailable and empty
	// placeholder outputs were written instead.
	Placeholder bool
	// Written is false when no output file was produced.
	Written bool
	// Err collects failures writing the outputs.
	Err error
}

// Assemble renders inputs in order and writes the GIF to gifPath and the
// composite to compositePath. Failures on individual snapshots are logged
// and skipped; the run itself never fails.
func (a *Assembler) Assemble(inputs []string, gifPath, compositePath string) Result {
	log := a.logger()

	if !a.Backend.Available() {
		log.Error("rendering backend is not available, writing placeholder outputs")
		err := WritePlaceholders(gifPath, compositePath)
		if err != nil {
			log.Error("failed to write placeholders", zap.Error(err))
		}
		return Result{Placeholder: true, Written: err == nil, Err: err}
	}

	var (
		res    Result
		frames []image.Image
		temps  []string
	)
	tempDir := filepath.Dir(gifPath)
	for i, input := range inputs {
		step := label.Infer(input, i)
		framePath := filepath.Join(tempDir, fmt.Sprintf("temp_frame_%d.png", i))

		img, err := a.frame(input, framePath, step)
		if _, statErr := os.Stat(framePath); statErr == nil {
			temps = append(temps, framePath)
		}
		if err != nil {
			log.Error("error processing snapshot", zap.String("path", input), zap.Error(err))
			res.Skipped = append(res.Skipped, input)
			continue
		}
		if img == nil {
			log.Debug("nothing to render", zap.String("path", input))
			res.Skipped = append(res.Skipped, input)
			continue
		}
		frames = append(frames, img)
		log.Info(fmt.Sprintf("Rendered frame %d/%d: %s", i+1, len(inputs), step))
	}
	defer removeAll(temps)

	res.Frames = len(frames)
	if len(frames) == 0 {
		log.Info("No images created")
		return res
	}

	var errs []error
	if err := WriteGIF(gifPath, frames, a.duration()); err != nil {
		errs = append(errs, err)
		log.Error("failed to write GIF", zap.String("path", gifPath), zap.Error(err))
	} else {
		res.Written = true
		log.Info(fmt.Sprintf("GIF created: %s with %d frames", gifPath, len(frames)))
	}

	bounds, err := WriteComposite(compositePath, frames)
	if err != nil {
		errs = append(errs, err)
		log.Error("failed to write composite", zap.String("path", compositePath), zap.Error(err))
	} else {
		res.Written = true
		log.Info(fmt.Sprintf("Merged image created: %s (%dx%d)", compositePath, bounds.Dx(), bounds.Dy()))
	}
	res.Err = errors.Join(errs...)
	return res
}

// frame extracts and renders one snapshot. A panic anywhere in the
// pipeline is reported as an error for that snapshot alone.
func (a *Assembler) frame(input, framePath, step string) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	rec, err := a.Extractor.Extract(input)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return a.Renderer.Render(rec, framePath, step)
}

func (a *Assembler) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func (a *Assembler) duration() time.Duration {
	if a.Duration <= 0 {
		return 1500 * time.Millisecond
	}
	return a.Duration
}

// removeAll deletes the temp frames, ignoring failures.
func removeAll(paths []string) {
	for _, p := range paths {
		_ = os.Remove(p)
	}
}
