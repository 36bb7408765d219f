// chessframe renders a single snapshot to a PNG frame and opens it, for
// checking one capture without building a whole reel.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"

	"chessreel/pkg/label"
	"chessreel/pkg/render"
	"chessreel/pkg/snapshot"
	"chessreel/pkg/text"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "Usage: %s <snapshot.html> <output.png> [step]\n", os.Args[0])
		os.Exit(1)
	}
	inputFile := os.Args[1]
	outputFile := os.Args[2]

	// Default step label is the one a single-file run would get
	step := label.Infer(filepath.Base(inputFile), 0)
	if len(os.Args) >= 4 {
		step = os.Args[3]
	}

	if err := renderFrame(inputFile, outputFile, step); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully rendered %s to %s\n", inputFile, outputFile)

	// Try to open the output file; ignore errors (e.g. no desktop opener)
	_ = exec.Command(opener(), outputFile).Start()
}

func renderFrame(inputFile, outputFile, step string) error {
	rec, err := snapshot.NewExtractor(nil).Extract(inputFile)
	if err != nil {
		return err
	}

	faces, err := text.LoadFaces(text.DefaultFontConfig(), text.DefaultSizes())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using built-in font\n", err)
	}

	renderer := render.NewRenderer(render.GGBackend{}, faces, "")
	if _, err := renderer.Render(rec, outputFile, step); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	fmt.Printf("Board: %d rows, %d squares\n", len(rec.Board), rec.Squares())
	return nil
}

func opener() string {
	if runtime.GOOS == "darwin" {
		return "open"
	}
	return "xdg-open"
}
