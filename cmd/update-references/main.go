package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"chessreel/pkg/label"
	"chessreel/pkg/visualtest"
)

const (
	snapshotDir  = "testdata/snapshots"
	referenceDir = "testdata/reference"
)

// Simple tool to regenerate the reference frames for visual regression tests
func main() {
	if len(os.Args) > 1 {
		fmt.Println("Reference Image Generator for chessreel")
		fmt.Println()
		fmt.Println("Usage (from the repository root):")
		fmt.Println("  go run ./cmd/update-references")
		fmt.Println()
		fmt.Printf("Renders every %s/*.html to %s/*.png.\n", snapshotDir, referenceDir)
		os.Exit(1)
	}

	n, err := generateReferences(snapshotDir, referenceDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ %d reference images generated successfully\n", n)
}

// generateReferences renders each snapshot with the step label a chessreel
// run over the whole directory would give it.
func generateReferences(srcDir, dstDir string) (int, error) {
	paths, err := filepath.Glob(filepath.Join(srcDir, "*.html"))
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no snapshots found in %s", srcDir)
	}

	for i, htmlPath := range paths {
		name := strings.TrimSuffix(filepath.Base(htmlPath), ".html")
		refPath := filepath.Join(dstDir, name+".png")
		step := label.Infer(filepath.Base(htmlPath), i)
		if err := visualtest.UpdateReferenceImage(htmlPath, refPath, step); err != nil {
			return i, fmt.Errorf("failed to generate %s: %w", refPath, err)
		}
	}
	return len(paths), nil
}
