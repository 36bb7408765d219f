package visualtest

import (
	"fmt"
	"os"
	"path/filepath"

	"chessreel/pkg/render"
	"chessreel/pkg/snapshot"
	"chessreel/pkg/text"
)

// RenderSnapshotFile renders the snapshot at htmlPath to a PNG frame at
// outputPath the way a chessreel run would, titled with step.
func RenderSnapshotFile(htmlPath, outputPath, step string, faces *text.Faces) error {
	rec, err := snapshot.NewExtractor(nil).Extract(htmlPath)
	if err != nil {
		return fmt.Errorf("extract error: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	renderer := render.NewRenderer(render.GGBackend{}, faces, "")
	if _, err := renderer.Render(rec, outputPath, step); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	return nil
}

// ReferenceFaces returns the faces reference frames are drawn with: the
// built-in bitmap face, so references do not depend on installed fonts.
func ReferenceFaces() *text.Faces {
	return text.FallbackFaces()
}

// UpdateReferenceImage generates a new reference image
// Use this when you've intentionally changed rendering behavior
func UpdateReferenceImage(htmlPath, referencePath, step string) error {
	fmt.Printf("Updating reference image: %s\n", referencePath)
	return RenderSnapshotFile(htmlPath, referencePath, step, ReferenceFaces())
}
