package loaders

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/df07/go-analytic-raytracer/pkg/renderer"
)

// EncodePNG writes the rendered buffer as a PNG with +Y pointing up
func EncodePNG(w io.Writer, img *renderer.Image) error {
	if err := png.Encode(w, img.ToRGBA()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the rendered buffer to a PNG file, creating parent
// directories as needed
func SavePNG(filename string, img *renderer.Image) error {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := EncodePNG(file, img); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
