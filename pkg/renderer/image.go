package renderer

import (
	"image"

	"github.com/df07/go-analytic-raytracer/pkg/core"
)

// Image is an RGBA8 pixel buffer, row-major with 4 bytes per pixel.
// Row 0 holds the bottom of the view plane (v = -aspect), which is the
// layout texture uploads expect.
type Image struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewImage allocates a zeroed buffer of width*height*4 bytes
func NewImage(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// PixOffset returns the index of the first byte of pixel (x, y)
func (img *Image) PixOffset(x, y int) int {
	return (x + y*img.Width) * 4
}

// At returns the pixel at (x, y)
func (img *Image) At(x, y int) core.RGBA8 {
	i := img.PixOffset(x, y)
	return core.RGBA8{R: img.Pix[i], G: img.Pix[i+1], B: img.Pix[i+2], A: img.Pix[i+3]}
}

// Set writes a pixel at (x, y)
func (img *Image) Set(x, y int, c core.RGBA8) {
	i := img.PixOffset(x, y)
	img.Pix[i+0] = c.R
	img.Pix[i+1] = c.G
	img.Pix[i+2] = c.B
	img.Pix[i+3] = c.A
}

// ToRGBA copies the buffer into a standard image with +Y pointing up
func (img *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	img.CopyTo(out)
	return out
}

// CopyTo writes the buffer into dst, flipping rows so +Y points up.
// Pixels outside dst's bounds are skipped.
func (img *Image) CopyTo(dst *image.RGBA) {
	bounds := dst.Bounds()
	rowBytes := min(img.Width, bounds.Dx()) * 4
	for y := 0; y < img.Height; y++ {
		row := img.Height - 1 - y
		if row >= bounds.Dy() {
			continue
		}
		src := img.PixOffset(0, y)
		d := dst.PixOffset(bounds.Min.X, bounds.Min.Y+row)
		copy(dst.Pix[d:d+rowBytes], img.Pix[src:src+rowBytes])
	}
}
