package renderer

import "time"

// RenderStats contains statistics about the last rendered frame
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose ray hit a sphere
	Bands       int           // Scanline bands submitted to the pool
	Workers     int           // Workers used
	Duration    time.Duration // Wall time of the frame
}

// MissPixels returns the number of pixels filled with the background
func (s RenderStats) MissPixels() int {
	return s.TotalPixels - s.HitPixels
}

// Coverage returns the fraction of pixels that hit geometry
func (s RenderStats) Coverage() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// AverageLuminance returns the mean Rec. 709 luminance of an image in [0,1]
func AverageLuminance(img *Image) float64 {
	n := img.Width * img.Height
	if n == 0 {
		return 0
	}

	var total float64
	for i := 0; i < len(img.Pix); i += 4 {
		r := float64(img.Pix[i]) / 255
		g := float64(img.Pix[i+1]) / 255
		b := float64(img.Pix[i+2]) / 255
		total += 0.2126*r + 0.7152*g + 0.0722*b
	}
	return total / float64(n)
}
