package imageloader

import (
	"image"
	"image/color"
	"time"

	"golang.org/x/image/draw"
)

// DefaultCrossfade is how long an arriving avatar takes to fade in.
const DefaultCrossfade = 300 * time.Millisecond

// CircleCrop center-crops src to a square, scales it to diameter and clears
// every pixel outside the inscribed circle.
func CircleCrop(src image.Image, diameter int) *image.RGBA {
	if diameter <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	b := src.Bounds()
	side := min(b.Dx(), b.Dy())
	square := image.Rect(
		b.Min.X+(b.Dx()-side)/2,
		b.Min.Y+(b.Dy()-side)/2,
		b.Min.X+(b.Dx()-side)/2+side,
		b.Min.Y+(b.Dy()-side)/2+side,
	)

	dst := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, square, draw.Src, nil)

	r := float64(diameter) / 2
	for y := 0; y < diameter; y++ {
		for x := 0; x < diameter; x++ {
			dx := float64(x) + 0.5 - r
			dy := float64(y) + 0.5 - r
			if dx*dx+dy*dy > r*r {
				dst.SetRGBA(x, y, color.RGBA{})
			}
		}
	}

	return dst
}

// CrossfadeAlpha is the opacity of an image that became ready at readyAt.
// It ramps linearly from 0 to 255 over d.
func CrossfadeAlpha(readyAt, now time.Time, d time.Duration) uint8 {
	if d <= 0 {
		return 255
	}
	elapsed := now.Sub(readyAt)
	if elapsed <= 0 {
		return 0
	}
	if elapsed >= d {
		return 255
	}
	return uint8(255 * elapsed / d)
}
