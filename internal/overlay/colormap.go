package overlay

import (
	"image/color"
	"math"
)

// HeatColor maps a normalized scalar to the blue→cyan→green→yellow→red heat
// ramp. Four equal-width segments, each linear in a single channel, rounded
// to the nearest integer and continuous at the segment boundaries.
//
// Precondition: t must already be in [0, 1]; the mapper does not clamp.
func HeatColor(t float64) color.RGBA {
	var r, g, b float64
	switch {
	case t < 0.25:
		// green rises, blue full
		g = 255 * t / 0.25
		b = 255
	case t < 0.5:
		// blue falls, green full
		g = 255
		b = 255 * (0.5 - t) / 0.25
	case t < 0.75:
		// red rises, green full
		r = 255 * (t - 0.5) / 0.25
		g = 255
	default:
		// green falls, red full
		r = 255
		g = 255 * (1 - t) / 0.25
	}
	return color.RGBA{
		R: uint8(math.Round(r)),
		G: uint8(math.Round(g)),
		B: uint8(math.Round(b)),
		A: 255,
	}
}
