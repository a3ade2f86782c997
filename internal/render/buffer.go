package render

import (
	"image/color"
	"math"
)

// BufferSurface is a headless RGBA raster implementing the overlay Surface
// contract: centered square fills with src-over alpha blending. It backs
// tests and the headless sweep tool, where no window exists.
type BufferSurface struct {
	W, H int
	buf  []byte
}

// NewBufferSurface allocates a transparent w×h raster.
func NewBufferSurface(w, h int) *BufferSurface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BufferSurface{W: w, H: h, buf: make([]byte, 4*w*h)}
}

// Pixels exposes the backing RGBA buffer (row-major, 4 bytes per pixel).
func (s *BufferSurface) Pixels() []byte { return s.buf }

// Clear resets the raster to transparent black.
func (s *BufferSurface) Clear() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}

// At returns the stored color of pixel (x, y).
func (s *BufferSurface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.W || y >= s.H {
		return color.RGBA{}
	}
	base := (y*s.W + x) * 4
	return color.RGBA{R: s.buf[base], G: s.buf[base+1], B: s.buf[base+2], A: s.buf[base+3]}
}

// FillRect fills a square of side size centered at (cx, cy), blending col at
// the given fractional alpha over the existing pixels.
func (s *BufferSurface) FillRect(cx, cy, size float64, col color.RGBA, alpha float64) {
	if size <= 0 || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	x0 := int(math.Floor(cx - size*0.5))
	y0 := int(math.Floor(cy - size*0.5))
	x1 := int(math.Ceil(cx + size*0.5))
	y1 := int(math.Ceil(cy + size*0.5))
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > s.W {
		x1 = s.W
	}
	if y1 > s.H {
		y1 = s.H
	}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			base := (y*s.W + x) * 4
			s.buf[base+0] = blend(s.buf[base+0], col.R, alpha)
			s.buf[base+1] = blend(s.buf[base+1], col.G, alpha)
			s.buf[base+2] = blend(s.buf[base+2], col.B, alpha)
			a := float64(s.buf[base+3])/255 + alpha*(1-float64(s.buf[base+3])/255)
			s.buf[base+3] = uint8(math.Round(a * 255))
		}
	}
}

func blend(dst, src uint8, alpha float64) uint8 {
	v := float64(src)*alpha + float64(dst)*(1-alpha)
	if v > 255 {
		v = 255
	}
	return uint8(math.Round(v))
}
