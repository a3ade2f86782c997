//go:build ebiten

package overlay

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// ScreenSurface adapts an ebiten image to the Surface interface by scaling
// and tinting a shared 1×1 white pixel.
type ScreenSurface struct {
	screen *ebiten.Image
	pixel  *ebiten.Image
}

// NewScreenSurface constructs a surface that draws onto screen.
func NewScreenSurface(screen *ebiten.Image) *ScreenSurface {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &ScreenSurface{screen: screen, pixel: pixel}
}

// Retarget points the surface at a new frame's screen image.
func (s *ScreenSurface) Retarget(screen *ebiten.Image) {
	s.screen = screen
}

// FillRect fills a square of the given side length centered at (cx, cy).
func (s *ScreenSurface) FillRect(cx, cy, size float64, col color.RGBA, alpha float64) {
	if s.screen == nil || size <= 0 || alpha <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(cx-size*0.5, cy-size*0.5)
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, alpha)
	s.screen.DrawImage(s.pixel, op)
}
