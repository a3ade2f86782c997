package core

// LinearProjector is the standard world-to-screen mapping: uniform scale
// plus a pixel offset. It satisfies Projector.
type LinearProjector struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// WorldToScreen maps a world position to screen pixels.
func (p LinearProjector) WorldToScreen(wx, wy float64) (float64, float64) {
	return wx*p.Scale + p.OffsetX, wy*p.Scale + p.OffsetY
}

// NewCamera builds a camera whose viewport covers a screenW×screenH pixel
// window looking at the world with the given zoom and world-space top-left
// corner.
func NewCamera(zoom, worldX, worldY float64, screenW, screenH int) Camera {
	if zoom <= 0 {
		zoom = 1
	}
	return Camera{
		Zoom: zoom,
		Viewport: Rect{
			MinX: worldX,
			MinY: worldY,
			MaxX: worldX + float64(screenW)/zoom,
			MaxY: worldY + float64(screenH)/zoom,
		},
		Proj: LinearProjector{
			Scale:   zoom,
			OffsetX: -worldX * zoom,
			OffsetY: -worldY * zoom,
		},
	}
}
