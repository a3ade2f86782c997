package overlay

import (
	"image/color"

	"gridlock/internal/core"
)

type fillCall struct {
	cx, cy, size float64
	col          color.RGBA
	alpha        float64
}

// recordSurface captures fill calls for assertions.
type recordSurface struct {
	fills []fillCall
}

func (r *recordSurface) FillRect(cx, cy, size float64, col color.RGBA, alpha float64) {
	r.fills = append(r.fills, fillCall{cx: cx, cy: cy, size: size, col: col, alpha: alpha})
}

// testCamera looks at the world rect [0,span]² with the given zoom.
func testCamera(zoom, span float64) core.Camera {
	return core.Camera{
		Zoom:     zoom,
		Viewport: core.Rect{MinX: 0, MinY: 0, MaxX: span, MaxY: span},
		Proj:     core.LinearProjector{Scale: zoom},
	}
}

// factorFn adapts a plain function to core.CongestionModel.
type factorFn func(mass float64) float64

func (f factorFn) Factor(mass float64) float64 { return f(mass) }
