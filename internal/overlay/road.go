package overlay

import (
	"image/color"

	"gridlock/internal/core"
)

// Congestion below this normalized level is suppressed entirely rather than
// drawn faintly, keeping near-empty roads visually quiet.
const roadVisibleLevel = 0.1

var roadFill = color.RGBA{R: 200, G: 0, B: 200, A: 255}

// RoadOverlay paints a sparse magenta saturation overlay restricted to the
// precomputed road cell index set.
type RoadOverlay struct{}

// Draw renders the road overlay for one tick. It is mutually exclusive with
// the replay heatmap: when mode is the replay mode it does nothing.
func (o *RoadOverlay) Draw(grid *core.Grid, roi core.ROI, cam core.Camera, th core.Thresholds, mode core.RenderMode, dst Surface) {
	if mode == core.ModeReplay || grid == nil {
		return
	}
	cellPixels := roi.CellSize * cam.Zoom
	if cellPixels < minRoadCellPixels {
		return
	}

	denom := th.DensityRange()
	pad := 2 * roi.CellSize
	for _, idx := range grid.RoadCells {
		eff := grid.Mass[idx] + th.CommuterEquivKg*grid.CommuterLoad[idx]
		level := (eff - th.OnsetThreshold) / denom
		if level < roadVisibleLevel {
			continue
		}
		x, y := grid.Coords(idx)
		wx, wy := roi.CellToWorld(x, y)
		if !Visible(wx, wy, cam.Viewport, pad) {
			continue
		}
		if level > 1 {
			level = 1
		}
		alpha := 0.02 + level*0.06
		sx, sy := cam.Proj.WorldToScreen(wx, wy)
		dst.FillRect(sx, sy, cellPixels, roadFill, alpha)
	}
}
