package overlay

import (
	"gridlock/internal/core"
	"gridlock/pkg/stats"
)

// ReplayHeatmap renders a recorded occupancy frame through the heat ramp.
// Normalization is percentile-based so a single outlier cell does not wash
// out the visible range.
type ReplayHeatmap struct{}

// Draw renders one captured frame. Cell coordinates are recovered with the
// frame's own N and converted to world space with the frame's own ROI, so
// frames stay valid after the live grid changes resolution; only the cell's
// on-screen size comes from the current ROI.
func (h *ReplayHeatmap) Draw(frame *core.Frame, cam core.Camera, current core.ROI, dst Surface) {
	if frame == nil || frame.N <= 0 {
		return
	}

	maxVal := stats.Percentile(stats.Positive(frame.Presence), 0.99)
	if maxVal <= 0 {
		maxVal = 1
	}

	size := current.CellSize * cam.Zoom * 2
	pad := 4 * current.CellSize
	for j, idx := range frame.RoadCells {
		presence := frame.Presence[j]
		if presence <= 0 {
			continue
		}
		x := idx % frame.N
		y := idx / frame.N
		wx, wy := frame.ROI.CellToWorld(x, y)
		if !Visible(wx, wy, cam.Viewport, pad) {
			continue
		}
		t := presence / maxVal
		if t > 1 {
			t = 1
		}
		sx, sy := cam.Proj.WorldToScreen(wx, wy)
		dst.FillRect(sx, sy, size, HeatColor(t), 1)
	}
}
