package overlay

import (
	"image/color"

	"gridlock/internal/core"
)

// Minimum on-screen cell size in pixels below which a layer skips drawing
// entirely; sub-pixel cells are illegible and only cost fill time.
const (
	minLiveCellPixels = 2.0
	minRoadCellPixels = 1.0
)

const debugEvery = 60

var liveFill = color.RGBA{R: 0, G: 255, B: 255, A: 255}

// CongestionLayer paints one translucent cyan square per occupied,
// traversable cell, with intensity driven by the injected congestion model.
// Each instance owns its own frame counter so concurrent overlays or test
// runs never interfere with each other's log throttling.
type CongestionLayer struct {
	Enabled bool
	Logf    Logf

	frame uint64
}

// Draw renders the live congestion overlay for one tick. The grid snapshot
// and camera are borrowed read-only for the duration of the call.
func (l *CongestionLayer) Draw(grid *core.Grid, roi core.ROI, cam core.Camera, model core.CongestionModel, dst Surface) {
	if !l.Enabled || grid == nil || model == nil {
		return
	}
	l.frame++
	debugDue := l.frame%debugEvery == 0

	cellPixels := roi.CellSize * cam.Zoom
	if cellPixels < minLiveCellPixels {
		if debugDue {
			l.logf("congestion layer idle: cell %.2fpx below %.0fpx minimum", cellPixels, minLiveCellPixels)
		}
		return
	}

	pad := 2 * roi.CellSize
	cellsWithMass := 0
	cellsDrawn := 0
	for i, mass := range grid.Mass {
		if mass <= 0 {
			continue
		}
		cellsWithMass++
		if grid.Region[i] == core.RegionLot {
			continue
		}
		x, y := grid.Coords(i)
		wx, wy := roi.CellToWorld(x, y)
		if !Visible(wx, wy, cam.Viewport, pad) {
			continue
		}
		intensity := 1 - model.Factor(mass)
		alpha := 0.2 + intensity*0.7
		sx, sy := cam.Proj.WorldToScreen(wx, wy)
		dst.FillRect(sx, sy, cellPixels, liveFill, alpha)
		cellsDrawn++
	}
	if debugDue {
		l.logf("congestion layer: %d cells with mass, %d drawn", cellsWithMass, cellsDrawn)
	}
}

func (l *CongestionLayer) logf(format string, args ...any) {
	if l.Logf != nil {
		l.Logf(format, args...)
	}
}
