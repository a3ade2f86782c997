package overlay

import (
	"strings"
	"testing"

	"gridlock/internal/core"
)

func liveGrid(n int) *core.Grid {
	g := core.NewGrid(n)
	for i := range g.Region {
		g.Region[i] = core.RegionRoad
	}
	return g
}

func TestLiveLayerSkipsLotCells(t *testing.T) {
	g := liveGrid(4)
	g.Mass[g.Index(1, 1)] = 900
	g.Mass[g.Index(2, 2)] = 900
	g.Region[g.Index(2, 2)] = core.RegionLot

	dst := &recordSurface{}
	layer := &CongestionLayer{Enabled: true}
	roi := core.ROI{CellSize: 1}
	layer.Draw(g, roi, testCamera(4, 4), factorFn(func(float64) float64 { return 0.5 }), dst)

	if len(dst.fills) != 1 {
		t.Fatalf("expected 1 fill, got %d", len(dst.fills))
	}
	wx, wy := roi.CellToWorld(1, 1)
	cam := testCamera(4, 4)
	sx, sy := cam.Proj.WorldToScreen(wx, wy)
	if dst.fills[0].cx != sx || dst.fills[0].cy != sy {
		t.Fatalf("fill at (%v,%v), want (%v,%v)", dst.fills[0].cx, dst.fills[0].cy, sx, sy)
	}
}

func TestLiveLayerAlphaBounds(t *testing.T) {
	for _, factor := range []float64{0, 0.1, 0.375, 0.5, 0.99, 1} {
		g := liveGrid(2)
		g.Mass[0] = 100
		dst := &recordSurface{}
		layer := &CongestionLayer{Enabled: true}
		layer.Draw(g, core.ROI{CellSize: 1}, testCamera(4, 2), factorFn(func(float64) float64 { return factor }), dst)
		if len(dst.fills) != 1 {
			t.Fatalf("factor %v: expected 1 fill, got %d", factor, len(dst.fills))
		}
		a := dst.fills[0].alpha
		if a < 0.2 || a > 0.9 {
			t.Fatalf("factor %v: alpha %v outside [0.2, 0.9]", factor, a)
		}
		want := 0.2 + (1-factor)*0.7
		if diff := a - want; diff > 1e-12 || diff < -1e-12 {
			t.Fatalf("factor %v: alpha %v, want %v", factor, a, want)
		}
	}
}

func TestLiveLayerTinyCellsNoOp(t *testing.T) {
	g := liveGrid(2)
	g.Mass[0] = 100
	dst := &recordSurface{}
	layer := &CongestionLayer{Enabled: true}
	// cellSize 1 at zoom 1.5 gives 1.5 screen pixels, below the 2px minimum.
	layer.Draw(g, core.ROI{CellSize: 1}, testCamera(1.5, 2), factorFn(func(float64) float64 { return 0 }), dst)
	if len(dst.fills) != 0 {
		t.Fatalf("expected no fills for 1.5px cells, got %d", len(dst.fills))
	}
}

func TestLiveLayerDisabledNoOp(t *testing.T) {
	g := liveGrid(2)
	g.Mass[0] = 100
	dst := &recordSurface{}
	layer := &CongestionLayer{}
	layer.Draw(g, core.ROI{CellSize: 1}, testCamera(4, 2), factorFn(func(float64) float64 { return 0 }), dst)
	if len(dst.fills) != 0 {
		t.Fatalf("disabled layer drew %d fills", len(dst.fills))
	}
}

func TestLiveLayerCullsOutsideViewport(t *testing.T) {
	g := liveGrid(8)
	g.Mass[g.Index(7, 7)] = 100
	dst := &recordSurface{}
	layer := &CongestionLayer{Enabled: true}
	// viewport covers [0,2]²; cell (7,7) sits at world 7.5, pad is 2.
	layer.Draw(g, core.ROI{CellSize: 1}, testCamera(4, 2), factorFn(func(float64) float64 { return 0 }), dst)
	if len(dst.fills) != 0 {
		t.Fatalf("culled cell was drawn")
	}
}

func TestLiveLayerDebugLogThrottle(t *testing.T) {
	g := liveGrid(2)
	g.Mass[0] = 100
	var lines []string
	layer := &CongestionLayer{Enabled: true, Logf: func(format string, args ...any) {
		lines = append(lines, format)
	}}
	dst := &recordSurface{}
	for i := 0; i < 120; i++ {
		layer.Draw(g, core.ROI{CellSize: 1}, testCamera(4, 2), factorFn(func(float64) float64 { return 0 }), dst)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 throttled log lines over 120 draws, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "cells with mass") {
		t.Fatalf("unexpected log line %q", lines[0])
	}
}
