package core

import "testing"

func TestGridIndexing(t *testing.T) {
	g := NewGrid(8)
	idx := g.Index(3, 5)
	if idx != 5*8+3 {
		t.Fatalf("Index(3,5) = %d", idx)
	}
	x, y := g.Coords(idx)
	if x != 3 || y != 5 {
		t.Fatalf("Coords round trip gave (%d,%d)", x, y)
	}
}

func TestBuildRoadIndex(t *testing.T) {
	g := NewGrid(4)
	g.Region[g.Index(1, 0)] = RegionRoad
	g.Region[g.Index(2, 3)] = RegionRoad
	g.Region[g.Index(0, 0)] = RegionLot
	g.BuildRoadIndex()
	if len(g.RoadCells) != 2 {
		t.Fatalf("road index has %d entries", len(g.RoadCells))
	}
	if g.RoadCells[0] != g.Index(1, 0) || g.RoadCells[1] != g.Index(2, 3) {
		t.Fatalf("road index out of order: %v", g.RoadCells)
	}
}

func TestROIRoundTrip(t *testing.T) {
	roi := ROI{CellSize: 4, OriginX: 100, OriginY: -20}
	wx, wy := roi.CellToWorld(3, 7)
	if wx != 114 || wy != 10 {
		t.Fatalf("CellToWorld = (%v,%v)", wx, wy)
	}
	x, y := roi.WorldToCell(wx, wy)
	if x != 3 || y != 7 {
		t.Fatalf("WorldToCell round trip gave (%d,%d)", x, y)
	}
}

func TestThresholdsDensityRangeFallback(t *testing.T) {
	th := Thresholds{OnsetThreshold: 10, RoadCapacity: 10}
	if th.DensityRange() != 1 {
		t.Fatalf("degenerate range must fall back to 1")
	}
	th = Thresholds{OnsetThreshold: 2, RoadCapacity: 10}
	if th.DensityRange() != 8 {
		t.Fatalf("DensityRange = %v", th.DensityRange())
	}
}

func TestRecorderCadence(t *testing.T) {
	rec := NewRecorder(2)
	cells := []int{1, 2, 3}
	presence := []float64{0, 1, 2}
	roi := ROI{CellSize: 1}
	for i := 0; i < 6; i++ {
		rec.Observe(cells, presence, roi, 4)
	}
	if rec.Len() != 3 {
		t.Fatalf("captured %d frames, want 3", rec.Len())
	}
}

func TestRecorderFramesAreImmutable(t *testing.T) {
	rec := NewRecorder(1)
	cells := []int{1, 2}
	presence := []float64{5, 6}
	rec.Observe(cells, presence, ROI{CellSize: 1}, 4)
	presence[0] = 999
	cells[1] = 999
	f := rec.Frame(0)
	if f.Presence[0] != 5 || f.RoadCells[1] != 2 {
		t.Fatalf("frame shares state with the live slices: %v %v", f.Presence, f.RoadCells)
	}
}

func TestRecorderOutOfRangeFrame(t *testing.T) {
	rec := NewRecorder(1)
	if rec.Frame(0) != nil || rec.Frame(-1) != nil {
		t.Fatalf("out-of-range frame must be nil")
	}
}

func TestRecorderRejectsMisalignedPresence(t *testing.T) {
	rec := NewRecorder(1)
	rec.Observe([]int{1, 2, 3}, []float64{1}, ROI{}, 4)
	if rec.Len() != 0 {
		t.Fatalf("misaligned presence was captured")
	}
}

func TestNewCameraProjection(t *testing.T) {
	cam := NewCamera(2, 10, 20, 200, 100)
	if cam.Viewport.MaxX != 110 || cam.Viewport.MaxY != 70 {
		t.Fatalf("viewport = %+v", cam.Viewport)
	}
	sx, sy := cam.Proj.WorldToScreen(10, 20)
	if sx != 0 || sy != 0 {
		t.Fatalf("world top-left maps to (%v,%v), want origin", sx, sy)
	}
	sx, sy = cam.Proj.WorldToScreen(60, 45)
	if sx != 100 || sy != 50 {
		t.Fatalf("world center maps to (%v,%v)", sx, sy)
	}
}
