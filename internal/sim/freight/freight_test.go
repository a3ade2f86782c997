package freight

import (
	"testing"

	"gridlock/internal/core"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.N = 32
	cfg.Params.TruckCount = 40
	cfg.RecordEvery = 2
	return cfg
}

func TestRoadIndexRestrictedToRoads(t *testing.T) {
	sim := New(testConfig())
	grid := sim.Snapshot()
	if len(grid.RoadCells) == 0 {
		t.Fatalf("no road cells laid out")
	}
	for _, idx := range grid.RoadCells {
		if grid.Region[idx] != core.RegionRoad {
			t.Fatalf("road index contains non-road cell %d (%d)", idx, grid.Region[idx])
		}
	}
}

func TestMassAccountsForEveryTruck(t *testing.T) {
	cfg := testConfig()
	sim := New(cfg)
	for i := 0; i < 50; i++ {
		sim.Step()
	}
	grid := sim.Snapshot()
	total := 0.0
	for _, m := range grid.Mass {
		total += m
	}
	// every truck carries at least the minimum payload somewhere on the field
	min := float64(cfg.Params.TruckCount) * cfg.Params.PayloadMin
	max := float64(cfg.Params.TruckCount) * cfg.Params.PayloadMax
	if total < min || total > max {
		t.Fatalf("total mass %v outside [%v, %v]", total, min, max)
	}
}

func TestTrucksStayOnNetwork(t *testing.T) {
	sim := New(testConfig())
	for i := 0; i < 200; i++ {
		sim.Step()
	}
	grid := sim.Snapshot()
	for i, m := range grid.Mass {
		if m <= 0 {
			continue
		}
		r := grid.Region[i]
		if r != core.RegionRoad && r != core.RegionLot {
			t.Fatalf("mass on %v cell %d", r, i)
		}
	}
}

func TestDeterministicBySeed(t *testing.T) {
	a := New(testConfig())
	b := New(testConfig())
	for i := 0; i < 100; i++ {
		a.Step()
		b.Step()
	}
	ga, gb := a.Snapshot(), b.Snapshot()
	for i := range ga.Mass {
		if ga.Mass[i] != gb.Mass[i] {
			t.Fatalf("same seed diverged at cell %d", i)
		}
	}
}

func TestRecorderCapturesAtCadence(t *testing.T) {
	sim := New(testConfig())
	for i := 0; i < 20; i++ {
		sim.Step()
	}
	if got := sim.Recorder().Len(); got != 10 {
		t.Fatalf("captured %d frames over 20 ticks at every=2, want 10", got)
	}
	f := sim.Recorder().Frame(0)
	if f == nil || f.N != 32 || len(f.RoadCells) != len(f.Presence) {
		t.Fatalf("malformed frame: %+v", f)
	}
}

func TestQueueZonePredicate(t *testing.T) {
	sim := New(testConfig())
	roi := sim.ROI()
	// first lot entrance on the top ring stretch: cell (inset+2, inset)
	wx, wy := roi.CellToWorld(6, 4)
	if !sim.InQueueZone(wx, wy) {
		t.Fatalf("lot-front road cell not in queue zone")
	}
	wx, wy = roi.CellToWorld(16, 16)
	if sim.InQueueZone(wx, wy) {
		t.Fatalf("mid-network cell wrongly in queue zone")
	}
	if sim.InQueueZone(-1e6, -1e6) {
		t.Fatalf("far outside position wrongly in queue zone")
	}
}

func TestQueueZoneBoostsCommuterLoad(t *testing.T) {
	cfg := testConfig()
	sim := New(cfg)
	grid := sim.Snapshot()
	queueIdx := grid.Index(6, 4)
	plainIdx := grid.Index(16, 16)
	if grid.CommuterLoad[queueIdx] <= grid.CommuterLoad[plainIdx] {
		t.Fatalf("queue zone load %v not above baseline %v",
			grid.CommuterLoad[queueIdx], grid.CommuterLoad[plainIdx])
	}
}

func TestCongestionModelContract(t *testing.T) {
	m := JamModel{JamMass: 5000}
	if m.Factor(0) != 0 {
		t.Fatalf("empty cell must be uncongested")
	}
	if m.Factor(1e9) != 1 {
		t.Fatalf("overload must clamp to 1")
	}
	// more mass means more congestion, never less
	prev := 0.0
	for mass := 0.0; mass <= 10000; mass += 500 {
		f := m.Factor(mass)
		if f < prev {
			t.Fatalf("factor fell from %v to %v at mass %v", prev, f, mass)
		}
		if f < 0 || f > 1 {
			t.Fatalf("factor %v outside [0,1]", f)
		}
		prev = f
	}
}

func TestDwellTimesPopulate(t *testing.T) {
	cfg := testConfig()
	cfg.Params.LotAdmitChance = 1
	sim := New(cfg)
	for i := 0; i < 100; i++ {
		sim.Step()
	}
	dwell := sim.DwellTimes()
	if len(dwell) == 0 {
		t.Fatalf("no dwell times recorded with certain admission")
	}
	for _, d := range dwell {
		if d < 1 || d > cfg.Params.DwellMax {
			t.Fatalf("dwell %v outside [1, %v]", d, cfg.Params.DwellMax)
		}
	}
}
