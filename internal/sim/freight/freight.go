// Package freight implements a small freight-and-commuter traffic scenario
// that feeds the overlay renderer: trucks random-walk a ring-and-cross road
// network, pull into lots for triangular-distributed dwell times, and leave
// the field through sink cells.
package freight

import (
	"math/rand/v2"

	"gridlock/internal/core"
	"gridlock/pkg/stats"
)

func init() {
	core.Register("freight", func(cfg map[string]string) core.Scenario {
		return New(FromMap(cfg))
	})
}

var (
	_ core.Scenario  = (*Sim)(nil)
	_ core.QueueZone = (*Sim)(nil)
)

type truck struct {
	cell    int
	prev    int
	payload float64
	// dwell counts remaining ticks inside a lot; 0 means on the road.
	dwell int
}

// Sim is the freight scenario state.
type Sim struct {
	cfg  Config
	grid *core.Grid
	roi  core.ROI

	trucks    []truck
	presence  []float64
	queueSet  map[int]bool
	lotByRoad map[int]int
	roadSlot  map[int]int
	neighbors [][]int

	recorder *core.Recorder
	dwellRNG *stats.Triangular
	payRNG   *stats.Triangular
	r        *rand.Rand

	// dwellLog keeps completed lot dwell times for service-time reporting.
	dwellLog []float64
}

// New constructs the scenario and lays out its road network.
func New(cfg Config) *Sim {
	if cfg.N <= 0 {
		cfg.N = DefaultConfig().N
	}
	if cfg.CellSize <= 0 {
		cfg.CellSize = DefaultConfig().CellSize
	}
	s := &Sim{
		cfg:      cfg,
		grid:     core.NewGrid(cfg.N),
		roi:      core.ROI{CellSize: cfg.CellSize},
		recorder: core.NewRecorder(cfg.RecordEvery),
	}
	s.layout()
	s.Reset(cfg.Seed)
	return s
}

// Name identifies the scenario in the registry.
func (s *Sim) Name() string { return "freight" }

// ROI returns the live region of interest.
func (s *Sim) ROI() core.ROI { return s.roi }

// Snapshot exposes the current field. The caller must treat it as read-only
// for the duration of one draw call.
func (s *Sim) Snapshot() *core.Grid { return s.grid }

// Thresholds returns the congestion tuning for the overlays.
func (s *Sim) Thresholds() core.Thresholds { return s.cfg.Thresholds }

// Congestion returns the scenario's congestion model.
func (s *Sim) Congestion() core.CongestionModel {
	return JamModel{JamMass: s.cfg.Params.JamMass}
}

// Recorder exposes the replay frame recorder.
func (s *Sim) Recorder() *core.Recorder { return s.recorder }

// DwellTimes returns completed lot dwell durations in ticks, for
// service-time percentile reporting.
func (s *Sim) DwellTimes() []float64 { return s.dwellLog }

// layout builds the ring-and-cross road network with lots hugging the ring
// and sinks where the cross streets meet the border, then caches the road
// index set and per-road-cell adjacency.
func (s *Sim) layout() {
	n := s.grid.N
	inset := n / 8
	mid := n / 2

	road := func(x, y int) {
		s.grid.Region[s.grid.Index(x, y)] = core.RegionRoad
	}
	for i := inset; i < n-inset; i++ {
		road(i, inset)
		road(i, n-1-inset)
		road(inset, i)
		road(n-1-inset, i)
	}
	for i := 0; i < n; i++ {
		road(i, mid)
		road(mid, i)
	}
	s.grid.Region[s.grid.Index(0, mid)] = core.RegionSink
	s.grid.Region[s.grid.Index(n-1, mid)] = core.RegionSink
	s.grid.Region[s.grid.Index(mid, 0)] = core.RegionSink
	s.grid.Region[s.grid.Index(mid, n-1)] = core.RegionSink

	// Lots sit just inside the ring, one every eighth cell along the top
	// and bottom stretches.
	s.lotByRoad = map[int]int{}
	for x := inset + 2; x < n-inset-2; x += 8 {
		top := s.grid.Index(x, inset)
		bottom := s.grid.Index(x, n-1-inset)
		s.grid.Region[s.grid.Index(x, inset+1)] = core.RegionLot
		s.grid.Region[s.grid.Index(x, n-2-inset)] = core.RegionLot
		s.lotByRoad[top] = s.grid.Index(x, inset+1)
		s.lotByRoad[bottom] = s.grid.Index(x, n-2-inset)
	}

	s.grid.BuildRoadIndex()
	s.roadSlot = map[int]int{}
	for slot, idx := range s.grid.RoadCells {
		s.roadSlot[idx] = slot
	}

	// Queue zones are the road cells fronting a lot entrance.
	s.queueSet = map[int]bool{}
	for roadIdx := range s.lotByRoad {
		s.queueSet[roadIdx] = true
	}

	s.neighbors = make([][]int, n*n)
	for _, idx := range s.grid.RoadCells {
		x, y := s.grid.Coords(idx)
		var adj []int
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || ny < 0 || nx >= n || ny >= n {
				continue
			}
			t := s.grid.Region[s.grid.Index(nx, ny)]
			if t == core.RegionRoad || t == core.RegionSink {
				adj = append(adj, s.grid.Index(nx, ny))
			}
		}
		s.neighbors[idx] = adj
	}
}

// Reset reseeds the scenario and respawns all trucks.
func (s *Sim) Reset(seed int64) {
	p := s.cfg.Params
	s.r = rand.New(rand.NewPCG(uint64(seed), 0))
	s.dwellRNG = stats.NewTriangular(p.DwellMin, p.DwellMode, p.DwellMax, seed+1)
	s.payRNG = stats.NewTriangular(p.PayloadMin, p.PayloadMode, p.PayloadMax, seed+2)
	s.dwellLog = s.dwellLog[:0]

	s.trucks = make([]truck, p.TruckCount)
	for i := range s.trucks {
		cell := s.randomRoadCell()
		s.trucks[i] = truck{cell: cell, prev: cell, payload: s.payRNG.Sample()}
	}
	s.presence = make([]float64, len(s.grid.RoadCells))
	s.refreshField()
}

// Step advances the scenario one tick and offers the resulting occupancy to
// the replay recorder.
func (s *Sim) Step() {
	p := s.cfg.Params
	for i := range s.trucks {
		t := &s.trucks[i]
		if t.dwell > 0 {
			t.dwell--
			if t.dwell == 0 {
				// dwell complete; back out onto the fronting road cell
				t.cell, t.prev = t.prev, t.cell
			}
			continue
		}
		if lot, ok := s.lotByRoad[t.cell]; ok && s.r.Float64() < p.LotAdmitChance {
			d := s.dwellRNG.Sample()
			if d < 1 {
				d = 1
			}
			s.dwellLog = append(s.dwellLog, d)
			t.prev = t.cell
			t.cell = lot
			t.dwell = int(d)
			continue
		}
		s.move(t)
	}
	s.refreshField()
	s.recorder.Observe(s.grid.RoadCells, s.presence, s.roi, s.grid.N)
}

func (s *Sim) move(t *truck) {
	adj := s.neighbors[t.cell]
	if len(adj) == 0 {
		return
	}
	// avoid an immediate backtrack when any other option exists
	next := adj[s.r.IntN(len(adj))]
	if next == t.prev && len(adj) > 1 {
		for tries := 0; tries < 3 && next == t.prev; tries++ {
			next = adj[s.r.IntN(len(adj))]
		}
	}
	t.prev = t.cell
	t.cell = next
	if s.grid.Region[next] == core.RegionSink {
		// absorbed; a fresh truck enters somewhere on the network
		cell := s.randomRoadCell()
		t.cell, t.prev = cell, cell
		t.payload = s.payRNG.Sample()
	}
}

// refreshField rebuilds the mass, commuter and occupancy fields from truck
// positions. Mass parked in lots stays on the lot cell, where the live
// layer's region filter ignores it.
func (s *Sim) refreshField() {
	for i := range s.grid.Mass {
		s.grid.Mass[i] = 0
	}
	for i := range s.presence {
		s.presence[i] = 0
	}
	for i := range s.trucks {
		t := &s.trucks[i]
		s.grid.Mass[t.cell] += t.payload
		if slot, ok := s.roadSlot[t.cell]; ok {
			s.presence[slot]++
		}
	}
	p := s.cfg.Params
	for _, idx := range s.grid.RoadCells {
		load := p.CommuterBase
		if s.queueSet[idx] {
			load += p.CommuterQueue
		}
		s.grid.CommuterLoad[idx] = load
	}
}

func (s *Sim) randomRoadCell() int {
	return s.grid.RoadCells[s.r.IntN(len(s.grid.RoadCells))]
}

// InQueueZone reports whether a world position falls on a road cell that
// fronts a lot entrance. Satisfies core.QueueZone.
func (s *Sim) InQueueZone(wx, wy float64) bool {
	x, y := s.roi.WorldToCell(wx, wy)
	if x < 0 || y < 0 || x >= s.grid.N || y >= s.grid.N {
		return false
	}
	return s.queueSet[s.grid.Index(x, y)]
}

// JamModel maps cell mass to a congestion factor: 0 free-flowing, 1 jammed.
type JamModel struct {
	JamMass float64
}

// Factor satisfies core.CongestionModel.
func (m JamModel) Factor(mass float64) float64 {
	if m.JamMass <= 0 {
		return 0
	}
	f := mass / m.JamMass
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
