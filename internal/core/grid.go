package core

// Grid is a read-only snapshot of the simulation field for one draw call.
// All per-cell slices have length N*N and share row-major indexing
// (index = y*N + x). The rendering side never writes to a Grid.
type Grid struct {
	N            int
	Mass         []float64
	CommuterLoad []float64
	Region       []RegionType

	// RoadCells is the precomputed ordered index set of traversable road
	// cells, built once by the simulation so sparse overlays never rescan
	// the full N*N field.
	RoadCells []int
}

// NewGrid allocates a zeroed grid with the given dimension.
func NewGrid(n int) *Grid {
	if n <= 0 {
		n = 1
	}
	return &Grid{
		N:            n,
		Mass:         make([]float64, n*n),
		CommuterLoad: make([]float64, n*n),
		Region:       make([]RegionType, n*n),
	}
}

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.N + x }

// Coords recovers (x, y) from a linear index.
func (g *Grid) Coords(idx int) (int, int) { return idx % g.N, idx / g.N }

// BuildRoadIndex scans the region classification once and caches the ordered
// set of road cell indices. Call after the region layout is final.
func (g *Grid) BuildRoadIndex() {
	g.RoadCells = g.RoadCells[:0]
	for i, r := range g.Region {
		if r == RegionRoad {
			g.RoadCells = append(g.RoadCells, i)
		}
	}
}
