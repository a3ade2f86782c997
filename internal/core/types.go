package core

// RegionType classifies a grid cell for routing and rendering purposes.
type RegionType uint8

const (
	// RegionOpen is untraversable filler terrain.
	RegionOpen RegionType = iota
	// RegionRoad carries freight and commuter traffic.
	RegionRoad
	// RegionLot is parking/loading space; live congestion never paints it.
	RegionLot
	// RegionSink absorbs vehicles leaving the simulated area.
	RegionSink
)

// RenderMode selects which overlay family is active for a frame. The host
// picks exactly one mode per tick; the layers themselves never switch modes.
type RenderMode uint8

const (
	// ModeLive draws the live congestion and road overlays.
	ModeLive RenderMode = iota
	// ModeReplay draws the recorded heatmap instead of the live layers.
	ModeReplay
)

// Rect is an axis-aligned rectangle in world coordinates.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Projector maps world coordinates to screen pixels. It is injected by the
// display layer so the overlays stay independent of any camera implementation.
type Projector interface {
	WorldToScreen(wx, wy float64) (sx, sy float64)
}

// Camera is the read-only view state the overlays consume each tick.
type Camera struct {
	Zoom     float64
	Viewport Rect
	Proj     Projector
}

// CongestionModel reduces per-cell mass to a congestion factor in [0, 1].
// Higher factors mean more congestion; the live overlay relies on this
// ordering when it inverts the factor into a draw intensity.
type CongestionModel interface {
	Factor(mass float64) float64
}

// QueueZone reports whether a world position lies inside a lot admission
// queue zone. Supplied by the simulation alongside its thresholds.
type QueueZone interface {
	InQueueZone(wx, wy float64) bool
}

// Scenario is the contract a traffic scenario must implement to feed the
// overlay renderer.
type Scenario interface {
	Name() string
	Reset(seed int64)
	Step()
	Snapshot() *Grid
	ROI() ROI
	Congestion() CongestionModel
	Thresholds() Thresholds
}

// Factory constructs a Scenario using an optional configuration map.
type Factory func(cfg map[string]string) Scenario

var scenarios = map[string]Factory{}

// Register adds a scenario factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	scenarios[name] = f
}

// Scenarios exposes the registry of available scenario factories.
func Scenarios() map[string]Factory {
	return scenarios
}
