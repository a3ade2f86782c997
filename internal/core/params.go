package core

// Thresholds holds the simulation-owned congestion tuning the overlays read.
// Passed by value; the renderer never mutates it.
type Thresholds struct {
	// OnsetThreshold is the effective density (kg per cell) at which a road
	// cell starts counting as congested.
	OnsetThreshold float64
	// RoadCapacity is the effective density at which a road cell saturates.
	RoadCapacity float64
	// CommuterEquivKg converts one unit of commuter load into freight-mass
	// equivalent kilograms.
	CommuterEquivKg float64
}

// DefaultThresholds returns the standard congestion tuning.
func DefaultThresholds() Thresholds {
	return Thresholds{
		OnsetThreshold:  400,
		RoadCapacity:    4800,
		CommuterEquivKg: 85,
	}
}

// DensityRange returns capacity minus onset, falling back to 1 when the
// configured range is degenerate so normalization never divides by zero.
func (t Thresholds) DensityRange() float64 {
	r := t.RoadCapacity - t.OnsetThreshold
	if r <= 0 {
		return 1
	}
	return r
}
