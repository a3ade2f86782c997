package freight

import (
	"strconv"

	"gridlock/internal/core"
)

// Params holds tunable behavior for the freight scenario.
type Params struct {
	TruckCount int
	// Truck payload distribution, kg.
	PayloadMin  float64
	PayloadMode float64
	PayloadMax  float64
	// Lot dwell time distribution, ticks.
	DwellMin  float64
	DwellMode float64
	DwellMax  float64
	// Chance per tick that a truck passing a lot entrance pulls in.
	LotAdmitChance float64
	// Commuter load baseline and queue-zone boost, load units per cell.
	CommuterBase  float64
	CommuterQueue float64
	// Mass at which a cell counts as fully jammed.
	JamMass float64
}

// Config controls the freight scenario dimensions and tuning.
type Config struct {
	N        int
	CellSize float64
	Seed     int64

	// RecordEvery is the replay capture cadence in ticks.
	RecordEvery int

	Params     Params
	Thresholds core.Thresholds
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		N:           128,
		CellSize:    4,
		Seed:        1337,
		RecordEvery: 4,
		Params: Params{
			TruckCount:     220,
			PayloadMin:     800,
			PayloadMode:    1400,
			PayloadMax:     3200,
			DwellMin:       20,
			DwellMode:      60,
			DwellMax:       240,
			LotAdmitChance: 0.02,
			CommuterBase:   0.4,
			CommuterQueue:  6,
			JamMass:        5000,
		},
		Thresholds: core.DefaultThresholds(),
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["n"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.N = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["trucks"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Params.TruckCount = parsed
		}
	}
	if v, ok := cfg["record"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.RecordEvery = parsed
		}
	}
	return c
}
