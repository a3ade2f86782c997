package stats

import (
	"math"
	"math/rand/v2"
)

// Triangular samples a triangular distribution over [Min, Max] with the
// given Mode, via inverse-CDF transform of a uniform variate.
type Triangular struct {
	Min  float64
	Mode float64
	Max  float64
	r    *rand.Rand
}

// NewTriangular creates a deterministic sampler using the provided seed.
// Degenerate bounds collapse to a point distribution at Min.
func NewTriangular(min, mode, max float64, seed int64) *Triangular {
	if mode < min {
		mode = min
	}
	if max < mode {
		max = mode
	}
	return &Triangular{
		Min:  min,
		Mode: mode,
		Max:  max,
		r:    rand.New(rand.NewPCG(uint64(seed), 0)),
	}
}

// Sample draws one value from the distribution.
func (t *Triangular) Sample() float64 {
	span := t.Max - t.Min
	if span <= 0 {
		return t.Min
	}
	u := t.r.Float64()
	cut := (t.Mode - t.Min) / span
	if u < cut {
		return t.Min + math.Sqrt(u*span*(t.Mode-t.Min))
	}
	return t.Max - math.Sqrt((1-u)*span*(t.Max-t.Mode))
}
