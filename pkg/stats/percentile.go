package stats

import "sort"

// Percentile returns the p-th percentile (p in [0, 1]) of values using the
// nearest-rank rule on an ascending sort: index = floor(p * n). When that
// index falls outside the slice the maximum is returned; an empty slice
// yields 0. The input is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	idx := int(p * float64(len(sorted)))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

// Positive filters values down to the strictly positive entries.
func Positive(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}
