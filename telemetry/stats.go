// Package telemetry computes summary statistics for generated fields
// and writes structured run output (CSV records, config snapshot).
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FieldStats summarizes the value distribution of one generated field.
type FieldStats struct {
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
	P10    float64
	P50    float64
	P90    float64
}

// ComputeFieldStats aggregates the field values. Returns the zero
// struct for an empty input.
func ComputeFieldStats(data []float32) FieldStats {
	if len(data) == 0 {
		return FieldStats{}
	}

	vals := make([]float64, len(data))
	for i, v := range data {
		vals[i] = float64(v)
	}
	sort.Float64s(vals)

	s := FieldStats{
		Min:  vals[0],
		Max:  vals[len(vals)-1],
		Mean: stat.Mean(vals, nil),
		P10:  stat.Quantile(0.1, stat.Empirical, vals, nil),
		P50:  stat.Quantile(0.5, stat.Empirical, vals, nil),
		P90:  stat.Quantile(0.9, stat.Empirical, vals, nil),
	}
	if len(vals) > 1 {
		s.StdDev = stat.StdDev(vals, nil)
	}
	return s
}
