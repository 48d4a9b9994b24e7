package montecarlo

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary describes a sample set with the confidence bands reported
// alongside a simulation.
type Summary struct {
	Count  int
	Mean   float64
	Median float64
	StdDev float64
	P10    float64
	P90    float64
	Min    float64
	Max    float64
}

// Summarize computes Summary over samples. An empty set yields the zero value.
func Summarize(samples []float64) Summary {
	if len(samples) == 0 {
		return Summary{}
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0
	}
	return Summary{
		Count:  len(sorted),
		Mean:   mean,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		StdDev: std,
		P10:    stat.Quantile(0.1, stat.Empirical, sorted, nil),
		P90:    stat.Quantile(0.9, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

// ProbabilityAtLeast is the fraction of samples at or above threshold.
func ProbabilityAtLeast(samples []float64, threshold float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	hits := 0
	for _, v := range samples {
		if v >= threshold {
			hits++
		}
	}
	return float64(hits) / float64(len(samples))
}
