package montecarlo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	samples := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	s := Summarize(samples)

	assert.Equal(t, 10, s.Count)
	assert.InDelta(t, 5.5, s.Mean, 1e-12)
	assert.Equal(t, 5.0, s.Median)
	assert.Equal(t, 1.0, s.P10)
	assert.Equal(t, 9.0, s.P90)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 10.0, s.Max)
	assert.Greater(t, s.StdDev, 0.0)
	// Input order is preserved.
	assert.Equal(t, 10.0, samples[0])
}

func TestSummarize_SingleAndEmpty(t *testing.T) {
	one := Summarize([]float64{93.2})
	assert.Equal(t, 93.2, one.Mean)
	assert.Equal(t, 93.2, one.P10)
	assert.Equal(t, 0.0, one.StdDev)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestProbabilityAtLeast(t *testing.T) {
	samples := []float64{80, 85, 90, 95}
	assert.Equal(t, 0.5, ProbabilityAtLeast(samples, 90))
	assert.Equal(t, 1.0, ProbabilityAtLeast(samples, 0))
	assert.Equal(t, 0.0, ProbabilityAtLeast(nil, 50))
}
