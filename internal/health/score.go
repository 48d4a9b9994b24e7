// Package health grades a project from its quality outlook, schedule slip,
// budget use and risk exposure.
package health

import (
	"math"

	"github.com/alexanderramin/golive/internal/domain"
)

// Score weights. Quality dominates; budget and risk only nudge the result.
const (
	weightQuality = 0.70
	weightTime    = 0.15
	weightBudget  = 0.10
	weightRisk    = 0.05

	// A slip of this many days zeroes the time component.
	delayHorizonDays = 90.0

	criticalBelow = 60.0
	atRiskBelow   = 80.0
)

type ScoreInput struct {
	// Quality is the Go-Live quality percentage.
	Quality float64
	// DelayDays is the total slip against the baseline plan.
	DelayDays int
	// BudgetUsedPct is spend against budget; 100 means fully spent. Overspend
	// degrades the score until 200%.
	BudgetUsedPct float64
	SumRisks      float64
}

type ScoreResult struct {
	Score float64
	Level domain.RiskLevel

	QualityComponent float64
	TimeComponent    float64
	BudgetComponent  float64
	RiskComponent    float64
}

func ComputeScore(input ScoreInput) ScoreResult {
	q := math.Min(1, math.Max(0, input.Quality/100))
	t := math.Max(0, 1-float64(input.DelayDays)/delayHorizonDays)

	b := 1.0
	if input.BudgetUsedPct > 100 {
		b = math.Max(0, 1-(input.BudgetUsedPct-100)/100)
	}

	r := math.Max(0, 1-input.SumRisks/domain.MaxSumRisks)

	result := ScoreResult{
		QualityComponent: weightQuality * q * 100,
		TimeComponent:    weightTime * t * 100,
		BudgetComponent:  weightBudget * b * 100,
		RiskComponent:    weightRisk * r * 100,
	}
	result.Score = math.Min(100, result.QualityComponent+result.TimeComponent+result.BudgetComponent+result.RiskComponent)

	switch {
	case result.Score < criticalBelow:
		result.Level = domain.RiskCritical
	case result.Score < atRiskBelow:
		result.Level = domain.RiskAtRisk
	default:
		result.Level = domain.RiskOnTrack
	}
	return result
}
