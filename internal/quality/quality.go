// Package quality implements the Go-Live quality model: a weighted sum of
// phase completion fractions over a fixed intercept and normalization.
package quality

import (
	"math"

	"github.com/alexanderramin/golive/internal/domain"
)

// Raw returns intercept + Σ weight·completion, before normalization.
func Raw(coef domain.Coefficients, params domain.Completion) float64 {
	raw := coef.Intercept
	for _, p := range domain.Phases {
		raw += coef.Weights[p] * params[p]
	}
	return raw
}

// Compute maps completion fractions to a quality percentage in [0,100].
func Compute(coef domain.Coefficients, params domain.Completion) float64 {
	return Clamp(Raw(coef, params) / coef.Normalization * 100)
}

// MaxAchievable is the structural ceiling at Go-Live: every phase complete
// except Hypercare, which contributes nothing until after launch.
func MaxAchievable(coef domain.Coefficients) float64 {
	return Compute(coef, domain.FullCompletion())
}

// HypercareReserve is the share of quality held back by Hypercare, in
// percentage points.
func HypercareReserve(coef domain.Coefficients) float64 {
	return coef.Weights[domain.PhaseHypercare] / coef.Normalization * 100
}

// RequiredRaw converts a target percentage back into the raw score the
// weighted sum must reach.
func RequiredRaw(coef domain.Coefficients, targetPct float64) float64 {
	return targetPct / 100 * coef.Normalization
}

// Clamp bounds q to [0,100]. NaN maps to 0.
func Clamp(q float64) float64 {
	if math.IsNaN(q) {
		return 0
	}
	return math.Max(0, math.Min(100, q))
}

// Round1 rounds to one decimal, the precision quality is reported at.
func Round1(q float64) float64 {
	return math.Round(q*10) / 10
}
