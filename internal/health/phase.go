package health

import (
	"fmt"
	"math"

	"github.com/alexanderramin/golive/internal/domain"
)

const (
	severityCriticalBelow = 70.0
	severityModerateBelow = 85.0
)

// PhaseHealth is one phase's health in [0,100] after delay and risk erosion.
type PhaseHealth struct {
	Phase domain.Phase
	// Health is in percent.
	Health         float64
	DirectPct      float64
	AccumulatedPct float64
	RiskPct        float64
	Severity       domain.Severity
}

// Diagnosis is the per-phase breakdown and the weakest phase.
type Diagnosis struct {
	Phases   []PhaseHealth
	MainRisk PhaseHealth
}

// Summary renders the main risk as a one-line verdict.
func (d Diagnosis) Summary() string {
	return fmt.Sprintf("%s risk in %s (health %.1f%%)", d.MainRisk.Severity, d.MainRisk.Phase, d.MainRisk.Health)
}

// Diagnose walks the phases in model order. Each phase starts from the
// weakest of its predecessors and loses its own delay impact, the impact of
// every earlier delayed phase, and a quadratic execution-risk term scaled by
// the phase's risk sensitivity. executionRisk holds per-phase risk in
// [0,100].
func Diagnose(coef domain.Coefficients, delays domain.DelayVector, executionRisk domain.PhaseValues) (Diagnosis, error) {
	if err := delays.Validate(); err != nil {
		return Diagnosis{}, err
	}
	for _, p := range domain.Phases {
		if v := executionRisk[p]; math.IsNaN(v) || v < 0 || v > 100 {
			return Diagnosis{}, domain.InvalidInputf("%s execution risk %.1f outside [0,100]", p, v)
		}
	}

	var health [domain.PhaseCount]float64
	var diag Diagnosis
	accumulated := 0.0
	for _, p := range domain.Phases {
		pred := 1.0
		for _, q := range domain.Predecessors(p) {
			pred = math.Min(pred, health[q])
		}

		direct := float64(delays[p]) * coef.ImpactPerDay[p] / 100
		risk := executionRisk[p] / 100
		riskImpact := risk * risk * coef.RiskSensitivity[p]

		h := domain.ClampUnit(pred * (1 - direct - accumulated - riskImpact))
		health[p] = h

		ph := PhaseHealth{
			Phase:          p,
			Health:         h * 100,
			DirectPct:      direct * 100,
			AccumulatedPct: accumulated * 100,
			RiskPct:        riskImpact * 100,
			Severity:       severityFor(h * 100),
		}
		diag.Phases = append(diag.Phases, ph)
		if len(diag.Phases) == 1 || ph.Health < diag.MainRisk.Health {
			diag.MainRisk = ph
		}
		accumulated += direct
	}
	return diag, nil
}

func severityFor(healthPct float64) domain.Severity {
	switch {
	case healthPct < severityCriticalBelow:
		return domain.SeverityCritical
	case healthPct < severityModerateBelow:
		return domain.SeverityModerate
	default:
		return domain.SeverityMild
	}
}
