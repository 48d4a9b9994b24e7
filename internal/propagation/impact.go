package propagation

import (
	"github.com/alexanderramin/golive/internal/domain"
)

// PhaseImpact reports the quality cost of one delayed phase.
type PhaseImpact struct {
	Phase        domain.Phase
	DelayDays    int
	ImpactPerDay float64
	// MarginalPct is this phase's own loss in percentage points.
	MarginalPct float64
	// AccumulatedPct sums the losses of this phase and every earlier delayed one.
	AccumulatedPct float64
	Affected       []domain.Phase
}

// DelayImpacts lists every delayed phase in model order with its per-day
// cost and the downstream phases it pushes out. Hypercare is skipped.
func DelayImpacts(coef domain.Coefficients, delays domain.DelayVector) ([]PhaseImpact, error) {
	if err := delays.Validate(); err != nil {
		return nil, err
	}

	var out []PhaseImpact
	accumulated := 0.0
	for _, p := range domain.Phases {
		if p == domain.PhaseHypercare || delays[p] == 0 {
			continue
		}
		marginal := coef.ImpactPerDay[p] * float64(delays[p])
		accumulated += marginal
		out = append(out, PhaseImpact{
			Phase:          p,
			DelayDays:      delays[p],
			ImpactPerDay:   coef.ImpactPerDay[p],
			MarginalPct:    marginal,
			AccumulatedPct: accumulated,
			Affected:       domain.Downstream(p),
		})
	}
	return out, nil
}
