// Package propagation turns per-phase delay-days into adjusted completion
// fractions, applying the Migration blocking cascade.
package propagation

import (
	"github.com/alexanderramin/golive/internal/domain"
)

// Result is the outcome of one propagation call.
type Result struct {
	// Params are the adjusted completion fractions, ready for quality.Compute.
	Params domain.Completion
	// Nominal holds completions after the per-day impact, before blocking.
	Nominal domain.Completion
	// SumRisks is the aggregate risk the simulator should use for this line.
	SumRisks       float64
	Blocked        bool
	BlockingFactor float64
}

// Propagate applies delays to baseline completion fractions.
//
// Every phase loses ImpactPerDay percentage points per delay-day, bounded to
// [0,1]. When Migration ends incomplete it throttles E2E and Training; the
// other phases are deliberately left untouched. A baseline line is always
// risk-free, so isBaseline forces the returned SumRisks to 0.
func Propagate(coef domain.Coefficients, baseline domain.Completion, delays domain.DelayVector, sumRisks float64, isBaseline bool) (Result, error) {
	if err := baseline.Validate(); err != nil {
		return Result{}, err
	}
	if err := delays.Validate(); err != nil {
		return Result{}, err
	}
	if err := domain.ValidateSumRisks(sumRisks); err != nil {
		return Result{}, err
	}

	var nominal domain.Completion
	for _, p := range domain.Phases {
		loss := coef.ImpactPerDay[p] / 100 * float64(delays[p])
		nominal[p] = domain.ClampUnit(baseline[p] - loss)
	}

	res := Result{
		Params:         nominal,
		Nominal:        nominal,
		SumRisks:       sumRisks,
		BlockingFactor: 1,
	}

	if mig := nominal[domain.PhaseMigration]; mig < 1 {
		res.Blocked = true
		res.BlockingFactor = BlockingFactor(coef, mig)
		res.Params[domain.PhaseE2E] *= res.BlockingFactor
		res.Params[domain.PhaseTraining] *= res.BlockingFactor
	}

	if isBaseline {
		res.SumRisks = 0
	}
	return res, nil
}

// BlockingFactor is the throttle an incomplete Migration puts on its
// dependents. A complete Migration does not block.
func BlockingFactor(coef domain.Coefficients, migration float64) float64 {
	if migration >= 1 {
		return 1
	}
	return domain.ClampUnit(migration * coef.BlockingFactor)
}

// BlockingCut is the quality lost, in percentage points, when E2E and
// Training are multiplied by factor.
func BlockingCut(coef domain.Coefficients, nominal domain.Completion, factor float64) float64 {
	lost := coef.Weights[domain.PhaseE2E]*nominal[domain.PhaseE2E] +
		coef.Weights[domain.PhaseTraining]*nominal[domain.PhaseTraining]
	return lost * (1 - factor) / coef.Normalization * 100
}
