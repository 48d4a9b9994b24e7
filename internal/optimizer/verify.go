package optimizer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/propagation"
	"github.com/alexanderramin/golive/internal/quality"
)

type verification struct {
	scheduled   domain.Completion
	propagated  propagation.Result
	unpenalized float64
	penalty     propagation.Penalty
	achieved    float64
}

// scheduledCompletion is where each phase stands at Go-Live after its extra
// days, before the per-day delay impact.
func (o *Optimizer) scheduledCompletion(req Request, rel relaxation, delays domain.DelayVector) domain.Completion {
	var c domain.Completion
	for _, pm := range rel.phases {
		c[pm.phase] = math.Min(1, req.Bounds[pm.phase].Current+pm.gross*float64(delays[pm.phase]))
	}
	c[domain.PhaseResources] = rel.teamFactor
	c[domain.PhaseHypercare] = 0
	return c
}

// verify runs a whole-day schedule through the nonlinear model.
func (o *Optimizer) verify(req Request, rel relaxation, delays domain.DelayVector) (verification, error) {
	v := verification{scheduled: o.scheduledCompletion(req, rel, delays)}

	prop, err := propagation.Propagate(o.coef, v.scheduled, delays, req.Risk.Sum(), false)
	if err != nil {
		return verification{}, fmt.Errorf("verify schedule: %w", err)
	}
	v.propagated = prop
	v.unpenalized = quality.Compute(o.coef, prop.Params)
	v.penalty = propagation.RiskPenalty(o.coef, req.Risk)
	v.achieved = propagation.ApplyRiskPenalty(v.unpenalized, v.penalty)
	return v, nil
}

func (o *Optimizer) infeasible(req Request, reasons []string, constraint string) *Result {
	res := &Result{
		Reasons: append(reasons, "linear relaxation infeasible: "+constraint),
	}
	// Report where the minimum schedule lands so the caller sees the gap.
	var delays domain.DelayVector
	for _, p := range domain.DelayablePhases {
		delays[p] = req.Bounds[p].MinDelay
	}
	if v, err := o.verify(req, o.relax(req), delays); err == nil {
		res.AchievedQuality = v.achieved
	}
	return res
}
