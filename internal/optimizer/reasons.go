package optimizer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/propagation"
	"github.com/alexanderramin/golive/internal/quality"
)

func ceilingReason(coef domain.Coefficients) string {
	return fmt.Sprintf("Hypercare reserve of %.1f%% is unavailable before Go-Live, capping achievable quality at %.1f%%.",
		quality.HypercareReserve(coef), quality.MaxAchievable(coef))
}

// shortfallReasons explains a verified schedule that misses the target, in
// fixed order: blocking, risk penalty, resources. The ceiling reason is
// prepended by the caller. When nothing else applies the rounding shortfall
// itself is reported.
func (o *Optimizer) shortfallReasons(req Request, rel relaxation, v verification, delays domain.DelayVector, ceiling bool) []string {
	var reasons []string

	if v.propagated.Blocked {
		mig := v.propagated.Nominal[domain.PhaseMigration]
		cut := propagation.BlockingCut(o.coef, v.propagated.Nominal, v.propagated.BlockingFactor)
		reasons = append(reasons, fmt.Sprintf(
			"Migration at %.1f%% completion applies a blocking factor of %.2f to E2E and Training, cutting quality by %.1f percentage points.",
			mig*100, v.propagated.BlockingFactor, cut))
	}

	if req.Risk.Sum() > 0 {
		pen := v.penalty
		reasons = append(reasons, fmt.Sprintf(
			"Risk penalty of %.1f%% (technical %.1f%%, business %.1f%%, scope %.1f%%) lowers quality from %.1f%% to %.1f%%.",
			pen.Total()*100, pen.Technical*100, pen.Business*100, pen.Scope*100, v.unpenalized, v.achieved))
	}

	if req.TeamSize < o.settings.ReferenceTeamSize {
		reasons = append(reasons, fmt.Sprintf(
			"Team size %d is below the reference of %d, holding Resources at %.0f%% and slowing recovery of delayed phases.",
			req.TeamSize, o.settings.ReferenceTeamSize, rel.teamFactor*100))
	}
	if req.Budget > 0 {
		spent := rel.costPerDay * float64(delays.Total())
		if req.Budget-spent < rel.costPerDay {
			reasons = append(reasons, fmt.Sprintf(
				"Budget of %.0f binds: %d delay-days cost %.0f and another day costs %.0f.",
				req.Budget, delays.Total(), spent, rel.costPerDay))
		}
	}

	if len(reasons) == 0 && !ceiling {
		reasons = append(reasons, fmt.Sprintf(
			"Whole-day schedule reaches %.2f%%, short of the %.1f%% target.", v.achieved, req.TargetQuality))
	}
	return reasons
}

// diagnose names the constraint that empties the feasible region. Delay
// bounds are checked before the call.
func (rel relaxation) diagnose(budget float64) string {
	if budget > 0 {
		if minCost := rel.costPerDay * float64(rel.minDays()); minCost > budget {
			return fmt.Sprintf("budget %.0f cannot cover the minimum %d delay-days costing %.0f", budget, rel.minDays(), minCost)
		}
	}

	reachable := rel.baseRaw
	for _, pm := range rel.phases {
		reachable += math.Max(0, pm.gain) * pm.upper
	}
	if reachable < rel.targetRaw-1e-9 {
		return fmt.Sprintf("quality target %.1f%% exceeds the %.1f%% reachable within delay bounds",
			rel.targetRaw/rel.norm*100, reachable/rel.norm*100)
	}

	if budget > 0 {
		return fmt.Sprintf("budget %.0f covers at most %.1f delay-days", budget, budget/rel.costPerDay)
	}
	return "constraints admit no solution"
}
