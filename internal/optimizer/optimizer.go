// Package optimizer searches for the smallest set of phase delays that lifts
// Go-Live quality to a target. A linear relaxation proposes delays; the
// nonlinear model, including Migration blocking and risk penalties, then
// verifies them.
package optimizer

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/quality"
)

// Result is the immutable outcome of one optimization.
type Result struct {
	Success bool
	// Delays is nil unless Success.
	Delays          *domain.DelayVector
	AchievedQuality float64
	Reasons         []string
	// RelaxedQuality is what the linear model predicted for its solution.
	RelaxedQuality float64
	TotalDelayDays int
	EstimatedCost  float64
}

// Optimizer is stateless; one value may serve concurrent callers.
type Optimizer struct {
	coef     domain.Coefficients
	settings Settings
	solver   Solver
}

type Option func(*Optimizer)

func WithSolver(s Solver) Option {
	return func(o *Optimizer) { o.solver = s }
}

func NewOptimizer(coef domain.Coefficients, settings Settings, opts ...Option) *Optimizer {
	o := &Optimizer{
		coef:     coef,
		settings: settings,
		solver:   NewSimplexSolver(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// phaseModel is the linearization of one delayable phase around its minimum
// delay. Completion is base + net·y for y in [0, upper].
type phaseModel struct {
	phase domain.Phase
	lo    int
	hi    int
	gross float64
	net   float64
	// gain is the raw quality added per extra day, weight·net.
	gain  float64
	base  float64
	upper float64
}

type relaxation struct {
	phases     []phaseModel
	teamFactor float64
	costPerDay float64
	baseRaw    float64
	targetRaw  float64
	norm       float64
}

// Optimize returns a failed Result, not an error, when the target cannot be
// met. Errors are reserved for malformed input, solver timeouts and
// cancellation.
func (o *Optimizer) Optimize(ctx context.Context, req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var reasons []string
	if req.TargetQuality > quality.MaxAchievable(o.coef) {
		reasons = append(reasons, ceilingReason(o.coef))
	}

	for _, p := range domain.DelayablePhases {
		if b := req.Bounds[p]; b.MinDelay > b.MaxDelay {
			return o.infeasible(req, reasons,
				fmt.Sprintf("%s min delay %d exceeds max delay %d", p, b.MinDelay, b.MaxDelay)), nil
		}
	}

	rel := o.relax(req)
	prog := rel.program(req.Budget)

	timeout := o.settings.SolverTimeout
	if req.SolverTimeout > 0 {
		timeout = req.SolverTimeout
	}
	solveCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	sol, err := o.solver.Solve(solveCtx, prog)
	switch {
	case errors.Is(err, ErrInfeasible):
		return o.infeasible(req, reasons, rel.diagnose(req.Budget)), nil
	case err != nil && ctx.Err() == nil && errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("linear relaxation after %s: %w", timeout, ErrSolverTimeout)
	case err != nil:
		return nil, fmt.Errorf("solve linear relaxation: %w", err)
	}

	var delays domain.DelayVector
	relaxedRaw := rel.baseRaw
	for i, pm := range rel.phases {
		y := math.Max(0, sol.X[i])
		relaxedRaw += pm.gain * y
		delays[pm.phase] = pm.lo + int(math.Ceil(y-1e-9))
	}

	v, err := o.verify(req, rel, delays)
	if err != nil {
		return nil, err
	}

	res := &Result{
		AchievedQuality: v.achieved,
		RelaxedQuality:  quality.Clamp(relaxedRaw / o.coef.Normalization * 100),
		TotalDelayDays:  delays.Total(),
		EstimatedCost:   rel.costPerDay * float64(delays.Total()),
	}
	if v.achieved >= req.TargetQuality-1e-9 {
		res.Success = true
		res.Delays = &delays
		return res, nil
	}

	res.Reasons = append(reasons, o.shortfallReasons(req, rel, v, delays, len(reasons) > 0)...)
	return res, nil
}

func (o *Optimizer) relax(req Request) relaxation {
	rel := relaxation{
		teamFactor: o.settings.TeamFactor(req.TeamSize),
		costPerDay: o.settings.CostPerDelayDay(req.TeamSize),
		norm:       o.coef.Normalization,
		targetRaw:  quality.RequiredRaw(o.coef, math.Min(req.TargetQuality, quality.MaxAchievable(o.coef))),
	}
	rel.baseRaw = o.coef.Intercept + o.coef.Weights[domain.PhaseResources]*rel.teamFactor

	for _, p := range domain.DelayablePhases {
		b := req.Bounds[p]
		pm := phaseModel{phase: p, lo: b.MinDelay, hi: b.MaxDelay}
		if days := o.settings.BaselineDays[p]; days > 0 {
			pm.gross = rel.teamFactor / days
		}
		impact := o.coef.ImpactPerDay[p] / 100
		pm.net = pm.gross - impact
		pm.gain = o.coef.Weights[p] * pm.net

		scheduled := math.Min(1, b.Current+pm.gross*float64(pm.lo))
		pm.base = domain.ClampUnit(scheduled - impact*float64(pm.lo))

		// Days past the point where the phase is complete add nothing.
		if pm.gross > 0 {
			capDays := (1 - b.Current) / pm.gross
			pm.upper = math.Max(0, math.Min(float64(pm.hi), capDays)-float64(pm.lo))
		}

		rel.baseRaw += o.coef.Weights[p] * pm.base
		rel.phases = append(rel.phases, pm)
	}
	return rel
}

// program builds: minimize Σy subject to the quality target, per-phase
// headroom and, when budget > 0, the delay cost.
func (rel relaxation) program(budget float64) Program {
	n := len(rel.phases)
	prog := Program{Objective: make([]float64, n)}

	qualityRow := Row{Name: "quality", Coeffs: make([]float64, n), RHS: -(rel.targetRaw - rel.baseRaw)}
	for i, pm := range rel.phases {
		prog.Objective[i] = 1
		qualityRow.Coeffs[i] = -pm.gain
	}
	prog.Rows = append(prog.Rows, qualityRow)

	for i, pm := range rel.phases {
		row := Row{Name: pm.phase.String(), Coeffs: make([]float64, n), RHS: pm.upper}
		row.Coeffs[i] = 1
		prog.Rows = append(prog.Rows, row)
	}

	if budget > 0 {
		row := Row{Name: "budget", Coeffs: make([]float64, n), RHS: budget - rel.costPerDay*float64(rel.minDays())}
		for i := range rel.phases {
			row.Coeffs[i] = rel.costPerDay
		}
		prog.Rows = append(prog.Rows, row)
	}
	return prog
}

func (rel relaxation) minDays() int {
	total := 0
	for _, pm := range rel.phases {
		total += pm.lo
	}
	return total
}
