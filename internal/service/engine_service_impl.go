package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/golive/internal/app"
	"github.com/alexanderramin/golive/internal/db"
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/health"
	"github.com/alexanderramin/golive/internal/montecarlo"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/propagation"
	"github.com/alexanderramin/golive/internal/quality"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/google/uuid"
)

// EngineOptions tune defaults that callers may leave unset.
type EngineOptions struct {
	// Iterations is used when a simulate request leaves it at zero.
	Iterations int
	// Seed fixes every simulation that does not carry its own seed.
	Seed *uint64
	// RecordRuns writes simulate and optimize results to the run ledger.
	RecordRuns bool
	Solver     optimizer.Solver
}

type engineService struct {
	coef      domain.Coefficients
	optimizer *optimizer.Optimizer
	opts      EngineOptions
	uow       db.UnitOfWork
	observer  UseCaseObserver
	now       func() time.Time
}

// NewEngineService wires the engine. uow may be nil when runs are not
// recorded.
func NewEngineService(
	coef domain.Coefficients,
	settings optimizer.Settings,
	opts EngineOptions,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) EngineService {
	var optOpts []optimizer.Option
	if opts.Solver != nil {
		optOpts = append(optOpts, optimizer.WithSolver(opts.Solver))
	}
	if opts.Iterations <= 0 {
		opts.Iterations = 1000
	}
	return &engineService{
		coef:      coef,
		optimizer: optimizer.NewOptimizer(coef, settings, optOpts...),
		opts:      opts,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *engineService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, err error) {
	emitUseCase(ctx, s.observer, name, startedAt, fields, err)
}

func (s *engineService) Quality(ctx context.Context, req app.QualityRequest) (resp *app.QualityResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "quality", startedAt, fields, err) }()

	if err = req.Completion.Validate(); err != nil {
		return nil, err
	}
	resp = &app.QualityResponse{
		Quality:       quality.Compute(s.coef, req.Completion),
		Raw:           quality.Raw(s.coef, req.Completion),
		MaxAchievable: quality.MaxAchievable(s.coef),
	}
	fields["quality"] = quality.Round1(resp.Quality)
	return resp, nil
}

func (s *engineService) Propagate(ctx context.Context, req app.PropagateRequest) (resp *app.PropagateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"delay_days":  req.Delays.Total(),
		"is_baseline": req.IsBaseline,
	}
	defer func() { s.observe(ctx, "propagate", startedAt, fields, err) }()

	if err = req.Risk.Validate(); err != nil {
		return nil, err
	}
	var prop propagation.Result
	prop, err = propagation.Propagate(s.coef, req.Baseline, req.Delays, req.Risk.Sum(), req.IsBaseline)
	if err != nil {
		return nil, err
	}

	resp = &app.PropagateResponse{
		Params:         prop.Params,
		Quality:        quality.Compute(s.coef, prop.Params),
		SumRisks:       prop.SumRisks,
		Blocked:        prop.Blocked,
		BlockingFactor: prop.BlockingFactor,
	}
	if prop.Blocked {
		resp.BlockingCutPct = propagation.BlockingCut(s.coef, prop.Nominal, prop.BlockingFactor)
	}
	fields["blocked"] = prop.Blocked
	fields["quality"] = quality.Round1(resp.Quality)
	return resp, nil
}

func (s *engineService) Simulate(ctx context.Context, req app.SimulateRequest) (resp *app.SimulateResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"sum_risks": req.Risk.Sum()}
	defer func() { s.observe(ctx, "simulate", startedAt, fields, err) }()

	if err = req.Risk.Validate(); err != nil {
		return nil, err
	}
	if req.Iterations < 0 {
		return nil, domain.InvalidInputf("iterations must be positive, got %d", req.Iterations)
	}
	if t := req.Threshold; t != nil && (math.IsNaN(*t) || *t < 0 || *t > 100) {
		return nil, domain.InvalidInputf("threshold %.1f outside [0,100]", *t)
	}
	iterations := req.Iterations
	if iterations == 0 {
		iterations = s.opts.Iterations
	}
	fields["iterations"] = iterations

	var prop propagation.Result
	prop, err = propagation.Propagate(s.coef, req.Baseline, req.Delays, req.Risk.Sum(), req.IsBaseline)
	if err != nil {
		return nil, err
	}

	var simOpts []montecarlo.Option
	switch {
	case req.Seed != nil:
		simOpts = append(simOpts, montecarlo.WithSeed(*req.Seed))
	case s.opts.Seed != nil:
		simOpts = append(simOpts, montecarlo.WithSeed(*s.opts.Seed))
	}
	var res *montecarlo.Result
	res, err = montecarlo.NewSimulator(s.coef, simOpts...).Run(ctx, prop.Params, iterations, prop.SumRisks)
	if err != nil {
		return nil, fmt.Errorf("simulating: %w", err)
	}

	resp = &app.SimulateResponse{
		Params:        prop.Params,
		Quality:       res.Quality,
		StdDev:        res.StdDev,
		NoiseStd:      res.NoiseStd,
		Deterministic: res.Deterministic,
		Seed:          res.Seed,
		Samples:       res.Samples,
		Summary:       montecarlo.Summarize(res.Samples),
	}
	if req.Threshold != nil {
		p := montecarlo.ProbabilityAtLeast(res.Samples, *req.Threshold)
		resp.ProbabilityAtLeast = &p
	}
	fields["deterministic"] = res.Deterministic
	fields["mean"] = quality.Round1(resp.Summary.Mean)

	delays := req.Delays
	run := &domain.Run{
		Kind:           domain.RunSimulate,
		Risk:           req.Risk,
		Iterations:     iterations,
		Quality:        resp.Summary.Mean,
		StdDev:         res.StdDev,
		Success:        true,
		Delays:         &delays,
		TotalDelayDays: delays.Total(),
	}
	if resp.RunID, err = s.record(ctx, run); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *engineService) Optimize(ctx context.Context, req app.OptimizeRequest) (resp *app.OptimizeResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{
		"target":    req.TargetQuality,
		"team_size": req.TeamSize,
	}
	defer func() { s.observe(ctx, "optimize", startedAt, fields, err) }()

	var res *optimizer.Result
	res, err = s.optimizer.Optimize(ctx, req.Request)
	if err != nil {
		return nil, err
	}
	fields["feasible"] = res.Success
	fields["reason_count"] = len(res.Reasons)
	if res.Success {
		fields["delay_days"] = res.TotalDelayDays
	}

	target := req.TargetQuality
	run := &domain.Run{
		Kind:           domain.RunOptimize,
		TargetQuality:  &target,
		Risk:           req.Risk,
		Quality:        res.AchievedQuality,
		Success:        res.Success,
		Delays:         res.Delays,
		TotalDelayDays: res.TotalDelayDays,
		EstimatedCost:  res.EstimatedCost,
		Reasons:        res.Reasons,
	}
	resp = &app.OptimizeResponse{
		Result:        *res,
		MaxAchievable: quality.MaxAchievable(s.coef),
	}
	if resp.RunID, err = s.record(ctx, run); err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *engineService) Health(ctx context.Context, req app.HealthRequest) (resp *app.HealthResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{}
	defer func() { s.observe(ctx, "health", startedAt, fields, err) }()

	if math.IsNaN(req.Quality) || req.Quality < 0 || req.Quality > 100 {
		return nil, domain.InvalidInputf("quality %.1f outside [0,100]", req.Quality)
	}
	if math.IsNaN(req.BudgetUsedPct) || req.BudgetUsedPct < 0 {
		return nil, domain.InvalidInputf("budget used %.1f%% is negative", req.BudgetUsedPct)
	}
	if err = req.Risk.Validate(); err != nil {
		return nil, err
	}

	var diag health.Diagnosis
	diag, err = health.Diagnose(s.coef, req.Delays, req.ExecutionRisk)
	if err != nil {
		return nil, err
	}
	score := health.ComputeScore(health.ScoreInput{
		Quality:       req.Quality,
		DelayDays:     req.Delays.Total(),
		BudgetUsedPct: req.BudgetUsedPct,
		SumRisks:      req.Risk.Sum(),
	})
	fields["score"] = quality.Round1(score.Score)
	fields["level"] = string(score.Level)
	fields["main_risk"] = diag.MainRisk.Phase.String()
	return &app.HealthResponse{Score: score, Diagnosis: diag}, nil
}

func (s *engineService) Impact(ctx context.Context, req app.ImpactRequest) (resp *app.ImpactResponse, err error) {
	startedAt := time.Now().UTC()
	fields := map[string]any{"delay_days": req.Delays.Total()}
	defer func() { s.observe(ctx, "impact", startedAt, fields, err) }()

	var impacts []propagation.PhaseImpact
	impacts, err = propagation.DelayImpacts(s.coef, req.Delays)
	if err != nil {
		return nil, err
	}
	resp = &app.ImpactResponse{Impacts: impacts}
	if n := len(impacts); n > 0 {
		resp.TotalPct = impacts[n-1].AccumulatedPct
	}
	fields["delayed_phases"] = len(impacts)
	return resp, nil
}

// record writes run and its reasons in one transaction and returns the new
// ID, or "" when recording is off.
func (s *engineService) record(ctx context.Context, run *domain.Run) (string, error) {
	if !s.opts.RecordRuns || s.uow == nil {
		return "", nil
	}
	run.ID = uuid.New().String()
	run.CreatedAt = s.now()
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteRunRepo(tx).Create(ctx, run)
	})
	if err != nil {
		return "", fmt.Errorf("recording %s run: %w", run.Kind, err)
	}
	return run.ID, nil
}
