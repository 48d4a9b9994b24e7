package app

import (
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/health"
	"github.com/alexanderramin/golive/internal/montecarlo"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/propagation"
)

type QualityRequest struct {
	Completion domain.Completion
}

type QualityResponse struct {
	Quality float64
	Raw     float64
	// MaxAchievable is the structural ceiling before Go-Live.
	MaxAchievable float64
}

type PropagateRequest struct {
	Baseline domain.Completion
	Delays   domain.DelayVector
	Risk     domain.RiskProfile
	// IsBaseline marks the reference scenario; its risk is ignored.
	IsBaseline bool
}

type PropagateResponse struct {
	Params         domain.Completion
	Quality        float64
	SumRisks       float64
	Blocked        bool
	BlockingFactor float64
	// BlockingCutPct is the quality lost to Migration blocking, in points.
	BlockingCutPct float64
}

type SimulateRequest struct {
	Baseline   domain.Completion
	Delays     domain.DelayVector
	Risk       domain.RiskProfile
	IsBaseline bool
	// Iterations of zero selects the configured default.
	Iterations int
	Seed       *uint64
	// Threshold, when set, asks for the probability of reaching it.
	Threshold *float64
}

func NewSimulateRequest() SimulateRequest {
	return SimulateRequest{Baseline: domain.FullCompletion()}
}

type SimulateResponse struct {
	RunID         string
	Params        domain.Completion
	Quality       float64
	StdDev        float64
	NoiseStd      float64
	Deterministic bool
	Seed          uint64
	Samples       []float64
	Summary       montecarlo.Summary
	// ProbabilityAtLeast is nil unless a threshold was requested.
	ProbabilityAtLeast *float64
}

type OptimizeRequest struct {
	optimizer.Request
}

// NewOptimizeRequest returns a request over the default delay windows with
// a fully staffed team.
func NewOptimizeRequest(target float64) OptimizeRequest {
	return OptimizeRequest{Request: optimizer.Request{
		TargetQuality: target,
		TeamSize:      optimizer.DefaultSettings().ReferenceTeamSize,
		Bounds:        optimizer.DefaultBounds(),
	}}
}

type OptimizeResponse struct {
	RunID         string
	Result        optimizer.Result
	MaxAchievable float64
}

type HealthRequest struct {
	Quality       float64
	Delays        domain.DelayVector
	BudgetUsedPct float64
	Risk          domain.RiskProfile
	// ExecutionRisk is a per-phase risk percentage in [0,100].
	ExecutionRisk domain.PhaseValues
}

type HealthResponse struct {
	Score     health.ScoreResult
	Diagnosis health.Diagnosis
}

type ImpactRequest struct {
	Delays domain.DelayVector
}

type ImpactResponse struct {
	Impacts []propagation.PhaseImpact
	// TotalPct is the summed marginal quality loss in points.
	TotalPct float64
}

type HistoryRequest struct {
	Kind  domain.RunKind
	Limit int
}
