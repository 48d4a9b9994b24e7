package testutil

import (
	"time"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/google/uuid"
)

// Run options
type RunOption func(*domain.Run)

func WithRunKind(k domain.RunKind) RunOption {
	return func(r *domain.Run) {
		r.Kind = k
	}
}

func WithTarget(q float64) RunOption {
	return func(r *domain.Run) {
		r.TargetQuality = &q
	}
}

func WithRisk(p domain.RiskProfile) RunOption {
	return func(r *domain.Run) {
		r.Risk = p
	}
}

func WithDelays(d domain.DelayVector) RunOption {
	return func(r *domain.Run) {
		r.Delays = &d
		r.TotalDelayDays = d.Total()
	}
}

func WithReasons(reasons ...string) RunOption {
	return func(r *domain.Run) {
		r.Reasons = reasons
		r.Success = false
		r.Delays = nil
	}
}

func WithCreatedAt(t time.Time) RunOption {
	return func(r *domain.Run) {
		r.CreatedAt = t
	}
}

// NewTestRun builds a successful optimize run by default.
func NewTestRun(quality float64, opts ...RunOption) *domain.Run {
	r := &domain.Run{
		ID:        uuid.New().String(),
		Kind:      domain.RunOptimize,
		Quality:   quality,
		Success:   true,
		CreatedAt: time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}
