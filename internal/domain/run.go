package domain

import "time"

// Run is one recorded engine invocation in the run ledger.
type Run struct {
	ID             string
	Kind           RunKind
	TargetQuality  *float64
	Risk           RiskProfile
	Iterations     int
	Quality        float64
	StdDev         float64
	Success        bool
	Delays         *DelayVector
	TotalDelayDays int
	EstimatedCost  float64
	Reasons        []string
	CreatedAt      time.Time
}
