package optimizer

import (
	"math"
	"time"

	"github.com/alexanderramin/golive/internal/domain"
)

// Target quality accepted by Optimize. The upper bound is 100 rather than 95
// on purpose: targets above the structural ceiling are valid input and
// produce a failed result explaining the ceiling.
const (
	MinTargetQuality = 50.0
	MaxTargetQuality = 100.0
)

// PhaseBound constrains one delayable phase.
type PhaseBound struct {
	// Current is the completion fraction the phase reaches at Go-Live with no
	// extra delay.
	Current  float64
	MinDelay int
	MaxDelay int
}

// Request is the input to one optimization. Only the delayable phases of
// Bounds are read; Resources follows TeamSize and Hypercare is 0 at Go-Live.
type Request struct {
	TargetQuality float64
	Risk          domain.RiskProfile
	TeamSize      int
	// Budget caps the cost of the added delay-days. Zero means unconstrained.
	Budget float64
	Bounds [domain.PhaseCount]PhaseBound
	// SolverTimeout overrides Settings.SolverTimeout when positive.
	SolverTimeout time.Duration
}

// DefaultBounds returns fully complete phases with the widest delay windows
// the planning model allows.
func DefaultBounds() [domain.PhaseCount]PhaseBound {
	var b [domain.PhaseCount]PhaseBound
	for _, p := range domain.DelayablePhases {
		b[p].Current = 1
	}
	b[domain.PhaseUAT].MaxDelay = 22
	b[domain.PhaseMigration].MaxDelay = 30
	b[domain.PhaseE2E].MaxDelay = 21
	b[domain.PhaseTraining].MaxDelay = 20
	return b
}

func (r Request) Validate() error {
	if math.IsNaN(r.TargetQuality) || r.TargetQuality < MinTargetQuality || r.TargetQuality > MaxTargetQuality {
		return domain.InvalidInputf("target quality %.1f outside [%.0f,%.0f]", r.TargetQuality, MinTargetQuality, MaxTargetQuality)
	}
	if err := r.Risk.Validate(); err != nil {
		return err
	}
	if r.TeamSize < 1 {
		return domain.InvalidInputf("team size must be at least 1, got %d", r.TeamSize)
	}
	if math.IsNaN(r.Budget) || math.IsInf(r.Budget, 0) || r.Budget < 0 {
		return domain.InvalidInputf("budget must be a non-negative amount, got %v", r.Budget)
	}
	for _, p := range domain.DelayablePhases {
		b := r.Bounds[p]
		if math.IsNaN(b.Current) || b.Current < 0 || b.Current > 1 {
			return domain.InvalidInputf("%s current completion %.4f outside [0,1]", p, b.Current)
		}
		if b.MinDelay < 0 || b.MaxDelay < 0 {
			return domain.InvalidInputf("%s delay bounds must be non-negative, got [%d,%d]", p, b.MinDelay, b.MaxDelay)
		}
	}
	return nil
}

// Settings are the planning constants behind the linear model.
type Settings struct {
	// ReferenceTeamSize is the headcount at which Resources is fully staffed
	// and phases recover at their baseline pace.
	ReferenceTeamSize    int
	MonthlyCostPerMember float64
	OverheadFactor       float64
	DaysPerMonth         float64
	// BaselineDays is each phase's planned duration; one extra day at full
	// staffing recovers 1/BaselineDays of completion.
	BaselineDays  domain.PhaseValues
	SolverTimeout time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		ReferenceTeamSize:    25,
		MonthlyCostPerMember: 5000,
		OverheadFactor:       1.2,
		DaysPerMonth:         30.44,
		BaselineDays: domain.PhaseValues{
			domain.PhaseUAT:       23,
			domain.PhaseMigration: 30,
			domain.PhaseE2E:       29,
			domain.PhaseTraining:  30,
			domain.PhaseResources: 29,
			domain.PhaseHypercare: 30,
		},
		SolverTimeout: 5 * time.Second,
	}
}

// TeamFactor is the staffing ratio against the reference team, capped at 1.
func (s Settings) TeamFactor(teamSize int) float64 {
	if s.ReferenceTeamSize <= 0 {
		return 1
	}
	return math.Min(1, float64(teamSize)/float64(s.ReferenceTeamSize))
}

// CostPerDelayDay is the loaded daily cost of keeping the team on the project.
func (s Settings) CostPerDelayDay(teamSize int) float64 {
	return float64(teamSize) * s.MonthlyCostPerMember / s.DaysPerMonth * s.OverheadFactor
}
