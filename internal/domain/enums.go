package domain

type RiskLevel string

const (
	RiskOnTrack  RiskLevel = "on_track"
	RiskAtRisk   RiskLevel = "at_risk"
	RiskCritical RiskLevel = "critical"
)

// Severity grades a single phase's health.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeverityCritical Severity = "critical"
)

type RunKind string

const (
	RunSimulate RunKind = "simulate"
	RunOptimize RunKind = "optimize"
)

// ValidRunKinds is the canonical set of accepted run kind strings.
var ValidRunKinds = map[string]bool{
	"simulate": true, "optimize": true,
}
