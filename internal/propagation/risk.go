package propagation

import (
	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/quality"
)

// Penalty is the fractional quality reduction attributed to each risk slider.
type Penalty struct {
	Technical float64
	Business  float64
	Scope     float64
}

func (p Penalty) Total() float64 {
	return p.Technical + p.Business + p.Scope
}

// RiskPenalty scales each slider's penalty rate by its value.
func RiskPenalty(coef domain.Coefficients, profile domain.RiskProfile) Penalty {
	return Penalty{
		Technical: coef.RiskPenalty.Technical * profile.Technical / 100,
		Business:  coef.RiskPenalty.Business * profile.Business / 100,
		Scope:     coef.RiskPenalty.Scope * profile.Scope / 100,
	}
}

// ApplyRiskPenalty reduces q multiplicatively and keeps it in [0,100].
func ApplyRiskPenalty(q float64, pen Penalty) float64 {
	return quality.Clamp(q * (1 - pen.Total()))
}
