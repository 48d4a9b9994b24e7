package importer

import (
	"github.com/alexanderramin/golive/internal/domain"
)

// ToCoefficients overlays the file onto base. Call ValidateCoefficientsFile
// first; unknown phase names are skipped here.
func ToCoefficients(file *CoefficientsFile, base domain.Coefficients) domain.Coefficients {
	coef := base

	overlayPhases(&coef.Weights, file.Weights)
	overlayPhases(&coef.RiskSensitivity, file.RiskSensitivity)
	overlayPhases(&coef.ImpactPerDay, file.ImpactPerDay)

	setIf(&coef.Intercept, file.Intercept)
	setIf(&coef.Normalization, file.Normalization)
	setIf(&coef.BlockingFactor, file.BlockingFactor)
	setIf(&coef.NoiseScale, file.NoiseScale)
	setIf(&coef.RiskDivisor, file.RiskDivisor)
	if rp := file.RiskPenalty; rp != nil {
		setIf(&coef.RiskPenalty.Technical, rp.Technical)
		setIf(&coef.RiskPenalty.Business, rp.Business)
		setIf(&coef.RiskPenalty.Scope, rp.Scope)
	}
	return coef
}

func overlayPhases(dst *domain.PhaseValues, table map[string]float64) {
	for name, v := range table {
		if p, err := domain.ParsePhase(name); err == nil {
			dst[p] = v
		}
	}
}

func setIf(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}
