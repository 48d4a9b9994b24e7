package importer

import (
	"fmt"
	"math"

	"github.com/alexanderramin/golive/internal/domain"
)

// ValidateCoefficientsFile checks the file for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateCoefficientsFile(file *CoefficientsFile) []error {
	var errs []error

	errs = append(errs, validatePhaseTable("weights", file.Weights, true, false)...)
	errs = append(errs, validatePhaseTable("risk_sensitivity", file.RiskSensitivity, false, true)...)
	errs = append(errs, validatePhaseTable("impact_per_day", file.ImpactPerDay, false, false)...)

	if file.Normalization != nil && !(*file.Normalization > 0) {
		errs = append(errs, fmt.Errorf("normalization must be positive, got %v", *file.Normalization))
	}
	if file.Intercept != nil && (math.IsNaN(*file.Intercept) || *file.Intercept < 0) {
		errs = append(errs, fmt.Errorf("intercept must be non-negative, got %v", *file.Intercept))
	}
	if file.BlockingFactor != nil && !inUnit(*file.BlockingFactor) {
		errs = append(errs, fmt.Errorf("blocking_factor must be in [0,1], got %v", *file.BlockingFactor))
	}
	if file.NoiseScale != nil && (math.IsNaN(*file.NoiseScale) || *file.NoiseScale < 0) {
		errs = append(errs, fmt.Errorf("noise_scale must be non-negative, got %v", *file.NoiseScale))
	}
	if file.RiskDivisor != nil && !(*file.RiskDivisor > 0) {
		errs = append(errs, fmt.Errorf("risk_divisor must be positive, got %v", *file.RiskDivisor))
	}
	if rp := file.RiskPenalty; rp != nil {
		for name, v := range map[string]*float64{"technical": rp.Technical, "business": rp.Business, "scope": rp.Scope} {
			if v != nil && !inUnit(*v) {
				errs = append(errs, fmt.Errorf("risk_penalty.%s must be in [0,1], got %v", name, *v))
			}
		}
	}

	if len(errs) == 0 {
		// Cross-field rules only make sense once each field is sane.
		coef := ToCoefficients(file, domain.DefaultCoefficients())
		errs = append(errs, coef.Validate()...)
	}
	return errs
}

// validatePhaseTable checks keys are known phases and values are in range.
// Weight tables must name all six phases so the ceiling stays explicit.
func validatePhaseTable(field string, table map[string]float64, requireAll, unitRange bool) []error {
	if table == nil {
		return nil
	}
	var errs []error
	seen := make(map[domain.Phase]bool)
	for name, v := range table {
		p, err := domain.ParsePhase(name)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: unknown phase %q", field, name))
			continue
		}
		if seen[p] {
			errs = append(errs, fmt.Errorf("%s: phase %s listed twice", field, p))
		}
		seen[p] = true
		if math.IsNaN(v) || v < 0 {
			errs = append(errs, fmt.Errorf("%s.%s must be non-negative, got %v", field, p, v))
		} else if unitRange && v > 1 {
			errs = append(errs, fmt.Errorf("%s.%s must be at most 1, got %v", field, p, v))
		}
	}
	if requireAll {
		for _, p := range domain.Phases {
			if !seen[p] {
				errs = append(errs, fmt.Errorf("%s: missing phase %s", field, p))
			}
		}
	}
	return errs
}

func inUnit(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
