package domain

import (
	"fmt"
	"math"
)

// PhaseValues is a per-phase table of constants.
type PhaseValues [PhaseCount]float64

// RiskPenaltyRates are the fractional quality penalties applied at 100% of
// each risk slider.
type RiskPenaltyRates struct {
	Technical float64
	Business  float64
	Scope     float64
}

// Coefficients is the fixed econometric table shared by every engine
// component. It is a value type: callers pass it explicitly and no component
// keeps a reference to it.
type Coefficients struct {
	Weights       PhaseValues
	Intercept     float64
	Normalization float64
	// RiskSensitivity is used by phase health diagnostics only. The simulator
	// scales noise by aggregate risk instead.
	RiskSensitivity PhaseValues
	// ImpactPerDay is the completion loss per day of delay, in percentage
	// points (0.40 means 0.4% per day).
	ImpactPerDay   PhaseValues
	BlockingFactor float64
	RiskPenalty    RiskPenaltyRates
	// NoiseScale is the Monte Carlo standard deviation at maximum aggregate risk.
	NoiseScale  float64
	RiskDivisor float64
}

// DefaultCoefficients returns the calibrated Go-Live model.
func DefaultCoefficients() Coefficients {
	return Coefficients{
		Weights: PhaseValues{
			PhaseUAT:       0.25,
			PhaseMigration: 0.40,
			PhaseE2E:       0.20,
			PhaseTraining:  0.15,
			PhaseResources: 0.10,
			PhaseHypercare: 0.10,
		},
		Intercept:     1.00,
		Normalization: 2.20,
		RiskSensitivity: PhaseValues{
			PhaseUAT:       0.25,
			PhaseMigration: 0.40,
			PhaseE2E:       0.20,
			PhaseTraining:  0.20,
			PhaseResources: 0.35,
			PhaseHypercare: 0.20,
		},
		ImpactPerDay: PhaseValues{
			PhaseUAT:       0.20,
			PhaseMigration: 0.40,
			PhaseE2E:       0.25,
			PhaseTraining:  0.15,
			PhaseResources: 0.15,
			PhaseHypercare: 0.10,
		},
		BlockingFactor: 0.6,
		RiskPenalty: RiskPenaltyRates{
			Technical: 0.10,
			Business:  0.05,
			Scope:     0.03,
		},
		NoiseScale:  0.02,
		RiskDivisor: MaxSumRisks,
	}
}

// PreGoLiveWeight sums the weights of every phase except Hypercare.
func (c Coefficients) PreGoLiveWeight() float64 {
	total := 0.0
	for _, p := range Phases {
		if p == PhaseHypercare {
			continue
		}
		total += c.Weights[p]
	}
	return total
}

// Validate reports every structural problem with the table.
func (c Coefficients) Validate() []error {
	var errs []error
	for _, p := range Phases {
		if w := c.Weights[p]; math.IsNaN(w) || w < 0 {
			errs = append(errs, fmt.Errorf("weights.%s must be non-negative, got %v", p, w))
		}
		if v := c.ImpactPerDay[p]; math.IsNaN(v) || v < 0 {
			errs = append(errs, fmt.Errorf("impact_per_day.%s must be non-negative, got %v", p, v))
		}
		if v := c.RiskSensitivity[p]; math.IsNaN(v) || v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("risk_sensitivity.%s must be in [0,1], got %v", p, v))
		}
	}
	if c.Normalization <= 0 {
		errs = append(errs, fmt.Errorf("normalization must be positive, got %v", c.Normalization))
	}
	if c.Intercept < 0 {
		errs = append(errs, fmt.Errorf("intercept must be non-negative, got %v", c.Intercept))
	}
	if c.BlockingFactor < 0 || c.BlockingFactor > 1 {
		errs = append(errs, fmt.Errorf("blocking_factor must be in [0,1], got %v", c.BlockingFactor))
	}
	pen := c.RiskPenalty
	if pen.Technical < 0 || pen.Business < 0 || pen.Scope < 0 || pen.Technical+pen.Business+pen.Scope >= 1 {
		errs = append(errs, fmt.Errorf("risk_penalty rates must be non-negative and sum below 1"))
	}
	if c.NoiseScale < 0 {
		errs = append(errs, fmt.Errorf("noise_scale must be non-negative, got %v", c.NoiseScale))
	}
	if c.RiskDivisor <= 0 {
		errs = append(errs, fmt.Errorf("risk_divisor must be positive, got %v", c.RiskDivisor))
	}
	return errs
}
