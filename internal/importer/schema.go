package importer

import (
	"encoding/json"
	"fmt"
	"os"
)

// CoefficientsFile is the JSON form of the model's coefficient table. Every
// field is optional; absent fields keep their calibrated default. Phase
// tables are keyed by phase name ("PRO" is accepted for Resources).
type CoefficientsFile struct {
	Weights         map[string]float64 `json:"weights,omitempty"`
	Intercept       *float64           `json:"intercept,omitempty"`
	Normalization   *float64           `json:"normalization,omitempty"`
	RiskSensitivity map[string]float64 `json:"risk_sensitivity,omitempty"`
	ImpactPerDay    map[string]float64 `json:"impact_per_day,omitempty"`
	BlockingFactor  *float64           `json:"blocking_factor,omitempty"`
	RiskPenalty     *RiskPenaltyImport `json:"risk_penalty,omitempty"`
	NoiseScale      *float64           `json:"noise_scale,omitempty"`
	RiskDivisor     *float64           `json:"risk_divisor,omitempty"`
}

// RiskPenaltyImport holds the per-slider penalty rates.
type RiskPenaltyImport struct {
	Technical *float64 `json:"technical,omitempty"`
	Business  *float64 `json:"business,omitempty"`
	Scope     *float64 `json:"scope,omitempty"`
}

// LoadCoefficientsFile reads and parses a coefficient file. It does not
// validate; call ValidateCoefficientsFile next.
func LoadCoefficientsFile(path string) (*CoefficientsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file CoefficientsFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing coefficients file: %w", err)
	}
	return &file, nil
}
