package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(f float64) *float64 { return &f }

func fullWeights() map[string]float64 {
	return map[string]float64{
		"UAT": 0.25, "Migration": 0.40, "E2E": 0.20,
		"Training": 0.15, "PRO": 0.10, "Hypercare": 0.10,
	}
}

func TestValidateCoefficientsFile_EmptyIsValid(t *testing.T) {
	assert.Empty(t, ValidateCoefficientsFile(&CoefficientsFile{}))
}

func TestValidateCoefficientsFile_FullWeights(t *testing.T) {
	file := &CoefficientsFile{Weights: fullWeights(), Normalization: ptrFloat(2.2)}
	assert.Empty(t, ValidateCoefficientsFile(file))
}

func TestValidateCoefficientsFile_WeightsMustNameEveryPhase(t *testing.T) {
	w := fullWeights()
	delete(w, "Hypercare")

	errs := ValidateCoefficientsFile(&CoefficientsFile{Weights: w})
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "missing phase Hypercare")
}

func TestValidateCoefficientsFile_CollectsAllErrors(t *testing.T) {
	file := &CoefficientsFile{
		Weights:        map[string]float64{"UAT": -1, "Launch": 0.2},
		Normalization:  ptrFloat(0),
		BlockingFactor: ptrFloat(1.5),
		ImpactPerDay:   map[string]float64{"E2E": -0.1},
	}
	errs := ValidateCoefficientsFile(file)

	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	assert.Contains(t, msgs, "weights.UAT must be non-negative, got -1")
	assert.Contains(t, msgs, `weights: unknown phase "Launch"`)
	assert.Contains(t, msgs, "normalization must be positive, got 0")
	assert.Contains(t, msgs, "blocking_factor must be in [0,1], got 1.5")
	assert.Contains(t, msgs, "impact_per_day.E2E must be non-negative, got -0.1")
}

func TestValidateCoefficientsFile_AliasDuplicate(t *testing.T) {
	file := &CoefficientsFile{ImpactPerDay: map[string]float64{"PRO": 0.1, "Resources": 0.2}}
	errs := ValidateCoefficientsFile(file)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "listed twice")
}

func TestToCoefficients_OverlaysOnlyGivenFields(t *testing.T) {
	base := domain.DefaultCoefficients()
	file := &CoefficientsFile{
		ImpactPerDay:   map[string]float64{"Migration": 0.5},
		BlockingFactor: ptrFloat(0.5),
		RiskPenalty:    &RiskPenaltyImport{Scope: ptrFloat(0.04)},
	}
	coef := ToCoefficients(file, base)

	assert.Equal(t, 0.5, coef.ImpactPerDay[domain.PhaseMigration])
	assert.Equal(t, base.ImpactPerDay[domain.PhaseE2E], coef.ImpactPerDay[domain.PhaseE2E])
	assert.Equal(t, 0.5, coef.BlockingFactor)
	assert.Equal(t, 0.04, coef.RiskPenalty.Scope)
	assert.Equal(t, base.RiskPenalty.Technical, coef.RiskPenalty.Technical)
	assert.Equal(t, base.Weights, coef.Weights)
	// base is a value and stays untouched.
	assert.Equal(t, 0.6, base.BlockingFactor)
}

func TestLoadCoefficientsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coefficients.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"normalization": 2.2, "weights": {"UAT": 0.3}}`), 0o644))

	file, err := LoadCoefficientsFile(path)
	require.NoError(t, err)
	require.NotNil(t, file.Normalization)
	assert.Equal(t, 2.2, *file.Normalization)
	assert.Equal(t, 0.3, file.Weights["UAT"])
}

func TestLoadCoefficientsFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"weights": [1,2]}`), 0o644))

	_, err := LoadCoefficientsFile(path)
	assert.ErrorContains(t, err, "parsing coefficients file")
}
