package health

import (
	"errors"
	"testing"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose_NoDelayNoRiskIsHealthy(t *testing.T) {
	diag, err := Diagnose(domain.DefaultCoefficients(), domain.DelayVector{}, domain.PhaseValues{})
	require.NoError(t, err)

	require.Len(t, diag.Phases, domain.PhaseCount)
	for _, ph := range diag.Phases {
		assert.Equal(t, 100.0, ph.Health, "phase %s", ph.Phase)
		assert.Equal(t, domain.SeverityMild, ph.Severity)
	}
	assert.Equal(t, domain.PhaseUAT, diag.MainRisk.Phase)
}

func TestDiagnose_DelayCascadesDownstream(t *testing.T) {
	coef := domain.DefaultCoefficients()
	delays := domain.DelayVector{domain.PhaseMigration: 20}

	diag, err := Diagnose(coef, delays, domain.PhaseValues{})
	require.NoError(t, err)

	byPhase := map[domain.Phase]PhaseHealth{}
	for _, ph := range diag.Phases {
		byPhase[ph.Phase] = ph
	}
	assert.Equal(t, 100.0, byPhase[domain.PhaseUAT].Health)
	// 20 days at 0.4pp per day.
	assert.InDelta(t, 92.0, byPhase[domain.PhaseMigration].Health, 1e-9)
	// E2E inherits 0.92 and the accumulated 8% loss.
	assert.InDelta(t, 0.92*0.92*100, byPhase[domain.PhaseE2E].Health, 1e-9)
	assert.InDelta(t, 8.0, byPhase[domain.PhaseE2E].AccumulatedPct, 1e-9)
	assert.Less(t, byPhase[domain.PhaseHypercare].Health, byPhase[domain.PhaseE2E].Health)
	assert.Equal(t, domain.PhaseHypercare, diag.MainRisk.Phase)
}

func TestDiagnose_RiskSensitivityIsQuadratic(t *testing.T) {
	coef := domain.DefaultCoefficients()
	var risk domain.PhaseValues
	risk[domain.PhaseUAT] = 50

	diag, err := Diagnose(coef, domain.DelayVector{}, risk)
	require.NoError(t, err)

	// 0.5² · 0.25 sensitivity.
	assert.InDelta(t, 6.25, diag.Phases[0].RiskPct, 1e-9)
	assert.InDelta(t, 93.75, diag.Phases[0].Health, 1e-9)
}

func TestDiagnose_SeverityThresholds(t *testing.T) {
	coef := domain.DefaultCoefficients()
	delays := domain.DelayVector{domain.PhaseUAT: 100, domain.PhaseMigration: 30}

	diag, err := Diagnose(coef, delays, domain.PhaseValues{})
	require.NoError(t, err)

	// 100 days at 0.2pp per day leaves UAT at 80%.
	assert.InDelta(t, 80.0, diag.Phases[0].Health, 1e-9)
	assert.Equal(t, domain.SeverityModerate, diag.Phases[0].Severity)
	assert.Equal(t, domain.SeverityCritical, diag.MainRisk.Severity)
	assert.Contains(t, diag.Summary(), "critical risk in")
}

func TestDiagnose_InvalidRisk(t *testing.T) {
	var risk domain.PhaseValues
	risk[domain.PhaseE2E] = 120
	_, err := Diagnose(domain.DefaultCoefficients(), domain.DelayVector{}, risk)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}
