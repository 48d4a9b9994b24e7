package propagation

import (
	"testing"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelayImpacts_AccumulatesInModelOrder(t *testing.T) {
	coef := domain.DefaultCoefficients()
	var delays domain.DelayVector
	delays[domain.PhaseE2E] = 4
	delays[domain.PhaseUAT] = 2

	impacts, err := DelayImpacts(coef, delays)
	require.NoError(t, err)
	require.Len(t, impacts, 2)

	assert.Equal(t, domain.PhaseUAT, impacts[0].Phase)
	assert.InDelta(t, 0.4, impacts[0].MarginalPct, 1e-9)
	assert.InDelta(t, 0.4, impacts[0].AccumulatedPct, 1e-9)

	assert.Equal(t, domain.PhaseE2E, impacts[1].Phase)
	assert.Equal(t, 4, impacts[1].DelayDays)
	assert.InDelta(t, 1.0, impacts[1].MarginalPct, 1e-9)
	assert.InDelta(t, 1.4, impacts[1].AccumulatedPct, 1e-9)
}

func TestDelayImpacts_MigrationAffectsEverythingAfterIt(t *testing.T) {
	var delays domain.DelayVector
	delays[domain.PhaseMigration] = 1

	impacts, err := DelayImpacts(domain.DefaultCoefficients(), delays)
	require.NoError(t, err)
	require.Len(t, impacts, 1)
	assert.Equal(t, []domain.Phase{
		domain.PhaseE2E, domain.PhaseTraining, domain.PhaseResources, domain.PhaseHypercare,
	}, impacts[0].Affected)
}

func TestDelayImpacts_SkipsHypercareAndUndelayed(t *testing.T) {
	var delays domain.DelayVector
	delays[domain.PhaseHypercare] = 10

	impacts, err := DelayImpacts(domain.DefaultCoefficients(), delays)
	require.NoError(t, err)
	assert.Empty(t, impacts)
}

func TestDelayImpacts_RejectsNegativeDelay(t *testing.T) {
	var delays domain.DelayVector
	delays[domain.PhaseUAT] = -1

	_, err := DelayImpacts(domain.DefaultCoefficients(), delays)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestDelayImpacts_IgnoresHypercareDelay(t *testing.T) {
	coef := domain.DefaultCoefficients()
	delays := domain.DelayVector{domain.PhaseUAT: 5, domain.PhaseE2E: 4, domain.PhaseHypercare: 9}

	impacts, err := DelayImpacts(coef, delays)
	require.NoError(t, err)
	require.Len(t, impacts, 2)

	assert.Equal(t, domain.PhaseUAT, impacts[0].Phase)
	assert.InDelta(t, 1.0, impacts[0].MarginalPct, 1e-12)
	assert.InDelta(t, 1.0, impacts[0].AccumulatedPct, 1e-12)
	assert.Len(t, impacts[0].Affected, 5)

	assert.Equal(t, domain.PhaseE2E, impacts[1].Phase)
	assert.InDelta(t, 1.0, impacts[1].MarginalPct, 1e-12)
	assert.InDelta(t, 2.0, impacts[1].AccumulatedPct, 1e-12)
	assert.Equal(t, []domain.Phase{domain.PhaseTraining, domain.PhaseResources, domain.PhaseHypercare}, impacts[1].Affected)
}
