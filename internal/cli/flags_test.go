package cli

import (
	"testing"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCompletion(t *testing.T) {
	c, err := parseCompletion(map[string]string{"uat": "0.9", "PRO": "75%"}, domain.FullCompletion())
	require.NoError(t, err)
	assert.Equal(t, 0.9, c[domain.PhaseUAT])
	assert.Equal(t, 0.75, c[domain.PhaseResources])
	assert.Equal(t, 1.0, c[domain.PhaseMigration])
	assert.Equal(t, 0.0, c[domain.PhaseHypercare])

	_, err = parseCompletion(map[string]string{"UAT": "abc"}, domain.Completion{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseRisk(t *testing.T) {
	r, err := parseRisk(map[string]string{"technical": "40", "Scope": "10"})
	require.NoError(t, err)
	assert.Equal(t, domain.RiskProfile{Technical: 40, Scope: 10}, r)

	_, err = parseRisk(map[string]string{"business": "150"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseDelayablePhase(t *testing.T) {
	p, err := parseDelayablePhase("training")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseTraining, p)

	_, err = parseDelayablePhase("Resources")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
