package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/alexanderramin/golive/internal/domain"
	"github.com/alexanderramin/golive/internal/optimizer"
	"github.com/alexanderramin/golive/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsEngineError_Classifies(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code EngineErrorCode
	}{
		{"invalid", domain.InvalidInputf("team size must be at least 1, got 0"), EngineErrInvalidInput},
		{"timeout", fmt.Errorf("optimizing: %w", optimizer.ErrSolverTimeout), EngineErrSolverTimeout},
		{"not found", fmt.Errorf("run abc: %w", repository.ErrNotFound), EngineErrNotFound},
		{"other", errors.New("disk full"), EngineErrInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ee := AsEngineError(tt.err)
			require.NotNil(t, ee)
			assert.Equal(t, tt.code, ee.Code)
			assert.ErrorIs(t, ee, tt.err)
		})
	}
}

func TestAsEngineError_StripsInvalidInputPrefix(t *testing.T) {
	ee := AsEngineError(domain.InvalidInputf("UAT delay -1 days is negative"))
	assert.Equal(t, "UAT delay -1 days is negative", ee.Message)
	assert.Equal(t, "INVALID_INPUT: UAT delay -1 days is negative", ee.Error())
}

func TestAsEngineError_Nil(t *testing.T) {
	assert.Nil(t, AsEngineError(nil))
}
