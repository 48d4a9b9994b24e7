package optimizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplexSolver_MinimizesWithNegativeRHS(t *testing.T) {
	// min x + y s.t. x + 2y ≥ 4, x ≤ 3, y ≤ 3.
	prog := Program{
		Objective: []float64{1, 1},
		Rows: []Row{
			{Name: "cover", Coeffs: []float64{-1, -2}, RHS: -4},
			{Name: "x", Coeffs: []float64{1, 0}, RHS: 3},
			{Name: "y", Coeffs: []float64{0, 1}, RHS: 3},
		},
	}
	sol, err := NewSimplexSolver().Solve(context.Background(), prog)
	require.NoError(t, err)

	assert.InDelta(t, 2.0, sol.Objective, 1e-9)
	assert.InDelta(t, 0.0, sol.X[0], 1e-9)
	assert.InDelta(t, 2.0, sol.X[1], 1e-9)
}

func TestSimplexSolver_Infeasible(t *testing.T) {
	prog := Program{
		Objective: []float64{1},
		Rows: []Row{
			{Name: "floor", Coeffs: []float64{-1}, RHS: -5},
			{Name: "cap", Coeffs: []float64{1}, RHS: 2},
		},
	}
	_, err := NewSimplexSolver().Solve(context.Background(), prog)
	assert.ErrorIs(t, err, ErrInfeasible)
}

func TestSettings_CostAndTeamFactor(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 1.0, s.TeamFactor(30))
	assert.InDelta(t, 0.4, s.TeamFactor(10), 1e-12)
	assert.InDelta(t, 10*5000/30.44*1.2, s.CostPerDelayDay(10), 1e-9)
}
