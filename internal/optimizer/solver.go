package optimizer

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

var (
	// ErrSolverTimeout is returned when the linear relaxation does not finish
	// within the caller's timeout.
	ErrSolverTimeout = errors.New("solver timeout")
	// ErrInfeasible reports a linear program with no feasible point.
	ErrInfeasible = errors.New("linear program infeasible")
)

// Row is one constraint Coeffs·x ≤ RHS.
type Row struct {
	Name   string
	Coeffs []float64
	RHS    float64
}

// Program is a minimization over x ≥ 0 with ≤ constraints.
type Program struct {
	Objective []float64
	Rows      []Row
}

type Solution struct {
	X         []float64
	Objective float64
}

// Solver solves linear programs. Implementations must honour ctx.
type Solver interface {
	Solve(ctx context.Context, prog Program) (*Solution, error)
}

// SimplexSolver runs gonum's simplex method on the standard form of a Program.
type SimplexSolver struct {
	Tolerance float64
}

func NewSimplexSolver() *SimplexSolver {
	return &SimplexSolver{Tolerance: 1e-10}
}

// Solve adds one slack per row and runs the simplex off the caller's
// goroutine so that ctx cancellation is observed promptly.
func (s *SimplexSolver) Solve(ctx context.Context, prog Program) (*Solution, error) {
	c, a, b := standardForm(prog)
	n := len(prog.Objective)

	type outcome struct {
		f   float64
		x   []float64
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		f, x, err := lp.Simplex(c, a, b, s.Tolerance, nil)
		done <- outcome{f: f, x: x, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case out := <-done:
		if errors.Is(out.err, lp.ErrInfeasible) {
			return nil, ErrInfeasible
		}
		if out.err != nil {
			return nil, fmt.Errorf("simplex: %w", out.err)
		}
		return &Solution{X: out.x[:n], Objective: out.f}, nil
	}
}

// standardForm rewrites min cᵀx s.t. Gx ≤ h, x ≥ 0 as min cᵀx s.t. [G I]x' = h.
// Rows with a negative right-hand side are negated so b stays non-negative.
func standardForm(prog Program) ([]float64, *mat.Dense, []float64) {
	n := len(prog.Objective)
	m := len(prog.Rows)

	c := make([]float64, n+m)
	copy(c, prog.Objective)

	a := mat.NewDense(m, n+m, nil)
	b := make([]float64, m)
	for i, row := range prog.Rows {
		sign := 1.0
		if row.RHS < 0 {
			sign = -1
		}
		for j, v := range row.Coeffs {
			a.Set(i, j, sign*v)
		}
		a.Set(i, n+i, sign)
		b[i] = sign * row.RHS
	}
	return c, a, b
}
