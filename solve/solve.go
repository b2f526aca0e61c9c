// SPDX-License-Identifier: MIT

package solve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlinalg/matrix"
)

const opSolve = "Solve"

// Solve classifies and solves A·x = b.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrEmpty (A or b empty),
//     matrix.ErrDimensionMismatch (len(b) != Rows(A)), matrix.ErrNaNInf.
//   - matrix.ErrComputeFailed when the SVD does not converge.
//
// Singularity is never an error here: it routes to the least-squares path.
//
// Complexity: O(n³) for the exact path, O(r·c·min(r,c)) for the fallback.
func Solve(a matrix.Matrix, b []float64, opts ...Option) (Solution, error) {
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	if len(b) == 0 {
		return Solution{}, fmt.Errorf("%s: constants: %w", opSolve, matrix.ErrEmpty)
	}
	if a.Rows() != len(b) {
		return Solution{}, fmt.Errorf("%s: number of equations (%d rows) must match the number of constants (%d): %w",
			opSolve, a.Rows(), len(b), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(b); err != nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	o := gatherOptions(opts...)

	// Exact attempt.
	if a.Rows() == a.Cols() {
		x, err := matrix.SolveSquare(a, b, o.matrixOpts...)
		if err == nil {
			return Solution{X: x, Class: Unique, Rank: a.Cols()}, nil
		}
		if !errors.Is(err, matrix.ErrSingular) {
			return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
		}
	}

	// Least-squares fallback.
	x, rank, residual, err := matrix.LeastSquares(a, b)
	if err != nil {
		return Solution{}, fmt.Errorf("%s: %w", opSolve, err)
	}
	sol := Solution{X: x, Rank: rank, Residual: residual}
	switch {
	case rank < a.Cols():
		sol.Class = Infinite
		sol.Message = MessageInfinite
	case residual > o.residualTol:
		sol.Class = InconsistentApproximate
		sol.Message = MessageInconsistent
	default:
		sol.Class = Unique
		sol.Residual = 0
	}

	return sol, nil
}
