// SPDX-License-Identifier: MIT

package matrix

import "math"

// Det returns the determinant of a square matrix as the product of the U
// diagonal of the pivoted LU times the permutation sign.
//
// Behavior highlights:
//   - No symbolic zero test: a numerically singular matrix reports whatever
//     tiny value elimination produced (often exactly 0).
//
// Errors:
//   - ErrEmpty, ErrNonSquare.
//
// Complexity: O(n³).
func Det(m Matrix) (float64, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDet, err)
	}
	f, err := factorLU(m)
	if err != nil {
		return 0, matrixErrorf(opDet, err)
	}

	n := f.lu.r
	det := f.sign
	for i := 0; i < n; i++ {
		det *= f.lu.data[i*n+i]
	}

	return det, nil
}

// Inverse returns A⁻¹ by solving A·X = I column by column on one pivoted LU.
//
// Implementation:
//   - Stage 1: ValidateNonEmpty, ValidateSquare.
//   - Stage 2: factorLU; any |U_ii| ≤ scale·n·ε·max|a| → ErrSingular.
//   - Stage 3: for each column e_col: forward (L·y = P·e_col) and backward
//     (U·x = y) substitution, x written into column col.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Inverse(m Matrix, opts ...Option) (Matrix, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	src, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	f, err := factorLU(src)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err = f.checkPivots(o, maxAbsEntry(src)); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := src.r
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	var (
		col, i int
		e      = make([]float64, n) // unit vector e_col
		x      = make([]float64, n) // solution column
		y      = make([]float64, n) // forward substitution workspace
	)
	for col = 0; col < n; col++ {
		e[col] = 1.0
		f.solveInto(x, e, y)
		e[col] = 0.0
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Rank returns the numerical rank: the number of singular values strictly
// greater than σ_max · max(r, c) · ε.
//
// Errors:
//   - ErrEmpty, ErrComputeFailed (SVD did not converge).
//
// Complexity: O(r·c·min(r,c)).
func Rank(m Matrix) (int, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opRank, err)
	}
	s, err := SingularValues(m)
	if err != nil {
		return 0, matrixErrorf(opRank, err)
	}

	return rankFromSingularValues(s, m.Rows(), m.Cols()), nil
}

// rankThreshold is the cutoff below which a singular value counts as zero.
func rankThreshold(s []float64, rows, cols int) float64 {
	if len(s) == 0 {
		return 0
	}

	return s[0] * float64(max(rows, cols)) * machineEpsilon
}

// rankFromSingularValues counts s_i > threshold; s must be sorted descending.
func rankFromSingularValues(s []float64, rows, cols int) int {
	tol := rankThreshold(s, rows, cols)
	rank := 0
	for _, v := range s {
		if v > tol && !math.IsNaN(v) {
			rank++
		}
	}

	return rank
}
