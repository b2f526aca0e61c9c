// SPDX-License-Identifier: MIT
// Package matrix: triangular and orthogonal factorizations.
//
// Purpose:
//   - LU with partial pivoting for any r×c matrix (P·A = L·U).
//   - Householder QR for any r×c matrix (A = Q·R, QᵀQ = I).
//   - Cholesky for symmetric positive-definite input (A = L·Lᵀ).
//   - SolveSquare: exact solve through the pivoted LU.
//
// Determinism:
//   - Pivot search scans rows top-down and keeps the first maximum, so ties
//     resolve to the lowest row index.

package matrix

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// luFactors is the packed result of Gaussian elimination with partial pivoting.
// Strictly-lower entries of lu hold the L multipliers, the rest holds U.
type luFactors struct {
	lu   *Dense  // packed factors, r×c
	perm []int   // perm[i] = source row of A placed at row i
	sign float64 // (−1)^(number of row swaps)
	k    int     // min(r, c)
}

// factorLU runs Doolittle-style elimination with partial pivoting on a copy of m.
//
// Implementation:
//   - Stage 1: copy m; perm = identity.
//   - Stage 2: for each column col < k, pick the row with max |a[i,col]|, swap,
//     then eliminate below. An exactly zero pivot column is skipped: the
//     entries below are all zero, so there is nothing to eliminate.
//
// Behavior highlights:
//   - Never fails on finite input; rectangular matrices are supported.
//
// Complexity:
//   - Time O(r·c·k), Space O(r·c).
func factorLU(m Matrix) (*luFactors, error) {
	a, err := denseCopy(m)
	if err != nil {
		return nil, err
	}
	r, c := a.r, a.c
	k := min(r, c)

	perm := make([]int, r)
	for i := range perm {
		perm[i] = i
	}
	sign := 1.0

	var (
		i, j, col, p int
		maxAbs, v    float64
		pivot, f     float64
		baseCol      int
		baseI        int
	)
	for col = 0; col < k; col++ {
		// Pivot search: first row with the largest magnitude in this column.
		p = col
		maxAbs = math.Abs(a.data[col*c+col])
		for i = col + 1; i < r; i++ {
			if v = math.Abs(a.data[i*c+col]); v > maxAbs {
				maxAbs, p = v, i
			}
		}
		if p != col {
			for j = 0; j < c; j++ {
				a.data[col*c+j], a.data[p*c+j] = a.data[p*c+j], a.data[col*c+j]
			}
			perm[col], perm[p] = perm[p], perm[col]
			sign = -sign
		}

		baseCol = col * c
		pivot = a.data[baseCol+col]
		if pivot == ZeroPivot {
			continue // whole sub-column is zero
		}
		for i = col + 1; i < r; i++ {
			baseI = i * c
			f = a.data[baseI+col] / pivot
			a.data[baseI+col] = f // store multiplier in the strictly-lower part
			if f == 0 {
				continue
			}
			for j = col + 1; j < c; j++ {
				a.data[baseI+j] -= f * a.data[baseCol+j]
			}
		}
	}

	return &luFactors{lu: a, perm: perm, sign: sign, k: k}, nil
}

// maxAbsEntry returns max |a_ij| over the flat buffer.
func maxAbsEntry(d *Dense) float64 {
	maxAbs := NormZero
	for _, v := range d.data {
		if a := math.Abs(v); a > maxAbs {
			maxAbs = a
		}
	}

	return maxAbs
}

// checkPivots reports ErrSingular when any U diagonal entry of a square
// factorization is at or below the options' pivot tolerance.
func (f *luFactors) checkPivots(o Options, scale float64) error {
	n := f.lu.r
	tol := o.pivotTolerance(n, scale)
	for i := 0; i < n; i++ {
		if piv := math.Abs(f.lu.data[i*n+i]); piv <= tol {
			return fmt.Errorf("pivot %d is %g (tolerance %g): %w", i, piv, tol, ErrSingular)
		}
	}

	return nil
}

// solveInto solves L·U·x = P·b for a square factorization, writing x into dst.
// y is caller-provided scratch of length n.
func (f *luFactors) solveInto(dst, b, y []float64) {
	n := f.lu.r
	d := f.lu.data
	var i, k, base int
	var sum float64
	// Forward substitution: L*y = P*b (unit diagonal)
	for i = 0; i < n; i++ {
		sum = ZeroSum
		base = i * n
		for k = 0; k < i; k++ {
			sum += d[base+k] * y[k]
		}
		y[i] = b[f.perm[i]] - sum
	}
	// Backward substitution: U*x = y
	for i = n - 1; i >= 0; i-- {
		sum = ZeroSum
		base = i * n
		for k = i + 1; k < n; k++ {
			sum += d[base+k] * dst[k]
		}
		dst[i] = (y[i] - sum) / d[base+i]
	}
}

// LU computes the partially pivoted factorization P·A = L·U.
//
// Implementation:
//   - Stage 1: factorLU on a private copy.
//   - Stage 2: unpack P (r×r permutation), L (r×k unit lower), U (k×c upper).
//
// Behavior highlights:
//   - No square requirement; singular input still factorizes (U has zero pivots).
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
//
// Complexity:
//   - Time O(r·c·k), Space O(r² + r·k + k·c).
func LU(m Matrix) (p, l, u Matrix, err error) {
	if err = ValidateNonEmpty(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	f, err := factorLU(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLU, err)
	}
	r, c, k := f.lu.r, f.lu.c, f.k

	P, _ := NewDense(r, r)
	L, _ := NewDense(r, k)
	U, _ := NewDense(k, c)
	var i, j int
	for i = 0; i < r; i++ {
		P.data[i*r+f.perm[i]] = 1.0
		for j = 0; j < k && j < i; j++ {
			L.data[i*k+j] = f.lu.data[i*c+j]
		}
		if i < k {
			L.data[i*k+i] = 1.0
			for j = i; j < c; j++ {
				U.data[i*c+j] = f.lu.data[i*c+j]
			}
		}
	}

	return P, L, U, nil
}

// SolveSquare solves A·x = b exactly for a square, numerically non-singular A.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrDimensionMismatch (len(b) != n),
//     ErrSingular (pivot at or below scale·n·ε·max|a|).
//
// Complexity: O(n³).
func SolveSquare(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	if err := ValidateNonEmpty(a); err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}
	if err := ValidateVecLen(b, a.Rows()); err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}
	o := gatherOptions(opts...)

	f, err := factorLU(a)
	if err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}
	src, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}
	if err = f.checkPivots(o, maxAbsEntry(src)); err != nil {
		return nil, matrixErrorf(opSolveSquare, err)
	}

	n := a.Rows()
	x := make([]float64, n)
	f.solveInto(x, b, make([]float64, n))

	return x, nil
}

// QR computes A = Q·R with Householder reflections (reduced form).
//
// Implementation:
//   - Stage 1: copy A (r×c) and start an r×r accumulator H = I.
//   - Stage 2: for each column k < min(r,c): v = x − α·e_k with
//     α = −sign(x_k)·‖x‖, apply H_k = I − 2vvᵀ/(vᵀv) to A and to the accumulator.
//   - Stage 3: Q = (H_k⋯H_1)ᵀ restricted to the first min(r,c) columns;
//     R = first min(r,c) rows of the reduced A with the strict lower part zeroed.
//
// Behavior highlights:
//   - Zero columns are skipped (the reflection is the identity).
//   - QᵀQ = I to working precision for any input, including rank-deficient.
//
// Errors:
//   - ErrNilMatrix, ErrEmpty.
//
// Complexity:
//   - Time O(r²·c), Space O(r² + r·c).
func QR(m Matrix) (q, r Matrix, err error) {
	if err = ValidateNonEmpty(m); err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	A, err := denseCopy(m)
	if err != nil {
		return nil, nil, matrixErrorf(opQR, err)
	}
	rows, cols := A.r, A.c
	kk := min(rows, cols)

	H, _ := NewDense(rows, rows)
	for i := 0; i < rows; i++ {
		H.data[i*rows+i] = 1.0
	}

	v := make([]float64, rows) // Householder vector (entries k..rows-1 used)
	var (
		i, j, k    int
		norm, beta float64
		alpha, tau float64
		sum, aij   float64
	)
	for k = 0; k < kk; k++ {
		// Norm of A[k:rows, k]
		norm = NormZero
		for i = k; i < rows; i++ {
			norm = math.Hypot(norm, A.data[i*cols+k])
		}
		if norm == NormZero {
			continue // skip zero column
		}

		aij = A.data[k*cols+k]
		alpha = -math.Copysign(norm, aij)

		for i = k; i < rows; i++ {
			v[i] = A.data[i*cols+k]
		}
		v[k] -= alpha

		beta = NormZero
		for i = k; i < rows; i++ {
			beta += v[i] * v[i]
		}
		if beta == NormZero {
			continue
		}
		tau = 2.0 / beta

		// Apply reflection to A (columns k..cols-1)
		for j = k; j < cols; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * A.data[i*cols+j]
			}
			for i = k; i < rows; i++ {
				A.data[i*cols+j] -= tau * v[i] * sum
			}
		}
		// Exact zeros below the diagonal of column k.
		A.data[k*cols+k] = alpha
		for i = k + 1; i < rows; i++ {
			A.data[i*cols+k] = 0
		}

		// Apply reflection to the accumulator: H ← H_k·H
		for j = 0; j < rows; j++ {
			sum = ZeroSum
			for i = k; i < rows; i++ {
				sum += v[i] * H.data[i*rows+j]
			}
			for i = k; i < rows; i++ {
				H.data[i*rows+j] -= tau * v[i] * sum
			}
		}
	}

	// Q[i,j] = H[j,i] for j < kk.
	Q, _ := NewDense(rows, kk)
	for i = 0; i < rows; i++ {
		for j = 0; j < kk; j++ {
			Q.data[i*kk+j] = H.data[j*rows+i]
		}
	}
	R, _ := NewDense(kk, cols)
	for i = 0; i < kk; i++ {
		for j = i; j < cols; j++ {
			R.data[i*cols+j] = A.data[i*cols+j]
		}
	}

	return Q, R, nil
}

// Cholesky returns the lower-triangular L with A = L·Lᵀ.
//
// Implementation:
//   - Stage 1: ValidateSquare, then ValidateSymmetric under the options' tolerance.
//   - Stage 2: gonum mat.Cholesky on the upper triangle; a failed factorization
//     means a non-positive pivot was met.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrAsymmetry, ErrNotPositiveDefinite.
//
// Complexity: O(n³/3).
func Cholesky(m Matrix, opts ...Option) (l Matrix, err error) {
	defer recoverNumeric(opCholesky, &err)

	if err = ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	if err = ValidateSymmetric(m, opts...); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}
	src, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := src.r
	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(n, src.data)); !ok {
		return nil, matrixErrorf(opCholesky, ErrNotPositiveDefinite)
	}
	var tri mat.TriDense
	chol.LTo(&tri)

	return fromGonum(&tri), nil
}
