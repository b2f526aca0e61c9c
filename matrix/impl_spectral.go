// SPDX-License-Identifier: MIT
// Package matrix: spectral kernels backed by gonum.
//
// Purpose:
//   - SVD in two shapes: thin (singular values as a vector) and full
//     (Σ zero-padded to the shape of A).
//   - Numerical rank and minimum-norm least squares on top of the thin SVD.
//   - General real eigendecomposition with complex eigenpairs.
//
// Notes:
//   - gonum panics on malformed input (e.g. zero-sized matrices); every entry
//     point validates first and converts any remaining panic into
//     ErrComputeFailed via recoverNumeric.
//   - Singular values come back sorted non-increasing.
//   - Eigenpair order is the order LAPACK's dgeev produces; callers must not
//     rely on it.

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// recoverNumeric converts a panic raised inside the numeric backend into a
// tagged ErrComputeFailed. Use as: defer recoverNumeric(opX, &err).
func recoverNumeric(op string, err *error) {
	if r := recover(); r != nil {
		*err = matrixErrorf(op, fmt.Errorf("%v: %w", r, ErrComputeFailed))
	}
}

// toGonum copies m into a fresh *mat.Dense. m must be non-empty.
func toGonum(m Matrix) (*mat.Dense, error) {
	d, err := denseCopy(m)
	if err != nil {
		return nil, err
	}
	if d.IsEmpty() {
		return nil, ErrEmpty
	}

	return mat.NewDense(d.r, d.c, d.data), nil
}

// fromGonum copies any gonum matrix into a fresh Dense.
func fromGonum(g mat.Matrix) *Dense {
	r, c := g.Dims()
	out, _ := NewDense(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[i*c+j] = g.At(i, j)
		}
	}

	return out
}

// factorSVD validates m and runs gonum's SVD with the given kind.
func factorSVD(m Matrix, kind mat.SVDKind) (*mat.SVD, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, err
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, err
	}
	var svd mat.SVD
	if ok := svd.Factorize(g, kind); !ok {
		return nil, fmt.Errorf("SVD did not converge: %w", ErrComputeFailed)
	}

	return &svd, nil
}

// SingularValues returns the singular values of m in non-increasing order.
// Complexity: O(r·c·min(r,c)).
func SingularValues(m Matrix) (s []float64, err error) {
	defer recoverNumeric(opSVD, &err)

	svd, err := factorSVD(m, mat.SVDNone)
	if err != nil {
		return nil, matrixErrorf(opSVD, err)
	}

	return svd.Values(nil), nil
}

// SVD computes the thin decomposition A = U·diag(s)·Vᵀ.
//
// Returns:
//   - u : r×k with orthonormal columns, k = min(r, c).
//   - s : k singular values, non-increasing.
//   - vt: k×c with orthonormal rows.
//
// Errors:
//   - ErrEmpty, ErrComputeFailed.
//
// Complexity: O(r·c·min(r,c)).
func SVD(m Matrix) (u Matrix, s []float64, vt Matrix, err error) {
	defer recoverNumeric(opSVD, &err)

	svd, err := factorSVD(m, mat.SVDThin)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	return fromGonum(&gu), svd.Values(nil), fromGonum(gv.T()), nil
}

// SVDFull computes the full decomposition A = U·Σ·Vᵀ with square U (r×r),
// square Vᵀ (c×c) and Σ an r×c matrix carrying the singular values on its
// leading diagonal and zeros elsewhere.
//
// Errors:
//   - ErrEmpty, ErrComputeFailed.
func SVDFull(m Matrix) (u, sigma, vt Matrix, err error) {
	defer recoverNumeric(opSVD, &err)

	svd, err := factorSVD(m, mat.SVDFull)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opSVD, err)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)

	r, c := m.Rows(), m.Cols()
	S, _ := NewDense(r, c)
	for i, v := range svd.Values(nil) {
		S.data[i*c+i] = v
	}

	return fromGonum(&gu), S, fromGonum(gv.T()), nil
}

// LeastSquares returns the minimum-norm x minimizing ‖A·x − b‖₂, the
// numerical rank of A and the squared residual ‖A·x − b‖₂².
//
// Implementation:
//   - Stage 1: thin SVD of A.
//   - Stage 2: x = Σ_{σ_i > tol} (u_iᵀ·b / σ_i)·v_i with the Rank cutoff
//     tol = σ_max·max(r,c)·ε, which yields the minimum-norm solution when A
//     is rank-deficient.
//   - Stage 3: residual recomputed from A·x − b.
//
// Errors:
//   - ErrEmpty, ErrDimensionMismatch (len(b) != Rows), ErrComputeFailed.
//
// Complexity: O(r·c·min(r,c)).
func LeastSquares(a Matrix, b []float64) (x []float64, rank int, residual float64, err error) {
	defer recoverNumeric(opLeastSq, &err)

	if err = ValidateNonEmpty(a); err != nil {
		return nil, 0, 0, matrixErrorf(opLeastSq, err)
	}
	if err = ValidateVecLen(b, a.Rows()); err != nil {
		return nil, 0, 0, matrixErrorf(opLeastSq, err)
	}
	svd, err := factorSVD(a, mat.SVDThin)
	if err != nil {
		return nil, 0, 0, matrixErrorf(opLeastSq, err)
	}
	var gu, gv mat.Dense
	svd.UTo(&gu)
	svd.VTo(&gv)
	s := svd.Values(nil)

	rows, cols := a.Rows(), a.Cols()
	tol := rankThreshold(s, rows, cols)
	x = make([]float64, cols)
	var (
		i, j, k int
		coef    float64
	)
	for k = 0; k < len(s); k++ {
		if s[k] <= tol {
			break // sorted non-increasing; the rest are below the cutoff too
		}
		rank++
		coef = ZeroSum
		for i = 0; i < rows; i++ {
			coef += gu.At(i, k) * b[i]
		}
		coef /= s[k]
		for j = 0; j < cols; j++ {
			x[j] += coef * gv.At(j, k)
		}
	}

	ax, err := MatVec(a, x)
	if err != nil {
		return nil, 0, 0, matrixErrorf(opLeastSq, err)
	}
	residual = ZeroSum
	for i = 0; i < rows; i++ {
		d := ax[i] - b[i]
		residual += d * d
	}

	return x, rank, residual, nil
}

// Eigen computes the eigenvalues and right eigenvectors of a general square
// matrix. values[i] pairs with vectors[i]; each vector is scaled to unit
// Euclidean norm. Real input may yield complex-conjugate pairs.
//
// Behavior highlights:
//   - Non-symmetric input is supported (Hessenberg QR via gonum/LAPACK).
//   - Ordering is implementation-defined.
//
// Errors:
//   - ErrEmpty, ErrNonSquare, ErrComputeFailed (QR iteration did not converge).
//
// Complexity: O(n³).
func Eigen(m Matrix) (values []complex128, vectors [][]complex128, err error) {
	defer recoverNumeric(opEigen, &err)

	if err = ValidateNonEmpty(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, nil, matrixErrorf(opEigen, fmt.Errorf("eigen iteration did not converge: %w", ErrComputeFailed))
	}
	values = eig.Values(nil)
	var cv mat.CDense
	eig.VectorsTo(&cv)

	n := len(values)
	vectors = make([][]complex128, n)
	var i, j int
	var norm float64
	for j = 0; j < n; j++ {
		col := make([]complex128, n)
		norm = NormZero
		for i = 0; i < n; i++ {
			col[i] = cv.At(i, j)
			norm = math.Hypot(norm, cmplx.Abs(col[i]))
		}
		if norm > NormZero {
			for i = 0; i < n; i++ {
				col[i] /= complex(norm, 0)
			}
		}
		vectors[j] = col
	}

	return values, vectors, nil
}

// EigenValues returns only the eigenvalues of a square matrix.
func EigenValues(m Matrix) (values []complex128, err error) {
	defer recoverNumeric(opEigen, &err)

	if err = ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	if err = ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	g, err := toGonum(m)
	if err != nil {
		return nil, matrixErrorf(opEigen, err)
	}
	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenNone); !ok {
		return nil, matrixErrorf(opEigen, fmt.Errorf("eigen iteration did not converge: %w", ErrComputeFailed))
	}

	return eig.Values(nil), nil
}
