// SPDX-License-Identifier: MIT

// Package matrix is the numerical core of lvlinalg: a row-major Dense
// matrix, central shape validators and the dense linear-algebra kernels the
// engine dispatches to.
//
// 🚀 What lives here?
//
//   - Elementary operations: Add, Sub, Mul, Transpose, Scale, MatVec, Dot, Cross.
//   - Rank, determinant and inverse on top of a partially pivoted LU.
//   - Decompositions: LU (P·A = L·U), Householder QR, SVD (thin and full), Cholesky.
//   - General (non-symmetric) eigendecomposition with complex eigenpairs.
//
// ⚙️ Numeric policy:
//
//   - Every kernel is a pure function of its inputs; operands are never mutated.
//   - Failures are reported as sentinel errors (see errors.go) wrapped with an
//     operation tag; match them with errors.Is. Kernels never panic on caller input.
//   - Singularity is numerical, not symbolic: a pivot is "zero" when it falls
//     below scale · n · ε · max|a_ij| (see WithSingularityScale).
//   - SVD, eigen and Cholesky are delegated to gonum.org/v1/gonum/mat; the
//     LU/QR/inverse kernels are written here with fixed loop orders.
//
// Usage:
//
//	a, _ := matrix.NewDenseFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a)
//	if errors.Is(err, matrix.ErrSingular) {
//	  // handle numerically singular input
//	}
//
// Eigenpair ordering is whatever the underlying LAPACK-style routine yields
// and must be treated as implementation-defined.
package matrix
