// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with fmt.Errorf("Op: %w", ErrX)
// via matrixErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil/empty/NaN -> dimension mismatch -> structural violations (square,
// symmetric) -> numerical failures (singular, not positive definite, compute).

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add different shapes, Mul where a.Cols != b.Rows, ragged rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrEmpty signals a 0-row, 0-column or 0-length operand where data is required.
	ErrEmpty = errors.New("matrix: empty operand")

	// ErrTooLarge signals an operand beyond the configured dimension bound.
	ErrTooLarge = errors.New("matrix: operand exceeds dimension limit")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured numeric policy (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required (ingestion, results).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when a pivot falls below the singularity tolerance
	// during inversion or an exact solve.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned by Cholesky when a non-positive pivot appears.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrComputeFailed indicates that an iterative routine (SVD, eigen) failed to
	// converge or the numeric backend rejected the input.
	ErrComputeFailed = errors.New("matrix: numerical computation failed")
)

