// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for per-operation shape checks.
//  - Keep kernels minimal by delegating shape/nil/symmetry checks here.
//  - Name the violated constraint in the message, keep the sentinel via %w.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error.
//  - Symmetry check runs O(n²) on the upper triangle only.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → NonEmpty → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateNonEmpty ensures m is non-nil and has at least one element.
// Complexity: O(1).
func ValidateNonEmpty(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() == 0 || m.Cols() == 0 {
		return validatorErrorf("ValidateNonEmpty", ErrEmpty)
	}

	return nil
}

// ValidateMaxDimension rejects matrices with more than limit rows or columns.
// A non-positive limit disables the check.
func ValidateMaxDimension(m Matrix, limit int) error {
	if limit <= 0 || m == nil {
		return nil
	}
	if m.Rows() > limit || m.Cols() > limit {
		return validatorErrorf(fmt.Sprintf("ValidateMaxDimension: %dx%d exceeds %d", m.Rows(), m.Cols(), limit), ErrTooLarge)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameShape: matrices must have the same dimensions (%dx%d vs %dx%d)",
				a.Rows(), a.Cols(), b.Rows(), b.Cols()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape: NotNil(a) → NotNil(b) → SameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return ValidateSameShape(a, b)
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Errors: ErrNilMatrix if nil, ErrNonSquare if not square.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: matrix must be square (got %dx%d)", m.Rows(), m.Cols()), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf(
			fmt.Sprintf("ValidateMulCompatible: columns of the first matrix (%d) must equal rows of the second (%d)",
				a.Cols(), b.Rows()),
			ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: vector length %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameLen ensures two vectors have equal length.
func ValidateSameLen(a, b []float64) error {
	if len(a) != len(b) {
		return validatorErrorf(fmt.Sprintf("ValidateSameLen: vectors must have the same dimensions (%d vs %d)", len(a), len(b)), ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite rejects NaN/±Inf entries in a vector.
func ValidateFinite(x []float64) error {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: element %d", i), ErrNaNInf)
		}
	}

	return nil
}

// ValidateSymmetric checks A is symmetric within the options' tolerance:
// |A[i,j] − A[j,i]| ≤ eps + rtol·|A[j,i]| for all i<j.
//
// Returns ErrNilMatrix / ErrNonSquare on structural issues, ErrAsymmetry on violation.
// Complexity: O(n²). Space: O(1).
func ValidateSymmetric(m Matrix, opts ...Option) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	if n <= 1 {
		return nil // trivially symmetric
	}

	var (
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // shape validated above; At cannot fail
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > o.eps+o.relTol*math.Abs(aji) {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric: a[%d,%d]=%g vs a[%d,%d]=%g", i, j, aij, j, i, aji), ErrAsymmetry)
			}
		}
	}

	return nil
}
