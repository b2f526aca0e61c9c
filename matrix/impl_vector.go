// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// crossDim is the only dimension the cross product is defined for here.
const crossDim = 3

// Dot returns Σ a_i·b_i for equal-length vectors.
//
// Errors:
//   - ErrDimensionMismatch when len(a) != len(b).
//
// Complexity: O(n).
func Dot(a, b []float64) (float64, error) {
	if err := ValidateSameLen(a, b); err != nil {
		return 0, matrixErrorf(opDot, err)
	}

	sum := ZeroSum
	for i := range a {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Cross returns a × b = (a2b3−a3b2, a3b1−a1b3, a1b2−a2b1) for 3D vectors.
//
// Errors:
//   - ErrDimensionMismatch unless both vectors have length exactly 3.
//
// Complexity: O(1).
func Cross(a, b []float64) ([]float64, error) {
	if len(a) != crossDim || len(b) != crossDim {
		return nil, matrixErrorf(opCross,
			fmt.Errorf("cross product requires 3D vectors (got %d and %d): %w", len(a), len(b), ErrDimensionMismatch))
	}

	return []float64{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}, nil
}

// Norm2 returns the Euclidean norm of x, scaled to avoid overflow.
func Norm2(x []float64) float64 {
	norm := NormZero
	for _, v := range x {
		norm = math.Hypot(norm, v)
	}

	return norm
}
