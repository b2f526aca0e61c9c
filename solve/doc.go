// SPDX-License-Identifier: MIT

// Package solve answers A·x = b and says how many solutions there are.
//
// 🔄 Decision sequence:
//
//  1. Shape check: len(b) must equal Rows(A), otherwise ErrDimensionMismatch.
//  2. Exact attempt: a square A whose pivoted LU keeps every pivot above
//     scale·n·ε·max|a| yields the unique solution.
//  3. Least-squares fallback (singular or non-square A): the minimum-norm
//     x through the SVD, together with the numerical rank of A.
//     - rank < Cols(A)            → Infinite (x is one member of the family)
//     - ‖A·x − b‖² > residual tol → InconsistentApproximate
//     - otherwise                 → Unique
//
// The residual is reported as the squared 2-norm, the quantity least squares
// minimizes.
package solve
