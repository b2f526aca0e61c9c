// SPDX-License-Identifier: MIT

// Package charpoly derives the characteristic polynomial det(λI − A) of a
// square matrix, renders it as text and finds its roots.
//
// ⚙️ Coefficients (descending powers, monic):
//   - FromEigenvalues (default): expand Π(λ − λᵢ) over the eigenvalues of A
//     and keep the real parts; stable for any size.
//   - FaddeevLeVerrier: the trace recursion
//     M₁ = I, c_{n−k} = −tr(A·M_k)/k, M_{k+1} = A·M_k + c_{n−k}·I,
//     exact for small integer matrices, ill-conditioned as n grows.
//
// 🔎 Roots: eigenvalues of the companion matrix of the coefficients, so any
// real polynomial works, not only characteristic ones.
//
// ✍️ Formatting (Format):
//   - coefficients rounded to 4 decimals, zero terms omitted;
//   - terms after the first joined by " + " or " - " with the magnitude printed;
//   - a coefficient of 1 is implied for powers ≥ 1;
//   - "λ" for power 1, "λ^p" above, the bare number for power 0.
//
// Example: [[2,0],[0,3]] → "λ^2 - 5λ + 6".
package charpoly
