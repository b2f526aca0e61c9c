// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

// tol is the default absolute tolerance for reconstruction checks.
const tol = 1e-9

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)

	return m
}

// FromRows BUILDS a *Dense from literal rows or fails the test.
func FromRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// IdentityDense RETURNS an n×n identity Matrix.
func IdentityDense(t *testing.T, n int) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewIdentity(n)
	require.NoError(t, err)

	return m
}

// RandomDense FILLS an r×c *Dense with deterministic U(-1,1) values by seed.
func RandomDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// MustMul multiplies or fails the test.
func MustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	out, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return out
}

// MustT transposes or fails the test.
func MustT(t *testing.T, m matrix.Matrix) matrix.Matrix {
	t.Helper()
	out, err := matrix.Transpose(m)
	require.NoError(t, err)

	return out
}

// RequireClose asserts AllClose(got, want, 0, atol) with a readable dump on failure.
func RequireClose(t *testing.T, want, got matrix.Matrix, atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.Truef(t, ok, "matrices differ beyond %g\nwant:\n%v\ngot:\n%v", atol, want, got)
}
