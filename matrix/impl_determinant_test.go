// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestDet_Basic(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		rows [][]float64
		want float64
	}{
		{"1x1", [][]float64{{5}}, 5},
		{"2x2", [][]float64{{1, 2}, {3, 4}}, -2},
		{"identity", [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, 1},
		{"needs pivot", [][]float64{{0, 1}, {1, 0}}, -1},
		{"singular", [][]float64{{1, 2}, {2, 4}}, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, err := matrix.Det(FromRows(t, tc.rows))
			require.NoError(t, err)
			require.InDelta(t, tc.want, d, tol)
		})
	}
}

func TestDet_Multiplicative(t *testing.T) {
	t.Parallel()

	A := RandomDense(t, 4, 4, 1)
	B := RandomDense(t, 4, 4, 2)
	dA, err := matrix.Det(A)
	require.NoError(t, err)
	dB, err := matrix.Det(B)
	require.NoError(t, err)
	dAB, err := matrix.Det(MustMul(t, A, B))
	require.NoError(t, err)
	require.InDelta(t, dA*dB, dAB, 1e-9)
}

func TestDet_Errors(t *testing.T) {
	t.Parallel()

	_, err := matrix.Det(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = matrix.Det(MustDense(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrEmpty)
}

func TestInverse(t *testing.T) {
	t.Parallel()

	for seed, n := range []int{1, 2, 3, 5} {
		A := RandomDense(t, n, n, int64(10+seed))
		inv, err := matrix.Inverse(A)
		require.NoError(t, err)
		RequireClose(t, IdentityDense(t, n), MustMul(t, A, inv), 1e-9)
		RequireClose(t, IdentityDense(t, n), MustMul(t, inv, A), 1e-9)
	}

	inv, err := matrix.Inverse(FromRows(t, [][]float64{{4, 7}, {2, 6}}))
	require.NoError(t, err)
	RequireClose(t, FromRows(t, [][]float64{{0.6, -0.7}, {-0.2, 0.4}}), inv, 1e-12)
}

func TestInverse_Singular(t *testing.T) {
	t.Parallel()

	_, err := matrix.Inverse(FromRows(t, [][]float64{{1, 2}, {2, 4}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestRank(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		m    matrix.Matrix
		want int
	}{
		{"identity", IdentityDense(t, 3), 3},
		{"rank one", FromRows(t, [][]float64{{1, 2}, {2, 4}}), 1},
		{"wide", FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), 2},
		{"singular 3x3", FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}), 2},
		{"zero", MustDense(t, 2, 2), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, err := matrix.Rank(tc.m)
			require.NoError(t, err)
			require.Equal(t, tc.want, r)
		})
	}

	_, err := matrix.Rank(MustDense(t, 0, 0))
	require.ErrorIs(t, err, matrix.ErrEmpty)
}
