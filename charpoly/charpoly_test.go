// SPDX-License-Identifier: MIT
package charpoly_test

import (
	"math/cmplx"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/charpoly"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func mustRows(t *testing.T, rows [][]float64) matrix.Matrix {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// sortedParts orders roots by (re, im) so tests can ignore solver order.
func sortedParts(roots []complex128) [][2]float64 {
	out := make([][2]float64, len(roots))
	for i, r := range roots {
		out[i] = [2]float64{real(r), imag(r)}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})

	return out
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestCompute_Diagonal(t *testing.T) {
	t.Parallel()

	res, err := charpoly.Compute(mustRows(t, [][]float64{{2, 0}, {0, 3}}))
	require.NoError(t, err)
	if diff := cmp.Diff([]float64{1, -5, 6}, res.Coefficients, approx); diff != "" {
		t.Fatalf("coefficients (-want +got):\n%s", diff)
	}
	require.Equal(t, "λ^2 - 5λ + 6", res.Polynomial)
	if diff := cmp.Diff([][2]float64{{2, 0}, {3, 0}}, sortedParts(res.Roots), approx); diff != "" {
		t.Fatalf("roots (-want +got):\n%s", diff)
	}
}

func TestCompute_General2x2(t *testing.T) {
	t.Parallel()

	res, err := charpoly.Compute(mustRows(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, "λ^2 - 5λ - 2", res.Polynomial)
}

func TestCompute_Variable(t *testing.T) {
	t.Parallel()

	res, err := charpoly.Compute(mustRows(t, [][]float64{{0, 1}, {-1, 0}}), charpoly.WithVariable("x"))
	require.NoError(t, err)
	require.Equal(t, "x^2 + 1", res.Polynomial)
	if diff := cmp.Diff([][2]float64{{0, -1}, {0, 1}}, sortedParts(res.Roots), approx); diff != "" {
		t.Fatalf("roots (-want +got):\n%s", diff)
	}
	require.Panics(t, func() { charpoly.WithVariable("") })
}

func TestFaddeevLeVerrier_AgreesWithEigenExpansion(t *testing.T) {
	t.Parallel()

	tri := mustRows(t, [][]float64{{2, -1, 0}, {-1, 2, -1}, {0, -1, 2}})
	fl, err := charpoly.CoefficientsFaddeevLeVerrier(tri)
	require.NoError(t, err)
	require.Equal(t, []float64{1, -6, 10, -4}, fl)

	ev, err := charpoly.Coefficients(tri)
	require.NoError(t, err)
	if diff := cmp.Diff(fl, ev, approx); diff != "" {
		t.Fatalf("methods disagree (-fl +eig):\n%s", diff)
	}

	res, err := charpoly.Compute(tri, charpoly.WithMethod(charpoly.FaddeevLeVerrier))
	require.NoError(t, err)
	require.Equal(t, "λ^3 - 6λ^2 + 10λ - 4", res.Polynomial)
}

// Every eigenvalue must be a root of the reported polynomial.
func TestEigenvaluesAreRoots(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for n := 1; n <= 5; n++ {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			for j := range rows[i] {
				rows[i][j] = rng.Float64()*4 - 2
			}
		}
		m := mustRows(t, rows)
		res, err := charpoly.Compute(m)
		require.NoError(t, err)
		require.Len(t, res.Coefficients, n+1)
		require.Equal(t, 1.0, res.Coefficients[0])

		eig, err := matrix.EigenValues(m)
		require.NoError(t, err)
		for _, e := range eig {
			require.Lessf(t, cmplx.Abs(charpoly.Eval(res.Coefficients, e)), 1e-8,
				"n=%d eigenvalue %v is not a root", n, e)
		}
		require.Len(t, res.Roots, n)
	}
}

func TestRoots(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		coeffs []float64
		want   [][2]float64
	}{
		{"quadratic", []float64{1, -3, 2}, [][2]float64{{1, 0}, {2, 0}}},
		{"leading zero stripped", []float64{0, 1, -2}, [][2]float64{{2, 0}}},
		{"trailing zeros", []float64{1, 0, 0}, [][2]float64{{0, 0}, {0, 0}}},
		{"constant", []float64{5}, [][2]float64{}},
		{"zero polynomial", []float64{0, 0}, [][2]float64{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			roots, err := charpoly.Roots(tc.coeffs)
			require.NoError(t, err)
			if diff := cmp.Diff(tc.want, sortedParts(roots), approx); diff != "" {
				t.Fatalf("roots (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		coeffs []float64
		want   string
	}{
		{[]float64{1, 0, -1}, "λ^2 - 1"},
		{[]float64{1, -1, 0}, "λ^2 - λ"},
		{[]float64{1, 0.123456, 2}, "λ^2 + 0.1235λ + 2"},
		{[]float64{2, 1}, "2λ + 1"},
		{[]float64{-1, 2}, "-1λ + 2"},
		{[]float64{1, 1e-5}, "λ"},
		{[]float64{1, -0.99999}, "λ - 1"},
		{[]float64{1, 0, 0, 1}, "λ^3 + 1"},
		{[]float64{3}, "3"},
		{[]float64{0, 0}, "0"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			require.Equal(t, tc.want, charpoly.Format(tc.coeffs, charpoly.Variable))
		})
	}
}

func TestCompute_Errors(t *testing.T) {
	t.Parallel()

	_, err := charpoly.Compute(mustRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = charpoly.Compute(mustRows(t, nil))
	require.ErrorIs(t, err, matrix.ErrEmpty)
}
