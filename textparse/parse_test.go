// SPDX-License-Identifier: MIT
package textparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/textparse"
)

func TestParseMatrix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want [][]float64
	}{
		{"basic", "1 2; 3 4", [][]float64{{1, 2}, {3, 4}}},
		{"extra whitespace", "  1\t2 ;\n 3    4  ", [][]float64{{1, 2}, {3, 4}}},
		{"blank rows dropped", "1 2;;3 4;", [][]float64{{1, 2}, {3, 4}}},
		{"scientific and signs", "-1e2 +0.5; 2.5E-1 0", [][]float64{{-100, 0.5}, {0.25, 0}}},
		{"single row", "1 2 3", [][]float64{{1, 2, 3}}},
		{"column", "1;2;3", [][]float64{{1}, {2}, {3}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := textparse.ParseMatrix(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.want, m.ToRows())
		})
	}
}

func TestParseMatrix_Empty(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "   ", ";;", " ; \n ; "} {
		m, err := textparse.ParseMatrix(text)
		require.NoError(t, err, "text %q", text)
		require.True(t, m.IsEmpty())
		require.Zero(t, m.Rows())
		require.Zero(t, m.Cols())
	}
}

func TestParseMatrix_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		msg  string
	}{
		{"ragged", "1 2; 3", "same number of columns"},
		{"non-numeric", "1 a; 3 4", `"a" is not a number`},
		{"comma separated", "1,2; 3,4", "not a number"},
		{"nan", "1 NaN", "not finite"},
		{"inf", "Inf 1", "not finite"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := textparse.ParseMatrix(tc.text)
			require.ErrorIs(t, err, textparse.ErrParse)
			require.Contains(t, err.Error(), tc.msg)
		})
	}
}

func TestParseVector(t *testing.T) {
	t.Parallel()

	v, err := textparse.ParseVector(" 1  2\t3 ")
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, v)

	v, err = textparse.ParseVector("")
	require.NoError(t, err)
	require.Empty(t, v)

	_, err = textparse.ParseVector("1 two 3")
	require.ErrorIs(t, err, textparse.ErrParse)

	_, err = textparse.ParseVector("1 2; 3")
	require.ErrorIs(t, err, textparse.ErrParse)
}
