// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewDense(-1, 2)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	m, err := matrix.NewDense(0, 3)
	require.NoError(t, err)
	require.True(t, m.IsEmpty())
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()

	m := MustDense(t, 2, 2)
	require.NoError(t, m.Set(1, 0, 7))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 7.0, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewDenseFromRows(t *testing.T) {
	t.Parallel()

	m := FromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m.ToRows())

	_, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows([][]float64{{1, math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFromRows([][]float64{{math.Inf(-1)}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	empty := FromRows(t, nil)
	require.True(t, empty.IsEmpty())
	require.NotNil(t, empty.ToRows())
	require.Len(t, empty.ToRows(), 0)
}

func TestDense_CloneIsDeep(t *testing.T) {
	t.Parallel()

	src := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	cl := src.Clone()
	require.NoError(t, cl.Set(0, 0, 99))
	v, err := src.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)

	rows := src.ToRows()
	rows[1][1] = -1
	v, err = src.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 4.0, v, "ToRows must not alias the backing buffer")
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := FromRows(t, [][]float64{{1, 2}})
	b := FromRows(t, [][]float64{{1 + 1e-12, 2}})
	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = matrix.AllClose(a, FromRows(t, [][]float64{{1.1, 2}}), 0, 1e-9)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, MustDense(t, 2, 1), 0, 1e-9)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
