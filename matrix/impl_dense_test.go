// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense(tc.r, tc.c)
		assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 4.5))
	assert.Equal(t, 4.5, MustAt(t, m, 1, 2))

	_, err := m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)
	assert.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	assert.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)
}

func TestNewFromRows(t *testing.T) {
	m, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)
	r, c := m.Shape()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	row, err := m.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, row)

	_, err = matrix.NewFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewFromRows(nil)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewFromRows([][]float64{{math.NaN()}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestDense_CloneIndependent(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})
	cp := m.Clone()
	require.NoError(t, cp.Set(0, 0, 99))
	assert.Equal(t, 1.0, MustAt(t, m, 0, 0))
	assert.Equal(t, "[1, 2]\n[3, 4]\n", m.String())
}

func TestDense_Induced(t *testing.T) {
	m := NewFilledDense(t, 3, 3, []float64{
		0, 1, 2,
		1, 0, 3,
		2, 3, 0,
	})
	sub, err := m.Induced([]int{2, 0}, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, "[0, 2]\n[2, 0]\n", sub.String())

	_, err = m.Induced([]int{3}, []int{0})
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}
