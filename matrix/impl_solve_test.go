// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConjugateGradient_SPD(t *testing.T) {
	a := NewFilledDense(t, 3, 3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	apply := func(dst, x []float64) {
		y, _ := matrix.MatVec(a, x)
		copy(dst, y)
	}
	b := []float64{1, 2, 3}
	x, _, err := matrix.ConjugateGradient(apply, b, 0, 0)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-8)
	}
}

// Path-graph Laplacian: singular, constant null space. For b summing to zero
// CG returns the minimum-norm solution (mean zero).
func TestConjugateGradient_SingularLaplacian(t *testing.T) {
	apply := func(dst, x []float64) {
		dst[0] = x[0] - x[1]
		dst[1] = -x[0] + 2*x[1] - x[2]
		dst[2] = -x[1] + x[2]
	}
	b := []float64{-1, 0, 1}
	x, _, err := matrix.ConjugateGradient(apply, b, 0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, x[0]+x[1]+x[2], 1e-9)
	assert.InDelta(t, 1.0, x[2]-x[1], 1e-9)
	assert.InDelta(t, 1.0, x[1]-x[0], 1e-9)
}

func TestConjugateGradient_Guards(t *testing.T) {
	_, _, err := matrix.ConjugateGradient(nil, []float64{1}, 0, 0)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)

	x, iter, err := matrix.ConjugateGradient(func(dst, x []float64) { copy(dst, x) }, []float64{0, 0}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, iter)
	assert.Equal(t, []float64{0, 0}, x)
}
