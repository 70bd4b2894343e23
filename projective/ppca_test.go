// SPDX-License-Identifier: MIT

package projective_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/pointcloud"
	"github.com/katalvlaran/topocoords/projective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowNorm(m *matrix.Dense, i int) float64 {
	var s float64
	for _, v := range m.RowView(i) {
		s += v * v
	}

	return math.Sqrt(s)
}

func TestPPCA_DropsEmptyDirectionFirst(t *testing.T) {
	// Unit vectors in ℝ⁴ with a zero last coordinate.
	sph, err := pointcloud.Sphere(60, 3, 4)
	require.NoError(t, err)
	rows := make([][]float64, sph.Len())
	for i := range rows {
		p, _ := sph.Point(i)
		rows[i] = append(p, 0)
	}
	cm, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	red, err := projective.PPCA(cm, 2)
	require.NoError(t, err)
	n, d := red.X.Shape()
	assert.Equal(t, 60, n)
	assert.Equal(t, 3, d)
	require.Len(t, red.Variance, 3)
	assert.InDelta(t, 0, red.Variance[2], 1e-12)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1, rowNorm(red.X, i), 1e-9)
	}
	// Reducing a genuinely spread sphere costs variance.
	assert.Greater(t, red.Variance[1], red.Variance[2])
}

func TestPPCA_FullDimensionKeepsInput(t *testing.T) {
	cm, _ := matrix.NewFromRows([][]float64{{1, 0, 0}, {0, 0.6, 0.8}})
	red, err := projective.PPCA(cm, 2)
	require.NoError(t, err)
	assert.Equal(t, cm.String(), red.X.String())
	assert.Len(t, red.Variance, 2)

	_, err = projective.PPCA(cm, 3)
	assert.ErrorIs(t, err, projective.ErrBadProjDim)
	_, err = projective.PPCA(cm, 0)
	assert.ErrorIs(t, err, projective.ErrBadProjDim)
}
