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

// projectivePlane samples lines through the origin of ℝ³ and returns their
// angular distance matrix d(x, y) = arccos|⟨x, y⟩|.
func projectivePlane(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	sph, err := pointcloud.Sphere(n, 3, 8)
	require.NoError(t, err)
	x := sph.Matrix()
	g, err := matrix.Gram(x)
	require.NoError(t, err)
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		src := g.RowView(i)
		for j := 0; j < n; j++ {
			require.NoError(t, d.Set(i, j, math.Acos(math.Min(1, math.Abs(src[j])))))
		}
	}

	return d
}

func TestCoordinates_ProjectivePlane(t *testing.T) {
	if testing.Short() {
		t.Skip("PPCA over 40 landmarks")
	}
	d := projectivePlane(t, 300)
	eng, err := projective.NewFromDistances(d, 40)
	require.NoError(t, err)
	dgm := eng.Diagram()
	require.NotEmpty(t, dgm)
	assert.Greater(t, dgm[0].Persistence(), 0.1)

	res, err := eng.Coordinates(projective.DefaultParams())
	require.NoError(t, err)
	n, k := res.X.Shape()
	assert.Equal(t, 300, n)
	assert.Equal(t, 3, k)
	assert.Len(t, res.Variance, 39)
	assert.Zero(t, res.Uncovered)
	for i := 0; i < n; i++ {
		assert.InDelta(t, 1, rowNorm(res.X, i), 1e-6)
	}

	s, err := projective.StereoProjection(res.X, nil)
	require.NoError(t, err)
	_, c := s.Shape()
	assert.Equal(t, 2, c)
}

func TestCoordinates_Errors(t *testing.T) {
	cloud, _, err := pointcloud.Circle(80, 1, 0, 2)
	require.NoError(t, err)
	eng, err := projective.New(cloud, 12)
	require.NoError(t, err)

	p := projective.DefaultParams()
	p.ProjDim = 12
	_, err = eng.Coordinates(p)
	assert.ErrorIs(t, err, projective.ErrBadProjDim)

	p = projective.DefaultParams()
	p.CocycleIdx = []int{99}
	_, err = eng.Coordinates(p)
	assert.ErrorIs(t, err, projective.ErrCocycleIndex)

	p.CocycleIdx = nil
	_, err = eng.Coordinates(p)
	assert.ErrorIs(t, err, projective.ErrCocycleIndex)
}
