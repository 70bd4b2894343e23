// SPDX-License-Identifier: MIT

package projective_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/projective"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func apply(t *testing.T, r *matrix.Dense, v []float64) []float64 {
	t.Helper()
	out, err := matrix.MatVec(r, v)
	require.NoError(t, err)

	return out
}

func TestRotMat_MapsAOntoB(t *testing.T) {
	for _, tc := range []struct {
		name string
		a, b []float64
	}{
		{"generic", []float64{1, 2, 3}, []float64{-1, 0, 2}},
		{"identity", []float64{0, 0, 2}, []float64{0, 0, 5}},
		{"antipodal", []float64{1, 0, 0}, []float64{-1, 0, 0}},
		{"plane", []float64{1, 0}, []float64{0, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			r, err := projective.RotMat(tc.a, tc.b)
			require.NoError(t, err)

			na, nb := 0.0, 0.0
			for i := range tc.a {
				na += tc.a[i] * tc.a[i]
				nb += tc.b[i] * tc.b[i]
			}
			got := apply(t, r, tc.a)
			for i := range got {
				assert.InDelta(t, tc.b[i]/math.Sqrt(nb), got[i]/math.Sqrt(na), tol)
			}

			// Orthogonal: RᵀR = I.
			rt, _ := matrix.Transpose(r)
			prod, _ := matrix.Mul(rt, r)
			n := r.Rows()
			for i := 0; i < n; i++ {
				for j := 0; j < n; j++ {
					v, _ := prod.At(i, j)
					want := 0.0
					if i == j {
						want = 1
					}
					assert.InDelta(t, want, v, tol)
				}
			}
		})
	}
}

func TestRotMat_DefaultNorthPole(t *testing.T) {
	r, err := projective.RotMat([]float64{3, 4, 0}, nil)
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0, 0, 5}, apply(t, r, []float64{3, 4, 0}), tol)

	_, err = projective.RotMat([]float64{0, 0}, nil)
	assert.ErrorIs(t, err, projective.ErrZeroVector)
	_, err = projective.RotMat([]float64{1, 0}, []float64{1, 0, 0})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestStereoProjection(t *testing.T) {
	x, err := matrix.NewFromRows([][]float64{
		{0, 0, 1},
		{0, 0, -1},
		{1, 0, 0},
		{0.6, 0, 0.8},
		{-0.6, 0, -0.8},
	})
	require.NoError(t, err)

	s, err := projective.StereoProjection(x, []float64{0, 0, 1})
	require.NoError(t, err)
	rows := func(i int) []float64 {
		r, _ := s.Row(i)
		return r
	}

	assert.InDeltaSlice(t, []float64{0, 0}, rows(0), tol)
	// Antipodal points represent the same line.
	assert.InDeltaSlice(t, rows(0), rows(1), tol)
	assert.InDeltaSlice(t, []float64{1, 0}, rows(2), tol)
	assert.InDeltaSlice(t, []float64{0.6 / 1.8, 0}, rows(3), tol)
	assert.InDeltaSlice(t, rows(3), rows(4), tol)

	_, err = projective.StereoProjection(nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestStereoProjection_DefaultPoleIsLeastVariance(t *testing.T) {
	// Points spread over the xy-plane directions: least variance along z.
	x, err := matrix.NewFromRows([][]float64{
		{1, 0, 0.01},
		{0, 1, -0.01},
		{math.Sqrt2 / 2, math.Sqrt2 / 2, 0},
		{-math.Sqrt2 / 2, math.Sqrt2 / 2, 0},
	})
	require.NoError(t, err)
	s, err := projective.StereoProjection(x, nil)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		r, _ := s.Row(i)
		// Near the equator every point lands near the unit circle.
		assert.InDelta(t, 1, math.Hypot(r[0], r[1]), 0.05)
	}
}
