// SPDX-License-Identifier: MIT

package pointcloud_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/topocoords/pointcloud"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const geomTol = 1e-9

func TestTorus_OnSurface(t *testing.T) {
	const outer, inner = 5.0, 2.0
	c, angles, err := pointcloud.Torus(500, outer, inner, 7)
	require.NoError(t, err)
	require.Equal(t, 500, c.Len())
	require.Equal(t, 3, c.Dim())
	require.Len(t, angles, 500)

	for i := 0; i < c.Len(); i++ {
		p, _ := c.Point(i)
		// Distance from the core circle equals the tube radius.
		ring := math.Hypot(p[0], p[1]) - outer
		assert.InDelta(t, inner, math.Hypot(ring, p[2]), geomTol)

		s, tt := angles[i][0], angles[i][1]
		assert.True(t, s >= 0 && s < 2*math.Pi)
		assert.True(t, tt >= 0 && tt < 2*math.Pi)
		assert.InDelta(t, inner*math.Sin(s), p[2], geomTol)
	}
}

func TestTorus_Deterministic(t *testing.T) {
	a, _, err := pointcloud.Torus(64, 5, 2, 3)
	require.NoError(t, err)
	b, _, err := pointcloud.Torus(64, 5, 2, 3)
	require.NoError(t, err)
	c, _, err := pointcloud.Torus(64, 5, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.NotEqual(t, a.Fingerprint(), c.Fingerprint())

	// Seed 0 maps onto the default seed.
	z, _, _ := pointcloud.Torus(64, 5, 2, 0)
	one, _, _ := pointcloud.Torus(64, 5, 2, 1)
	assert.Equal(t, one.Fingerprint(), z.Fingerprint())
}

func TestSamplers_BadParameters(t *testing.T) {
	_, _, err := pointcloud.Torus(0, 5, 2, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadParameter)
	_, _, err = pointcloud.Circle(10, 1, -0.1, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadParameter)
	_, err = pointcloud.Sphere(10, 0, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadParameter)
	_, _, err = pointcloud.KleinBottle(1, 2, 1)
	assert.ErrorIs(t, err, pointcloud.ErrBadParameter)
}

func TestCircle_NoiseDoesNotMoveAngles(t *testing.T) {
	_, clean, err := pointcloud.Circle(40, 2, 0, 9)
	require.NoError(t, err)
	noisy, noisyAngles, err := pointcloud.Circle(40, 2, 0.1, 9)
	require.NoError(t, err)
	assert.Equal(t, clean, noisyAngles)

	p, _ := noisy.Point(0)
	assert.InDelta(t, 2, math.Hypot(p[0], p[1]), 0.6)
}

func TestSphere_UnitNorm(t *testing.T) {
	c, err := pointcloud.Sphere(200, 3, 11)
	require.NoError(t, err)
	for i := 0; i < c.Len(); i++ {
		p, _ := c.Point(i)
		assert.InDelta(t, 1, math.Sqrt(p[0]*p[0]+p[1]*p[1]+p[2]*p[2]), geomTol)
	}
}

func TestKleinBottle_Grid(t *testing.T) {
	c, params, err := pointcloud.KleinBottle(10, 2, 1)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Len())
	assert.Equal(t, 4, c.Dim())
	assert.Equal(t, []float64{0, 0}, params[0])

	p, _ := c.Point(0)
	assert.InDeltaSlice(t, []float64{3, 0, 0, 0}, p, geomTol)
}
