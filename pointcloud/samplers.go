// SPDX-License-Identifier: MIT

package pointcloud

import (
	"math"

	"github.com/katalvlaran/topocoords/matrix"
)

// Torus samples n points uniformly in the angle parameters of the embedded
// torus with outer radius R and tube radius r:
//
//	x = (R + r·cos s)·cos t
//	y = (R + r·cos s)·sin t
//	z = r·sin s
//
// It also returns the intrinsic angles as rows [s, t], the ground truth the
// circular coordinates should recover up to rotation and reflection.
func Torus(n int, outer, inner float64, seed int64) (*Cloud, [][]float64, error) {
	if n <= 0 || outer <= 0 || inner <= 0 {
		return nil, nil, ErrBadParameter
	}
	rng := rngFromSeed(seed)
	s := make([]float64, n)
	t := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = rng.Float64() * 2 * math.Pi
	}
	for i := 0; i < n; i++ {
		t[i] = rng.Float64() * 2 * math.Pi
	}

	m, err := matrix.NewDense(n, 3)
	if err != nil {
		return nil, nil, err
	}
	angles := make([][]float64, n)
	for i := 0; i < n; i++ {
		ring := outer + inner*math.Cos(s[i])
		row := m.RowView(i)
		row[0] = ring * math.Cos(t[i])
		row[1] = ring * math.Sin(t[i])
		row[2] = inner * math.Sin(s[i])
		angles[i] = []float64{s[i], t[i]}
	}

	return &Cloud{pts: m}, angles, nil
}

// Circle samples n points on a circle of the given radius with isotropic
// Gaussian noise of standard deviation noise. Returns the sample angles.
func Circle(n int, radius, noise float64, seed int64) (*Cloud, []float64, error) {
	if n <= 0 || radius <= 0 || noise < 0 {
		return nil, nil, ErrBadParameter
	}
	angRNG := streamRNG(seed, 0)
	noiseRNG := streamRNG(seed, 1)
	m, err := matrix.NewDense(n, 2)
	if err != nil {
		return nil, nil, err
	}
	angles := make([]float64, n)
	for i := 0; i < n; i++ {
		angles[i] = angRNG.Float64() * 2 * math.Pi
		row := m.RowView(i)
		row[0] = radius*math.Cos(angles[i]) + noise*noiseRNG.NormFloat64()
		row[1] = radius*math.Sin(angles[i]) + noise*noiseRNG.NormFloat64()
	}

	return &Cloud{pts: m}, angles, nil
}

// Sphere samples n points uniformly on the unit sphere S^{dim-1} ⊂ ℝ^dim.
func Sphere(n, dim int, seed int64) (*Cloud, error) {
	if n <= 0 || dim <= 0 {
		return nil, ErrBadParameter
	}
	rng := rngFromSeed(seed)
	m, err := matrix.NewDense(n, dim)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		row := m.RowView(i)
		var norm float64
		for norm == 0 {
			norm = 0
			for k := range row {
				row[k] = rng.NormFloat64()
				norm += row[k] * row[k]
			}
		}
		norm = math.Sqrt(norm)
		for k := range row {
			row[k] /= norm
		}
	}

	return &Cloud{pts: m}, nil
}

// KleinBottle returns the res×res grid on the flat Klein bottle in ℝ⁴:
//
//	x = (R + r·cos θ)·cos φ
//	y = (R + r·cos θ)·sin φ
//	z = r·sin θ·cos(φ/2)
//	w = r·sin θ·sin(φ/2)
//
// with θ, φ evenly spaced on [0, 2π]. Params rows are [θ, φ].
func KleinBottle(res int, outer, inner float64) (*Cloud, [][]float64, error) {
	if res <= 1 || outer <= 0 || inner <= 0 {
		return nil, nil, ErrBadParameter
	}
	n := res * res
	m, err := matrix.NewDense(n, 4)
	if err != nil {
		return nil, nil, err
	}
	params := make([][]float64, n)
	step := 2 * math.Pi / float64(res-1)
	for a := 0; a < res; a++ {
		for b := 0; b < res; b++ {
			// meshgrid(theta, theta) flattens with phi varying slowest.
			theta := float64(b) * step
			phi := float64(a) * step
			i := a*res + b
			row := m.RowView(i)
			row[0] = (outer + inner*math.Cos(theta)) * math.Cos(phi)
			row[1] = (outer + inner*math.Cos(theta)) * math.Sin(phi)
			row[2] = inner * math.Sin(theta) * math.Cos(phi/2)
			row[3] = inner * math.Sin(theta) * math.Sin(phi/2)
			params[i] = []float64{theta, phi}
		}
	}

	return &Cloud{pts: m}, params, nil
}
