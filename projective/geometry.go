// SPDX-License-Identifier: MIT

package projective

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topocoords/matrix"
)

const parallelTol = 1e-15

// RotMat returns the d×d rotation that maps the direction of a onto the
// direction of b, acting only in the plane spanned by the two. A nil b
// means the last standard basis vector (the north pole).
//
// Errors: ErrZeroVector, matrix.ErrDimensionMismatch.
func RotMat(a, b []float64) (*matrix.Dense, error) {
	d := len(a)
	if b == nil {
		b = make([]float64, d)
		if d > 0 {
			b[d-1] = 1
		}
	}
	if len(b) != d {
		return nil, fmt.Errorf("RotMat: %w", matrix.ErrDimensionMismatch)
	}
	ua, err := unit(a)
	if err != nil {
		return nil, err
	}
	ub, err := unit(b)
	if err != nil {
		return nil, err
	}
	lam := dot(ua, ub)
	c := make([]float64, d)
	for i := range c {
		c[i] = ub[i] - lam*ua[i]
	}
	if norm(c) < parallelTol {
		if lam > 0 {
			return identity(d), nil
		}
		// Antipodal: rotate by π in any plane containing a.
		c = orthogonalTo(ua)
		lam = -1
	}
	c, _ = unit(c)
	beta := math.Sqrt(math.Max(0, 1-lam*lam))

	rot := identity(d)
	var i, j int
	for i = 0; i < d; i++ {
		row := rot.RowView(i)
		for j = 0; j < d; j++ {
			row[j] += (lam-1)*(c[i]*c[j]+ua[i]*ua[j]) + beta*(c[i]*ua[j]-ua[i]*c[j])
		}
	}

	return rot, nil
}

// StereoProjection maps rows of x (N×d unit vectors, representing lines)
// to ℝᵈ⁻¹. Rows are first rotated so that u becomes the north pole and
// flipped into the northern hemisphere, then projected from the south pole.
// A nil u picks the direction of least variance of x.
func StereoProjection(x *matrix.Dense, u []float64) (*matrix.Dense, error) {
	if x == nil {
		return nil, matrix.ErrNilMatrix
	}
	n, d := x.Shape()
	if d < 2 {
		return nil, fmt.Errorf("StereoProjection: d=%d: %w", d, matrix.ErrInvalidDimensions)
	}
	if u == nil {
		xt, err := matrix.Transpose(x)
		if err != nil {
			return nil, err
		}
		gram, err := matrix.Gram(xt)
		if err != nil {
			return nil, err
		}
		_, vecs, err := matrix.EigenSym(gram, 0, 0)
		if err != nil {
			return nil, err
		}
		u = make([]float64, d)
		for k := 0; k < d; k++ {
			u[k], _ = vecs.At(k, 0)
		}
	}
	rot, err := RotMat(u, nil)
	if err != nil {
		return nil, err
	}
	out, err := matrix.NewDense(n, d-1)
	if err != nil {
		return nil, err
	}
	p := make([]float64, d)
	var b, k int
	var s float64
	for b = 0; b < n; b++ {
		src := x.RowView(b)
		for k = 0; k < d; k++ {
			p[k] = dot(rot.RowView(k), src)
		}
		s = 1
		if p[d-1] < 0 {
			s = -1
		}
		dst := out.RowView(b)
		for k = 0; k < d-1; k++ {
			dst[k] = s * p[k] / (1 + s*p[d-1])
		}
	}

	return out, nil
}

func dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}

func norm(a []float64) float64 { return math.Sqrt(dot(a, a)) }

func unit(a []float64) ([]float64, error) {
	nrm := norm(a)
	if nrm == 0 {
		return nil, ErrZeroVector
	}
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] / nrm
	}

	return out, nil
}

func identity(d int) *matrix.Dense {
	m, _ := matrix.NewDense(d, d)
	for i := 0; i < d; i++ {
		m.RowView(i)[i] = 1
	}

	return m
}

// orthogonalTo returns a vector orthogonal to the unit vector a, built from
// the standard basis vector least aligned with it.
func orthogonalTo(a []float64) []float64 {
	best := 0
	for i := range a {
		if math.Abs(a[i]) < math.Abs(a[best]) {
			best = i
		}
	}
	e := make([]float64, len(a))
	e[best] = 1
	proj := a[best]
	for i := range e {
		e[i] -= proj * a[i]
	}

	return e
}
