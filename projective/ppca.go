// SPDX-License-Identifier: MIT

package projective

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topocoords/matrix"
)

// Reduction is the output of PPCA.
type Reduction struct {
	// X is N×(projDim+1).
	X *matrix.Dense
	// Variance has d−1 entries; Variance[i] measures how far the data sits
	// from the equator removed when going from RPⁱ⁺¹ down to RPⁱ.
	Variance []float64
}

// PPCA performs Principal Projective Component Analysis on the rows of
// classMap (N×d unit vectors, each representing a line in ℝᵈ).
// MAIN DESCRIPTION:
//   - Each step takes the eigenvector u of X·Xᵀ with the smallest eigenvalue,
//     rotates into the eigenbasis, drops the u-coordinate y and rescales the
//     rest by 1/√(1−y²), projecting RPⁿ onto RPⁿ⁻¹ along u.
//   - Variance of each step is mean((π/2 − arccos|u·x|)²).
//   - All d−1 steps run so the full variance profile is available; the
//     coordinates in dimension projDim+1 are kept.
//
// Errors: ErrBadProjDim, matrix errors from EigenSym.
// Complexity: O(d · (d³ + N·d²)).
func PPCA(classMap *matrix.Dense, projDim int) (*Reduction, error) {
	if classMap == nil {
		return nil, matrix.ErrNilMatrix
	}
	n, d := classMap.Shape()
	if projDim < 1 || projDim > d-1 {
		return nil, fmt.Errorf("proj_dim=%d, d=%d: %w", projDim, d, ErrBadProjDim)
	}
	x, err := matrix.Transpose(classMap) // d×N, points are columns
	if err != nil {
		return nil, err
	}
	variance := make([]float64, d-1)
	var keep *matrix.Dense
	if projDim == d-1 {
		keep = x
	}

	var (
		i, k, col, dim int
		y, acc, denom  float64
		eigvec         *matrix.Dense
	)
	for i = 0; i < d-1; i++ {
		dim = x.Rows()
		gram, err := matrix.Gram(x)
		if err != nil {
			return nil, err
		}
		if _, eigvec, err = matrix.EigenSym(gram, 0, 0); err != nil {
			return nil, err
		}
		// Rotate into the eigenbasis, largest eigenvalue first; the last
		// coordinate is along the least-variance direction and is dropped.
		basis := descendingBasis(eigvec)
		rotated, err := matrix.Mul(basis, x)
		if err != nil {
			return nil, err
		}
		next, err := matrix.NewDense(dim-1, n)
		if err != nil {
			return nil, err
		}
		acc = 0
		for col = 0; col < n; col++ {
			y, _ = rotated.At(dim-1, col)
			a := math.Min(1, math.Abs(y))
			acc += sq(math.Pi/2 - math.Acos(a))
			denom = math.Sqrt(1 - y*y)
			if denom == 0 || math.IsNaN(denom) {
				denom = 1
			}
			for k = 0; k < dim-1; k++ {
				v, _ := rotated.At(k, col)
				next.RowView(k)[col] = v / denom
			}
		}
		variance[d-2-i] = acc / float64(n)
		x = next
		if i == d-projDim-2 {
			keep = x
		}
	}

	out, err := matrix.Transpose(keep)
	if err != nil {
		return nil, err
	}

	return &Reduction{X: out, Variance: variance}, nil
}

// descendingBasis returns Uᵀ with eigenvectors as rows, largest eigenvalue
// first, given U with ascending eigenvector columns.
func descendingBasis(u *matrix.Dense) *matrix.Dense {
	n := u.Rows()
	out, _ := matrix.NewDense(n, n)
	var r, k int
	for r = 0; r < n; r++ {
		row := out.RowView(r)
		for k = 0; k < n; k++ {
			row[k], _ = u.At(k, n-1-r)
		}
	}

	return out
}

func sq(x float64) float64 { return x * x }
