// SPDX-License-Identifier: MIT

package matrix

import "math"

// CrossDistances returns the Euclidean distance matrix D (x.Rows × y.Rows)
// with D[i,j] = ‖x_i − y_j‖₂. Rows are points; both inputs must share the
// column (dimension) count.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Distances").
// Complexity: O(mnd) time, O(mn) space.
func CrossDistances(x, y *Dense) (*Dense, error) {
	if x == nil || y == nil {
		return nil, matrixErrorf(opDistances, ErrNilMatrix)
	}
	if x.c != y.c {
		return nil, matrixErrorf(opDistances, ErrDimensionMismatch)
	}
	out, err := NewDense(x.r, y.r)
	if err != nil {
		return nil, matrixErrorf(opDistances, err)
	}
	var i, j int
	for i = 0; i < x.r; i++ {
		xi := x.RowView(i)
		for j = 0; j < y.r; j++ {
			out.data[i*out.c+j] = euclid(xi, y.RowView(j))
		}
	}

	return out, nil
}

// PairwiseDistances returns the symmetric n×n Euclidean distance matrix of
// the rows of x. The diagonal is exactly zero.
// Complexity: O(n²d) time, O(n²) space.
func PairwiseDistances(x *Dense) (*Dense, error) {
	if x == nil {
		return nil, matrixErrorf(opDistances, ErrNilMatrix)
	}
	out, err := NewDense(x.r, x.r)
	if err != nil {
		return nil, matrixErrorf(opDistances, err)
	}
	var i, j int
	var d float64
	for i = 0; i < x.r; i++ {
		xi := x.RowView(i)
		for j = i + 1; j < x.r; j++ {
			d = euclid(xi, x.RowView(j))
			out.data[i*x.r+j] = d
			out.data[j*x.r+i] = d
		}
	}

	return out, nil
}

// PointDistances fills dst[j] = ‖p − x_j‖₂ for every row j of x.
// dst must have length x.Rows(); it is the streaming kernel behind greedy
// landmark selection.
func PointDistances(dst []float64, p []float64, x *Dense) error {
	if x == nil || p == nil || dst == nil {
		return matrixErrorf(opDistances, ErrNilMatrix)
	}
	if len(p) != x.c || len(dst) != x.r {
		return matrixErrorf(opDistances, ErrDimensionMismatch)
	}
	for j := 0; j < x.r; j++ {
		dst[j] = euclid(p, x.RowView(j))
	}

	return nil
}

// euclid is ‖a − b‖₂ for equal-length vectors.
func euclid(a, b []float64) float64 {
	var acc, d float64
	for k := range a {
		d = a[k] - b[k]
		acc += d * d
	}

	return math.Sqrt(acc)
}
