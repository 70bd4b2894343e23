// SPDX-License-Identifier: MIT

package landmarks

import (
	"fmt"

	"github.com/katalvlaran/topocoords/matrix"
	"github.com/katalvlaran/topocoords/pointcloud"
)

// Result holds a greedy permutation prefix of length m.
type Result struct {
	// Perm[k] is the index into the data of the k-th landmark; Perm[0] == 0.
	Perm []int
	// Lambdas[k] is the insertion radius of landmark k; Lambdas[0] == 0.
	Lambdas []float64
	// LandData is the m×N matrix of landmark-to-point distances.
	LandData *matrix.Dense
	// LandLand is the m×m matrix of landmark-to-landmark distances.
	LandLand *matrix.Dense
}

// Len returns the number of landmarks.
func (r *Result) Len() int { return len(r.Perm) }

// CoverRadius returns max_b min_k d(l_k, b): the smallest radius at which
// balls around the landmarks cover every point.
func (r *Result) CoverRadius() float64 {
	m, n := r.LandData.Shape()
	var best float64
	var j, k int
	var near, d float64
	for j = 0; j < n; j++ {
		near = r.LandData.RowView(0)[j]
		for k = 1; k < m; k++ {
			if d = r.LandData.RowView(k)[j]; d < near {
				near = d
			}
		}
		if near > best {
			best = near
		}
	}

	return best
}

// Greedy computes the first m points of the greedy permutation of a
// Euclidean point cloud without materializing the N×N distance matrix.
//
// Errors: ErrBadLandmarkCount.
// Complexity: O(N·m·d) time, O(N·m) space.
func Greedy(cloud *pointcloud.Cloud, m int) (*Result, error) {
	n := cloud.Len()
	if m < 1 || m > n {
		return nil, fmt.Errorf("Greedy(m=%d, n=%d): %w", m, n, ErrBadLandmarkCount)
	}
	x := cloud.Matrix()
	landData, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	res := &Result{
		Perm:     make([]int, m),
		Lambdas:  make([]float64, m),
		LandData: landData,
	}

	ds := make([]float64, n)
	if err = matrix.PointDistances(ds, x.RowView(0), x); err != nil {
		return nil, err
	}
	copy(landData.RowView(0), ds)

	var i, idx, j int
	row := make([]float64, n)
	for i = 1; i < m; i++ {
		idx = argmax(ds)
		res.Perm[i] = idx
		res.Lambdas[i] = ds[idx]
		if err = matrix.PointDistances(row, x.RowView(idx), x); err != nil {
			return nil, err
		}
		copy(landData.RowView(i), row)
		for j = 0; j < n; j++ {
			if row[j] < ds[j] {
				ds[j] = row[j]
			}
		}
	}

	if res.LandLand, err = landData.Induced(seq(m), res.Perm); err != nil {
		return nil, err
	}

	return res, nil
}

// GreedyDM is Greedy over a precomputed symmetric N×N distance matrix.
//
// Errors: ErrNotSquare, ErrBadLandmarkCount.
// Complexity: O(N·m) time.
func GreedyDM(d *matrix.Dense, m int) (*Result, error) {
	if d == nil || d.Rows() != d.Cols() {
		return nil, ErrNotSquare
	}
	n := d.Rows()
	if m < 1 || m > n {
		return nil, fmt.Errorf("GreedyDM(m=%d, n=%d): %w", m, n, ErrBadLandmarkCount)
	}
	res := &Result{
		Perm:    make([]int, m),
		Lambdas: make([]float64, m),
	}
	ds := make([]float64, n)
	copy(ds, d.RowView(0))

	var i, idx, j int
	var row []float64
	for i = 1; i < m; i++ {
		idx = argmax(ds)
		res.Perm[i] = idx
		res.Lambdas[i] = ds[idx]
		row = d.RowView(idx)
		for j = 0; j < n; j++ {
			if row[j] < ds[j] {
				ds[j] = row[j]
			}
		}
	}

	var err error
	if res.LandData, err = d.Induced(res.Perm, seq(n)); err != nil {
		return nil, err
	}
	if res.LandLand, err = d.Induced(res.Perm, res.Perm); err != nil {
		return nil, err
	}

	return res, nil
}

// argmax returns the first index of the maximum value.
func argmax(xs []float64) int {
	best := 0
	for i := 1; i < len(xs); i++ {
		if xs[i] > xs[best] {
			best = i
		}
	}

	return best
}

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}
