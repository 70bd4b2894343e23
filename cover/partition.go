// SPDX-License-Identifier: MIT

package cover

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topocoords/matrix"
)

// Radius returns the cover radius for a class living on [cohomDeath, cohomBirth)
// at coverage fraction perc. With standardRange the lower end is raised to
// the data coverage radius.
//
// When cohomBirth < start the radius is still returned together with
// ErrEmptyRange so callers can warn and carry on.
func Radius(perc, cohomDeath, cohomBirth, coverage float64, standardRange bool) (float64, error) {
	if math.IsNaN(perc) || perc < 0 || perc > 1 {
		return 0, fmt.Errorf("perc=%g: %w", perc, ErrBadPerc)
	}
	start := cohomDeath
	if standardRange {
		start = math.Max(cohomDeath, coverage)
	}
	r := (1-perc)*start + perc*cohomBirth
	if cohomBirth < start {
		return r, ErrEmptyRange
	}

	return r, nil
}

// Partition is a partition of unity subordinate to the landmark balls.
type Partition struct {
	// Phi is m×N; column b sums to 1 for covered points and is zero otherwise.
	Phi *matrix.Dense
	// BallIndex[b] is the first landmark whose ball contains b (0 if none).
	BallIndex []int
	// Uncovered counts points outside every ball.
	Uncovered int
}

// Build evaluates the partition of unity for the m×N landmark-to-data
// distances at radius r.
//
// Errors: ErrBadRadius, matrix.ErrNilMatrix.
// Complexity: O(m·N).
func Build(landData *matrix.Dense, r float64, kind Kind) (*Partition, error) {
	if landData == nil {
		return nil, matrix.ErrNilMatrix
	}
	if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
		return nil, fmt.Errorf("r=%g: %w", r, ErrBadRadius)
	}
	m, n := landData.Shape()
	phi, err := matrix.NewDense(m, n)
	if err != nil {
		return nil, err
	}
	out := &Partition{Phi: phi, BallIndex: make([]int, n)}

	sums := make([]float64, n)
	covered := make([]bool, n)
	var j, b int
	var d, w float64
	for j = 0; j < m; j++ {
		src := landData.RowView(j)
		dst := phi.RowView(j)
		for b = 0; b < n; b++ {
			d = src[b]
			if d >= r {
				continue
			}
			if !covered[b] {
				covered[b] = true
				out.BallIndex[b] = j
			}
			w = kind.Weight(r, d)
			dst[b] = w
			sums[b] += w
		}
	}
	for b = 0; b < n; b++ {
		if sums[b] == 0 {
			if !covered[b] {
				out.Uncovered++
			}
			continue
		}
		for j = 0; j < m; j++ {
			if v := phi.RowView(j)[b]; v != 0 {
				phi.RowView(j)[b] = v / sums[b]
			}
		}
	}

	return out, nil
}
