// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"sort"
)

// EigenSym computes the eigen-decomposition of a symmetric matrix via cyclic
// Jacobi sweeps.
// MAIN DESCRIPTION:
//   - Returns eigenvalues in ASCENDING order and Q whose column k is the unit
//     eigenvector of eigenvalue k (same convention as LAPACK's syevd).
//
// Implementation:
//   - Stage 1: ValidateSymmetric(m, DefaultEpsilon·scale); copy into a work buffer, Q = I.
//   - Stage 2: sweep all (p,q), p<q, in row-major order; annihilate A[p,q]
//     with the Numerical-Recipes rotation (t = sgn θ / (|θ|+√(θ²+1))).
//   - Stage 3: stop once √(Σ_{i<j} A[i,j]²) ≤ tol·‖A‖_F.
//   - Stage 4: sort eigenpairs ascending (stable on ties).
//
// Inputs:
//   - m: symmetric square matrix.
//   - tol: relative off-diagonal threshold (≤0 ⇒ DefaultEigenTol).
//   - maxSweeps: sweep budget (≤0 ⇒ DefaultEigenSweeps).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry, ErrEigenFailed (wrapped with "EigenSym").
//
// Complexity:
//   - Time O(sweeps · n³), Space O(n²).
func EigenSym(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	if tol <= 0 {
		tol = DefaultEigenTol
	}
	if maxSweeps <= 0 {
		maxSweeps = DefaultEigenSweeps
	}
	src, err := asDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	a := src.clone()
	n := a.r

	// Frobenius norm drives both the symmetry tolerance and convergence.
	var norm float64
	for _, v := range a.data {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if err = ValidateSymmetric(a, DefaultEpsilon*math.Max(1, norm)); err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	var i int
	for i = 0; i < n; i++ {
		q.data[i*n+i] = 1
	}

	var (
		sweep, p, r, k           int
		off, apq, app, aqq       float64
		theta, t, c, s           float64
		akp, akq, vkp, vkq, stop float64
	)
	stop = tol * norm
	converged := norm == 0
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		off = 0
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				off += a.data[p*n+r] * a.data[p*n+r]
			}
		}
		if math.Sqrt(off) <= stop {
			converged = true
			break
		}
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				apq = a.data[p*n+r]
				if apq == 0 {
					continue
				}
				app = a.data[p*n+p]
				aqq = a.data[r*n+r]
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for k = 0; k < n; k++ {
					if k == p || k == r {
						continue
					}
					akp = a.data[k*n+p]
					akq = a.data[k*n+r]
					a.data[k*n+p] = c*akp - s*akq
					a.data[p*n+k] = a.data[k*n+p]
					a.data[k*n+r] = s*akp + c*akq
					a.data[r*n+k] = a.data[k*n+r]
				}
				a.data[p*n+p] = app - t*apq
				a.data[r*n+r] = aqq + t*apq
				a.data[p*n+r], a.data[r*n+p] = 0, 0

				for k = 0; k < n; k++ {
					vkp = q.data[k*n+p]
					vkq = q.data[k*n+r]
					q.data[k*n+p] = c*vkp - s*vkq
					q.data[k*n+r] = s*vkp + c*vkq
				}
			}
		}
	}
	if !converged {
		// The last sweep may have finished the job; re-check once.
		off = 0
		for p = 0; p < n; p++ {
			for r = p + 1; r < n; r++ {
				off += a.data[p*n+r] * a.data[p*n+r]
			}
		}
		if math.Sqrt(off) > stop {
			return nil, nil, matrixErrorf(opEigen, ErrEigenFailed)
		}
	}

	order := make([]int, n)
	for i = 0; i < n; i++ {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool {
		return a.data[order[x]*n+order[x]] < a.data[order[y]*n+order[y]]
	})

	vals := make([]float64, n)
	vecs, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	for k = 0; k < n; k++ {
		vals[k] = a.data[order[k]*n+order[k]]
		for i = 0; i < n; i++ {
			vecs.data[i*n+k] = q.data[i*n+order[k]]
		}
	}

	return vals, vecs, nil
}
