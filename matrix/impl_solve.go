// SPDX-License-Identifier: MIT

package matrix

import "math"

// Operator applies a linear map: dst = A·x. dst has the same length as x and
// is overwritten. It lets sparse structures (coboundaries, Laplacians) reuse
// the solver without materializing a Dense.
type Operator func(dst, x []float64)

// ConjugateGradient solves A·x = b for a symmetric positive semi-definite A.
// MAIN DESCRIPTION:
//   - Standard CG starting from x₀ = 0. For singular A (graph Laplacians) and
//     b in range(A), the iterates stay in range(A) and converge to the
//     minimum-norm solution.
//
// Inputs:
//   - apply: the operator A.
//   - b: right-hand side.
//   - tol: relative residual ‖r‖/‖b‖ target (≤0 ⇒ DefaultSolveTol).
//   - maxIter: iteration budget (≤0 ⇒ 10·len(b)).
//
// Returns:
//   - x and the number of iterations performed.
//
// Errors:
//   - ErrNilMatrix for nil apply or b; ErrNotConverged when the budget is exhausted.
//
// Complexity:
//   - O(iter · cost(apply)) time, O(n) extra space.
func ConjugateGradient(apply Operator, b []float64, tol float64, maxIter int) ([]float64, int, error) {
	if apply == nil || b == nil {
		return nil, 0, matrixErrorf(opCG, ErrNilMatrix)
	}
	n := len(b)
	if tol <= 0 {
		tol = DefaultSolveTol
	}
	if maxIter <= 0 {
		maxIter = 10 * n
	}

	x := make([]float64, n)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)
	copy(r, b)
	copy(p, b)

	bNorm := math.Sqrt(dot(b, b))
	if bNorm == 0 {
		return x, 0, nil
	}
	rr := dot(r, r)
	var (
		iter        int
		alpha, beta float64
		pap, rrNew  float64
		i           int
	)
	for iter = 0; iter < maxIter; iter++ {
		if math.Sqrt(rr) <= tol*bNorm {
			return x, iter, nil
		}
		apply(ap, p)
		pap = dot(p, ap)
		if pap <= 0 {
			// p lies in the null space: residual cannot shrink further.
			break
		}
		alpha = rr / pap
		for i = 0; i < n; i++ {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		rrNew = dot(r, r)
		beta = rrNew / rr
		rr = rrNew
		for i = 0; i < n; i++ {
			p[i] = r[i] + beta*p[i]
		}
	}
	if math.Sqrt(rr) <= tol*bNorm {
		return x, iter, nil
	}

	return x, iter, matrixErrorf(opCG, ErrNotConverged)
}

// dot is the plain inner product of equal-length vectors.
func dot(a, b []float64) float64 {
	var acc float64
	for i := range a {
		acc += a[i] * b[i]
	}

	return acc
}
