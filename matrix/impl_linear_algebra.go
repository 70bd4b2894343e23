// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, transpose and matrix-vector products. All functions
// perform fail-fast validation and return wrapped sentinels.
//
// Notes:
//   - *Dense operands take a flat fast-path; other Matrix implementations go
//     through At/Set with the same i→k→j loop order, so results are identical.

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for dot products.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opEigen     = "EigenSym"
	opCG        = "ConjugateGradient"
	opDistances = "Distances"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// asDense returns m as *Dense, copying through At when m is another implementation.
func asDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < out.r; i++ {
		for j = 0; j < out.c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Mul returns the product a·b as a fresh Dense (a: r×k, b: k×c).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (wrapped with "Mul").
// Complexity: O(r*k*c) time, O(r*c) space.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	ad, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	bd, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	out, err := NewDense(ad.r, bd.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	// i→k→j keeps the inner loop on contiguous rows of b and out.
	var i, j, k, aBase, bBase, oBase int
	var aik float64
	for i = 0; i < ad.r; i++ {
		aBase = i * ad.c
		oBase = i * out.c
		for k = 0; k < ad.c; k++ {
			aik = ad.data[aBase+k]
			if aik == 0 {
				continue
			}
			bBase = k * bd.c
			for j = 0; j < bd.c; j++ {
				out.data[oBase+j] += aik * bd.data[bBase+j]
			}
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a fresh Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	out, err := NewDense(md.c, md.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < md.r; i++ {
		for j = 0; j < md.c; j++ {
			out.data[j*out.c+i] = md.data[i*md.c+j]
		}
	}

	return out, nil
}

// MatVec computes y = m·x.
//
// Errors: ErrNilMatrix for nil m or x, ErrDimensionMismatch when len(x) != m.Cols().
// Complexity: O(r*c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	md, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	y := make([]float64, md.r)
	var i, j, base int
	var acc float64
	for i = 0; i < md.r; i++ {
		acc = ZeroSum
		base = i * md.c
		for j = 0; j < md.c; j++ {
			acc += md.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// Gram returns X·Xᵀ for an r×c matrix X, exploiting symmetry (r×r result).
// Complexity: O(r²c).
func Gram(x *Dense) (*Dense, error) {
	if x == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	out, err := NewDense(x.r, x.r)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var i, j, k int
	var acc float64
	var ri, rj []float64
	for i = 0; i < x.r; i++ {
		ri = x.data[i*x.c : (i+1)*x.c]
		for j = i; j < x.r; j++ {
			rj = x.data[j*x.c : (j+1)*x.c]
			acc = ZeroSum
			for k = 0; k < x.c; k++ {
				acc += ri[k] * rj[k]
			}
			out.data[i*x.r+j] = acc
			out.data[j*x.r+i] = acc
		}
	}

	return out, nil
}
