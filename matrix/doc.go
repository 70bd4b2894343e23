// SPDX-License-Identifier: MIT

// Package matrix provides the dense numerics used by the coordinate engines.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with safe accessors (At/Set return
//     errors instead of panicking) and a finite-value numeric policy.
//   - Linear-algebra kernels: Mul, Transpose, MatVec.
//   - EigenSym, a cyclic Jacobi eigen-solver for symmetric matrices that
//     returns eigenvalues in ascending order.
//   - ConjugateGradient for symmetric positive semi-definite operators given
//     as a mat-vec closure (used for coboundary least squares).
//   - PairwiseDistances / CrossDistances for Euclidean distance matrices.
//
// All kernels validate their inputs through the validators in this package
// and return sentinel errors that callers match with errors.Is.
package matrix
