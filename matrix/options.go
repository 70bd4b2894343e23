// SPDX-License-Identifier: MIT

// Package matrix: numeric defaults (single source of truth).
package matrix

const (
	// DefaultEpsilon is the tolerance used by structural checks (symmetry).
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// DefaultEigenTol is the off-diagonal Frobenius threshold for EigenSym,
	// relative to the Frobenius norm of the input.
	DefaultEigenTol = 1e-12

	// DefaultEigenSweeps caps the number of cyclic Jacobi sweeps.
	DefaultEigenSweeps = 100

	// DefaultSolveTol is the relative residual threshold for ConjugateGradient.
	DefaultSolveTol = 1e-10
)
