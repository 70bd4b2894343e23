// SPDX-License-Identifier: MIT

package persistence

import "errors"

var (
	// ErrNotPrime indicates a coefficient modulus that is not a prime.
	ErrNotPrime = errors.New("persistence: coefficient modulus is not prime")

	// ErrBadDistance indicates a non-square, asymmetric, negative or
	// non-finite distance matrix.
	ErrBadDistance = errors.New("persistence: invalid distance matrix")

	// ErrBadThreshold indicates a negative or NaN threshold.
	ErrBadThreshold = errors.New("persistence: invalid threshold")
)
