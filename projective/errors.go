// SPDX-License-Identifier: MIT

package projective

import "errors"

var (
	// ErrBadProjDim indicates a target dimension outside [1, landmarks−1].
	ErrBadProjDim = errors.New("projective: projection dimension out of range")

	// ErrCocycleIndex indicates a cocycle index outside the H1 diagram.
	ErrCocycleIndex = errors.New("projective: cocycle index out of range")

	// ErrInfiniteClass indicates a selected class that never dies.
	ErrInfiniteClass = errors.New("projective: selected class has infinite persistence")

	// ErrZeroVector indicates a zero vector where a direction is required.
	ErrZeroVector = errors.New("projective: zero vector")
)
