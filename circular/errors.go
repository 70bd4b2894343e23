// SPDX-License-Identifier: MIT

package circular

import "errors"

var (
	// ErrCocycleIndex indicates a cocycle index outside the H1 diagram.
	ErrCocycleIndex = errors.New("circular: cocycle index out of range")

	// ErrInfiniteClass indicates a selected class that never dies; no finite
	// cover radius exists for it.
	ErrInfiniteClass = errors.New("circular: selected class has infinite persistence")

	// ErrNoCocycle indicates an empty selection.
	ErrNoCocycle = errors.New("circular: no cocycle selected")

	// ErrBadConfig indicates an unusable engine configuration.
	ErrBadConfig = errors.New("circular: invalid configuration")
)
