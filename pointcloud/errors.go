// SPDX-License-Identifier: MIT

package pointcloud

import "errors"

var (
	// ErrBadShape indicates an empty cloud, a zero dimension, or ragged rows.
	ErrBadShape = errors.New("pointcloud: invalid shape")

	// ErrNaNInf indicates a non-finite coordinate.
	ErrNaNInf = errors.New("pointcloud: NaN or Inf coordinate")

	// ErrBadParameter indicates a nonsensical sampler parameter
	// (non-positive count or radius, negative noise).
	ErrBadParameter = errors.New("pointcloud: invalid sampler parameter")
)
