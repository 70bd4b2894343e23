// SPDX-License-Identifier: MIT

package landmarks

import "errors"

var (
	// ErrBadLandmarkCount indicates m < 1 or m greater than the number of points.
	ErrBadLandmarkCount = errors.New("landmarks: landmark count out of range")

	// ErrNotSquare indicates a distance matrix that is not N×N.
	ErrNotSquare = errors.New("landmarks: distance matrix must be square")
)
