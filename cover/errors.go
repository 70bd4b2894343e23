// SPDX-License-Identifier: MIT

package cover

import "errors"

var (
	// ErrUnknownKind indicates a partition-of-unity name other than
	// linear, quadratic or exp.
	ErrUnknownKind = errors.New("cover: unknown partition of unity")

	// ErrBadPerc indicates a coverage fraction outside [0, 1].
	ErrBadPerc = errors.New("cover: perc must lie in [0, 1]")

	// ErrEmptyRange is a non-fatal diagnostic: the class dies before the
	// balls cover the data, so the radius falls outside the class lifetime.
	ErrEmptyRange = errors.New("cover: cohomology class dies before the data is covered")

	// ErrBadRadius indicates a non-positive or non-finite radius.
	ErrBadRadius = errors.New("cover: radius must be positive and finite")
)
