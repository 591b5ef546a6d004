// SPDX-License-Identifier: EPL-2.0

package utils

import "errors"

var (
	// ErrConstantInput indicates every value is the same, so there is no
	// range to scale
	ErrConstantInput = errors.New("cannot normalize constant input")

	// ErrEmptyInput indicates there was nothing to normalize
	ErrEmptyInput = errors.New("cannot normalize empty input")

	// ErrNonFinite indicates a NaN or infinite value
	ErrNonFinite = errors.New("cannot normalize non-finite value")

	// ErrBoundsOutOfRange indicates a target bound outside 0..65535
	ErrBoundsOutOfRange = errors.New("normalize bounds outside uint16 range")
)
