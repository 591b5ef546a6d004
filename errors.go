// SPDX-License-Identifier: EPL-2.0

package afgtfw

import "errors"

var (
	ErrInvalidPoints = errors.New("point count must not be negative")
	ErrInvalidCycles = errors.New("cycle count must be at least 1")
)
