// SPDX-License-Identifier: EPL-2.0

package tfw

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat is the parent of every header validation error.
	ErrFormat = errors.New("invalid TFW file")

	// ErrTooSmall indicates fewer than HeaderSize bytes were available
	ErrTooSmall = fmt.Errorf("%w: file too small", ErrFormat)

	// ErrBadMagic indicates the identifier is not "TEKAFG3000"
	ErrBadMagic = fmt.Errorf("%w: missing identifier %q", ErrFormat, Magic)

	// ErrBadVersion indicates a version other than 20050114
	ErrBadVersion = fmt.Errorf("%w: version not %d", ErrFormat, Version)

	// ErrNoSamples is returned when asked to write an empty waveform
	ErrNoSamples = errors.New("waveform has no samples")

	// ErrTooManySamples is returned when the sample count does not fit in 32 bits
	ErrTooManySamples = errors.New("waveform has too many samples")
)
