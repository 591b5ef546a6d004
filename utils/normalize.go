// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"fmt"
	"math"
)

const (
	// DefaultUpper is the highest code Normalize produces by default.
	DefaultUpper = 16382
	// DefaultLower is the lowest code Normalize produces by default.
	DefaultLower = 0
)

// Normalize rescales values so their minimum becomes DefaultLower and their
// maximum DefaultUpper, ready to be written as DAC codes.
func Normalize(values []float64) ([]uint16, error) {
	return NormalizeRange(values, DefaultLower, DefaultUpper)
}

// NormalizeRange maps values linearly so min(values) lands on lower and
// max(values) on upper, rounding to the nearest code. lower may exceed
// upper, which inverts the shape.
//
// The result is not checked against the 14-bit DAC range; codes above
// 16383 are wrapped when the waveform is written.
func NormalizeRange(values []float64, lower, upper int) ([]uint16, error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	if !inCellRange(lower) || !inCellRange(upper) {
		return nil, fmt.Errorf("%w: [%d, %d]", ErrBoundsOutOfRange, lower, upper)
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v", ErrNonFinite, v)
		}
		lo = min(lo, v)
		hi = max(hi, v)
	}

	if hi == lo {
		return nil, fmt.Errorf("%w: every value is %v", ErrConstantInput, lo)
	}

	scale := float64(upper-lower) / (hi - lo)
	offset := float64(upper) - scale*hi

	out := make([]uint16, len(values))
	for i, v := range values {
		code := math.Round(scale*v + offset)
		// Rounding error can push a result just past a bound.
		out[i] = uint16(min(max(code, 0), math.MaxUint16))
	}

	return out, nil
}

func inCellRange(v int) bool { return v >= 0 && v <= math.MaxUint16 }
