// SPDX-License-Identifier: EPL-2.0

package utils

const (
	dacMask = 0x3FFF
	// dacMid is the code that plays as silence; 0 and 2*dacMid are the rails.
	dacMid = 8191.0
)

// Float32ToInt16 converts a sample in [-1, 1] to 16-bit PCM, clamping
// anything outside that range.
func Float32ToInt16(x float32) int16 {
	switch {
	case x >= 1:
		return 32767
	case x <= -1:
		return -32768
	}

	return int16(x * 32767)
}

// DACToFloat32 maps a 14-bit DAC code to [-1, 1]: 0 is -1, 8191 is 0 and
// 16382 is +1. The two high bits are ignored and 16383 clamps to +1.
func DACToFloat32(code uint16) float32 {
	v := float32(code&dacMask)/dacMid - 1
	if v > 1 {
		return 1
	}

	return v
}
