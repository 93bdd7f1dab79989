// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// Float32ToInt16 converts a normalized [-1,1] sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// -1 maps to MinInt16, +1 to MaxInt16
	if x < 0 {
		return int16(x * 32768.0)
	}
	return int16(x * 32767.0)
}

// SaturateInt16 clamps v into the int16 range.
func SaturateInt16(v int) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}
