// SPDX-License-Identifier: EPL-2.0

package utils

// CubicInterpolate16 runs a Catmull-Rom spline through four consecutive
// 16-bit samples and returns the value at x (0 <= x <= 1) between y1 and y2.
// The result saturates at the int16 range, since the spline can overshoot.
func CubicInterpolate16(y0, y1, y2, y3 int16, x float32) int16 {
	f0, f1, f2, f3 := float32(y0), float32(y1), float32(y2), float32(y3)

	a0 := -0.5*f0 + 1.5*f1 - 1.5*f2 + 0.5*f3
	a1 := f0 - 2.5*f1 + 2*f2 - 0.5*f3
	a2 := -0.5*f0 + 0.5*f2

	v := a0*x*x*x + a1*x*x + a2*x + f1
	if v >= 0 {
		v += 0.5
	} else {
		v -= 0.5
	}

	return SaturateInt16(int(v))
}
