// SPDX-License-Identifier: EPL-2.0

package utils

import (
	"math"
	"testing"
)

func TestCubicInterpolate16_Endpoints(t *testing.T) {
	t.Parallel()

	y0, y1, y2, y3 := int16(100), int16(200), int16(300), int16(400)

	if got := CubicInterpolate16(y0, y1, y2, y3, 0); got != y1 {
		t.Errorf("x=0: got %d, want %d", got, y1)
	}

	if got := CubicInterpolate16(y0, y1, y2, y3, 1); got != y2 {
		t.Errorf("x=1: got %d, want %d", got, y2)
	}
}

func TestCubicInterpolate16_Linear(t *testing.T) {
	t.Parallel()

	// Points on a straight line interpolate linearly
	got := CubicInterpolate16(0, 1000, 2000, 3000, 0.5)
	if got != 1500 {
		t.Errorf("CubicInterpolate16() = %d, want 1500", got)
	}
}

func TestCubicInterpolate16_Constant(t *testing.T) {
	t.Parallel()

	for _, x := range []float32{0, 0.25, 0.5, 0.75, 1} {
		if got := CubicInterpolate16(-7, -7, -7, -7, x); got != -7 {
			t.Errorf("x=%v: got %d, want -7", x, got)
		}
	}
}

func TestCubicInterpolate16_Saturates(t *testing.T) {
	t.Parallel()

	// Sharp edge overshoots past MaxInt16 and must clamp
	got := CubicInterpolate16(math.MinInt16, math.MaxInt16, math.MaxInt16, math.MinInt16, 0.5)
	if got != math.MaxInt16 {
		t.Errorf("CubicInterpolate16() = %d, want %d", got, math.MaxInt16)
	}
}
