// SPDX-License-Identifier: EPL-2.0

package audio

import "github.com/ik5/audvoice/utils"

// Frame is one stereo sample pair of signed 16-bit amplitudes.
// The zero value is silence.
type Frame struct {
	L int16
	R int16
}

// Add mixes two frames elementwise, saturating at the int16 range.
func (f Frame) Add(o Frame) Frame {
	return Frame{
		L: utils.SaturateInt16(int(f.L) + int(o.L)),
		R: utils.SaturateInt16(int(f.R) + int(o.R)),
	}
}

// Scale multiplies both channels by k, saturating at the int16 range.
func (f Frame) Scale(k int) Frame {
	return Frame{
		L: utils.SaturateInt16(int(f.L) * k),
		R: utils.SaturateInt16(int(f.R) * k),
	}
}

// Avg collapses the frame to mono.
func (f Frame) Avg() int16 {
	return int16((int32(f.L) + int32(f.R)) / 2)
}

// Mix adds v into dst, saturating at the int16 range.
func Mix(dst, v int16) int16 {
	return utils.SaturateInt16(int(dst) + int(v))
}
