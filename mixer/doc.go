// SPDX-License-Identifier: EPL-2.0

// Package mixer sums voices into the buffer of an audio callback.
//
// Voices are added from control code and adopted by the render goroutine at
// the start of the next period. Each period the mixer zeroes the buffer,
// lets every voice add into it, and then drops voices whose handle is gone:
//
//	mix := mixer.New(32)
//	music, renderer := voice.NewMusic(clip, params)
//	if err := mix.Add(renderer); err != nil {
//	    return err
//	}
//
//	// audio callback
//	mix.RenderStereo(48000, buf)
//
// Add may be called from one goroutine while another renders. The render
// methods never block and never allocate.
package mixer
