// SPDX-License-Identifier: EPL-2.0

// Package voice implements the music voice of a real-time mixer.
//
// A voice is split in two halves that live on different goroutines:
//
//   - Music, the control handle, owned by game or application code
//   - MusicRenderer, owned by the mixer and driven from the audio callback
//
// The halves talk through a bounded lock-free command queue (control to
// render) and a small block of atomics (render to control). Nothing on the
// render path blocks or allocates.
//
// # Commands
//
// Handle methods only enqueue. The renderer applies every queued command,
// in order, at the start of its next period:
//
//	music, renderer := voice.NewMusic(clip, voice.DefaultMusicParams())
//	mix.Add(renderer)
//
//	if err := music.FadeIn(2); errors.Is(err, voice.ErrCommandQueueFull) {
//	    // try again next frame
//	}
//
// Paused and Position read what the renderer published last, so they lag
// commands by one period.
//
// # Ticks
//
// Positions are expressed in ticks. The renderer advances
// PlaybackRate/sampleRate ticks per output sample. With a PCMClip and
// PlaybackRate equal to the clip's sample rate one tick is one clip frame.
//
// # Looping
//
// A negative LoopMixTime plays the clip once and pauses at the end. A value
// L >= 0 loops: the last L ticks of the clip are overlaid with the first L
// ticks, and playback wraps to tick L after the end.
//
// # Lifetime
//
// The renderer holds only a weak reference to the handle's state. Calling
// Close, or dropping every reference to the Music, makes Alive report false
// and the mixer prunes the voice.
package voice
