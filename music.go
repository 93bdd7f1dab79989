// SPDX-License-Identifier: EPL-2.0

package audvoice

import (
	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/voice"
)

// NewMusic creates a voice that plays clip at its natural speed: one tick
// is one clip frame, so SeekTo and LoopMixTime are frame offsets.
// params.PlaybackRate is overridden.
func NewMusic(clip *audio.PCMClip, params voice.MusicParams) (*voice.Music, *voice.MusicRenderer) {
	params.PlaybackRate = clip.SampleRate()
	return voice.NewMusic(clip, params)
}

// Ticks converts seconds to the tick unit of a voice made by NewMusic.
func Ticks(clip *audio.PCMClip, seconds float64) int {
	return int(seconds * float64(clip.SampleRate()))
}
