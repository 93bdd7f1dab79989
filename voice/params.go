// SPDX-License-Identifier: EPL-2.0

package voice

const (
	DefaultPlaybackRate      = 1
	DefaultCommandBufferSize = 16
)

// MusicParams configures a music voice. Start from DefaultMusicParams; the
// zero value mutes the voice and loops without crossfade.
type MusicParams struct {
	// LoopMixTime is the crossfade offset from the clip end, in ticks.
	// Negative disables looping.
	LoopMixTime int

	// Amplifier is the integer gain applied to every frame.
	Amplifier int

	// PlaybackRate is the number of clip ticks per second of output.
	PlaybackRate int

	// CommandBufferSize bounds the number of queued control commands.
	CommandBufferSize int
}

func DefaultMusicParams() MusicParams {
	return MusicParams{
		LoopMixTime:       -1,
		Amplifier:         1,
		PlaybackRate:      DefaultPlaybackRate,
		CommandBufferSize: DefaultCommandBufferSize,
	}
}

// Looping reports whether the voice wraps at the clip end.
func (p MusicParams) Looping() bool {
	return p.LoopMixTime >= 0
}

func (p MusicParams) normalize() MusicParams {
	if p.PlaybackRate <= 0 {
		p.PlaybackRate = DefaultPlaybackRate
	}
	if p.CommandBufferSize <= 0 {
		p.CommandBufferSize = DefaultCommandBufferSize
	}
	return p
}
