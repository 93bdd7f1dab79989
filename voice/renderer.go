// SPDX-License-Identifier: EPL-2.0

package voice

// Renderer is what the owning mixer drives once per callback period.
// All methods are called from the render goroutine only.
type Renderer interface {
	// Alive reports whether the voice's control handle still exists.
	// A dead renderer can be dropped by the mixer.
	Alive() bool
	// RenderMono adds mono samples at sampleRate into data.
	RenderMono(sampleRate int, data []int16)
	// RenderStereo adds interleaved left/right samples at sampleRate into data.
	RenderStereo(sampleRate int, data []int16)
}

var _ Renderer = (*MusicRenderer)(nil)
