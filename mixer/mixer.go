// SPDX-License-Identifier: EPL-2.0

package mixer

import (
	"github.com/ik5/audvoice/internal/ring"
	"github.com/ik5/audvoice/voice"
)

// Mixer owns the renderers of up to maxVoices active voices.
type Mixer struct {
	pending *ring.Ring[voice.Renderer]
	voices  []voice.Renderer
}

// New creates a mixer for at most maxVoices simultaneous voices. Values
// below one are raised to one.
func New(maxVoices int) *Mixer {
	maxVoices = max(maxVoices, 1)

	return &Mixer{
		pending: ring.New[voice.Renderer](maxVoices),
		voices:  make([]voice.Renderer, 0, maxVoices),
	}
}

// Add hands r over to the render goroutine. Only one goroutine may call Add.
func (m *Mixer) Add(r voice.Renderer) error {
	if r == nil {
		return ErrNilRenderer
	}
	if !m.pending.Push(r) {
		return ErrTooManyVoices
	}
	return nil
}

// Len is the number of active voices. Render side only.
func (m *Mixer) Len() int {
	return len(m.voices)
}

// Pending is a snapshot of the voices waiting for adoption.
func (m *Mixer) Pending() int {
	return m.pending.Len()
}

// adopt moves pending voices in while there is room.
func (m *Mixer) adopt() {
	for len(m.voices) < cap(m.voices) {
		r, ok := m.pending.Pop()
		if !ok {
			return
		}
		m.voices = append(m.voices, r)
	}
}

// prune drops voices whose handle is gone, keeping order.
func (m *Mixer) prune() {
	live := m.voices[:0]
	for _, v := range m.voices {
		if v.Alive() {
			live = append(live, v)
		}
	}
	clear(m.voices[len(live):])
	m.voices = live
}

// RenderMono fills buf with the sum of all voices, one sample per frame.
func (m *Mixer) RenderMono(sampleRate int, buf []int16) {
	m.adopt()
	clear(buf)
	for _, v := range m.voices {
		v.RenderMono(sampleRate, buf)
	}
	m.prune()
}

// RenderStereo fills interleaved buf with the sum of all voices.
func (m *Mixer) RenderStereo(sampleRate int, buf []int16) {
	m.adopt()
	clear(buf)
	for _, v := range m.voices {
		v.RenderStereo(sampleRate, buf)
	}
	m.prune()
}
