// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"fmt"
	"weak"

	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/internal/ring"
)

// Music is the control side of a looping music voice. Commands are queued
// and take effect at the start of the renderer's next period.
//
// A Music must not be used from two goroutines without external locking.
type Music struct {
	state *status
	cmds  *ring.Ring[command]
}

// NewMusic creates a voice over clip. The handle stays with the caller; the
// renderer goes to the mixer that drives the audio callback.
//
// The voice starts paused.
func NewMusic(clip audio.Clip, params MusicParams) (*Music, *MusicRenderer) {
	params = params.normalize()

	st := newStatus()
	cmds := ring.New[command](params.CommandBufferSize)

	r := &MusicRenderer{
		clip:     clip,
		params:   params,
		state:    weak.Make(st),
		cmds:     cmds,
		paused:   true,
		lastRate: 1,
	}

	return &Music{state: st, cmds: cmds}, r
}

func (m *Music) push(kind commandKind, value int) error {
	if m.state == nil {
		return fmt.Errorf("%s: %w", kind, ErrClosed)
	}
	if !m.cmds.Push(command{kind: kind, value: value}) {
		return fmt.Errorf("%s: %w", kind, ErrCommandQueueFull)
	}
	return nil
}

// Play resumes playback from the current position.
func (m *Music) Play() error {
	return m.push(cmdResume, 0)
}

func (m *Music) Pause() error {
	return m.push(cmdPause, 0)
}

// Paused reports the last pause state published by the renderer. A closed
// handle is always paused.
func (m *Music) Paused() bool {
	if m.state == nil {
		return true
	}
	return m.state.paused.Load()
}

// SetAmplifier replaces the integer gain.
func (m *Music) SetAmplifier(amp int) error {
	return m.push(cmdSetAmplifier, amp)
}

// SeekTo moves playback to tick.
func (m *Music) SeekTo(tick int) error {
	return m.push(cmdSeekTo, tick)
}

// SetLowPass sets the one-pole filter coefficient. 0 passes the signal
// through, 1 holds the previous output.
func (m *Music) SetLowPass(coef int) error {
	return m.push(cmdSetLowPass, coef)
}

// FadeIn resumes playback and ramps the gain up over seconds.
func (m *Music) FadeIn(seconds int) error {
	return m.push(cmdFadeIn, seconds)
}

// FadeOut ramps the gain down over seconds and then pauses.
func (m *Music) FadeOut(seconds int) error {
	return m.push(cmdFadeOut, seconds)
}

// Position is the last tick position published by the renderer.
func (m *Music) Position() float64 {
	if m.state == nil {
		return 0
	}
	return m.state.loadPosition()
}

// Close releases the voice. The renderer reports !Alive on its next probe
// and the mixer drops it. Close is idempotent.
func (m *Music) Close() error {
	if m.state == nil {
		return nil
	}
	m.state.closed.Store(true)
	m.state = nil

	return nil
}
