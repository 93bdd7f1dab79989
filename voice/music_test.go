// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/audvoice/audio"
)

func constClip(n int, f audio.Frame) *audio.PCMClip {
	frames := make([]audio.Frame, n)
	for i := range frames {
		frames[i] = f
	}
	return audio.NewClip(n, frames)
}

// rampClip holds frame i = {i+1, i+1} so every tick is distinguishable.
func rampClip(n int) *audio.PCMClip {
	frames := make([]audio.Frame, n)
	for i := range frames {
		frames[i] = audio.Frame{L: int16(i + 1), R: int16(i + 1)}
	}
	return audio.NewClip(n, frames)
}

// paramsAt returns defaults with one tick per output sample at rate.
func paramsAt(rate int) MusicParams {
	p := DefaultMusicParams()
	p.PlaybackRate = rate
	return p
}

func TestDefaultMusicParams(t *testing.T) {
	t.Parallel()

	p := DefaultMusicParams()
	assert.Equal(t, -1, p.LoopMixTime)
	assert.Equal(t, 1, p.Amplifier)
	assert.Equal(t, 1, p.PlaybackRate)
	assert.Equal(t, 16, p.CommandBufferSize)
	assert.False(t, p.Looping())
}

func TestNewMusic_NormalizesParams(t *testing.T) {
	t.Parallel()

	_, r := NewMusic(constClip(4, audio.Frame{}), MusicParams{PlaybackRate: -3})
	assert.Equal(t, DefaultPlaybackRate, r.params.PlaybackRate)
	assert.Equal(t, DefaultCommandBufferSize, r.cmds.Cap())
	// Zero loop mix time is a valid loop without crossfade
	assert.True(t, r.params.Looping())
}

func TestMusic_InitialState(t *testing.T) {
	t.Parallel()

	m, r := NewMusic(constClip(4, audio.Frame{}), DefaultMusicParams())
	defer m.Close()

	assert.True(t, m.Paused())
	assert.Zero(t, m.Position())
	assert.True(t, r.Alive())
}

func TestMusic_QueueFull(t *testing.T) {
	t.Parallel()

	params := paramsAt(1000)
	params.CommandBufferSize = 2
	m, r := NewMusic(constClip(1000, audio.Frame{L: 1, R: 1}), params)
	defer m.Close()

	require.NoError(t, m.SeekTo(5))
	require.NoError(t, m.Pause())

	err := m.FadeIn(1)
	require.ErrorIs(t, err, ErrCommandQueueFull)
	assert.EqualError(t, err, "fade in: command queue full")
	assert.Equal(t, 2, r.cmds.Len())

	// The queued commands survive the rejected one
	r.RenderStereo(1000, nil)
	assert.True(t, m.Paused())
	assert.Equal(t, 5.0, m.Position())
	assert.Zero(t, r.fadeTime)

	require.NoError(t, m.FadeIn(1))
}

func TestMusic_EnqueueErrorsNameTheCommand(t *testing.T) {
	t.Parallel()

	params := DefaultMusicParams()
	params.CommandBufferSize = 1

	tests := []struct {
		name string
		call func(m *Music) error
		want string
	}{
		{"play", (*Music).Play, "resume: command queue full"},
		{"pause", (*Music).Pause, "pause: command queue full"},
		{"amp", func(m *Music) error { return m.SetAmplifier(2) }, "set amplifier: command queue full"},
		{"seek", func(m *Music) error { return m.SeekTo(1) }, "seek to: command queue full"},
		{"low pass", func(m *Music) error { return m.SetLowPass(1) }, "set low pass: command queue full"},
		{"fade in", func(m *Music) error { return m.FadeIn(1) }, "fade in: command queue full"},
		{"fade out", func(m *Music) error { return m.FadeOut(1) }, "fade out: command queue full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, _ := NewMusic(constClip(1, audio.Frame{}), params)
			defer m.Close()

			require.NoError(t, tt.call(m))
			assert.EqualError(t, tt.call(m), tt.want)
		})
	}
}

func TestMusic_Close(t *testing.T) {
	t.Parallel()

	m, r := NewMusic(constClip(4, audio.Frame{}), DefaultMusicParams())

	require.NoError(t, m.Close())
	require.NoError(t, m.Close())

	assert.False(t, r.Alive())
	assert.True(t, m.Paused())
	assert.Zero(t, m.Position())
	assert.ErrorIs(t, m.Play(), ErrClosed)
}

func TestMusic_CloseStopsPublishing(t *testing.T) {
	t.Parallel()

	m, r := NewMusic(constClip(100, audio.Frame{L: 1, R: 1}), paramsAt(1000))
	st := m.state

	require.NoError(t, m.Play())
	r.RenderStereo(1000, make([]int16, 20))
	require.Equal(t, 10.0, st.loadPosition())
	require.False(t, st.paused.Load())

	require.NoError(t, m.Close())

	// Still rendering locally, but nothing reaches the status block
	r.RenderStereo(1000, make([]int16, 400))
	assert.Equal(t, 10.0, st.loadPosition())
	assert.False(t, st.paused.Load())
	assert.True(t, r.paused)
}

//go:noinline
func orphanRenderer() *MusicRenderer {
	_, r := NewMusic(constClip(4, audio.Frame{}), DefaultMusicParams())
	return r
}

func TestMusicRenderer_HandleCollected(t *testing.T) {
	r := orphanRenderer()

	require.Eventually(t, func() bool {
		runtime.GC()
		return !r.Alive()
	}, 2*time.Second, 10*time.Millisecond)

	// Rendering a dead voice is harmless
	r.RenderStereo(1000, make([]int16, 8))
}
