// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"
	"weak"

	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/internal/ring"
)

// MusicRenderer is the render side of a Music voice. It never blocks and
// never allocates.
type MusicRenderer struct {
	clip   audio.Clip
	params MusicParams

	state weak.Pointer[status]
	cmds  *ring.Ring[command]

	paused bool

	// Output samples since tick 0 at lastRate
	index    int
	lastRate int

	lowPass    int
	lastOutput audio.Frame

	// Positive while fading in, negative while fading out, 0 otherwise
	fadeTime    int
	fadeCurrent int
}

// shared returns the status block while the handle is open.
func (r *MusicRenderer) shared() *status {
	st := r.state.Value()
	if st == nil || st.closed.Load() {
		return nil
	}
	return st
}

func (r *MusicRenderer) Alive() bool {
	return r.shared() != nil
}

func (r *MusicRenderer) setPaused(paused bool) {
	r.paused = paused
	if st := r.shared(); st != nil {
		st.paused.Store(paused)
	}
}

// prepare rescales the cursor for a new output rate and then applies the
// queued commands in order. It returns ticks per output sample.
func (r *MusicRenderer) prepare(sampleRate int) float64 {
	if sampleRate != r.lastRate {
		factor := float64(sampleRate) / float64(r.lastRate)
		r.index = int(math.Round(float64(r.index) * factor))
		r.fadeTime = int(math.Round(float64(r.fadeTime) * factor))
		r.fadeCurrent = int(math.Round(float64(r.fadeCurrent) * factor))
		r.lastRate = sampleRate
	}

	for {
		cmd, ok := r.cmds.Pop()
		if !ok {
			break
		}
		r.apply(cmd, sampleRate)
	}

	return float64(r.params.PlaybackRate) / float64(sampleRate)
}

func (r *MusicRenderer) apply(cmd command, sampleRate int) {
	switch cmd.kind {
	case cmdPause:
		r.setPaused(true)
	case cmdResume:
		r.setPaused(false)
	case cmdSetAmplifier:
		r.params.Amplifier = cmd.value
	case cmdSeekTo:
		r.index = cmd.value * sampleRate / r.params.PlaybackRate
	case cmdSetLowPass:
		r.lowPass = cmd.value
	case cmdFadeIn:
		if r.paused {
			r.setPaused(false)
		}
		r.fadeTime = cmd.value * sampleRate
		r.fadeCurrent = 0
	case cmdFadeOut:
		r.fadeTime = -(cmd.value * sampleRate)
		r.fadeCurrent = 0
	}
}

func (r *MusicRenderer) tick(delta float64) int {
	return int(float64(r.index) * delta)
}

// next produces one output frame, or false when playback stopped.
func (r *MusicRenderer) next(delta float64) (audio.Frame, bool) {
	clipLen := r.clip.Length()
	loopMix := r.params.LoopMixTime
	looping := r.params.Looping()

	pos := r.tick(delta)
	f, ok := r.clip.Sample(pos)
	if !ok {
		if !looping {
			r.setPaused(true)
			return audio.Frame{}, false
		}
		pos = pos - clipLen + loopMix
		r.index = int(float64(pos) / delta)
		f, _ = r.clip.Sample(pos)
	}

	if looping {
		if tail := pos + loopMix - clipLen; tail >= 0 {
			if g, ok := r.clip.Sample(tail); ok {
				f = f.Add(g)
			}
		}
	}

	r.index++

	amp := r.params.Amplifier
	switch {
	case r.fadeTime > 0:
		r.fadeCurrent++
		if r.fadeCurrent >= r.fadeTime {
			r.fadeTime = 0
		} else {
			amp *= r.fadeCurrent / r.fadeTime
		}
	case r.fadeTime < 0:
		r.fadeCurrent--
		if r.fadeCurrent <= r.fadeTime {
			r.fadeTime = 0
			r.setPaused(true)
			return audio.Frame{}, false
		}
		amp *= 1 - r.fadeCurrent/r.fadeTime
	}

	return f.Scale(amp), true
}

// filter runs the one-pole low-pass: out = prev*c + in*(1-c).
func (r *MusicRenderer) filter(f audio.Frame) audio.Frame {
	r.lastOutput = r.lastOutput.Scale(r.lowPass).Add(f.Scale(1 - r.lowPass))
	return r.lastOutput
}

func (r *MusicRenderer) publish(delta float64) {
	if st := r.shared(); st != nil {
		st.setPosition(float64(r.index) * delta)
	}
}

// RenderMono adds the voice into data, one sample per frame.
func (r *MusicRenderer) RenderMono(sampleRate int, data []int16) {
	if sampleRate <= 0 {
		return
	}

	delta := r.prepare(sampleRate)
	if !r.paused {
		for i := range data {
			f, ok := r.next(delta)
			if !ok {
				break
			}
			data[i] = audio.Mix(data[i], r.filter(f).Avg())
		}
	}
	r.publish(delta)
}

// RenderStereo adds the voice into interleaved left/right data. A trailing
// odd sample is left untouched.
func (r *MusicRenderer) RenderStereo(sampleRate int, data []int16) {
	if sampleRate <= 0 {
		return
	}

	delta := r.prepare(sampleRate)
	if !r.paused {
		for i := 0; i+1 < len(data); i += 2 {
			f, ok := r.next(delta)
			if !ok {
				break
			}
			out := r.filter(f)
			data[i] = audio.Mix(data[i], out.L)
			data[i+1] = audio.Mix(data[i+1], out.R)
		}
	}
	r.publish(delta)
}
