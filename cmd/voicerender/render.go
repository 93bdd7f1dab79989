// SPDX-License-Identifier: EPL-2.0

package main

import (
	"errors"
	"log"

	"github.com/ik5/audvoice"
	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/mixer"
	"github.com/ik5/audvoice/voice"
)

// action is a control command issued before rendering a given period.
type action struct {
	period  int
	resumes bool // starts playback
	retried bool
	do      func(m *voice.Music) error
}

type schedule struct {
	actions []action
}

func newSchedule(clip *audio.PCMClip, cfg config) *schedule {
	var acts []action

	if cfg.seek > 0 {
		tick := audvoice.Ticks(clip, cfg.seek)
		acts = append(acts, action{do: func(m *voice.Music) error { return m.SeekTo(tick) }})
	}
	if cfg.lowPass != 0 {
		acts = append(acts, action{do: func(m *voice.Music) error { return m.SetLowPass(cfg.lowPass) }})
	}
	if cfg.fadeIn > 0 {
		acts = append(acts, action{resumes: true, do: func(m *voice.Music) error { return m.FadeIn(cfg.fadeIn) }})
	} else {
		acts = append(acts, action{resumes: true, do: (*voice.Music).Play})
	}
	if cfg.fadeOutAt >= 0 && cfg.fadeOut > 0 {
		acts = append(acts, action{
			period: int(cfg.fadeOutAt*float64(cfg.rate)) / cfg.period,
			do:     func(m *voice.Music) error { return m.FadeOut(cfg.fadeOut) },
		})
	}

	return &schedule{actions: acts}
}

// run issues every action due by period, in order. A command rejected by a
// full queue is retried once on the next period.
func (s *schedule) run(period int, m *voice.Music) error {
	kept := s.actions[:0]
	for _, a := range s.actions {
		if a.period > period {
			kept = append(kept, a)
			continue
		}

		err := a.do(m)
		switch {
		case err == nil:
		case errors.Is(err, voice.ErrCommandQueueFull) && !a.retried:
			log.Printf("%v, retrying next period", err)
			a.retried = true
			a.period = period + 1
			kept = append(kept, a)
		default:
			return err
		}
	}
	s.actions = kept

	return nil
}

// resumePending reports whether a queued action would start playback again.
func (s *schedule) resumePending() bool {
	for _, a := range s.actions {
		if a.resumes {
			return true
		}
	}
	return false
}

// render drives one voice through the mixer period by period and returns
// the interleaved output.
func render(clip *audio.PCMClip, cfg config) ([]int16, error) {
	params := voice.DefaultMusicParams()
	params.LoopMixTime = cfg.loopMix
	params.Amplifier = cfg.amp

	music, renderer := audvoice.NewMusic(clip, params)
	defer music.Close()

	mix := mixer.New(1)
	if err := mix.Add(renderer); err != nil {
		return nil, err
	}

	channels := cfg.channels()
	limit := cfg.maxFrames() * channels
	buf := make([]int16, cfg.period*channels)
	out := make([]int16, 0, max(limit, clip.Length()*channels))
	sched := newSchedule(clip, cfg)

	for period := 0; limit == 0 || len(out) < limit; period++ {
		if err := sched.run(period, music); err != nil {
			return nil, err
		}

		if cfg.mono {
			mix.RenderMono(cfg.rate, buf)
		} else {
			mix.RenderStereo(cfg.rate, buf)
		}
		out = append(out, buf...)

		if music.Paused() && !sched.resumePending() {
			log.Printf("voice stopped at tick %.0f after %d periods", music.Position(), period+1)
			// The mixer drops the voice on its next period
			_ = music.Close()
			break
		}
	}

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}
