// SPDX-License-Identifier: EPL-2.0

// Command voicerender plays an audio file through a music voice and writes
// what the mixer produced to a WAV file.
//
// Usage:
//
//	voicerender -in theme.ogg -out theme.wav
//	voicerender -in loop.wav -out loop.wav -loop-mix 22050 -duration 30
//	voicerender -in theme.mp3 -out fade.wav -fade-in 2 -fade-out-at 10 -fade-out 3
//
// The mixer is driven in periods of -period frames, the way an audio
// callback would drive it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ik5/audvoice"
	"github.com/ik5/audvoice/formats/wav"
)

const (
	defaultRate   = 44100
	defaultPeriod = 512
)

type config struct {
	in  string
	out string

	rate     int
	period   int
	duration float64
	mono     bool

	loopMix int
	amp     int
	lowPass int
	seek    float64

	fadeIn    int
	fadeOutAt float64
	fadeOut   int
}

func (c config) channels() int {
	if c.mono {
		return 1
	}
	return 2
}

// maxFrames is the render length limit, 0 when rendering until the voice
// stops.
func (c config) maxFrames() int {
	return int(c.duration * float64(c.rate))
}

func parseFlags(args []string) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("voicerender", flag.ContinueOnError)
	fs.StringVar(&cfg.in, "in", "", "Input audio file (wav, mp3, ogg, aiff)")
	fs.StringVar(&cfg.out, "out", "", "Output WAV file")
	fs.IntVar(&cfg.rate, "rate", defaultRate, "Output sample rate in Hz")
	fs.IntVar(&cfg.period, "period", defaultPeriod, "Frames rendered per callback")
	fs.Float64Var(&cfg.duration, "duration", 0, "Seconds to render, 0 renders until the voice stops")
	fs.BoolVar(&cfg.mono, "mono", false, "Render through the mono path and write one channel")
	fs.IntVar(&cfg.loopMix, "loop-mix", -1, "Loop crossfade in output frames, negative plays once")
	fs.IntVar(&cfg.amp, "amp", 1, "Integer gain")
	fs.IntVar(&cfg.lowPass, "low-pass", 0, "Low-pass coefficient (0 off, 1 hold)")
	fs.Float64Var(&cfg.seek, "seek", 0, "Start position in seconds")
	fs.IntVar(&cfg.fadeIn, "fade-in", 0, "Fade in over seconds instead of starting at full gain")
	fs.Float64Var(&cfg.fadeOutAt, "fade-out-at", -1, "Seconds into the render to start fading out")
	fs.IntVar(&cfg.fadeOut, "fade-out", 0, "Fade out length in seconds")

	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w", err)
	}

	switch {
	case cfg.in == "" || cfg.out == "":
		return cfg, errors.New("both -in and -out are required")
	case cfg.rate <= 0:
		return cfg, fmt.Errorf("invalid -rate %d", cfg.rate)
	case cfg.period <= 0:
		return cfg, fmt.Errorf("invalid -period %d", cfg.period)
	case cfg.loopMix >= 0 && cfg.duration <= 0:
		return cfg, errors.New("a looping voice needs -duration")
	case cfg.fadeOutAt >= 0 && cfg.fadeOut <= 0:
		return cfg, errors.New("-fade-out-at needs a positive -fade-out")
	}

	return cfg, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	cfg, err := parseFlags(args)
	if err != nil {
		return err
	}

	clip, err := audvoice.LoadClip(cfg.in, audvoice.ClipOptions{SampleRate: cfg.rate})
	if err != nil {
		return err
	}
	log.Printf("loaded %s: %d frames at %d Hz (%v)", cfg.in, clip.Length(), clip.SampleRate(), clip.Duration())

	start := time.Now()
	samples, err := render(clip, cfg)
	if err != nil {
		return err
	}

	out, err := os.Create(cfg.out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := wav.WriteWAV16(out, cfg.rate, cfg.channels(), samples); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w", err)
	}

	frames := len(samples) / cfg.channels()
	log.Printf("rendered %d frames (%.2fs of audio) to %s in %v",
		frames, float64(frames)/float64(cfg.rate), cfg.out, time.Since(start).Round(time.Millisecond))

	return nil
}
