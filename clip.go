// SPDX-License-Identifier: EPL-2.0

package audvoice

import (
	"fmt"
	"os"

	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/formats/aiff"
	"github.com/ik5/audvoice/formats/mp3"
	"github.com/ik5/audvoice/formats/vorbis"
	"github.com/ik5/audvoice/formats/wav"
)

// DefaultRegistry returns a registry with every bundled decoder, keyed by
// file extension.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})

	return reg
}

// ClipOptions controls how a decoded stream is turned into a clip.
type ClipOptions struct {
	// SampleRate resamples the clip when positive and different from the
	// source rate.
	SampleRate int

	// Mono collapses both channels to their average.
	Mono bool
}

// DecodeClip reads src to the end into memory. The pipeline is
// src -> resample -> downmix, each stage only when requested.
// src is not closed.
func DecodeClip(src audio.Source, opts ClipOptions) (*audio.PCMClip, error) {
	if opts.SampleRate > 0 && opts.SampleRate != src.SampleRate() {
		src = audio.NewResampler(src, opts.SampleRate)
	}
	if opts.Mono {
		src = audio.NewDownmix(src)
	}

	clip, err := audio.LoadClip(src)
	if err != nil {
		return nil, fmt.Errorf("decode clip: %w", err)
	}

	return clip, nil
}

// LoadClip decodes the file at path with the decoder registered for its
// extension.
func LoadClip(path string, opts ClipOptions) (*audio.PCMClip, error) {
	dec, err := DefaultRegistry().ForPath(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	defer src.Close()

	clip, err := DecodeClip(src, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return clip, nil
}
