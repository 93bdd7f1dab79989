// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"fmt"
	"io"

	"github.com/ik5/audvoice/audio"
	"github.com/ik5/audvoice/utils"
	"github.com/jfreymuth/oggvorbis"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec        oggReader
	sampleRate int
	channels   int
	floatBuf   []float32
	pcm        []int16
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadFrames(dst []audio.Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * s.channels
	if cap(s.floatBuf) < want {
		s.floatBuf = make([]float32, want)
		s.pcm = make([]int16, want)
	}
	s.floatBuf = s.floatBuf[:want]

	// n counts interleaved values, always whole frames
	n, err := s.dec.Read(s.floatBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	pcm := s.pcm[:n]
	for i, v := range s.floatBuf[:n] {
		pcm[i] = utils.Float32ToInt16(v)
	}

	return audio.Deinterleave(dst, pcm, s.channels), err
}

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if dec.Channels() <= 0 {
		return nil, audio.ErrInvalidChannels
	}

	return newSource(dec), nil
}

func newSource(dec oggReader) *source {
	return &source{
		dec:        dec,
		sampleRate: dec.SampleRate(),
		channels:   dec.Channels(),
		floatBuf:   make([]float32, 4096),
		pcm:        make([]int16, 4096),
	}
}
