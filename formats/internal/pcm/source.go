// SPDX-License-Identifier: EPL-2.0

// Package pcm adapts the go-audio integer decoders (WAV, AIFF) to
// audio.Source.
package pcm

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/ik5/audvoice/audio"
)

// Reader is the part of the go-audio decoders the source needs.
type Reader interface {
	PCMBuffer(buf *goaudio.IntBuffer) (int, error)
}

// Source reads integer PCM of any supported bit depth as 16-bit frames.
type Source struct {
	dec        Reader
	sampleRate int
	channels   int
	shift      int
	intBuf     *goaudio.IntBuffer
}

// NewSource wraps dec. bitDepth must be one of 16, 24 or 32.
func NewSource(dec Reader, format *goaudio.Format, bitDepth int) *Source {
	return &Source{
		dec:        dec,
		sampleRate: format.SampleRate,
		channels:   format.NumChannels,
		shift:      bitDepth - 16,
		intBuf: &goaudio.IntBuffer{
			Data:           make([]int, 4096),
			Format:         format,
			SourceBitDepth: bitDepth,
		},
	}
}

// SupportedBitDepth reports whether NewSource can reduce depth to 16 bits.
func SupportedBitDepth(depth int) bool {
	return depth == 16 || depth == 24 || depth == 32
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) Close() error    { return nil }

func (s *Source) ReadFrames(dst []audio.Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	want := len(dst) * s.channels
	if cap(s.intBuf.Data) < want {
		s.intBuf.Data = make([]int, want)
	}
	s.intBuf.Data = s.intBuf.Data[:want]

	n, err := s.dec.PCMBuffer(s.intBuf)
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("%w", err)
	}
	if n == 0 {
		return 0, io.EOF
	}

	data := s.intBuf.Data[:n]
	if s.shift > 0 {
		for i, v := range data {
			data[i] = v >> s.shift
		}
	}

	frames := audio.Deinterleave(dst, data, s.channels)
	if err == io.EOF {
		return frames, io.EOF
	}

	return frames, nil
}

// ReadSeeker returns r when it can seek, otherwise buffers it in memory.
// The go-audio decoders need to seek between chunks.
func ReadSeeker(r io.Reader) (io.ReadSeeker, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		return rs, nil
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("buffering input: %w", err)
	}

	return bytes.NewReader(data), nil
}
