// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"

	"github.com/ik5/audvoice/audio"
)

// MockSource is a test helper that generates frames for testing.
// It implements the audio.Source interface.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	generated   int
	waveform    func(frame int) audio.Frame

	// Err, when set, is returned once the source is exhausted instead of io.EOF.
	Err    error
	Closed bool
}

// NewMockSource creates a new mock audio source producing totalFrames frames.
// waveform generates the frame at a given index.
func NewMockSource(sampleRate, channels, totalFrames int, waveform func(frame int) audio.Frame) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSilentSource creates a mock source that generates silence.
func NewSilentSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int) audio.Frame {
		return audio.Frame{}
	})
}

// NewConstantSource creates a mock source with constant value on both channels.
func NewConstantSource(sampleRate, channels, totalFrames int, value int16) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int) audio.Frame {
		return audio.Frame{L: value, R: value}
	})
}

// NewSineSource creates a mock source that generates a sine wave at half scale.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(frame int) audio.Frame {
		t := float64(frame) / float64(sampleRate)
		v := int16(math.Sin(2*math.Pi*frequency*t) * 16384)
		return audio.Frame{L: v, R: v}
	})
}

// NewRampSource creates a mock source where frame i is {i, -i}.
func NewRampSource(sampleRate, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, 2, totalFrames, func(frame int) audio.Frame {
		return audio.Frame{L: int16(frame), R: int16(-frame)}
	})
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

func (m *MockSource) Close() error {
	m.Closed = true
	return nil
}

// Reset resets the generated frame counter to allow re-reading
func (m *MockSource) Reset() {
	m.generated = 0
}

func (m *MockSource) ReadFrames(dst []audio.Frame) (int, error) {
	end := io.EOF
	if m.Err != nil {
		end = m.Err
	}

	if m.generated >= m.totalFrames {
		return 0, end
	}

	toWrite := min(len(dst), m.totalFrames-m.generated)
	for i := range toWrite {
		dst[i] = m.waveform(m.generated + i)
	}
	m.generated += toWrite

	if m.generated >= m.totalFrames {
		return toWrite, end
	}

	return toWrite, nil
}

// StallingSource wraps a Source and returns (0, nil) instead of reading on
// some calls.
type StallingSource struct {
	audio.Source

	// Stalls is the number of leading empty reads; negative stalls forever.
	Stalls int

	// Every, when positive, also stalls each Every-th read after that.
	Every int

	reads int
}

func (s *StallingSource) ReadFrames(dst []audio.Frame) (int, error) {
	if s.Stalls != 0 {
		if s.Stalls > 0 {
			s.Stalls--
		}
		return 0, nil
	}

	s.reads++
	if s.Every > 0 && s.reads%s.Every == 0 {
		return 0, nil
	}

	return s.Source.ReadFrames(dst)
}
