// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/ik5/audvoice/audio"
)

// mockOggVorbisReader simulates the oggvorbis.Reader for testing
type mockOggVorbisReader struct {
	sampleRate int
	channels   int
	samples    []float32
	offset     int
	err        error
}

func (m *mockOggVorbisReader) SampleRate() int { return m.sampleRate }
func (m *mockOggVorbisReader) Channels() int   { return m.channels }

func (m *mockOggVorbisReader) Read(buf []float32) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.offset >= len(m.samples) {
		return 0, io.EOF
	}

	frames := min(len(buf), len(m.samples)-m.offset) / m.channels
	n := copy(buf, m.samples[m.offset:m.offset+frames*m.channels])
	m.offset += n

	return n, nil
}

func TestDecoder_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("OggS but not really")))
	if err == nil {
		t.Error("Decode() error = nil, want error for invalid input")
	}
}

func TestSource_Stereo(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{
		sampleRate: 48000,
		channels:   2,
		samples:    []float32{1, -1, 0.5, -0.5, 0, 0},
	})

	if src.SampleRate() != 48000 || src.Channels() != 2 {
		t.Fatalf("format = %d Hz %d ch, want 48000 Hz 2 ch", src.SampleRate(), src.Channels())
	}

	buf := make([]audio.Frame, 8)
	n, err := src.ReadFrames(buf)
	if err != nil || n != 3 {
		t.Fatalf("ReadFrames() = %d, %v; want 3, nil", n, err)
	}

	want := []audio.Frame{
		{L: math.MaxInt16, R: math.MinInt16},
		{L: 16383, R: -16384},
		{},
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, buf[i], want[i])
		}
	}

	n, err = src.ReadFrames(buf)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadFrames() at end = %d, %v; want 0, EOF", n, err)
	}
}

func TestSource_MonoDuplicated(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 22050, channels: 1, samples: []float32{0.25}})

	buf := make([]audio.Frame, 1)
	n, err := src.ReadFrames(buf)
	if err != nil || n != 1 {
		t.Fatalf("ReadFrames() = %d, %v; want 1, nil", n, err)
	}
	if buf[0].L != buf[0].R || buf[0].L != 8191 {
		t.Errorf("frame = %v, want {8191 8191}", buf[0])
	}
}

func TestSource_GrowsBuffers(t *testing.T) {
	t.Parallel()

	samples := make([]float32, 20000)
	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 2, samples: samples})

	n, err := src.ReadFrames(make([]audio.Frame, 10000))
	if err != nil || n != 10000 {
		t.Errorf("ReadFrames() = %d, %v; want 10000, nil", n, err)
	}
}

func TestSource_ReadError(t *testing.T) {
	t.Parallel()

	src := newSource(&mockOggVorbisReader{sampleRate: 8000, channels: 1, err: io.ErrClosedPipe})

	_, err := src.ReadFrames(make([]audio.Frame, 4))
	if !errors.Is(err, io.ErrClosedPipe) {
		t.Errorf("ReadFrames() error = %v, want wrapped io.ErrClosedPipe", err)
	}
}
