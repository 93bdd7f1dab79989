// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/ik5/audvoice/audio"
)

// createWAVFile builds a canonical 44-byte-header WAV file around raw PCM data.
func createWAVFile(audioFormat, sampleRate, channels, bitsPerSample int, data []byte) []byte {
	buf := new(bytes.Buffer)

	numChannels := uint16(channels)
	bits := uint16(bitsPerSample)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bits/8)
	blockAlign := numChannels * (bits / 8)
	dataSize := uint32(len(data))

	buf.WriteString("RIFF")
	binary.Write(buf, binary.LittleEndian, 36+dataSize)
	buf.WriteString("WAVE")

	buf.WriteString("fmt ")
	binary.Write(buf, binary.LittleEndian, uint32(16))
	binary.Write(buf, binary.LittleEndian, uint16(audioFormat))
	binary.Write(buf, binary.LittleEndian, numChannels)
	binary.Write(buf, binary.LittleEndian, uint32(sampleRate))
	binary.Write(buf, binary.LittleEndian, byteRate)
	binary.Write(buf, binary.LittleEndian, blockAlign)
	binary.Write(buf, binary.LittleEndian, bits)

	buf.WriteString("data")
	binary.Write(buf, binary.LittleEndian, dataSize)
	buf.Write(data)

	return buf.Bytes()
}

func pcm16(samples ...int16) []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, samples)
	return buf.Bytes()
}

func readAll(t *testing.T, src audio.Source) []audio.Frame {
	t.Helper()

	var out []audio.Frame
	buf := make([]audio.Frame, 3)
	for {
		n, err := src.ReadFrames(buf)
		out = append(out, buf[:n]...)
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("ReadFrames() error = %v", err)
		}
	}
}

func TestDecoder_MonoWAVFile(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(1, 8000, 1, 16, pcm16(0, 100, 200, -100, -200, 0))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if src.SampleRate() != 8000 {
		t.Errorf("SampleRate() = %d, want 8000", src.SampleRate())
	}
	if src.Channels() != 1 {
		t.Errorf("Channels() = %d, want 1", src.Channels())
	}

	got := readAll(t, src)
	want := []int16{0, 100, 200, -100, -200, 0}
	if len(got) != len(want) {
		t.Fatalf("read %d frames, want %d", len(got), len(want))
	}
	for i, v := range want {
		if got[i] != (audio.Frame{L: v, R: v}) {
			t.Errorf("frame %d = %v, want {%d %d}", i, got[i], v, v)
		}
	}
}

func TestDecoder_StereoWAVFile(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(1, 44100, 2, 16, pcm16(1, -1, 2, -2, 3, -3))

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	want := []audio.Frame{{L: 1, R: -1}, {L: 2, R: -2}, {L: 3, R: -3}}
	if len(got) != len(want) {
		t.Fatalf("read %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("frame %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDecoder_24BitReducedTo16(t *testing.T) {
	t.Parallel()

	// 0x123456 and -0x123456 as 24-bit little-endian
	data := []byte{0x56, 0x34, 0x12, 0xaa, 0xcb, 0xed}
	wavData := createWAVFile(1, 48000, 1, 24, data)

	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	got := readAll(t, src)
	if len(got) != 2 {
		t.Fatalf("read %d frames, want 2", len(got))
	}
	if got[0].L != 0x1234 {
		t.Errorf("frame 0 = %v, want L=0x1234", got[0])
	}
	if got[1].L != -0x1235 {
		t.Errorf("frame 1 = %v, want L=-0x1235", got[1])
	}
}

func TestDecoder_NonSeekableReader(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(1, 8000, 1, 16, pcm16(7, 8, 9))

	// bytes.Buffer cannot seek; the decoder buffers it
	src, err := Decoder{}.Decode(bytes.NewBuffer(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if got := readAll(t, src); len(got) != 3 {
		t.Errorf("read %d frames, want 3", len(got))
	}
}

func TestDecoder_NotWAVFile(t *testing.T) {
	t.Parallel()

	data := bytes.Repeat([]byte("not a wav file "), 4)

	_, err := Decoder{}.Decode(bytes.NewReader(data))
	if !errors.Is(err, ErrNotWavFile) {
		t.Errorf("Decode() error = %v, want ErrNotWavFile", err)
	}
}

func TestDecoder_TruncatedHeader(t *testing.T) {
	t.Parallel()

	_, err := Decoder{}.Decode(bytes.NewReader([]byte("RIFF\x00\x00")))
	if err == nil {
		t.Error("Decode() error = nil, want error for truncated header")
	}
}

func TestDecoder_8BitRejected(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(1, 8000, 1, 8, []byte{128, 129, 130, 131})

	_, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if !errors.Is(err, ErrUnsupportedBitDepth) {
		t.Errorf("Decode() error = %v, want ErrUnsupportedBitDepth", err)
	}
}

func TestSource_ReadFrames_EmptyBuffer(t *testing.T) {
	t.Parallel()

	wavData := createWAVFile(1, 8000, 1, 16, pcm16(1, 2, 3))
	src, err := Decoder{}.Decode(bytes.NewReader(wavData))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	n, err := src.ReadFrames(nil)
	if n != 0 || err != nil {
		t.Errorf("ReadFrames(nil) = %d, %v; want 0, nil", n, err)
	}
}
