// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Both directions go through github.com/go-audio/wav.
//
// # Supported Formats
//
// Currently supported:
//   - Integer PCM at 16, 24 or 32 bits (reduced to 16-bit frames)
//   - Mono and stereo; channels past the second are dropped
//   - Any sample rate
//
// # Decoding WAV Files
//
//	file, _ := os.Open("theme.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]audio.Frame, 4096)
//	n, err := source.ReadFrames(buf)
//
// Non-seekable readers are buffered in memory, because the go-audio decoder
// seeks between chunks.
//
// # Writing WAV Files
//
// WriteWAV16 writes interleaved 16-bit PCM. The header sizes are patched on
// close, so the destination must be an io.WriteSeeker such as *os.File:
//
//	out, _ := os.Create("render.wav")
//	err := wav.WriteWAV16(out, 44100, 2, samples)
//
// # Error Handling
//
//   - ErrNotWavFile: the input is not a RIFF/WAVE file
//   - ErrUnsupportedWavLayout: non-PCM encoding or a missing format chunk
//   - ErrUnsupportedBitDepth: 8-bit or other non-integer widths
package wav
