// SPDX-License-Identifier: EPL-2.0

// Package audio provides the sample-level building blocks used by voices.
//
// This package contains:
//   - Frame, a stereo pair of 16-bit amplitudes with saturating arithmetic
//   - Clip, the random-access interface a voice reads from, and PCMClip
//   - Source interface for streaming decoded audio
//   - Resampler for sample rate conversion
//   - Downmix for collapsing stereo to mono
//   - Format registry for decoder registration
//
// # Frames
//
// Every stream in this package carries stereo frames. Mono input is
// duplicated into both channels, so downstream code never branches on
// channel count:
//
//	f := audio.Frame{L: 1000, R: -1000}
//	loud := f.Scale(2)          // {2000, -2000}
//	mixed := f.Add(loud)        // {3000, -3000}
//	mono := mixed.Avg()         // 0
//
// Arithmetic saturates at the int16 range instead of wrapping.
//
// # Clips
//
// A Clip is addressed in ticks. For a PCMClip one tick is one frame at the
// clip's native sample rate:
//
//	clip, err := audio.LoadClip(source)
//	f, ok := clip.Sample(0)
//	n := clip.Length()
//
// Sample returns false past the end, which is how a voice detects the loop
// point or the end of a non-looping clip.
//
// # Resampling
//
// The Resampler converts a Source to another rate with cubic interpolation:
//
//	resampler := audio.NewResampler(source, 48000)
//	buf := make([]audio.Frame, 4096)
//	n, err := resampler.ReadFrames(buf)
//
// # Format Registry
//
// The registry maps format keys to decoders:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.ForPath("music/theme.wav")
//
// # Error Handling
//
// Sources return io.EOF when no more data is available:
//
//	for {
//	    n, err := source.ReadFrames(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
