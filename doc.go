// SPDX-License-Identifier: EPL-2.0

// Package audvoice plays music clips through a real-time mixer.
//
// The heavy lifting lives in subpackages; this package wires them together
// for the common case of loading a file and playing it as a music voice.
//
// # Supported Formats
//
// DefaultRegistry knows every bundled decoder:
//   - WAV (PCM 16/24/32-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16/24/32-bit) via formats/aiff
//
// # Quick Start
//
// Load a clip at the device rate, create a voice and hand its renderer to
// the mixer:
//
//	clip, err := audvoice.LoadClip("theme.ogg", audvoice.ClipOptions{SampleRate: 48000})
//	if err != nil {
//	    return err
//	}
//
//	params := voice.DefaultMusicParams()
//	params.LoopMixTime = audvoice.Ticks(clip, 0.5)
//	music, renderer := audvoice.NewMusic(clip, params)
//	defer music.Close()
//
//	mix := mixer.New(16)
//	_ = mix.Add(renderer)
//	_ = music.FadeIn(2)
//
//	// audio callback
//	mix.RenderStereo(48000, buf)
//
// # Pipeline
//
// DecodeClip builds the same chain by hand from any audio.Source:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	clip, err := audvoice.DecodeClip(src, audvoice.ClipOptions{SampleRate: 22050, Mono: true})
//
// Resampling runs before downmixing so the anti-alias filter sees both
// channels.
//
// # Packages
//
//   - audio: frames, clips, sources, resampler, registry
//   - voice: the music voice handle and renderer
//   - mixer: sums voices into a callback buffer
//   - formats/*: decoders, plus a WAV writer
//
// See cmd/voicerender for an offline renderer built on these pieces.
package audvoice
