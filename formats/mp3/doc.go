// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3, which always produces
// stereo 16-bit PCM, so frames map one to one onto the decoder output.
//
//	file, _ := os.Open("music.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]audio.Frame, 4096)
//	n, err := source.ReadFrames(buf)
package mp3
