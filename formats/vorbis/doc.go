// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding via github.com/jfreymuth/oggvorbis.
//
// The decoder produces float samples; they are clamped and scaled to 16-bit
// frames.
//
//	file, _ := os.Open("ambience.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
package vorbis
