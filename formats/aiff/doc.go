// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF audio file decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files and shares
// the integer PCM reader with the wav package, so 16, 24 and 32-bit files are
// all delivered as 16-bit stereo frames.
//
//	file, _ := os.Open("loop.aiff")
//	source, err := aiff.Decoder{}.Decode(file)
package aiff
