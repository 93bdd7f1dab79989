// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// maxEmptyReads bounds consecutive (0, nil) reads before a reader gives up
// with io.ErrNoProgress.
const maxEmptyReads = 100

type Source interface {
	// SampleRate of the PCM stream in Hz.
	SampleRate() int
	// Channels of the underlying stream (1=mono, 2=stereo). Frames are always
	// stereo: mono is duplicated, channels past the second are dropped.
	Channels() int
	// ReadFrames fills dst with 16-bit stereo frames and returns the number of
	// frames written. When n == 0 with err == io.EOF, the stream is finished.
	ReadFrames(dst []Frame) (n int, err error)

	// Close releases any resources.
	Close() error
}

// Decoder constructs a Source from an input reader.
type Decoder interface {
	Decode(r io.Reader) (Source, error)
}

// Registry for decoders by format key (e.g., "wav", "mp3", "ogg").
type Registry struct {
	codecs map[string]Decoder

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		codecs: make(map[string]Decoder),
		mtx:    &sync.Mutex{},
	}
}

func (r *Registry) Register(format string, d Decoder) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.codecs[strings.ToLower(format)] = d
}

func (r *Registry) Get(format string) (Decoder, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	d, ok := r.codecs[strings.ToLower(format)]
	return d, ok
}

// Formats returns the registered format keys, sorted.
func (r *Registry) Formats() []string {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	keys := make([]string, 0, len(r.codecs))
	for k := range r.codecs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// ForPath picks a decoder from the file extension of path.
func (r *Registry) ForPath(path string) (Decoder, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	d, ok := r.Get(ext)
	if !ok {
		return nil, ErrUnknownFormat
	}
	return d, nil
}

// Deinterleave packs interleaved PCM into stereo frames and returns the
// number of frames written. Values must already be in the int16 range.
func Deinterleave[S ~int | ~int16 | ~int32](dst []Frame, pcm []S, channels int) int {
	if channels <= 0 {
		return 0
	}

	frames := min(len(pcm)/channels, len(dst))
	switch channels {
	case 1:
		for i := range frames {
			v := int16(pcm[i])
			dst[i] = Frame{L: v, R: v}
		}
	default:
		for i := range frames {
			base := i * channels
			dst[i] = Frame{L: int16(pcm[base]), R: int16(pcm[base+1])}
		}
	}

	return frames
}
