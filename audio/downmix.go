// SPDX-License-Identifier: EPL-2.0

package audio

import "fmt"

// Downmix collapses every frame of src to mono, keeping the stereo frame
// layout: both channels carry the average.
type Downmix struct {
	src Source
}

func NewDownmix(src Source) *Downmix {
	return &Downmix{src: src}
}

func (m *Downmix) SampleRate() int { return m.src.SampleRate() }
func (m *Downmix) Channels() int   { return 1 }

func (m *Downmix) Close() error {
	err := m.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (m *Downmix) ReadFrames(dst []Frame) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := m.src.ReadFrames(dst)
	if m.src.Channels() == 1 {
		// Pass-through: mono sources already duplicate the sample
		return n, err
	}

	for i := range n {
		v := dst[i].Avg()
		dst[i] = Frame{L: v, R: v}
	}

	return n, err
}
