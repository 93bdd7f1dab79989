// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// Clip is random-access audio addressed in ticks.
type Clip interface {
	// Sample returns the frame at pos, or false when pos is outside the clip.
	Sample(pos int) (Frame, bool)
	// Length of the clip in ticks.
	Length() int
}

// PCMClip is an in-memory clip. One tick is one frame at SampleRate.
type PCMClip struct {
	rate   int
	frames []Frame
}

// NewClip wraps already decoded frames. The slice is not copied.
func NewClip(sampleRate int, frames []Frame) *PCMClip {
	return &PCMClip{rate: sampleRate, frames: frames}
}

// LoadClip reads src until io.EOF and keeps every frame in memory.
// A source that keeps returning no frames and no error fails with
// io.ErrNoProgress. src is not closed.
func LoadClip(src Source) (*PCMClip, error) {
	rate := src.SampleRate()
	frames := make([]Frame, 0, rate)
	buf := make([]Frame, 4096)

	empty := 0
	for {
		n, err := src.ReadFrames(buf)
		frames = append(frames, buf[:n]...)

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load clip: %w", err)
		}

		if n > 0 {
			empty = 0
			continue
		}
		empty++
		if empty >= maxEmptyReads {
			return nil, fmt.Errorf("load clip: %w", io.ErrNoProgress)
		}
	}

	if len(frames) == 0 {
		return nil, ErrEmptyClip
	}

	return NewClip(rate, frames), nil
}

func (c *PCMClip) Sample(pos int) (Frame, bool) {
	if pos < 0 || pos >= len(c.frames) {
		return Frame{}, false
	}
	return c.frames[pos], true
}

func (c *PCMClip) Length() int     { return len(c.frames) }
func (c *PCMClip) SampleRate() int { return c.rate }
func (c *PCMClip) Frames() []Frame { return c.frames }

// Duration of the clip at its native sample rate.
func (c *PCMClip) Duration() time.Duration {
	if c.rate <= 0 {
		return 0
	}
	return time.Duration(len(c.frames)) * time.Second / time.Duration(c.rate)
}
