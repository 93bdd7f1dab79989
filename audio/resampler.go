// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"

	"github.com/ik5/audvoice/utils"
)

// Resampler streams frames from src at a different sample rate using cubic
// interpolation. A one-pole low-pass runs on the input when downsampling.
type Resampler struct {
	src      Source
	srcRate  int
	dstRate  int
	channels int

	// Window for cubic interpolation:
	// frames[0] = t-1, frames[1] = t0, frames[2] = t+1, frames[3] = t+2
	frames   [4]Frame
	hasFrame [4]bool
	primed   bool

	// Position between frames[1] and frames[2] is frac/dstRate.
	// Kept as an integer so long streams do not drift.
	frac int

	one  [1]Frame
	eof  bool
	done bool

	useFilter    bool
	filterPrimed bool
	filterState  Frame
}

// NewResampler converts src to dstRate. Rates below one are raised to one.
func NewResampler(src Source, dstRate int) *Resampler {
	srcRate := max(src.SampleRate(), 1)
	dstRate = max(dstRate, 1)

	return &Resampler{
		src:       src,
		srcRate:   srcRate,
		dstRate:   dstRate,
		channels:  src.Channels(),
		useFilter: srcRate > dstRate,
	}
}

func (r *Resampler) SampleRate() int { return r.dstRate }
func (r *Resampler) Channels() int   { return r.channels }

func (r *Resampler) Close() error {
	err := r.src.Close()
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// readOne pulls a single frame from the source through the anti-alias filter.
func (r *Resampler) readOne() (Frame, bool, error) {
	var (
		n   int
		err error
	)
	for range maxEmptyReads {
		n, err = r.src.ReadFrames(r.one[:])
		if n > 0 || err != nil {
			break
		}
	}

	if err != nil && err != io.EOF {
		return Frame{}, false, fmt.Errorf("%w", err)
	}
	if err == io.EOF {
		r.eof = true
	}
	if n == 0 {
		if !r.eof {
			return Frame{}, false, io.ErrNoProgress
		}
		return Frame{}, false, nil
	}

	f := r.one[0]
	if r.useFilter {
		if !r.filterPrimed {
			// Start on the first frame to skip the warm-up ramp
			r.filterState = f
			r.filterPrimed = true
		}
		// y[n] = (x[n] + y[n-1]) / 2
		f = Frame{
			L: int16((int32(f.L) + int32(r.filterState.L)) / 2),
			R: int16((int32(f.R) + int32(r.filterState.R)) / 2),
		}
		r.filterState = f
	}

	return f, true, nil
}

// fetchNextFrame shifts the window by one and reads into frames[3].
func (r *Resampler) fetchNextFrame() error {
	if !r.hasFrame[2] {
		return io.EOF
	}

	copy(r.frames[:3], r.frames[1:])
	copy(r.hasFrame[:3], r.hasFrame[1:])
	r.hasFrame[3] = false

	if r.eof {
		return nil
	}

	f, ok, err := r.readOne()
	if err != nil {
		return err
	}
	r.frames[3], r.hasFrame[3] = f, ok

	return nil
}

func (r *Resampler) prime() error {
	r.primed = true

	for i := 1; i < len(r.frames) && !r.eof; i++ {
		f, ok, err := r.readOne()
		if err != nil {
			return err
		}
		r.frames[i], r.hasFrame[i] = f, ok
	}

	if !r.hasFrame[1] {
		return io.EOF
	}

	// The first frame doubles as t-1 at the start of the stream
	r.frames[0], r.hasFrame[0] = r.frames[1], true

	return nil
}

// ReadFrames produces frames at the destination rate.
func (r *Resampler) ReadFrames(dst []Frame) (int, error) {
	if r.done {
		return 0, io.EOF
	}

	if !r.primed {
		if err := r.prime(); err != nil {
			r.done = true
			return 0, err
		}
	}

	written := 0
	for written < len(dst) {
		for r.frac >= r.dstRate {
			r.frac -= r.dstRate
			if err := r.fetchNextFrame(); err != nil {
				r.done = true
				return written, err
			}
		}

		// Edge frames are duplicated when the window is not full
		y1 := r.frames[1]
		y0, y2, y3 := r.frames[0], y1, y1
		if r.hasFrame[2] {
			y2 = r.frames[2]
			y3 = y2
		}
		if r.hasFrame[3] {
			y3 = r.frames[3]
		}

		alpha := float32(r.frac) / float32(r.dstRate)
		dst[written] = Frame{
			L: utils.CubicInterpolate16(y0.L, y1.L, y2.L, y3.L, alpha),
			R: utils.CubicInterpolate16(y0.R, y1.R, y2.R, y3.R, alpha),
		}

		written++
		r.frac += r.srcRate
	}

	return written, nil
}
