// SPDX-License-Identifier: EPL-2.0

package voice

import (
	"math"
	"sync/atomic"
)

// status is shared between a handle and its renderer. The handle owns it;
// the renderer only keeps a weak pointer.
//
// paused and position are independent atomics: a reader may see a new
// position with the old pause flag, or the other way around.
type status struct {
	// Tick position as float64 bits
	position atomic.Uint64
	paused   atomic.Bool

	// Set by Close so the renderer stops publishing before the GC runs
	closed atomic.Bool
}

func newStatus() *status {
	s := new(status)
	s.paused.Store(true)
	return s
}

func (s *status) setPosition(ticks float64) {
	s.position.Store(math.Float64bits(ticks))
}

func (s *status) loadPosition() float64 {
	return math.Float64frombits(s.position.Load())
}
