// SPDX-License-Identifier: EPL-2.0

// Package ring implements a fixed-capacity single-producer/single-consumer
// queue that never blocks and never allocates after construction.
package ring

import "sync/atomic"

// Ring is safe for exactly one goroutine calling Push and one goroutine
// calling Pop at the same time. Len and Cap may be called from either side.
type Ring[T any] struct {
	buf []T

	// Monotonic counters; slot = counter % len(buf).
	// head is written only by the consumer, tail only by the producer.
	head atomic.Uint64
	_    [56]byte // keep producer and consumer counters on separate cache lines
	tail atomic.Uint64
}

// New allocates a ring holding up to capacity items. Capacity below one is
// raised to one.
func New[T any](capacity int) *Ring[T] {
	return &Ring[T]{buf: make([]T, max(capacity, 1))}
}

// Push enqueues v, or returns false when the ring is full.
func (r *Ring[T]) Push(v T) bool {
	tail := r.tail.Load()
	if tail-r.head.Load() == uint64(len(r.buf)) {
		return false
	}

	r.buf[tail%uint64(len(r.buf))] = v
	r.tail.Store(tail + 1)

	return true
}

// Pop dequeues the oldest item, or returns false when the ring is empty.
func (r *Ring[T]) Pop() (T, bool) {
	var zero T

	head := r.head.Load()
	if head == r.tail.Load() {
		return zero, false
	}

	slot := head % uint64(len(r.buf))
	v := r.buf[slot]
	r.buf[slot] = zero
	r.head.Store(head + 1)

	return v, true
}

// Len is a snapshot of the number of queued items.
func (r *Ring[T]) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

func (r *Ring[T]) Cap() int { return len(r.buf) }
