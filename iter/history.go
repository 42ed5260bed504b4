// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iter

// entry is a single (time, iterand) pair stored in a circularBuffer.
type entry struct {
	t float64
	x Vector
}

// circularBuffer is a fixed-capacity ring of history entries. Index 0 is the
// most recently pushed entry; index k is the k-th most recent. Pushing at
// capacity evicts the oldest entry. Not safe for concurrent use.
type circularBuffer struct {
	data []entry
	tail int
	size int
}

// newCircularBuffer allocates a buffer with the given capacity.
func newCircularBuffer(capacity int) *circularBuffer {
	if capacity < 1 {
		panicf("newCircularBuffer: capacity must be >= 1, got %d", capacity)
	}
	return &circularBuffer{data: make([]entry, capacity)}
}

// clear empties the buffer without shrinking its capacity.
func (b *circularBuffer) clear() {
	b.tail = 0
	b.size = 0
}

// push writes e at the write cursor and advances it, evicting the oldest
// entry if the buffer is full.
func (b *circularBuffer) push(t float64, x Vector) {
	b.data[b.tail] = entry{t: t, x: x}
	b.tail = (b.tail + 1) % len(b.data)
	if b.size < len(b.data) {
		b.size++
	}
}

// get returns the k-th most recently pushed entry. Reading past the
// currently-stored count is a contract violation.
func (b *circularBuffer) get(k int) entry {
	if k < 0 || k >= len(b.data) {
		panicf("circularBuffer.get: index %d out of range [0,%d)", k, len(b.data))
	}
	if k >= b.size {
		panicf("circularBuffer.get: index %d exceeds stored depth %d", k, b.size)
	}
	position := (b.tail - 1 + len(b.data) - k) % len(b.data)
	return b.data[position]
}

// lookback returns the buffer's fixed capacity.
func (b *circularBuffer) lookback() int {
	return len(b.data)
}
