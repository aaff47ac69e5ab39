// Package ring implements a growable double-ended queue over a circular
// buffer, with amortized O(1) push and pop at both ends.
package ring

import (
	"github.com/mwhitfield/corekit/alloc"
	"github.com/mwhitfield/corekit/internal/assert"
)

// RingBuffer is a circular deque backed by allocator-owned storage. head is
// the physical index of the logical first element and tail the slot one past
// the logical last; both wrap modulo the capacity. Growth copies the
// elements into a doubled buffer without changing their logical order.
//
// Any push that triggers growth invalidates indexes into the old storage.
// Not safe for concurrent use.
type RingBuffer[T any] struct {
	alloc alloc.Allocator
	buf   []T
	size  int
	head  int
	tail  int
}

// New creates a ring buffer with the given initial capacity, allocated
// from a. The allocator is retained for growth.
func New[T any](a alloc.Allocator, capacity int) *RingBuffer[T] {
	assert.That(capacity > 0, "ring capacity must be positive, got %d", capacity)
	return &RingBuffer[T]{alloc: a, buf: alloc.MakeSlice[T](a, capacity)}
}

// Len reports the number of elements currently held.
func (r *RingBuffer[T]) Len() int {
	return r.size
}

// Cap reports the current physical capacity.
func (r *RingBuffer[T]) Cap() int {
	return len(r.buf)
}

// Index returns the element at logical position i, 0 <= i < Len().
func (r *RingBuffer[T]) Index(i int) T {
	assert.That(i >= 0 && i < r.size, "ring index %d out of range [0, %d)", i, r.size)
	return r.buf[(r.head+i)%len(r.buf)]
}

// PushEnd appends value after the logical last element, growing first when
// the buffer is full.
func (r *RingBuffer[T]) PushEnd(value T) {
	if r.size == len(r.buf) {
		r.grow(0)
	}
	r.buf[r.tail] = value
	r.tail = (r.tail + 1) % len(r.buf)
	r.size++
}

// PushFront inserts value before the logical first element, growing first
// when the buffer is full.
func (r *RingBuffer[T]) PushFront(value T) {
	if r.size == len(r.buf) {
		r.grow(1)
	}
	r.head = (r.head - 1 + len(r.buf)) % len(r.buf)
	r.buf[r.head] = value
	r.size++
}

// PopFront removes and returns the logical first element. Popping an empty
// buffer is fatal.
func (r *RingBuffer[T]) PopFront() T {
	assert.That(r.size > 0, "pop from empty ring buffer")
	var zero T
	value := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) % len(r.buf)
	r.size--
	return value
}

// PopEnd removes and returns the logical last element. Popping an empty
// buffer is fatal.
func (r *RingBuffer[T]) PopEnd() T {
	assert.That(r.size > 0, "pop from empty ring buffer")
	var zero T
	r.tail = (r.tail - 1 + len(r.buf)) % len(r.buf)
	value := r.buf[r.tail]
	r.buf[r.tail] = zero
	r.size--
	return value
}

// Free releases the backing buffer through the allocator that produced it.
// The ring must not be used afterwards.
func (r *RingBuffer[T]) Free() {
	alloc.FreeSlice(r.alloc, r.buf)
	r.buf = nil
	r.size, r.head, r.tail = 0, 0, 0
}

// grow doubles the capacity, copying the logical sequence in at most two
// contiguous segments to honor the old wraparound. offset is 0 when growing
// for a push at the end (logical first element lands at index 0) and 1 when
// growing for a push at the front, reserving slot 0 for the pending element.
func (r *RingBuffer[T]) grow(offset int) {
	newBuf := alloc.MakeSlice[T](r.alloc, 2*len(r.buf))
	n := copy(newBuf[offset:], r.buf[r.head:])
	copy(newBuf[offset+n:], r.buf[:r.head])
	alloc.FreeSlice(r.alloc, r.buf)
	r.buf = newBuf
	r.head = offset
	r.tail = offset + r.size
}

// Contains scans the logical sequence for value. O(Len()).
func Contains[T comparable](r *RingBuffer[T], value T) bool {
	for i := 0; i < r.size; i++ {
		if r.buf[(r.head+i)%len(r.buf)] == value {
			return true
		}
	}
	return false
}
