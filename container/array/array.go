// Package array implements a growable vector with ordinary doubling
// semantics over an Allocator. It is a consumer of the allocation contract,
// not part of the allocator core: when the backing storage is the tail of an
// arena, growth resizes in place without copying.
package array

import (
	"github.com/mwhitfield/corekit/alloc"
	"github.com/mwhitfield/corekit/internal/assert"
)

// minCapacity is the capacity the first push establishes on an empty array.
const minCapacity = 4

// Array is a growable vector of T. The backing buffer is allocator-owned;
// Items exposes the live elements as a slice view into it, which growth
// invalidates.
type Array[T any] struct {
	alloc alloc.Allocator
	buf   []T // len(buf) is the capacity
	size  int
}

// New creates an array, pre-allocating capacity elements when capacity > 0.
func New[T any](a alloc.Allocator, capacity int) *Array[T] {
	assert.That(capacity >= 0, "array capacity must not be negative, got %d", capacity)
	arr := &Array[T]{alloc: a}
	if capacity > 0 {
		arr.buf = alloc.MakeSlice[T](a, capacity)
	}
	return arr
}

// Len reports the number of elements held.
func (a *Array[T]) Len() int {
	return a.size
}

// Cap reports the current capacity.
func (a *Array[T]) Cap() int {
	return len(a.buf)
}

// Get returns the element at index i.
func (a *Array[T]) Get(i int) T {
	assert.That(i >= 0 && i < a.size, "array index %d out of range [0, %d)", i, a.size)
	return a.buf[i]
}

// Set replaces the element at index i.
func (a *Array[T]) Set(i int, value T) {
	assert.That(i >= 0 && i < a.size, "array index %d out of range [0, %d)", i, a.size)
	a.buf[i] = value
}

// Items returns the live elements. The view is invalidated by any push that
// grows the array.
func (a *Array[T]) Items() []T {
	return a.buf[:a.size]
}

// Push appends value, doubling the capacity through the allocator when full.
func (a *Array[T]) Push(value T) {
	if a.size == len(a.buf) {
		newCap := max(2*len(a.buf), minCapacity)
		a.buf = alloc.ResizeSlice(a.alloc, a.buf, newCap)
	}
	a.buf[a.size] = value
	a.size++
}

// PushSlice appends every element of items in order.
func (a *Array[T]) PushSlice(items []T) {
	for _, item := range items {
		a.Push(item)
	}
}

// Pop removes and returns the last element. Popping an empty array is fatal.
func (a *Array[T]) Pop() T {
	assert.That(a.size > 0, "pop from empty array")
	a.size--
	value := a.buf[a.size]
	var zero T
	a.buf[a.size] = zero
	return value
}

// Clear drops all elements without releasing capacity.
func (a *Array[T]) Clear() {
	clear(a.buf[:a.size])
	a.size = 0
}

// Insert places value at index i, shifting later elements one slot right.
// i may equal Len() to append.
func (a *Array[T]) Insert(i int, value T) {
	assert.That(i >= 0 && i <= a.size, "array insert index %d out of range [0, %d]", i, a.size)
	var zero T
	a.Push(zero)
	copy(a.buf[i+1:a.size], a.buf[i:a.size-1])
	a.buf[i] = value
}

// RemoveAtUnordered removes and returns the element at index i by swapping
// the last element into its place. O(1), does not preserve order.
func (a *Array[T]) RemoveAtUnordered(i int) T {
	assert.That(i >= 0 && i < a.size, "array index %d out of range [0, %d)", i, a.size)
	value := a.buf[i]
	a.buf[i] = a.buf[a.size-1]
	var zero T
	a.buf[a.size-1] = zero
	a.size--
	return value
}

// Free releases the backing buffer through the allocator that produced it.
func (a *Array[T]) Free() {
	if a.buf != nil {
		alloc.FreeSlice(a.alloc, a.buf)
	}
	a.buf = nil
	a.size = 0
}
