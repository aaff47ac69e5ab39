package alloc

import (
	"unsafe"

	"github.com/mwhitfield/corekit/internal/assert"
)

// New allocates a zeroed T from a. The returned pointer stays valid until
// the allocator reclaims it (Free on the slice, or a bulk Reset).
func New[T any](a Allocator) *T {
	var zero T
	b := a.Allocate(int(unsafe.Sizeof(zero)), alignOf[T]())
	return (*T)(unsafe.Pointer(unsafe.SliceData(b)))
}

// MakeSlice allocates a zeroed slice of n elements of T from a. The slice
// has len n; its cap carries the allocation's full capacity, which
// allocators like PageAllocator need back in Free and Resize to recover the
// underlying region.
//
// Allocator memory is untyped bytes: the collector does not trace pointers
// stored in it. Elements containing pointers must have their referents kept
// reachable elsewhere for as long as the slice is in use.
func MakeSlice[T any](a Allocator, n int) []T {
	assert.That(n > 0, "slice length must be positive, got %d", n)
	var zero T
	b := a.Allocate(n*int(unsafe.Sizeof(zero)), alignOf[T]())
	return typedView[T](b, n)
}

// ResizeSlice grows or shrinks s to n elements through a.Resize. The result
// may alias s when the allocator resized in place; grown elements are zero.
// A nil s behaves as MakeSlice.
func ResizeSlice[T any](a Allocator, s []T, n int) []T {
	assert.That(n > 0, "slice length must be positive, got %d", n)
	var zero T
	b := a.Resize(sliceBytes(s), n*int(unsafe.Sizeof(zero)), alignOf[T]())
	return typedView[T](b, n)
}

// FreeSlice releases a slice previously produced by MakeSlice or
// ResizeSlice against the same allocator.
func FreeSlice[T any](a Allocator, s []T) {
	a.Free(sliceBytes(s))
}

// CloneSlice copies s into fresh memory from a.
func CloneSlice[T any](a Allocator, s []T) []T {
	q := MakeSlice[T](a, len(s))
	copy(q, s)
	return q
}

// sliceBytes reinterprets a typed slice as its backing bytes. The byte
// slice's len is the populated size and its cap the allocation's full
// capacity, mirroring what the allocator originally returned.
func sliceBytes[T any](s []T) []byte {
	if s == nil {
		return nil
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), cap(s)*size)
	return b[:len(s)*size]
}

// typedView reinterprets allocator bytes as n elements of T, keeping the
// allocation's full capacity visible through cap.
func typedView[T any](b []byte, n int) []T {
	var zero T
	capElems := cap(b) / int(unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), capElems)[:n]
}

func alignOf[T any]() int {
	var zero T
	return int(unsafe.Alignof(zero))
}
