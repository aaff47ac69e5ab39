package alloc

import (
	"unsafe"

	"github.com/mwhitfield/corekit/internal/align"
	"github.com/mwhitfield/corekit/internal/assert"
)

// DefaultAlignment is the alignment used when no stricter one is requested.
// It matches the strictest fundamental alignment of the host.
const DefaultAlignment = 16

// Allocator is the capability consumed by every container in this module.
// Implementations hand out byte slices whose len is the requested size; the
// slice itself carries what the raw contract would pass around as
// (pointer, old_size). cap may exceed len when the implementation rounds
// the region up (PageAllocator rounds to whole pages) — callers must pass
// slices back to Free and Resize with that capacity intact, since the
// implementation recovers the underlying region from cap.
//
// Allocators are not owned by the containers that use them: lifetime is the
// caller's responsibility, and a single allocator value may back any number
// of containers as long as their allocation lifetimes do not conflict.
type Allocator interface {
	// Allocate returns a zero-filled slice of exactly size bytes whose first
	// byte is aligned to alignment. alignment must be a power of two.
	// Failure to satisfy the request is fatal, never an error value.
	Allocate(size, alignment int) []byte

	// Free releases one outstanding allocation previously returned by this
	// allocator. A no-op is a legal implementation for allocators that only
	// reclaim in bulk.
	Free(p []byte)

	// Resize grows or shrinks p to newSize bytes. The result may alias p
	// when the allocator can resize in place, or be a fresh region holding a
	// copy of the first min(len(p), newSize) bytes; any grown tail is
	// zero-filled. A nil p behaves as Allocate.
	Resize(p []byte, newSize, alignment int) []byte
}

// checkRequest enforces the size/alignment contract shared by all
// implementations.
func checkRequest(size, alignment int) {
	assert.That(size > 0, "allocation size must be positive, got %d", size)
	assert.That(align.IsPowerOfTwo(alignment),
		"alignment must be a power of two, got %d", alignment)
}

// Heap is the default allocator, backed by the host's general-purpose heap.
// Free is a no-op; memory is reclaimed by the collector once unreferenced.
// The explicit-capability contract is preserved so callers can swap in an
// Arena or DynamicArena without touching container code.
type Heap struct{}

// NewHeap returns the root heap-backed allocator.
func NewHeap() Heap {
	return Heap{}
}

func (Heap) Allocate(size, alignment int) []byte {
	checkRequest(size, alignment)
	return alignedMake(size, alignment)
}

func (Heap) Free(p []byte) {}

func (Heap) Resize(p []byte, newSize, alignment int) []byte {
	checkRequest(newSize, alignment)
	if p == nil {
		return alignedMake(newSize, alignment)
	}
	if newSize == len(p) {
		return p
	}
	q := alignedMake(newSize, alignment)
	copy(q, p)
	return q
}

// alignedMake allocates size bytes whose first byte is aligned to alignment.
// The runtime only guarantees modest alignment for byte slices, so the slice
// is padded and shifted to the first aligned address.
func alignedMake(size, alignment int) []byte {
	buf := make([]byte, size+alignment-1)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	shift := int(align.UpPtr(addr, uintptr(alignment)) - addr)
	return buf[shift : shift+size : shift+size]
}

var _ Allocator = Heap{}
