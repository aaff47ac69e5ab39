//go:build unix

package alloc

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/mwhitfield/corekit/internal/align"
	"github.com/mwhitfield/corekit/internal/assert"
)

// PageAllocator hands out page-granular allocations backed by anonymous
// private mappings. Requests are rounded up to whole pages, which makes it a
// good upstream for a DynamicArena with large blocks: whole blocks map and
// unmap without touching the Go heap. The mappings are private to the
// process.
type PageAllocator struct {
	pageSize int
}

// NewPageAllocator returns a page allocator using the host page size.
func NewPageAllocator() *PageAllocator {
	return &PageAllocator{pageSize: os.Getpagesize()}
}

// PageSize reports the rounding granularity of this allocator.
func (pa *PageAllocator) PageSize() int {
	return pa.pageSize
}

// Allocate maps enough zero pages to cover size bytes. The returned slice
// has len size and cap rounded to the page boundary, and its base is
// page-aligned, which satisfies any power-of-two alignment up to a page.
func (pa *PageAllocator) Allocate(size, alignment int) []byte {
	checkRequest(size, alignment)
	assert.That(alignment <= pa.pageSize,
		"alignment %d exceeds page size %d", alignment, pa.pageSize)
	mapped := align.Up(size, pa.pageSize)
	p, err := unix.Mmap(-1, 0, mapped,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	assert.That(err == nil, "mmap of %d bytes failed: %v", mapped, err)
	return p[:size:mapped]
}

// Free unmaps the pages backing p. p must be a slice returned by Allocate
// or Resize of this allocator; the full mapping is recovered from its cap.
func (pa *PageAllocator) Free(p []byte) {
	if p == nil {
		return
	}
	err := unix.Munmap(p[:cap(p)])
	assert.That(err == nil, "munmap failed: %v", err)
}

// Resize adjusts p to newSize bytes, in place whenever the new size still
// fits the pages already mapped (shrinks zero the abandoned tail to keep the
// zero-fill guarantee). Growth beyond the mapping allocates a fresh mapping,
// copies, and unmaps the old one.
func (pa *PageAllocator) Resize(p []byte, newSize, alignment int) []byte {
	checkRequest(newSize, alignment)
	if p == nil {
		return pa.Allocate(newSize, alignment)
	}
	if newSize <= cap(p) {
		if newSize < len(p) {
			clear(p[newSize:])
		}
		return p[:newSize:cap(p)]
	}
	q := pa.Allocate(newSize, alignment)
	copy(q, p)
	pa.Free(p)
	return q
}

var _ Allocator = (*PageAllocator)(nil)
