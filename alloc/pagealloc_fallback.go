//go:build !unix

package alloc

import (
	"os"

	"github.com/mwhitfield/corekit/internal/align"
	"github.com/mwhitfield/corekit/internal/assert"
)

// PageAllocator rounds requests up to whole pages. On platforms without
// anonymous mappings it falls back to page-aligned heap allocations, keeping
// the same rounding and zero-fill behavior as the mmap-backed variant.
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

func (pa *PageAllocator) Allocate(size, alignment int) []byte {
	checkRequest(size, alignment)
	assert.That(alignment <= pa.pageSize,
		"alignment %d exceeds page size %d", alignment, pa.pageSize)
	rounded := align.Up(size, pa.pageSize)
	return alignedMake(rounded, pa.pageSize)[:size:rounded]
}

func (pa *PageAllocator) Free(p []byte) {}

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
	return q
}

var _ Allocator = (*PageAllocator)(nil)
