package alloc

import (
	"unsafe"

	"github.com/mwhitfield/corekit/internal/align"
	"github.com/mwhitfield/corekit/internal/assert"
)

// Arena is a bump allocator over a caller-supplied fixed buffer. The buffer
// is zeroed once at creation; because the offset only ever moves forward and
// no byte is handed out twice between resets, every freshly bumped region is
// already zero, which satisfies the zero-fill guarantee without per-call
// clearing.
//
// The arena does not own the buffer. Reset invalidates every pointer the
// arena has returned; dereferencing one afterwards is a caller bug the
// design does not detect.
type Arena struct {
	buf    []byte
	offset int
}

// NewArena creates an arena over buf and zeroes it. The buffer's base
// address bounds the alignments the arena can honor, so it should come from
// an allocator that aligned it at least as strictly as any allocation that
// will be requested from the arena.
func NewArena(buf []byte) *Arena {
	assert.That(len(buf) > 0, "arena buffer must not be empty")
	clear(buf)
	return &Arena{buf: buf}
}

// Allocate bumps the offset to the next alignment boundary and hands out the
// following size bytes. Exceeding the buffer is fatal.
func (a *Arena) Allocate(size, alignment int) []byte {
	checkRequest(size, alignment)
	start := align.Up(a.offset, alignment)
	end := start + size
	assert.That(end <= len(a.buf),
		"arena out of memory: need %d bytes at offset %d, buffer holds %d",
		size, start, len(a.buf))
	a.offset = end
	return a.buf[start:end:end]
}

// Free is a no-op; an arena reclaims only in bulk via Reset.
func (a *Arena) Free(p []byte) {}

// Resize adjusts p to newSize bytes. When p is the most recent allocation,
// only the offset moves and the same region is returned; shrinking zeroes
// the abandoned tail so the zero-fill invariant survives a later Reset.
// Otherwise a fresh region is allocated and the old bytes copied; the old
// region is stranded until the arena is reset.
func (a *Arena) Resize(p []byte, newSize, alignment int) []byte {
	checkRequest(newSize, alignment)
	if p == nil {
		return a.Allocate(newSize, alignment)
	}
	oldSize := len(p)
	start := a.offset - oldSize
	if start >= 0 && a.isTail(p, start) {
		end := start + newSize
		assert.That(end <= len(a.buf),
			"arena out of memory: resize to %d bytes at offset %d, buffer holds %d",
			newSize, start, len(a.buf))
		if newSize < oldSize {
			clear(p[newSize:])
		}
		a.offset = end
		return a.buf[start:end:end]
	}
	q := a.Allocate(newSize, alignment)
	copy(q, p)
	return q
}

// Reset rewinds the offset and re-zeroes the whole buffer, invalidating
// every previously returned region.
func (a *Arena) Reset() {
	clear(a.buf)
	a.offset = 0
}

// Offset reports how far the bump pointer has advanced. Diagnostic.
func (a *Arena) Offset() int {
	return a.offset
}

// Cap reports the fixed capacity of the backing buffer.
func (a *Arena) Cap() int {
	return len(a.buf)
}

// isTail reports whether p is the most recent allocation, i.e. its base
// address equals buffer start + offset - len(p). Valid only under the
// single-owner, no-arbitrary-free semantics of this arena; the comparison is
// meaningless under concurrent mutation.
func (a *Arena) isTail(p []byte, start int) bool {
	base := unsafe.Pointer(unsafe.SliceData(a.buf))
	return unsafe.Pointer(unsafe.SliceData(p)) == unsafe.Add(base, start)
}

var _ Allocator = (*Arena)(nil)
