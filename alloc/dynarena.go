package alloc

import (
	"unsafe"

	"github.com/mwhitfield/corekit/internal/align"
	"github.com/mwhitfield/corekit/internal/assert"
)

// DefaultBlockSize is the minimum block size used when a DynamicArena is
// created with a non-positive one (4 MiB).
const DefaultBlockSize = 4 << 20

// memoryBlock is one link in a DynamicArena's chain. The buffer is owned by
// the arena and obtained from its upstream allocator; blocks link
// most-recent-first.
type memoryBlock struct {
	data []byte // len(data) is the block capacity
	used int
	prev *memoryBlock
}

// DynamicArena is an unbounded bump allocator built from a chain of blocks
// requested from an upstream Allocator. Allocation within the current block
// works exactly like Arena; when a request does not fit, a new block of at
// least the minimum block size is chained in front.
//
// Exhausted predecessor blocks are never revisited: leftover space in them
// stays stranded until Reset or Release. That is a deliberate trade-off
// favoring O(1) allocation over space reuse.
type DynamicArena struct {
	upstream     Allocator
	current      *memoryBlock
	minBlockSize int
}

// NewDynamicArena creates a dynamic arena that obtains blocks of at least
// minBlockSize bytes from upstream. The first block is allocated eagerly so
// the chain is never empty.
func NewDynamicArena(minBlockSize int, upstream Allocator) *DynamicArena {
	if minBlockSize <= 0 {
		minBlockSize = DefaultBlockSize
	}
	d := &DynamicArena{upstream: upstream, minBlockSize: minBlockSize}
	d.current = d.newBlock(minBlockSize, DefaultAlignment)
	return d
}

func (d *DynamicArena) newBlock(size, alignment int) *memoryBlock {
	if alignment < DefaultAlignment {
		alignment = DefaultAlignment
	}
	return &memoryBlock{data: d.upstream.Allocate(size, alignment)}
}

// Allocate bumps within the current block, or chains a fresh block of
// max(minBlockSize, size) when the request does not fit.
func (d *DynamicArena) Allocate(size, alignment int) []byte {
	checkRequest(size, alignment)
	blk := d.current
	assert.That(blk != nil, "dynamic arena used after Release")

	// Align the absolute address forward within the current block.
	base := uintptr(unsafe.Pointer(unsafe.SliceData(blk.data)))
	start := int(align.UpPtr(base+uintptr(blk.used), uintptr(alignment)) - base)
	if end := start + size; end <= len(blk.data) {
		blk.used = end
		p := blk.data[start:end:end]
		clear(p)
		return p
	}

	capacity := max(d.minBlockSize, size)
	nb := d.newBlock(capacity, alignment)
	nb.prev = blk
	nb.used = size
	d.current = nb
	p := nb.data[:size:size]
	clear(p)
	return p
}

// Release returns every block in the chain to the upstream allocator and
// ends the arena's lifecycle. Block order is irrelevant; each block is an
// independent upstream allocation.
func (d *DynamicArena) Release() {
	for blk := d.current; blk != nil; {
		prev := blk.prev
		d.upstream.Free(blk.data)
		blk = prev
	}
	d.current = nil
}

// Free releases one outstanding allocation. Like Arena, a dynamic arena only
// reclaims in bulk, so this is a no-op; use Reset or Release.
func (d *DynamicArena) Free(p []byte) {}

// Resize adjusts p to newSize bytes. When p is the tail of the current block
// and the new size still fits that block, only the block's used size moves.
// A growth that does not fit falls back to allocate-and-copy rather than
// failing, stranding the old region.
func (d *DynamicArena) Resize(p []byte, newSize, alignment int) []byte {
	checkRequest(newSize, alignment)
	if p == nil {
		return d.Allocate(newSize, alignment)
	}
	blk := d.current
	assert.That(blk != nil, "dynamic arena used after Release")

	oldSize := len(p)
	start := blk.used - oldSize
	if start >= 0 && d.isTail(blk, p, start) && start+newSize <= len(blk.data) {
		if newSize < oldSize {
			clear(p[newSize:])
		}
		blk.used = start + newSize
		return blk.data[start : start+newSize : start+newSize]
	}
	q := d.Allocate(newSize, alignment)
	copy(q, p)
	return q
}

// Reset releases every block except the bottom of the chain, re-zeroes that
// block, and reinstates it as current. Keeping the first block avoids
// re-requesting memory from upstream on repeated reset/reuse cycles.
func (d *DynamicArena) Reset() {
	blk := d.current
	assert.That(blk != nil, "dynamic arena used after Release")
	for blk.prev != nil {
		prev := blk.prev
		d.upstream.Free(blk.data)
		blk = prev
	}
	clear(blk.data)
	blk.used = 0
	d.current = blk
}

// TotalUsed sums the used size of every block currently in the chain.
// Diagnostic; excludes unused capacity and stranded alignment gaps are
// counted as used.
func (d *DynamicArena) TotalUsed() int {
	total := 0
	for blk := d.current; blk != nil; blk = blk.prev {
		total += blk.used
	}
	return total
}

func (d *DynamicArena) isTail(blk *memoryBlock, p []byte, start int) bool {
	base := unsafe.Pointer(unsafe.SliceData(blk.data))
	return unsafe.Pointer(unsafe.SliceData(p)) == unsafe.Add(base, start)
}

var _ Allocator = (*DynamicArena)(nil)
