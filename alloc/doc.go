// Package alloc provides the allocation capability used throughout this
// module, plus the allocators that implement it.
//
// # Overview
//
// Every container in this module takes an Allocator at construction and calls
// back into it for growth. Allocators are explicit capability values, never
// ambient globals: the point of the design is deterministic, bulk, O(1)
// reclamation via Reset/Free, which a tracing collector cannot provide.
//
// # Implementations
//
// Heap: the default allocator, backed by the host's general-purpose heap.
//
//   - Freshly allocated memory is always zero-filled
//   - Free is a no-op; the collector reclaims unreferenced memory
//   - Resize allocates, copies, and zero-fills the grown tail
//
// Arena: a bump allocator over a caller-supplied fixed buffer.
//
//   - O(1) allocation by advancing a single offset
//   - Free is a no-op; Reset reclaims everything at once
//   - Resize of the most recent allocation moves only the offset
//
// DynamicArena: an unbounded allocator built from a chain of blocks obtained
// from an upstream Allocator. Allocation within a block behaves exactly like
// Arena; when a block is exhausted a new one is chained in front.
//
// PageAllocator: page-granular allocations backed by anonymous private
// mappings on unix systems, with a heap-backed fallback elsewhere. Suited as
// the upstream for a DynamicArena with large blocks.
//
// # Usage Example
//
//	heap := alloc.NewHeap()
//	arena := alloc.NewDynamicArena(1<<20, heap)
//	defer arena.Release()
//
//	ints := alloc.MakeSlice[int64](arena, 128)
//	node := alloc.New[Node](arena)
//
//	// O(1) bulk cleanup, keeps the first block for reuse
//	arena.Reset()
//
// # Error Model
//
// Alignment must always be a power of two and sizes must be positive.
// Violations, as well as exhausting a fixed Arena, are programmer errors and
// abort with the failing condition and source location. There is no
// recoverable error path: this library targets contexts where allocation
// failure indicates a configuration error.
//
// # Thread Safety
//
// No allocator performs internal locking. Each instance must be confined to
// one logical owner, or the caller must synchronize access externally.
package alloc
