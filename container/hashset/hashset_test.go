package hashset

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/corekit/alloc"
)

// TestSet_AddRemoveHas tests the basic membership operations.
func TestSet_AddRemoveHas(t *testing.T) {
	s := NewSet[string]()

	assert.True(t, s.Add("a"), "first insert should report absent")
	assert.False(t, s.Add("a"), "duplicate insert should report present")
	assert.True(t, s.Has("a"))
	assert.Equal(t, 1, s.Len())

	assert.True(t, s.Remove("a"))
	assert.False(t, s.Remove("a"), "second remove should report absent")
	assert.False(t, s.Has("a"))
	assert.Zero(t, s.Len())
}

// TestSet_ValuesSnapshotsIntoAllocator tests the contract-consuming side:
// snapshots land in allocator-owned memory.
func TestSet_ValuesSnapshotsIntoAllocator(t *testing.T) {
	heap := alloc.NewHeap()
	arena := alloc.NewArena(heap.Allocate(256, 16))

	s := NewSet[int]()
	assert.Nil(t, s.Values(arena), "empty snapshot should allocate nothing")
	require.Zero(t, arena.Offset())

	s.Add(3)
	s.Add(1)
	s.Add(2)

	vals := s.Values(arena)
	require.Len(t, vals, 3)
	assert.Equal(t, 3*8, arena.Offset(), "snapshot should come from the arena")
	sort.Ints(vals)
	assert.Equal(t, []int{1, 2, 3}, vals)
}

// TestMap_PutGetDelete tests the key/value adapter.
func TestMap_PutGetDelete(t *testing.T) {
	m := NewMap[string, int]()

	m.Put("a", 1)
	m.Put("a", 2)
	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 2, v, "Put should replace")
	assert.Equal(t, 1, m.Len())

	_, ok = m.Get("b")
	assert.False(t, ok)

	assert.True(t, m.Delete("a"))
	assert.False(t, m.Delete("a"))
	assert.Zero(t, m.Len())
}

// TestMap_KeysSnapshot tests key snapshots into allocator memory.
func TestMap_KeysSnapshot(t *testing.T) {
	m := NewMap[int, string]()
	m.Put(2, "b")
	m.Put(1, "a")

	keys := m.Keys(alloc.NewHeap())
	require.Len(t, keys, 2)
	sort.Ints(keys)
	assert.Equal(t, []int{1, 2}, keys)
}
