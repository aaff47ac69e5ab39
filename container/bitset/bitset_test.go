package bitset

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/corekit/alloc"
)

var heap = alloc.NewHeap()

// TestBitSet_SetClearGet tests single-bit operations and bounds checks.
func TestBitSet_SetClearGet(t *testing.T) {
	s := New(heap, 100)
	require.Equal(t, 100, s.Len())

	for _, i := range []int{0, 7, 8, 63, 64, 99} {
		assert.False(t, s.Get(i), "fresh set should have bit %d clear", i)
		s.Set(i)
		assert.True(t, s.Get(i))
		s.Clear(i)
		assert.False(t, s.Get(i))
	}

	assert.Panics(t, func() { s.Get(100) }, "index == bit count should be fatal")
	assert.Panics(t, func() { s.Set(-1) })
	assert.Panics(t, func() { New(heap, 0) }, "zero bit count should be fatal")
}

// TestBitSet_CountScenario walks the 32-bit scenario: set the two edge bits,
// clear one, clone, then AND/OR/XOR against {30,31} back to empty.
func TestBitSet_CountScenario(t *testing.T) {
	s := New(heap, 32)

	s.Set(0)
	s.Set(31)
	assert.Equal(t, 2, s.Count())

	s.Clear(0)
	assert.Equal(t, 1, s.Count())

	c := s.Clone(heap)
	assert.True(t, c.Equals(s), "clone should equal its source")

	mask := New(heap, 32)
	mask.Set(30)
	mask.Set(31)

	s.And(mask)
	assert.Equal(t, 1, s.Count(), "bit 31 should survive the AND")
	assert.True(t, s.Get(31))

	s.Or(mask)
	s.Xor(mask)
	assert.True(t, s.IsEmpty(), "OR then XOR with the same mask should empty the set")
	assert.Zero(t, s.Count())
}

// TestBitSet_BulkMatchesPerIndex cross-checks the word-parallel bulk
// operations against naive per-index boolean algebra on an awkward length
// (full words plus a byte tail plus padding).
func TestBitSet_BulkMatchesPerIndex(t *testing.T) {
	const bits = 131
	rng := rand.New(rand.NewSource(7))

	a, b := New(heap, bits), New(heap, bits)
	refA, refB := make([]bool, bits), make([]bool, bits)
	for i := 0; i < bits; i++ {
		if rng.Intn(2) == 1 {
			a.Set(i)
			refA[i] = true
		}
		if rng.Intn(2) == 1 {
			b.Set(i)
			refB[i] = true
		}
	}

	and := a.Clone(heap)
	and.And(b)
	or := a.Clone(heap)
	or.Or(b)
	xor := a.Clone(heap)
	xor.Xor(b)
	not := a.Clone(heap)
	not.Not()

	for i := 0; i < bits; i++ {
		assert.Equal(t, refA[i] && refB[i], and.Get(i), "AND bit %d", i)
		assert.Equal(t, refA[i] || refB[i], or.Get(i), "OR bit %d", i)
		assert.Equal(t, refA[i] != refB[i], xor.Get(i), "XOR bit %d", i)
		assert.Equal(t, !refA[i], not.Get(i), "NOT bit %d", i)
	}
}

// TestBitSet_NotRepairsPadding tests the one operation that can disturb the
// padding bits: after Not, the bits beyond the logical length must be zero.
func TestBitSet_NotRepairsPadding(t *testing.T) {
	s := New(heap, 13) // 2 bytes, 3 padding bits

	s.Not()
	assert.Equal(t, 13, s.Count(), "padding bits must not leak into Count")
	assert.Equal(t, byte(0x1F), s.data[1], "padding bits in the final byte should be zero")

	s.Not()
	assert.True(t, s.IsEmpty(), "Not applied twice should be the identity")
}

// TestBitSet_NotTwiceIsIdentity tests double complement on random contents.
func TestBitSet_NotTwiceIsIdentity(t *testing.T) {
	s := New(heap, 77)
	for _, i := range []int{0, 13, 31, 64, 76} {
		s.Set(i)
	}
	before := s.Clone(heap)

	s.Not()
	s.Not()
	assert.True(t, s.Equals(before))
}

// TestBitSet_EqualsAndHash tests structural equality and the diagnostic hash.
func TestBitSet_EqualsAndHash(t *testing.T) {
	a, b := New(heap, 40), New(heap, 40)
	a.Set(5)
	b.Set(5)

	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash(), "equal sets should hash equally")

	b.Set(20)
	assert.False(t, a.Equals(b))
	assert.NotEqual(t, a.Hash(), b.Hash())

	other := New(heap, 41)
	assert.Panics(t, func() { a.Equals(other) }, "length mismatch should be fatal")
	assert.Panics(t, func() { a.And(other) })
}

// TestBitSet_IsEmptyTracksCount tests that IsEmpty holds exactly when Count
// is zero.
func TestBitSet_IsEmptyTracksCount(t *testing.T) {
	s := New(heap, 65)
	assert.True(t, s.IsEmpty())

	s.Set(64)
	assert.False(t, s.IsEmpty())
	assert.Equal(t, 1, s.Count())

	s.Clear(64)
	assert.True(t, s.IsEmpty())
	assert.Zero(t, s.Count())
}

// TestBitSet_CloneIsIndependent tests that a clone does not alias its source.
func TestBitSet_CloneIsIndependent(t *testing.T) {
	s := New(heap, 16)
	s.Set(3)

	c := s.Clone(heap)
	c.Set(9)

	assert.False(t, s.Get(9), "mutating the clone must not touch the source")
	assert.True(t, c.Get(3))
}

// TestBitSet_ArenaBacked tests bit sets allocated from an arena, including
// word alignment of the backing bytes.
func TestBitSet_ArenaBacked(t *testing.T) {
	a := alloc.NewArena(heap.Allocate(1024, 16))

	_ = a.Allocate(1, 1) // skew the offset
	s := New(a, 130)
	s.Set(0)
	s.Set(129)
	assert.Equal(t, 2, s.Count())

	s.Not()
	assert.Equal(t, 128, s.Count())
}
