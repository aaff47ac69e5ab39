// Package bitset implements a fixed-length packed boolean vector with
// word-parallel bulk operations.
package bitset

import (
	"bytes"
	"hash/fnv"
	"math/bits"
	"unsafe"

	"github.com/mwhitfield/corekit/alloc"
	"github.com/mwhitfield/corekit/internal/assert"
)

// wordAlign is the allocation alignment of the backing bytes, chosen so the
// word-parallel loops can view them as uint64s.
const wordAlign = 8

// BitSet is a packed boolean vector whose length is fixed at creation. Bits
// beyond the logical length within the final byte ("padding bits") are kept
// at zero by every operation; Count, Equals and IsEmpty rely on that.
//
// Not safe for concurrent use.
type BitSet struct {
	data []byte
	bits int
}

// New allocates a zeroed bit set holding bits booleans from a. The backing
// storage is ceil(bits/8) bytes, word-aligned for the bulk operations.
func New(a alloc.Allocator, bits int) *BitSet {
	assert.That(bits > 0, "bit count must be positive, got %d", bits)
	return &BitSet{data: a.Allocate((bits+7)/8, wordAlign), bits: bits}
}

// Len reports the logical bit count.
func (s *BitSet) Len() int {
	return s.bits
}

// Set sets bit i to true.
func (s *BitSet) Set(i int) {
	s.check(i)
	s.data[i/8] |= 1 << (i % 8)
}

// Clear sets bit i to false.
func (s *BitSet) Clear(i int) {
	s.check(i)
	s.data[i/8] &^= 1 << (i % 8)
}

// Get reports the value of bit i.
func (s *BitSet) Get(i int) bool {
	s.check(i)
	return s.data[i/8]&(1<<(i%8)) != 0
}

// Clone copies the populated bytes into fresh memory from a.
func (s *BitSet) Clone(a alloc.Allocator) *BitSet {
	data := a.Allocate(len(s.data), wordAlign)
	copy(data, s.data)
	return &BitSet{data: data, bits: s.bits}
}

// Free releases the backing bytes through the allocator that produced them.
func (s *BitSet) Free(a alloc.Allocator) {
	a.Free(s.data)
	s.data = nil
	s.bits = 0
}

// And replaces s with s AND o bit by bit. The operands must have equal
// lengths. Padding stays zero because both operands already keep it zero.
func (s *BitSet) And(o *BitSet) {
	s.combine(o, func(a, b uint64) uint64 { return a & b })
}

// Or replaces s with s OR o bit by bit. Operand lengths must match.
func (s *BitSet) Or(o *BitSet) {
	s.combine(o, func(a, b uint64) uint64 { return a | b })
}

// Xor replaces s with s XOR o bit by bit. Operand lengths must match.
func (s *BitSet) Xor(o *BitSet) {
	s.combine(o, func(a, b uint64) uint64 { return a ^ b })
}

// Not complements every bit in place, then re-zeroes the padding bits in the
// final byte. Complementing is the one bulk operation that can disturb the
// padding invariant and must repair it.
func (s *BitSet) Not() {
	words := len(s.data) / 8
	w := s.words(words)
	for i := range w {
		w[i] = ^w[i]
	}
	for i := words * 8; i < len(s.data); i++ {
		s.data[i] = ^s.data[i]
	}
	if rem := s.bits % 8; rem != 0 {
		s.data[len(s.data)-1] &= byte(1<<rem) - 1
	}
}

// Count returns the number of true bits. Padding is guaranteed zero, so a
// plain population count over the populated bytes is exact.
func (s *BitSet) Count() int {
	words := len(s.data) / 8
	total := 0
	for _, w := range s.words(words) {
		total += bits.OnesCount64(w)
	}
	for i := words * 8; i < len(s.data); i++ {
		total += bits.OnesCount8(s.data[i])
	}
	return total
}

// Equals reports whether s and o hold identical bits. The lengths must
// match; comparing the populated byte range is safe because padding is zero
// on both sides.
func (s *BitSet) Equals(o *BitSet) bool {
	assert.That(s.bits == o.bits, "bit count mismatch: %d != %d", s.bits, o.bits)
	return bytes.Equal(s.data, o.data)
}

// IsEmpty reports whether no bit is set.
func (s *BitSet) IsEmpty() bool {
	for _, b := range s.data {
		if b != 0 {
			return false
		}
	}
	return true
}

// Hash folds the populated bytes with FNV-1a. Diagnostic only, not
// security-sensitive.
func (s *BitSet) Hash() uint64 {
	h := fnv.New64a()
	h.Write(s.data)
	return h.Sum64()
}

// combine applies op word-parallel over as many full machine words as fit,
// then byte-wise over the remainder. Purely a throughput tactic: the result
// is identical to applying the operator to every indexed bit.
func (s *BitSet) combine(o *BitSet, op func(uint64, uint64) uint64) {
	assert.That(s.bits == o.bits, "bit count mismatch: %d != %d", s.bits, o.bits)
	words := len(s.data) / 8
	sw, ow := s.words(words), o.words(words)
	for i := range sw {
		sw[i] = op(sw[i], ow[i])
	}
	byteOp := func(a, b byte) byte { return byte(op(uint64(a), uint64(b))) }
	for i := words * 8; i < len(s.data); i++ {
		s.data[i] = byteOp(s.data[i], o.data[i])
	}
}

// words views the leading full words of the backing bytes as uint64s. Safe
// because New allocates with word alignment.
func (s *BitSet) words(n int) []uint64 {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*uint64)(unsafe.Pointer(unsafe.SliceData(s.data))), n)
}

func (s *BitSet) check(i int) {
	assert.That(i >= 0 && i < s.bits, "bit index %d out of range [0, %d)", i, s.bits)
}
