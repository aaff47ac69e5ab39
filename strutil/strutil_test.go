package strutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/corekit/alloc"
)

var heap = alloc.NewHeap()

// TestCloneString_CopiesIntoAllocator tests that clones live in allocator
// memory and do not alias the source.
func TestCloneString_CopiesIntoAllocator(t *testing.T) {
	arena := alloc.NewArena(heap.Allocate(64, 16))

	b := CloneString(arena, "hello")
	require.Equal(t, []byte("hello"), b)
	assert.Equal(t, 5, arena.Offset(), "clone should come from the arena")

	assert.Nil(t, CloneString(arena, ""), "empty string should allocate nothing")
	assert.Equal(t, 5, arena.Offset())
}

// TestCloneBytes_Independent tests byte cloning.
func TestCloneBytes_Independent(t *testing.T) {
	src := []byte{1, 2, 3}
	c := CloneBytes(heap, src)
	require.Equal(t, src, c)

	c[0] = 9
	assert.Equal(t, byte(1), src[0], "clone must not alias the source")
	assert.Nil(t, CloneBytes(heap, nil))
}

// TestDecodeUTF16LE tests decoding, NUL trimming, and malformed input.
func TestDecodeUTF16LE(t *testing.T) {
	// "héllo" in UTF-16LE.
	in := []byte{'h', 0, 0xE9, 0, 'l', 0, 'l', 0, 'o', 0}
	s, err := DecodeUTF16LE(in)
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	// Trailing NUL code unit is trimmed.
	s, err = DecodeUTF16LE(append(in, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, "héllo", s)

	s, err = DecodeUTF16LE(nil)
	require.NoError(t, err)
	assert.Empty(t, s)

	_, err = DecodeUTF16LE([]byte{'h', 0, 'i'})
	assert.Error(t, err, "odd-length input is malformed")
}

// TestEncodeUTF16LE_RoundTrip tests encoding into allocator memory and
// round-tripping through the decoder.
func TestEncodeUTF16LE_RoundTrip(t *testing.T) {
	for _, s := range []string{"ascii", "héllo wörld", "日本語"} {
		enc, err := EncodeUTF16LE(heap, s)
		require.NoError(t, err, "encode %q", s)

		dec, err := DecodeUTF16LE(enc)
		require.NoError(t, err, "decode %q", s)
		assert.Equal(t, s, dec)
	}

	enc, err := EncodeUTF16LE(heap, "")
	require.NoError(t, err)
	assert.Nil(t, enc)
}

// TestDecodeWindows1252 tests the legacy single-byte decode and its ASCII
// fast path.
func TestDecodeWindows1252(t *testing.T) {
	s, err := DecodeWindows1252([]byte("plain ascii"))
	require.NoError(t, err)
	assert.Equal(t, "plain ascii", s)

	s, err = DecodeWindows1252([]byte{'c', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "café", s)
}

// TestIsASCIIAndValidUTF8 tests the classification helpers.
func TestIsASCIIAndValidUTF8(t *testing.T) {
	assert.True(t, IsASCII([]byte("abc")))
	assert.False(t, IsASCII([]byte{0x80}))

	assert.True(t, ValidUTF8([]byte("héllo")))
	assert.False(t, ValidUTF8([]byte{0xFF, 0xFE}))
}
