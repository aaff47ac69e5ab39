// Package strutil provides string utilities that cooperate with the
// allocation contract: cloning text into allocator-owned memory and
// converting between UTF-8 and the legacy encodings callers feed in.
package strutil

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/mwhitfield/corekit/alloc"
)

var errOddLength = errors.New("strutil: utf-16 input has odd length")

// CloneString copies s into memory from a. Returns nil for the empty string.
func CloneString(a alloc.Allocator, s string) []byte {
	if len(s) == 0 {
		return nil
	}
	b := a.Allocate(len(s), 1)
	copy(b, s)
	return b
}

// CloneBytes copies b into memory from a. Returns nil for empty input.
func CloneBytes(a alloc.Allocator, b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	q := a.Allocate(len(b), 1)
	copy(q, b)
	return q
}

// IsASCII reports whether every byte of b is below 0x80. ASCII input needs
// no decoding: it is identical in UTF-8 and the legacy single-byte sets.
func IsASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}

// ValidUTF8 reports whether b is well-formed UTF-8.
func ValidUTF8(b []byte) bool {
	return utf8.Valid(b)
}

// DecodeUTF16LE converts UTF-16LE bytes to a UTF-8 string. A trailing NUL
// code unit is trimmed; odd-length input is malformed.
func DecodeUTF16LE(b []byte) (string, error) {
	if len(b) == 0 {
		return "", nil
	}
	if len(b)%2 != 0 {
		return "", errOddLength
	}
	if len(b) >= 2 && b[len(b)-2] == 0 && b[len(b)-1] == 0 {
		b = b[:len(b)-2]
	}
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(b)
	if err != nil {
		return "", fmt.Errorf("strutil: decode utf-16le: %w", err)
	}
	return string(out), nil
}

// EncodeUTF16LE converts a UTF-8 string to UTF-16LE bytes in memory from a.
// Returns nil for the empty string.
func EncodeUTF16LE(a alloc.Allocator, s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("strutil: encode utf-16le: %w", err)
	}
	return CloneBytes(a, out), nil
}

// DecodeWindows1252 converts Windows-1252 bytes to a UTF-8 string, with a
// fast path for pure ASCII.
func DecodeWindows1252(b []byte) (string, error) {
	if IsASCII(b) {
		return string(b), nil
	}
	out, err := charmap.Windows1252.NewDecoder().Bytes(b)
	if err != nil {
		return "", fmt.Errorf("strutil: decode windows-1252: %w", err)
	}
	return string(out), nil
}
