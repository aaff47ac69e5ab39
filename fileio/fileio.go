// Package fileio implements a bounded file-read helper that loads file
// contents into allocator-owned memory. It is the one surface of this module
// where failures are legitimate runtime conditions rather than programmer
// errors, so it reports them as typed, wrappable error values.
package fileio

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/mwhitfield/corekit/alloc"
)

var (
	// ErrNotFound indicates the file does not exist.
	ErrNotFound = errors.New("fileio: file not found")

	// ErrPermission indicates the file exists but cannot be opened.
	ErrPermission = errors.New("fileio: permission denied")

	// ErrSystem indicates an unexpected failure from the operating system.
	ErrSystem = errors.New("fileio: system error")

	// ErrRead indicates the file opened but its contents could not be read.
	ErrRead = errors.New("fileio: read failed")

	// ErrMalformed indicates the path does not name a regular file.
	ErrMalformed = errors.New("fileio: not a regular file")

	// ErrTooLarge indicates the file exceeds the caller's size bound.
	ErrTooLarge = errors.New("fileio: file exceeds size limit")
)

// ReadFile reads the file at path into memory allocated from a, refusing
// files larger than maxSize bytes. An empty file yields a nil slice and no
// error. Callers distinguish failure causes with errors.Is against the
// package sentinels.
func ReadFile(a alloc.Allocator, path string, maxSize int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		case errors.Is(err, fs.ErrPermission):
			return nil, fmt.Errorf("%w: %s", ErrPermission, path)
		default:
			return nil, fmt.Errorf("%w: open %s: %v", ErrSystem, path, err)
		}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: stat %s: %v", ErrSystem, path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, path)
	}
	size := info.Size()
	if size > int64(maxSize) {
		return nil, fmt.Errorf("%w: %s is %d bytes, limit %d", ErrTooLarge, path, size, maxSize)
	}
	if size == 0 {
		return nil, nil
	}

	buf := a.Allocate(int(size), 1)
	if _, err := io.ReadFull(f, buf); err != nil {
		a.Free(buf)
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	return buf, nil
}
