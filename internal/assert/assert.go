// Package assert implements the fatal tier of the library's error model.
// Contract violations (bad sizes, bad alignment, out-of-range indexes) are
// programmer errors: they abort with the failing condition and its source
// location rather than surfacing as recoverable error values.
package assert

import (
	"fmt"
	"runtime"
)

// That panics when cond is false. The panic message carries the caller's
// file and line plus the formatted condition description.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	fail(2, fmt.Sprintf(format, args...))
}

// Failf unconditionally reports a contract violation at the caller.
func Failf(format string, args ...any) {
	fail(2, fmt.Sprintf(format, args...))
}

func fail(skip int, msg string) {
	if _, file, line, ok := runtime.Caller(skip); ok {
		panic(fmt.Sprintf("%s:%d: assertion failure: %s", file, line, msg))
	}
	panic("assertion failure: " + msg)
}
