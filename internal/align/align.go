// Package align provides power-of-two alignment arithmetic shared by the
// allocators and containers.
package align

// Up returns n rounded up to the next multiple of a, which must be a power
// of two.
//
// Example:
//
//	Up(1, 8)  = 8
//	Up(8, 8)  = 8
//	Up(9, 8)  = 16
func Up(n, a int) int {
	return (n + a - 1) &^ (a - 1)
}

// UpPtr is Up for uintptr operands, used where raw addresses are aligned.
func UpPtr(n, a uintptr) uintptr {
	return (n + a - 1) &^ (a - 1)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
