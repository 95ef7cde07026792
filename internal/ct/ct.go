// Package ct holds the small constant-time byte string helpers shared by the
// point codec and the field backends.
package ct

import "crypto/subtle"

// LessThan returns 1 if the big-endian integer a is strictly smaller than
// the big-endian integer b, and 0 otherwise. a and b must have the same
// length; the running time depends only on that length.
func LessThan(a, b []byte) int {
	if len(a) != len(b) {
		panic("ct: length mismatch")
	}

	var lt, gt int
	for i := range a {
		x, y := int(a[i]), int(b[i])
		undecided := 1 ^ (lt | gt)
		// (x - y) is in [-255, 255], so the arithmetic shift yields -1
		// exactly when x < y.
		lt |= undecided & ((x - y) >> 8) & 1
		gt |= undecided & ((y - x) >> 8) & 1
	}
	return lt
}

// IsZero returns 1 if every byte of b is zero.
func IsZero(b []byte) int {
	var acc byte
	for _, v := range b {
		acc |= v
	}
	return subtle.ConstantTimeByteEq(acc, 0)
}

// Mask returns a copy of b if keep is 1 and a zeroed slice of the same
// length if keep is 0.
func Mask(b []byte, keep int) []byte {
	out := make([]byte, len(b))
	subtle.ConstantTimeCopy(keep, out, b)
	return out
}

// Select returns a copy of y if v is 1 and a copy of x if v is 0. x and y
// must have the same length.
func Select(v int, x, y []byte) []byte {
	out := make([]byte, len(x))
	copy(out, x)
	subtle.ConstantTimeCopy(v, out, y)
	return out
}

// Reverse returns b with its bytes in reverse order, converting between
// big-endian and little-endian encodings.
func Reverse(b []byte) []byte {
	out := make([]byte, len(b))
	for i, v := range b {
		out[len(b)-1-i] = v
	}
	return out
}

// LengthIs returns 1 if len(b) == n. Lengths are public, the helper exists
// so that decoders can fold the check into a single Choice.
func LengthIs(b []byte, n int) int {
	return subtle.ConstantTimeEq(int32(len(b)), int32(n))
}

// Fit returns b copied into a buffer of exactly n bytes. If len(b) != n the
// buffer is all zero; callers pair it with LengthIs.
func Fit(b []byte, n int) []byte {
	out := make([]byte, n)
	if len(b) == n {
		copy(out, b)
	}
	return out
}
