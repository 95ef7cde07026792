package weierstrass

// Field is the contract the point codec needs from a prime field backend.
// Elements are values of type E; every method returns a new value and leaves
// its arguments untouched, so implementations over mutable library types
// must copy before operating.
//
// All methods except Size must run in time independent of the element
// values involved. Backends that cannot guarantee this (for example ones
// built on math/big) must say so in their documentation.
type Field[E any] interface {
	// Size returns the length in bytes of a canonical encoding.
	Size() int

	// Decode parses a canonical big-endian encoding. It returns the zero
	// element and 0 if b has the wrong length or encodes a value >= p.
	Decode(b []byte) (E, Choice)

	// Bytes returns the canonical big-endian encoding of e.
	Bytes(e E) []byte

	Zero() E
	Add(a, b E) E
	Sub(a, b E) E
	Mul(a, b E) E
	Square(a E) E
	Neg(a E) E

	// Sqrt returns a square root of a and 1 if a is a quadratic residue
	// (zero included). Otherwise the returned element is unspecified and
	// the choice is 0.
	Sqrt(a E) (E, Choice)

	// IsOdd returns the parity of the canonical integer representative.
	IsOdd(a E) Choice

	Equal(a, b E) Choice

	// Select returns b if c == 1 and a if c == 0.
	Select(a, b E, c Choice) E
}
