package curves

import (
	"crypto/subtle"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-ecpoint/internal/ct"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// Secp256k1Field implements weierstrass.Field over the secp256k1 base field
// using decred's constant-time FieldVal. Elements handed out by this type
// are always normalized, which is what FieldVal's comparison and encoding
// methods require.
type Secp256k1Field struct{}

var _ weierstrass.Field[secp256k1.FieldVal] = Secp256k1Field{}

func normalized(f *secp256k1.FieldVal) secp256k1.FieldVal {
	f.Normalize()
	return *f
}

// Size implements weierstrass.Field.
func (Secp256k1Field) Size() int { return 32 }

// Decode implements weierstrass.Field.
func (Secp256k1Field) Decode(b []byte) (secp256k1.FieldVal, weierstrass.Choice) {
	ok := ct.LengthIs(b, 32)
	var buf [32]byte
	copy(buf[:], ct.Fit(b, 32))

	var f secp256k1.FieldVal
	overflow := f.SetBytes(&buf)
	ok &= int(overflow ^ 1)

	// SetBytes reduced an overflowing value; replace it with zero so that a
	// rejected encoding never aliases a valid element.
	var zero secp256k1.FieldVal
	return Secp256k1Field{}.Select(zero, normalized(&f), weierstrass.Choice(ok)), weierstrass.Choice(ok)
}

// Bytes implements weierstrass.Field.
func (Secp256k1Field) Bytes(e secp256k1.FieldVal) []byte {
	var buf [32]byte
	e.Normalize()
	e.PutBytes(&buf)
	return buf[:]
}

// Zero implements weierstrass.Field.
func (Secp256k1Field) Zero() secp256k1.FieldVal {
	var z secp256k1.FieldVal
	return z
}

// Add implements weierstrass.Field.
func (Secp256k1Field) Add(a, b secp256k1.FieldVal) secp256k1.FieldVal {
	var r secp256k1.FieldVal
	return normalized(r.Add2(&a, &b))
}

// Sub implements weierstrass.Field.
func (Secp256k1Field) Sub(a, b secp256k1.FieldVal) secp256k1.FieldVal {
	var neg, r secp256k1.FieldVal
	neg.NegateVal(&b, 1)
	return normalized(r.Add2(&a, &neg))
}

// Mul implements weierstrass.Field.
func (Secp256k1Field) Mul(a, b secp256k1.FieldVal) secp256k1.FieldVal {
	var r secp256k1.FieldVal
	return normalized(r.Mul2(&a, &b))
}

// Square implements weierstrass.Field.
func (Secp256k1Field) Square(a secp256k1.FieldVal) secp256k1.FieldVal {
	var r secp256k1.FieldVal
	return normalized(r.SquareVal(&a))
}

// Neg implements weierstrass.Field.
func (Secp256k1Field) Neg(a secp256k1.FieldVal) secp256k1.FieldVal {
	var r secp256k1.FieldVal
	return normalized(r.NegateVal(&a, 1))
}

// Sqrt implements weierstrass.Field. FieldVal.SquareRootVal already reports
// whether the root exists, but as a bool; the check is redone on the
// encodings so the result never passes through a branch.
func (f Secp256k1Field) Sqrt(a secp256k1.FieldVal) (secp256k1.FieldVal, weierstrass.Choice) {
	var r secp256k1.FieldVal
	r.SquareRootVal(&a)
	root := normalized(&r)
	return root, f.Equal(f.Square(root), a)
}

// IsOdd implements weierstrass.Field.
func (Secp256k1Field) IsOdd(a secp256k1.FieldVal) weierstrass.Choice {
	a.Normalize()
	return weierstrass.Choice(a.IsOddBit())
}

// Equal implements weierstrass.Field.
func (f Secp256k1Field) Equal(a, b secp256k1.FieldVal) weierstrass.Choice {
	return weierstrass.Choice(subtle.ConstantTimeCompare(f.Bytes(a), f.Bytes(b)))
}

// Select implements weierstrass.Field.
func (f Secp256k1Field) Select(a, b secp256k1.FieldVal, c weierstrass.Choice) secp256k1.FieldVal {
	var buf [32]byte
	copy(buf[:], ct.Select(int(c&1), f.Bytes(a), f.Bytes(b)))
	var r secp256k1.FieldVal
	r.SetBytes(&buf)
	return normalized(&r)
}

var secp256k1Curve = weierstrass.MustNewCurve(weierstrass.Params[secp256k1.FieldVal]{
	Name:           "secp256k1",
	Field:          Secp256k1Field{},
	A:              make([]byte, 32),
	B:              hexBytes("0000000000000000000000000000000000000000000000000000000000000007"),
	CompressPoints: true,
	CompactPoints:  false,
	Compaction:     weierstrass.EvenRoot,
})

// Secp256k1 returns the secp256k1 curve, y^2 = x^3 + 7. Compact encodings
// follow BIP-340: the canonical root is the even one.
func Secp256k1() *weierstrass.Curve[secp256k1.FieldVal] {
	return secp256k1Curve
}
