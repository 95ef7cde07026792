package curves

import (
	"filippo.io/edwards25519/field"

	"github.com/smallyu/go-ecpoint/internal/ct"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// curve25519P is 2^255 - 19, big-endian.
var curve25519P = hexBytes("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")

// Curve25519Field implements weierstrass.Field over GF(2^255 - 19) using the
// constant-time field arithmetic of filippo.io/edwards25519. The library
// encodes elements little-endian; this adapter speaks big-endian like every
// other backend.
type Curve25519Field struct{}

var _ weierstrass.Field[field.Element] = Curve25519Field{}

// Size implements weierstrass.Field.
func (Curve25519Field) Size() int { return 32 }

// Decode implements weierstrass.Field.
func (Curve25519Field) Decode(b []byte) (field.Element, weierstrass.Choice) {
	ok := ct.LengthIs(b, 32)
	buf := ct.Fit(b, 32)

	// field.Element.SetBytes accepts values in [p, 2^255) and silently
	// drops the top bit, so canonicity is checked here.
	ok &= ct.LessThan(buf, curve25519P)
	buf = ct.Mask(buf, ok)

	var e field.Element
	if _, err := e.SetBytes(ct.Reverse(buf)); err != nil {
		// Unreachable: buf is always 32 bytes.
		panic(err)
	}
	return e, weierstrass.Choice(ok)
}

// Bytes implements weierstrass.Field.
func (Curve25519Field) Bytes(e field.Element) []byte {
	return ct.Reverse(e.Bytes())
}

// Zero implements weierstrass.Field.
func (Curve25519Field) Zero() field.Element {
	var z field.Element
	return *z.Zero()
}

// Add implements weierstrass.Field.
func (Curve25519Field) Add(a, b field.Element) field.Element {
	var r field.Element
	return *r.Add(&a, &b)
}

// Sub implements weierstrass.Field.
func (Curve25519Field) Sub(a, b field.Element) field.Element {
	var r field.Element
	return *r.Subtract(&a, &b)
}

// Mul implements weierstrass.Field.
func (Curve25519Field) Mul(a, b field.Element) field.Element {
	var r field.Element
	return *r.Multiply(&a, &b)
}

// Square implements weierstrass.Field.
func (Curve25519Field) Square(a field.Element) field.Element {
	var r field.Element
	return *r.Square(&a)
}

// Neg implements weierstrass.Field.
func (Curve25519Field) Neg(a field.Element) field.Element {
	var r field.Element
	return *r.Negate(&a)
}

// Sqrt implements weierstrass.Field with SqrtRatio(a, 1).
func (Curve25519Field) Sqrt(a field.Element) (field.Element, weierstrass.Choice) {
	var one, r field.Element
	one.One()
	_, wasSquare := r.SqrtRatio(&a, &one)
	return r, weierstrass.Choice(wasSquare)
}

// IsOdd implements weierstrass.Field. IsNegative is the low bit of the
// canonical encoding.
func (Curve25519Field) IsOdd(a field.Element) weierstrass.Choice {
	return weierstrass.Choice(a.IsNegative())
}

// Equal implements weierstrass.Field.
func (Curve25519Field) Equal(a, b field.Element) weierstrass.Choice {
	return weierstrass.Choice(a.Equal(&b))
}

// Select implements weierstrass.Field. Note that field.Element.Select takes
// its operands in the opposite order.
func (Curve25519Field) Select(a, b field.Element, c weierstrass.Choice) field.Element {
	var r field.Element
	return *r.Select(&b, &a, int(c&1))
}

var wei25519Curve = weierstrass.MustNewCurve(weierstrass.Params[field.Element]{
	Name:           "wei25519",
	Field:          Curve25519Field{},
	A:              hexBytes("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa984914a144"),
	B:              hexBytes("7b425ed097b425ed097b425ed097b425ed097b425ed097b4260b5e9c7710c864"),
	CompressPoints: true,
	CompactPoints:  false,
	Compaction:     weierstrass.SmallerRoot,
})

// Wei25519 returns the short Weierstrass model of Curve25519,
// y^2 = x^3 + ax + b over GF(2^255 - 19) with a = (3 - A^2)/3 and
// b = (2A^3 - 9A)/27 for the Montgomery coefficient A = 486662.
func Wei25519() *weierstrass.Curve[field.Element] {
	return wei25519Curve
}

// Wei25519Generator returns the image of the Curve25519 base point u = 9.
func Wei25519Generator() weierstrass.EncodedPoint {
	return weierstrass.EncodedPoint{
		X: hexBytes("2aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaad245a"),
		Y: hexBytes("20ae19a1b8a086b4e01edd2c7748d14c923d4d7e6d7c61b229e9c5a27eced3d9"),
	}
}
