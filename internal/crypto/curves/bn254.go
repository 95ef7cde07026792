package curves

import (
	"crypto/subtle"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"

	"github.com/smallyu/go-ecpoint/internal/ct"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

var (
	bn254P = fp.Modulus().FillBytes(make([]byte, fp.Bytes))

	// (p + 1) / 4; p = 3 mod 4 so a^((p+1)/4) is a square root of every
	// quadratic residue a.
	bn254SqrtExp = new(big.Int).Rsh(new(big.Int).Add(fp.Modulus(), big.NewInt(1)), 2)
)

// BN254Field implements weierstrass.Field over the base field of BN254
// (alt_bn128) using gnark-crypto's Montgomery field elements.
type BN254Field struct{}

var _ weierstrass.Field[fp.Element] = BN254Field{}

// Size implements weierstrass.Field.
func (BN254Field) Size() int { return fp.Bytes }

// Decode implements weierstrass.Field.
func (BN254Field) Decode(b []byte) (fp.Element, weierstrass.Choice) {
	ok := ct.LengthIs(b, fp.Bytes)
	buf := ct.Fit(b, fp.Bytes)
	ok &= ct.LessThan(buf, bn254P)
	buf = ct.Mask(buf, ok)

	var e fp.Element
	if err := e.SetBytesCanonical(buf); err != nil {
		// Unreachable: buf is masked to a canonical value.
		panic(err)
	}
	return e, weierstrass.Choice(ok)
}

// Bytes implements weierstrass.Field.
func (BN254Field) Bytes(e fp.Element) []byte {
	b := e.Bytes()
	return b[:]
}

// Zero implements weierstrass.Field.
func (BN254Field) Zero() fp.Element {
	var z fp.Element
	return z
}

// Add implements weierstrass.Field.
func (BN254Field) Add(a, b fp.Element) fp.Element {
	var r fp.Element
	return *r.Add(&a, &b)
}

// Sub implements weierstrass.Field.
func (BN254Field) Sub(a, b fp.Element) fp.Element {
	var r fp.Element
	return *r.Sub(&a, &b)
}

// Mul implements weierstrass.Field.
func (BN254Field) Mul(a, b fp.Element) fp.Element {
	var r fp.Element
	return *r.Mul(&a, &b)
}

// Square implements weierstrass.Field.
func (BN254Field) Square(a fp.Element) fp.Element {
	var r fp.Element
	return *r.Square(&a)
}

// Neg implements weierstrass.Field.
func (BN254Field) Neg(a fp.Element) fp.Element {
	var r fp.Element
	return *r.Neg(&a)
}

// Sqrt implements weierstrass.Field. fp.Element.Sqrt returns nil for
// non-residues, which would force a branch; the fixed exponentiation is used
// instead and the result is checked afterwards.
func (f BN254Field) Sqrt(a fp.Element) (fp.Element, weierstrass.Choice) {
	var r fp.Element
	r.Exp(a, bn254SqrtExp)
	return r, f.Equal(f.Square(r), a)
}

// IsOdd implements weierstrass.Field.
func (BN254Field) IsOdd(a fp.Element) weierstrass.Choice {
	b := a.Bytes()
	return weierstrass.Choice(b[fp.Bytes-1] & 1)
}

// Equal implements weierstrass.Field.
func (BN254Field) Equal(a, b fp.Element) weierstrass.Choice {
	x, y := a.Bytes(), b.Bytes()
	return weierstrass.Choice(subtle.ConstantTimeCompare(x[:], y[:]))
}

// Select implements weierstrass.Field.
func (BN254Field) Select(a, b fp.Element, c weierstrass.Choice) fp.Element {
	var r fp.Element
	return *r.Select(int(c&1), &a, &b)
}

var bn254Curve = weierstrass.MustNewCurve(weierstrass.Params[fp.Element]{
	Name:           "bn254",
	Field:          BN254Field{},
	A:              make([]byte, fp.Bytes),
	B:              hexBytes("0000000000000000000000000000000000000000000000000000000000000003"),
	CompressPoints: true,
	CompactPoints:  false,
	Compaction:     weierstrass.SmallerRoot,
})

// BN254 returns the G1 curve of BN254, y^2 = x^3 + 3.
func BN254() *weierstrass.Curve[fp.Element] {
	return bn254Curve
}
