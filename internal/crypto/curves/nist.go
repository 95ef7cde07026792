package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// NewModPCurve builds a curve y^2 = x^3 + ax + b over GF(p) on the generic
// (variable-time) backend. a and b are reduced modulo p. It is used for the
// NIST curves, the toy curve and curves loaded from configuration.
func NewModPCurve(name string, p, a, b *big.Int, compress, compact bool, rule weierstrass.CompactionRule) (*weierstrass.Curve[ModPElement], error) {
	f, err := NewModPField(p)
	if err != nil {
		return nil, weierstrass.MakeError(weierstrass.ErrInvalidParams, name+": "+err.Error())
	}
	return weierstrass.NewCurve(weierstrass.Params[ModPElement]{
		Name:           name,
		Field:          f,
		A:              f.Bytes(f.NewElement(a)),
		B:              f.Bytes(f.NewElement(b)),
		CompressPoints: compress,
		CompactPoints:  compact,
		Compaction:     rule,
	})
}

func mustModPCurve(c *weierstrass.Curve[ModPElement], err error) *weierstrass.Curve[ModPElement] {
	if err != nil {
		panic(err)
	}
	return c
}

func nist(c elliptic.Curve) *weierstrass.Curve[ModPElement] {
	params := c.Params()
	return mustModPCurve(NewModPCurve(lowerName(params.Name), params.P,
		big.NewInt(-3), params.B, false, false, weierstrass.SmallerRoot))
}

func lowerName(s string) string {
	switch s {
	case "P-256":
		return "p256"
	case "P-384":
		return "p384"
	case "P-521":
		return "p521"
	}
	return s
}

var (
	p256Curve = nist(elliptic.P256())
	p384Curve = nist(elliptic.P384())
	p521Curve = nist(elliptic.P521())

	toy97Curve = mustModPCurve(NewModPCurve("toy97", big.NewInt(97),
		big.NewInt(2), big.NewInt(3), true, true, weierstrass.SmallerRoot))
)

// P256 returns NIST P-256 on the generic backend.
func P256() *weierstrass.Curve[ModPElement] { return p256Curve }

// P384 returns NIST P-384 on the generic backend.
func P384() *weierstrass.Curve[ModPElement] { return p384Curve }

// P521 returns NIST P-521 on the generic backend.
func P521() *weierstrass.Curve[ModPElement] { return p521Curve }

// Toy97 returns y^2 = x^3 + 2x + 3 over GF(97), small enough to enumerate
// exhaustively in tests.
func Toy97() *weierstrass.Curve[ModPElement] { return toy97Curve }
