package curves

import (
	"crypto/subtle"
	"errors"
	"math/big"

	"github.com/smallyu/go-ecpoint/internal/ct"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// ModPElement is an element of a ModPField. The zero value is 0. Elements are
// immutable: every ModPField operation allocates its result.
type ModPElement struct {
	n *big.Int
}

func (e ModPElement) value() *big.Int {
	if e.n == nil {
		return new(big.Int)
	}
	return e.n
}

// ModPField implements weierstrass.Field for an arbitrary odd prime modulus.
//
// The square root is a Tonelli-Shanks variant whose loop structure depends
// only on the modulus, and all selections are done on fixed-width byte
// strings. The arithmetic itself is math/big and therefore NOT constant
// time: use this backend for test curves, custom curves and
// interoperability checks, not for secret-bearing inputs on production
// curves.
type ModPField struct {
	p    *big.Int
	size int

	// p - 1 = 2^s * t with t odd.
	s int

	// (t - 1) / 2
	c3 *big.Int

	// z^t for the smallest quadratic non-residue z.
	c5 *big.Int
}

var _ weierstrass.Field[ModPElement] = (*ModPField)(nil)

// NewModPField returns the field of integers modulo p. p must be an odd
// prime.
func NewModPField(p *big.Int) (*ModPField, error) {
	if p == nil || p.Sign() <= 0 || p.Bit(0) == 0 || p.Cmp(big.NewInt(3)) < 0 {
		return nil, errors.New("modp: modulus must be an odd prime")
	}
	if !p.ProbablyPrime(20) {
		return nil, errors.New("modp: modulus is not prime")
	}

	pm1 := new(big.Int).Sub(p, big.NewInt(1))
	s := 0
	t := new(big.Int).Set(pm1)
	for t.Bit(0) == 0 {
		t.Rsh(t, 1)
		s++
	}

	z := big.NewInt(2)
	for big.Jacobi(z, p) != -1 {
		z.Add(z, big.NewInt(1))
	}

	c3 := new(big.Int).Sub(t, big.NewInt(1))
	c3.Rsh(c3, 1)

	return &ModPField{
		p:    new(big.Int).Set(p),
		size: (p.BitLen() + 7) / 8,
		s:    s,
		c3:   c3,
		c5:   new(big.Int).Exp(z, t, p),
	}, nil
}

// MustNewModPField is like NewModPField but panics on error.
func MustNewModPField(p *big.Int) *ModPField {
	f, err := NewModPField(p)
	if err != nil {
		panic(err)
	}
	return f
}

// Modulus returns a copy of p.
func (f *ModPField) Modulus() *big.Int {
	return new(big.Int).Set(f.p)
}

func (f *ModPField) elem(n *big.Int) ModPElement {
	return ModPElement{n: n.Mod(n, f.p)}
}

// NewElement reduces n modulo p.
func (f *ModPField) NewElement(n *big.Int) ModPElement {
	return f.elem(new(big.Int).Set(n))
}

// Size implements weierstrass.Field.
func (f *ModPField) Size() int { return f.size }

// Decode implements weierstrass.Field.
func (f *ModPField) Decode(b []byte) (ModPElement, weierstrass.Choice) {
	ok := ct.LengthIs(b, f.size)
	buf := ct.Fit(b, f.size)
	ok &= ct.LessThan(buf, f.p.FillBytes(make([]byte, f.size)))
	buf = ct.Mask(buf, ok)
	return ModPElement{n: new(big.Int).SetBytes(buf)}, weierstrass.Choice(ok)
}

// Bytes implements weierstrass.Field.
func (f *ModPField) Bytes(e ModPElement) []byte {
	return e.value().FillBytes(make([]byte, f.size))
}

// Zero implements weierstrass.Field.
func (f *ModPField) Zero() ModPElement { return ModPElement{n: new(big.Int)} }

// Add implements weierstrass.Field.
func (f *ModPField) Add(a, b ModPElement) ModPElement {
	return f.elem(new(big.Int).Add(a.value(), b.value()))
}

// Sub implements weierstrass.Field.
func (f *ModPField) Sub(a, b ModPElement) ModPElement {
	return f.elem(new(big.Int).Sub(a.value(), b.value()))
}

// Mul implements weierstrass.Field.
func (f *ModPField) Mul(a, b ModPElement) ModPElement {
	return f.elem(new(big.Int).Mul(a.value(), b.value()))
}

// Square implements weierstrass.Field.
func (f *ModPField) Square(a ModPElement) ModPElement {
	return f.Mul(a, a)
}

// Neg implements weierstrass.Field.
func (f *ModPField) Neg(a ModPElement) ModPElement {
	return f.elem(new(big.Int).Neg(a.value()))
}

func (f *ModPField) exp(a ModPElement, k *big.Int) ModPElement {
	return ModPElement{n: new(big.Int).Exp(a.value(), k, f.p)}
}

// Sqrt implements weierstrass.Field using the constant-structure
// Tonelli-Shanks of RFC 9380, appendix I.4. The loop bounds depend only on
// p; the only data-dependent operations are selects.
func (f *ModPField) Sqrt(a ModPElement) (ModPElement, weierstrass.Choice) {
	one := ModPElement{n: big.NewInt(1)}

	z := f.exp(a, f.c3)
	t := f.Mul(f.Square(z), a)
	z = f.Mul(z, a)
	b := t
	c := ModPElement{n: new(big.Int).Set(f.c5)}

	for k := f.s; k >= 2; k-- {
		for i := 1; i <= k-2; i++ {
			b = f.Square(b)
		}
		e := f.Equal(b, one)
		z = f.Select(f.Mul(z, c), z, e)
		c = f.Square(c)
		t = f.Select(f.Mul(t, c), t, e)
		b = t
	}

	return z, f.Equal(f.Square(z), a)
}

// IsOdd implements weierstrass.Field.
func (f *ModPField) IsOdd(a ModPElement) weierstrass.Choice {
	enc := f.Bytes(a)
	return weierstrass.Choice(enc[len(enc)-1] & 1)
}

// Equal implements weierstrass.Field.
func (f *ModPField) Equal(a, b ModPElement) weierstrass.Choice {
	return weierstrass.Choice(subtle.ConstantTimeCompare(f.Bytes(a), f.Bytes(b)))
}

// Select implements weierstrass.Field.
func (f *ModPField) Select(a, b ModPElement, c weierstrass.Choice) ModPElement {
	buf := ct.Select(int(c&1), f.Bytes(a), f.Bytes(b))
	return ModPElement{n: new(big.Int).SetBytes(buf)}
}
