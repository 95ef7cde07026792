package weierstrass

import "fmt"

// CompactionRule selects which of the two square roots of x^3 + ax + b is the
// canonical y-coordinate for an x-only (compact) encoding. Encoder and
// decoder must agree on it; changing the rule of an existing curve breaks
// every compact encoding produced under the old one.
type CompactionRule int

const (
	// SmallerRoot picks the root whose canonical integer representative is
	// the smaller of y and p - y.
	SmallerRoot CompactionRule = iota

	// EvenRoot picks the root whose canonical integer representative is
	// even, as with BIP-340 x-only public keys.
	EvenRoot
)

// String returns the configuration name of the rule.
func (r CompactionRule) String() string {
	switch r {
	case SmallerRoot:
		return "smaller-root"
	case EvenRoot:
		return "even-root"
	}
	return fmt.Sprintf("CompactionRule(%d)", int(r))
}

// ParseCompactionRule parses the configuration name of a rule.
func ParseCompactionRule(s string) (CompactionRule, error) {
	switch s {
	case "", "smaller-root":
		return SmallerRoot, nil
	case "even-root":
		return EvenRoot, nil
	}
	return 0, MakeError(ErrInvalidParams, fmt.Sprintf("unknown compaction rule %q", s))
}

// Params describes a short Weierstrass curve y^2 = x^3 + ax + b.
type Params[E any] struct {
	// Name identifies the curve, e.g. "secp256k1".
	Name string

	// Field is the base field backend.
	Field Field[E]

	// A and B are the canonical big-endian encodings of the coefficients.
	A, B []byte

	// CompressPoints reports whether higher layers should emit compressed
	// points when the caller does not ask for a specific format.
	CompressPoints bool

	// CompactPoints reports whether higher layers should emit compact
	// points when the caller does not ask for a specific format.
	CompactPoints bool

	// Compaction is the canonical root convention for compact encodings.
	Compaction CompactionRule
}

// Curve is an immutable curve descriptor together with its point codec. It
// is safe for concurrent use.
type Curve[E any] struct {
	name       string
	field      Field[E]
	a, b       E
	compress   bool
	compact    bool
	compaction CompactionRule
}

// NewCurve validates params and returns the curve descriptor.
func NewCurve[E any](params Params[E]) (*Curve[E], error) {
	if params.Name == "" {
		return nil, MakeError(ErrInvalidParams, "curve name is empty")
	}
	if params.Field == nil || params.Field.Size() <= 0 {
		return nil, MakeError(ErrInvalidParams,
			fmt.Sprintf("curve %s: missing field backend", params.Name))
	}
	if params.Compaction != SmallerRoot && params.Compaction != EvenRoot {
		return nil, MakeError(ErrInvalidParams,
			fmt.Sprintf("curve %s: unknown compaction rule %d", params.Name, params.Compaction))
	}

	f := params.Field
	a, aOK := f.Decode(params.A)
	b, bOK := f.Decode(params.B)
	if aOK&bOK != 1 {
		return nil, MakeError(ErrInvalidParams,
			fmt.Sprintf("curve %s: coefficients are not canonical field elements", params.Name))
	}

	// 4a^3 + 27b^2 must not vanish.
	a3 := f.Mul(f.Square(a), a)
	b2 := f.Square(b)
	disc := f.Add(mulSmall(f, a3, 4), mulSmall(f, b2, 27))
	if f.Equal(disc, f.Zero()) == 1 {
		return nil, MakeError(ErrSingularCurve,
			fmt.Sprintf("curve %s: discriminant is zero", params.Name))
	}

	return &Curve[E]{
		name:       params.Name,
		field:      f,
		a:          a,
		b:          b,
		compress:   params.CompressPoints,
		compact:    params.CompactPoints,
		compaction: params.Compaction,
	}, nil
}

// MustNewCurve is like NewCurve but panics on error. It is meant for
// package-level curve constants.
func MustNewCurve[E any](params Params[E]) *Curve[E] {
	c, err := NewCurve(params)
	if err != nil {
		panic(err)
	}
	return c
}

// mulSmall returns n*e by double-and-add over the public constant n.
func mulSmall[E any](f Field[E], e E, n uint) E {
	acc := f.Zero()
	for i := 63; i >= 0; i-- {
		acc = f.Add(acc, acc)
		if (n>>uint(i))&1 == 1 {
			acc = f.Add(acc, e)
		}
	}
	return acc
}

// Name returns the curve name.
func (c *Curve[E]) Name() string { return c.name }

// Field returns the base field backend.
func (c *Curve[E]) Field() Field[E] { return c.field }

// FieldSize returns the length in bytes of an encoded coordinate.
func (c *Curve[E]) FieldSize() int { return c.field.Size() }

// A returns the coefficient a.
func (c *Curve[E]) A() E { return c.a }

// B returns the coefficient b.
func (c *Curve[E]) B() E { return c.b }

// CompressPoints reports whether points of this curve are compressed by
// default. The flag never influences decoding.
func (c *Curve[E]) CompressPoints() bool { return c.compress }

// CompactPoints reports whether points of this curve are compacted by
// default. The flag never influences decoding.
func (c *Curve[E]) CompactPoints() bool { return c.compact }

// Compaction returns the canonical root convention of the curve.
func (c *Curve[E]) Compaction() CompactionRule { return c.compaction }

// rhs returns x^3 + ax + b.
func (c *Curve[E]) rhs(x E) E {
	f := c.field
	t := f.Add(f.Square(x), c.a)
	return f.Add(f.Mul(t, x), c.b)
}
