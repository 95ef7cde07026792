package weierstrass

import "github.com/smallyu/go-ecpoint/internal/ct"

// isCanonicalRoot returns 1 if y is the root selected by the compaction rule
// among {y, -y}. The rule is a public property of the curve, so switching on
// it does not leak anything about y.
func (c *Curve[E]) isCanonicalRoot(y E) Choice {
	f := c.field
	switch c.compaction {
	case EvenRoot:
		return f.IsOdd(y).Not()
	default:
		// y <= -y as canonical integers, i.e. not (-y < y). For y = 0 both
		// sides are equal and y is canonical.
		neg := f.Bytes(f.Neg(y))
		return Choice(ct.LessThan(neg, f.Bytes(y))).Not()
	}
}

// IsCompactable returns 1 if p is not the identity and its y-coordinate is
// the canonical root, i.e. Decompact(Compact(p)) reproduces p.
func (c *Curve[E]) IsCompactable(p AffinePoint[E]) Choice {
	return p.Infinity.Not() & c.isCanonicalRoot(p.Y)
}

// Canonicalize returns whichever of p and -p is compactable. The identity is
// returned unchanged.
func (c *Curve[E]) Canonicalize(p AffinePoint[E]) AffinePoint[E] {
	f := c.field
	flip := c.isCanonicalRoot(p.Y).Not() & p.Infinity.Not()
	return AffinePoint[E]{
		X:        p.X,
		Y:        f.Select(p.Y, f.Neg(p.Y), flip),
		Infinity: p.Infinity,
	}
}

// Compress returns the x-coordinate of p and the parity of its
// y-coordinate. The result is empty for the identity, which has no
// compressed form at this layer.
func (c *Curve[E]) Compress(p AffinePoint[E]) Option[Compressed] {
	f := c.field
	return NewOption(Compressed{
		X:      f.Bytes(p.X),
		YIsOdd: f.IsOdd(p.Y),
	}, p.Infinity.Not())
}

// Compact returns the x-coordinate of p alone. The result is empty for the
// identity and for points whose y-coordinate is not the canonical root,
// since Decompact could not recover them; use Canonicalize first to encode
// the canonical representative of {p, -p} instead.
func (c *Curve[E]) Compact(p AffinePoint[E]) Option[[]byte] {
	return optionMap(NewOption(p, c.IsCompactable(p)), func(q AffinePoint[E]) []byte {
		return c.field.Bytes(q.X)
	})
}
