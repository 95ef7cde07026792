package weierstrass

// AffinePoint is a point in affine coordinates. When Infinity is 1 the point
// is the identity and X, Y are zero. Every non-identity point returned by a
// Curve satisfies the curve equation.
type AffinePoint[E any] struct {
	X, Y     E
	Infinity Choice
}

// EncodedPoint carries the canonical byte encodings of the coordinates of a
// non-identity point.
type EncodedPoint struct {
	X, Y []byte
}

// Compressed is the compressed form of a point: its x-coordinate and the
// parity of its y-coordinate. Packing the bit into a tag byte is left to the
// framing layer (see package sec1).
type Compressed struct {
	X      []byte
	YIsOdd Choice
}

// Identity returns the point at infinity.
func (c *Curve[E]) Identity() AffinePoint[E] {
	z := c.field.Zero()
	return AffinePoint[E]{X: z, Y: z, Infinity: 1}
}

// IsOnCurve returns 1 if p is the identity or satisfies y^2 = x^3 + ax + b.
func (c *Curve[E]) IsOnCurve(p AffinePoint[E]) Choice {
	f := c.field
	return f.Equal(f.Square(p.Y), c.rhs(p.X)) | p.Infinity
}

// NewAffinePoint decodes x and y and checks them against the curve
// equation. The result is empty if either coordinate is not canonical or
// the point is not on the curve.
func (c *Curve[E]) NewAffinePoint(x, y []byte) Option[AffinePoint[E]] {
	f := c.field
	xe, xOK := f.Decode(x)
	ye, yOK := f.Decode(y)
	onCurve := f.Equal(f.Square(ye), c.rhs(xe))
	return NewOption(AffinePoint[E]{X: xe, Y: ye}, xOK&yOK&onCurve)
}

// Negate returns -p.
func (c *Curve[E]) Negate(p AffinePoint[E]) AffinePoint[E] {
	return AffinePoint[E]{X: p.X, Y: c.field.Neg(p.Y), Infinity: p.Infinity}
}

// Equal returns 1 if p and q are the same point.
func (c *Curve[E]) Equal(p, q AffinePoint[E]) Choice {
	f := c.field
	both := p.Infinity & q.Infinity
	neither := p.Infinity.Not() & q.Infinity.Not()
	return both | (neither & f.Equal(p.X, q.X) & f.Equal(p.Y, q.Y))
}

// Bytes returns the canonical encodings of the coordinates of p. The
// identity encodes as two zero coordinates; callers that need to tell it
// apart must check p.Infinity.
func (c *Curve[E]) Bytes(p AffinePoint[E]) EncodedPoint {
	return EncodedPoint{X: c.field.Bytes(p.X), Y: c.field.Bytes(p.Y)}
}
