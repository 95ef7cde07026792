package weierstrass

// Decompress reconstructs the point with x-coordinate x whose y-coordinate
// has parity yIsOdd.
//
// The result is empty if x is not the canonical encoding of a field element
// or if x^3 + ax + b has no square root. Both cases take the same path: every
// step below runs regardless of the outcome of the previous one and the two
// failure conditions are folded into a single Choice. If y = 0 the two roots
// coincide and either parity yields (x, 0).
func (c *Curve[E]) Decompress(x []byte, yIsOdd Choice) Option[AffinePoint[E]] {
	f := c.field

	// 1. Decode x. On failure xe is zero and decoding carries on.
	xe, xOK := f.Decode(x)

	// 2. y^2 = x^3 + ax + b.
	yy := c.rhs(xe)

	// 3. Candidate root and whether it exists.
	y0, isSquare := f.Sqrt(yy)

	// 4. Both roots are computed; only the final select depends on the
	// requested parity.
	y1 := f.Neg(y0)
	flip := f.IsOdd(y0) ^ (yIsOdd & 1)
	y := f.Select(y0, y1, flip)

	return NewOption(AffinePoint[E]{X: xe, Y: y}, xOK&isSquare)
}

// Decompact reconstructs the point with x-coordinate x whose y-coordinate is
// the canonical root under the curve's CompactionRule. The other root is
// never returned. Failure behaves exactly as in Decompress.
func (c *Curve[E]) Decompact(x []byte) Option[AffinePoint[E]] {
	f := c.field

	xe, xOK := f.Decode(x)
	y0, isSquare := f.Sqrt(c.rhs(xe))
	y1 := f.Neg(y0)

	// Keep y0 when it is already canonical, otherwise take -y0.
	flip := c.isCanonicalRoot(y0).Not()
	y := f.Select(y0, y1, flip)

	return NewOption(AffinePoint[E]{X: xe, Y: y}, xOK&isSquare)
}
