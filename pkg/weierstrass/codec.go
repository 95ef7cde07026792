package weierstrass

// Codec is the byte-level view of a Curve. It hides the field element type
// so that curves with different backends can be stored side by side, e.g. in
// a registry or behind a command line front end. Every *Curve[E] is a Codec.
type Codec interface {
	Name() string
	FieldSize() int
	CompressPoints() bool
	CompactPoints() bool
	Compaction() CompactionRule

	// DecompressBytes is Decompress followed by Bytes.
	DecompressBytes(x []byte, yIsOdd Choice) Option[EncodedPoint]

	// DecompactBytes is Decompact followed by Bytes.
	DecompactBytes(x []byte) Option[EncodedPoint]

	// ValidateBytes checks that p encodes a point on the curve and returns
	// its canonical encoding.
	ValidateBytes(p EncodedPoint) Option[EncodedPoint]

	// CompressBytes validates p and compresses it.
	CompressBytes(p EncodedPoint) Option[Compressed]

	// CompactBytes validates p and compacts it. The result is empty if p is
	// invalid or not compactable.
	CompactBytes(p EncodedPoint) Option[[]byte]

	// CanonicalizeBytes validates p and returns the compactable one of p
	// and -p.
	CanonicalizeBytes(p EncodedPoint) Option[EncodedPoint]
}

var _ Codec = (*Curve[struct{}])(nil)

// DecompressBytes implements Codec.
func (c *Curve[E]) DecompressBytes(x []byte, yIsOdd Choice) Option[EncodedPoint] {
	return optionMap(c.Decompress(x, yIsOdd), c.Bytes)
}

// DecompactBytes implements Codec.
func (c *Curve[E]) DecompactBytes(x []byte) Option[EncodedPoint] {
	return optionMap(c.Decompact(x), c.Bytes)
}

// ValidateBytes implements Codec.
func (c *Curve[E]) ValidateBytes(p EncodedPoint) Option[EncodedPoint] {
	return optionMap(c.NewAffinePoint(p.X, p.Y), c.Bytes)
}

// CompressBytes implements Codec.
func (c *Curve[E]) CompressBytes(p EncodedPoint) Option[Compressed] {
	pt := c.NewAffinePoint(p.X, p.Y)
	out := c.Compress(pt.value)
	return NewOption(out.value, pt.isSome&out.isSome)
}

// CompactBytes implements Codec.
func (c *Curve[E]) CompactBytes(p EncodedPoint) Option[[]byte] {
	pt := c.NewAffinePoint(p.X, p.Y)
	out := c.Compact(pt.value)
	return NewOption(out.value, pt.isSome&out.isSome)
}

// CanonicalizeBytes implements Codec.
func (c *Curve[E]) CanonicalizeBytes(p EncodedPoint) Option[EncodedPoint] {
	return optionMap(c.NewAffinePoint(p.X, p.Y), func(q AffinePoint[E]) EncodedPoint {
		return c.Bytes(c.Canonicalize(q))
	})
}
