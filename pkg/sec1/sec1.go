// Package sec1 frames points in the tag-byte format of SEC 1, section 2.3.3,
// extended with the compact tag:
//
//	0x00            identity
//	0x02/0x03 || X  compressed, the tag carries the parity of y
//	0x04 || X || Y  uncompressed
//	0x05 || X       compact, y is the canonical root
//
// It is the layer that consumes a curve's CompressPoints and CompactPoints
// markers: FormatDefault resolves to the format the curve prefers.
package sec1

import (
	"fmt"

	"golang.org/x/crypto/cryptobyte"

	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

const (
	tagIdentity       = 0x00
	tagCompressedEven = 0x02
	tagCompressedOdd  = 0x03
	tagUncompressed   = 0x04
	tagCompact        = 0x05
)

// Format selects an encoding for Marshal.
type Format int

const (
	// FormatDefault picks compact, compressed or uncompressed from the
	// curve's markers, in that order of preference.
	FormatDefault Format = iota
	FormatUncompressed
	FormatCompressed
	FormatCompact
)

var formatNames = map[Format]string{
	FormatDefault:      "default",
	FormatUncompressed: "uncompressed",
	FormatCompressed:   "compressed",
	FormatCompact:      "compact",
}

func (f Format) String() string {
	if s, ok := formatNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses the name of a format. The empty string is
// FormatDefault.
func ParseFormat(s string) (Format, error) {
	if s == "" {
		return FormatDefault, nil
	}
	for f, name := range formatNames {
		if name == s {
			return f, nil
		}
	}
	return 0, weierstrass.MakeError(weierstrass.ErrInvalidFormat,
		fmt.Sprintf("sec1: unknown format %q", s))
}

// DefaultFormat returns the format FormatDefault resolves to for c.
func DefaultFormat(c weierstrass.Codec) Format {
	switch {
	case c.CompactPoints():
		return FormatCompact
	case c.CompressPoints():
		return FormatCompressed
	}
	return FormatUncompressed
}

// Point is a decoded point. When Identity is set X and Y are nil.
type Point struct {
	X, Y     []byte
	Identity bool
}

// Encoded returns p as a weierstrass.EncodedPoint.
func (p Point) Encoded() weierstrass.EncodedPoint {
	return weierstrass.EncodedPoint{X: p.X, Y: p.Y}
}

// MarshalIdentity returns the encoding of the point at infinity.
func MarshalIdentity() []byte {
	return []byte{tagIdentity}
}

// Marshal encodes p on c. p must be on the curve. FormatCompact fails with
// ErrNotCompactable if p.Y is not the canonical root; callers that only
// care about the x-coordinate should canonicalize first.
func Marshal(c weierstrass.Codec, p weierstrass.EncodedPoint, f Format) ([]byte, error) {
	if f == FormatDefault {
		f = DefaultFormat(c)
	}

	n := c.FieldSize()
	v, ok := c.ValidateBytes(p).Unwrap()
	if !ok {
		return nil, weierstrass.MakeError(weierstrass.ErrInvalidPoint,
			fmt.Sprintf("sec1: point is not on %s", c.Name()))
	}

	b := cryptobyte.NewBuilder(make([]byte, 0, 1+2*n))
	switch f {
	case FormatUncompressed:
		b.AddUint8(tagUncompressed)
		b.AddBytes(v.X)
		b.AddBytes(v.Y)

	case FormatCompressed:
		comp := c.CompressBytes(v).MustUnwrap()
		b.AddUint8(tagCompressedEven | uint8(comp.YIsOdd&1))
		b.AddBytes(comp.X)

	case FormatCompact:
		x, ok := c.CompactBytes(v).Unwrap()
		if !ok {
			return nil, weierstrass.MakeError(weierstrass.ErrNotCompactable,
				fmt.Sprintf("sec1: y is not the %s root on %s", c.Compaction(), c.Name()))
		}
		b.AddUint8(tagCompact)
		b.AddBytes(x)

	default:
		return nil, weierstrass.MakeError(weierstrass.ErrInvalidFormat,
			fmt.Sprintf("sec1: unknown format %d", int(f)))
	}
	return b.Bytes()
}

// Unmarshal decodes any of the encodings above. The tag must agree with the
// length of data. A well-framed encoding that does not describe a point on
// c fails with ErrInvalidPoint whatever the reason.
func Unmarshal(c weierstrass.Codec, data []byte) (Point, error) {
	n := c.FieldSize()
	s := cryptobyte.String(data)

	var tag uint8
	if !s.ReadUint8(&tag) {
		return Point{}, weierstrass.MakeError(weierstrass.ErrInvalidLength,
			"sec1: empty encoding")
	}

	var want int
	switch tag {
	case tagIdentity:
		want = 0
	case tagCompressedEven, tagCompressedOdd, tagCompact:
		want = n
	case tagUncompressed:
		want = 2 * n
	default:
		return Point{}, weierstrass.MakeError(weierstrass.ErrInvalidFormat,
			fmt.Sprintf("sec1: unknown tag 0x%02x", tag))
	}
	if len(s) != want {
		return Point{}, weierstrass.MakeError(weierstrass.ErrInvalidLength,
			fmt.Sprintf("sec1: tag 0x%02x needs %d bytes on %s, got %d", tag, 1+want, c.Name(), len(data)))
	}

	var x, y []byte
	var res weierstrass.Option[weierstrass.EncodedPoint]
	switch tag {
	case tagIdentity:
		return Point{Identity: true}, nil
	case tagCompressedEven, tagCompressedOdd:
		s.ReadBytes(&x, n)
		res = c.DecompressBytes(x, weierstrass.Choice(tag&1))
	case tagCompact:
		s.ReadBytes(&x, n)
		res = c.DecompactBytes(x)
	case tagUncompressed:
		s.ReadBytes(&x, n)
		s.ReadBytes(&y, n)
		res = c.ValidateBytes(weierstrass.EncodedPoint{X: x, Y: y})
	}

	p, ok := res.Unwrap()
	if !ok {
		return Point{}, weierstrass.MakeError(weierstrass.ErrInvalidPoint,
			fmt.Sprintf("sec1: encoding does not describe a point on %s", c.Name()))
	}
	return Point{X: p.X, Y: p.Y}, nil
}
