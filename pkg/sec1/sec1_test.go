package sec1

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-ecpoint/internal/crypto/curves"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

var (
	secpG = weierstrass.EncodedPoint{
		X: hexToBytes("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"),
		Y: hexToBytes("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"),
	}
	p256G = weierstrass.EncodedPoint{
		X: hexToBytes("6b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296"),
		Y: hexToBytes("4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5"),
	}
)

func TestDefaultFormat(t *testing.T) {
	assert.Equal(t, FormatCompressed, DefaultFormat(curves.Secp256k1()))
	assert.Equal(t, FormatUncompressed, DefaultFormat(curves.P256()))
	assert.Equal(t, FormatCompact, DefaultFormat(curves.Toy97()))
}

func TestMarshal(t *testing.T) {
	tests := []struct {
		name   string
		codec  weierstrass.Codec
		point  weierstrass.EncodedPoint
		format Format
		want   string
	}{{
		name:   "secp256k1 default is compressed",
		codec:  curves.Secp256k1(),
		point:  secpG,
		format: FormatDefault,
		want:   "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name:   "secp256k1 uncompressed",
		codec:  curves.Secp256k1(),
		point:  secpG,
		format: FormatUncompressed,
		want: "0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798" +
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
	}, {
		name:   "secp256k1 compact (even y)",
		codec:  curves.Secp256k1(),
		point:  secpG,
		format: FormatCompact,
		want:   "0579be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798",
	}, {
		name:   "p256 default is uncompressed",
		codec:  curves.P256(),
		point:  p256G,
		format: FormatDefault,
		want: "046b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296" +
			"4fe342e2fe1a7f9b8ee7eb4a7c0f9e162bce33576b315ececbb6406837bf51f5",
	}, {
		name:   "p256 compressed, odd y",
		codec:  curves.P256(),
		point:  p256G,
		format: FormatCompressed,
		want:   "036b17d1f2e12c4247f8bce6e563a440f277037d812deb33a0f4a13945d898c296",
	}, {
		name:   "toy default is compact",
		codec:  curves.Toy97(),
		point:  weierstrass.EncodedPoint{X: []byte{3}, Y: []byte{6}},
		format: FormatDefault,
		want:   "0503",
	}, {
		name:   "toy compressed, odd y",
		codec:  curves.Toy97(),
		point:  weierstrass.EncodedPoint{X: []byte{3}, Y: []byte{91}},
		format: FormatCompressed,
		want:   "0303",
	}}

	for _, test := range tests {
		got, err := Marshal(test.codec, test.point, test.format)
		require.NoError(t, err, test.name)
		assert.Equal(t, test.want, hex.EncodeToString(got), test.name)

		// Every encoding decodes back to the point it came from.
		p, err := Unmarshal(test.codec, got)
		require.NoError(t, err, test.name)
		assert.False(t, p.Identity)
		assert.Equal(t, test.point, p.Encoded(), test.name)
	}
}

func TestMarshalErrors(t *testing.T) {
	toy := curves.Toy97()

	_, err := Marshal(toy, weierstrass.EncodedPoint{X: []byte{3}, Y: []byte{7}}, FormatUncompressed)
	assert.ErrorIs(t, err, weierstrass.ErrInvalidPoint)

	_, err = Marshal(toy, weierstrass.EncodedPoint{X: []byte{3}, Y: []byte{91}}, FormatCompact)
	assert.ErrorIs(t, err, weierstrass.ErrNotCompactable)

	_, err = Marshal(toy, weierstrass.EncodedPoint{X: []byte{3}, Y: []byte{6}}, Format(42))
	assert.ErrorIs(t, err, weierstrass.ErrInvalidFormat)

	_, err = Marshal(toy, weierstrass.EncodedPoint{X: []byte{0, 3}, Y: []byte{6}}, FormatCompressed)
	assert.ErrorIs(t, err, weierstrass.ErrInvalidPoint)
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, []byte{0x00}, MarshalIdentity())

	for _, c := range []weierstrass.Codec{curves.Toy97(), curves.Secp256k1(), curves.P256()} {
		p, err := Unmarshal(c, MarshalIdentity())
		require.NoError(t, err)
		assert.True(t, p.Identity)
		assert.Nil(t, p.X)
		assert.Nil(t, p.Y)
	}
}

func TestUnmarshalErrors(t *testing.T) {
	toy := curves.Toy97()

	tests := []struct {
		name string
		in   []byte
		want error
	}{
		{"empty", nil, weierstrass.ErrInvalidLength},
		{"identity with payload", []byte{0x00, 0x03}, weierstrass.ErrInvalidLength},
		{"compressed too short", []byte{0x02}, weierstrass.ErrInvalidLength},
		{"compressed too long", []byte{0x02, 0x03, 0x00}, weierstrass.ErrInvalidLength},
		{"uncompressed too short", []byte{0x04, 0x03}, weierstrass.ErrInvalidLength},
		{"compact too long", []byte{0x05, 0x03, 0x03}, weierstrass.ErrInvalidLength},
		{"hybrid tag", []byte{0x06, 0x03, 0x06}, weierstrass.ErrInvalidFormat},
		{"unknown tag", []byte{0xff, 0x03}, weierstrass.ErrInvalidFormat},
		{"compressed off curve", []byte{0x02, 0x02}, weierstrass.ErrInvalidPoint},
		{"compressed x = p", []byte{0x03, 0x61}, weierstrass.ErrInvalidPoint},
		{"compact off curve", []byte{0x05, 0x05}, weierstrass.ErrInvalidPoint},
		{"compact x > p", []byte{0x05, 0xff}, weierstrass.ErrInvalidPoint},
		{"uncompressed off curve", []byte{0x04, 0x03, 0x07}, weierstrass.ErrInvalidPoint},
		{"uncompressed y = p", []byte{0x04, 0x03, 0x61}, weierstrass.ErrInvalidPoint},
	}

	for _, test := range tests {
		_, err := Unmarshal(toy, test.in)
		assert.ErrorIs(t, err, test.want, test.name)
	}
}

func TestUnmarshalCompactPicksCanonicalRoot(t *testing.T) {
	// x = 1 has roots 43 and 54.
	p, err := Unmarshal(curves.Toy97(), []byte{0x05, 0x01})
	require.NoError(t, err)
	assert.Equal(t, []byte{43}, p.Y)

	// secp256k1 compacts to the even root.
	enc := append([]byte{0x05}, secpG.X...)
	q, err := Unmarshal(curves.Secp256k1(), enc)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(secpG.Y, q.Y))
}

func TestParseFormat(t *testing.T) {
	for _, f := range []Format{FormatDefault, FormatUncompressed, FormatCompressed, FormatCompact} {
		got, err := ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, got)

	_, err = ParseFormat("hybrid")
	assert.ErrorIs(t, err, weierstrass.ErrInvalidFormat)
	assert.Equal(t, "Format(9)", Format(9).String())
}

func FuzzUnmarshal(f *testing.F) {
	f.Add([]byte{0x00})
	f.Add([]byte{0x02, 0x03})
	f.Add([]byte{0x04, 0x03, 0x06})
	f.Add([]byte{0x05, 0x01})

	toy := curves.Toy97()
	f.Fuzz(func(t *testing.T, data []byte) {
		p, err := Unmarshal(toy, data)
		if err != nil || p.Identity {
			return
		}
		// Anything accepted re-encodes without error.
		if _, err := Marshal(toy, p.Encoded(), FormatUncompressed); err != nil {
			t.Fatalf("unmarshal(%x) accepted a point that does not marshal: %v", data, err)
		}
	})
}
