package benchmark

import (
	"crypto/rand"
	"os"
	"testing"

	"github.com/smallyu/go-ecpoint/internal/crypto/curves"
	"github.com/smallyu/go-ecpoint/internal/dudect"
	"github.com/smallyu/go-ecpoint/pkg/sec1"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// validX returns a valid x-coordinate for c, found by sampling.
func validX(c weierstrass.Codec) []byte {
	x := make([]byte, c.FieldSize())
	for {
		if _, err := rand.Read(x); err != nil {
			panic(err)
		}
		x[0] &= 0x0f
		if c.DecompressBytes(x, 0).IsSome() == 1 {
			return x
		}
	}
}

// invalidX returns a canonical x-coordinate with no point above it.
func invalidX(c weierstrass.Codec) []byte {
	x := make([]byte, c.FieldSize())
	for {
		if _, err := rand.Read(x); err != nil {
			panic(err)
		}
		x[0] &= 0x0f
		if c.DecompressBytes(x, 0).IsSome() == 0 {
			return x
		}
	}
}

var benchCurves = []weierstrass.Codec{
	curves.Secp256k1(),
	curves.Wei25519(),
	curves.BN254(),
	curves.P256(),
}

func BenchmarkDecompress(b *testing.B) {
	for _, c := range benchCurves {
		x := validX(c)
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.DecompressBytes(x, weierstrass.Choice(i&1))
			}
		})
	}
}

func BenchmarkDecompact(b *testing.B) {
	for _, c := range benchCurves {
		x := validX(c)
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				c.DecompactBytes(x)
			}
		})
	}
}

func BenchmarkUnmarshalCompressed(b *testing.B) {
	for _, c := range benchCurves {
		p := c.DecompressBytes(validX(c), 1).MustUnwrap()
		enc, err := sec1.Marshal(c, p, sec1.FormatCompressed)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := sec1.Unmarshal(c, enc); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// TestDecompressTiming compares the running time of Decompress on valid and
// invalid x-coordinates. It is slow and noisy, so it only runs with
// ECPOINT_TIMING=1 and never under -short.
func TestDecompressTiming(t *testing.T) {
	if testing.Short() || os.Getenv("ECPOINT_TIMING") != "1" {
		t.Skip("set ECPOINT_TIMING=1 to run the timing test")
	}

	// The math/big backend is variable time and is left out.
	for _, c := range benchCurves[:3] {
		valid, invalid := validX(c), invalidX(c)

		res := dudect.Run(dudect.DefaultConfig(), func(class int) []byte {
			if class == 0 {
				return valid
			}
			return invalid
		}, func(x []byte) {
			c.DecompressBytes(x, 0)
		})

		t.Logf("%s: max |t| = %.2f over %d crops", c.Name(), res.MaxT, len(res.Tests))
		if res.Leaky() {
			t.Errorf("%s: decompress timing depends on validity (|t| = %.2f)", c.Name(), res.MaxT)
		}
	}
}
