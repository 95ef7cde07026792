// Command ecpoint compresses, compacts and frames elliptic curve points from
// the command line. All coordinates are big-endian hex.
//
//	ecpoint [-config curves.yaml] [-curve secp256k1] [-v] <command> [args]
//
// Commands:
//
//	curves                    list the registered curves
//	decompress <x> <0|1>      recover y from x and its parity
//	decompact <x>             recover the canonical y from x
//	compress <x> <y>          print x and the parity of y
//	compact <x> <y>           print x if y is the canonical root
//	canonicalize <x> <y>      print whichever of (x, y), (x, -y) compacts
//	marshal <x> <y> [format]  SEC 1 encoding (default, uncompressed, compressed, compact)
//	unmarshal <hex>           decode a SEC 1 encoding
package main

import (
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/smallyu/go-ecpoint/internal/config"
	"github.com/smallyu/go-ecpoint/internal/crypto/curves"
	"github.com/smallyu/go-ecpoint/pkg/sec1"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(0)
	log.SetPrefix("ecpoint: ")

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			if err != errUsage {
				log.Print(err)
			}
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("ecpoint", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with additional curves")
	curveName := fs.String("curve", "secp256k1", "curve to operate on")
	verbose := fs.Bool("v", false, "log curve details")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	registry := curves.Builtin()
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		if err := cfg.Register(registry); err != nil {
			return err
		}
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	if cmd == "curves" {
		for _, name := range registry.Names() {
			e, _ := registry.Get(name)
			fmt.Fprintf(out, "%-20s size=%-3d compress=%-5t compact=%-5t rule=%-12s constant-time=%t\n",
				name, e.Codec.FieldSize(), e.Codec.CompressPoints(), e.Codec.CompactPoints(),
				e.Codec.Compaction(), e.ConstantTime)
		}
		return nil
	}

	entry, err := registry.Get(*curveName)
	if err != nil {
		return err
	}
	c := entry.Codec
	if *verbose {
		log.Printf("curve %s: %d-byte field, %s compaction", c.Name(), c.FieldSize(), c.Compaction())
		if !entry.ConstantTime {
			log.Printf("curve %s: generic backend, not constant time", c.Name())
		}
	}

	return dispatch(c, cmd, rest, out)
}

func dispatch(c weierstrass.Codec, cmd string, args []string, out io.Writer) error {
	switch cmd {
	case "decompress":
		if len(args) != 2 {
			return fmt.Errorf("decompress <x> <0|1>: %w", errUsage)
		}
		x, err := decodeHex(args[0])
		if err != nil {
			return err
		}
		var bit weierstrass.Choice
		switch args[1] {
		case "0":
		case "1":
			bit = 1
		default:
			return fmt.Errorf("parity must be 0 or 1, got %q", args[1])
		}
		p, ok := c.DecompressBytes(x, bit).Unwrap()
		if !ok {
			return weierstrass.MakeError(weierstrass.ErrInvalidPoint, "no point with that x on "+c.Name())
		}
		printPoint(out, p)

	case "decompact":
		if len(args) != 1 {
			return fmt.Errorf("decompact <x>: %w", errUsage)
		}
		x, err := decodeHex(args[0])
		if err != nil {
			return err
		}
		p, ok := c.DecompactBytes(x).Unwrap()
		if !ok {
			return weierstrass.MakeError(weierstrass.ErrInvalidPoint, "no point with that x on "+c.Name())
		}
		printPoint(out, p)

	case "compress", "compact", "canonicalize":
		p, err := pointArgs(cmd, args)
		if err != nil {
			return err
		}
		return encode(c, cmd, p, out)

	case "marshal":
		if len(args) != 2 && len(args) != 3 {
			return fmt.Errorf("marshal <x> <y> [format]: %w", errUsage)
		}
		p, err := pointArgs(cmd, args[:2])
		if err != nil {
			return err
		}
		format := sec1.FormatDefault
		if len(args) == 3 {
			if format, err = sec1.ParseFormat(args[2]); err != nil {
				return err
			}
		}
		enc, err := sec1.Marshal(c, p, format)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, hex.EncodeToString(enc))

	case "unmarshal":
		if len(args) != 1 {
			return fmt.Errorf("unmarshal <hex>: %w", errUsage)
		}
		data, err := decodeHex(args[0])
		if err != nil {
			return err
		}
		p, err := sec1.Unmarshal(c, data)
		if err != nil {
			return err
		}
		if p.Identity {
			fmt.Fprintln(out, "identity")
			return nil
		}
		printPoint(out, p.Encoded())

	default:
		return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
	}
	return nil
}

func encode(c weierstrass.Codec, cmd string, p weierstrass.EncodedPoint, out io.Writer) error {
	invalid := weierstrass.MakeError(weierstrass.ErrInvalidPoint, "point is not on "+c.Name())
	if c.ValidateBytes(p).IsSome() != 1 {
		return invalid
	}

	switch cmd {
	case "compress":
		comp := c.CompressBytes(p).MustUnwrap()
		fmt.Fprintf(out, "x=%s y_is_odd=%d\n", hex.EncodeToString(comp.X), comp.YIsOdd)
	case "compact":
		x, ok := c.CompactBytes(p).Unwrap()
		if !ok {
			return weierstrass.MakeError(weierstrass.ErrNotCompactable,
				fmt.Sprintf("y is not the %s root; canonicalize first", c.Compaction()))
		}
		fmt.Fprintf(out, "x=%s\n", hex.EncodeToString(x))
	case "canonicalize":
		printPoint(out, c.CanonicalizeBytes(p).MustUnwrap())
	}
	return nil
}

func pointArgs(cmd string, args []string) (weierstrass.EncodedPoint, error) {
	if len(args) != 2 {
		return weierstrass.EncodedPoint{}, fmt.Errorf("%s <x> <y>: %w", cmd, errUsage)
	}
	x, err := decodeHex(args[0])
	if err != nil {
		return weierstrass.EncodedPoint{}, err
	}
	y, err := decodeHex(args[1])
	if err != nil {
		return weierstrass.EncodedPoint{}, err
	}
	return weierstrass.EncodedPoint{X: x, Y: y}, nil
}

func decodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}

func printPoint(out io.Writer, p weierstrass.EncodedPoint) {
	fmt.Fprintf(out, "x=%s\ny=%s\n", hex.EncodeToString(p.X), hex.EncodeToString(p.Y))
}
