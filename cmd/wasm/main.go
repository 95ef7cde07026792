//go:build js && wasm

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"syscall/js"

	"github.com/smallyu/go-ecpoint/internal/crypto/curves"
	"github.com/smallyu/go-ecpoint/pkg/sec1"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

func main() {
	c := make(chan struct{})

	fmt.Println("Go ECPoint WASM Initialized")

	// Expose Go functions to JS
	js.Global().Set("GoECPoint", map[string]interface{}{
		"curves":     js.FuncOf(Curves),
		"decompress": js.FuncOf(Decompress),
		"decompact":  js.FuncOf(Decompact),
		"compress":   js.FuncOf(Compress),
		"compact":    js.FuncOf(Compact),
		"marshal":    js.FuncOf(Marshal),
		"unmarshal":  js.FuncOf(Unmarshal),
	})

	<-c
}

// PointJSON is the JSON form of a point. Coordinates are big-endian hex.
type PointJSON struct {
	X        string `json:"x,omitempty"`
	Y        string `json:"y,omitempty"`
	Identity bool   `json:"identity,omitempty"`
}

// CurveJSON describes a registered curve.
type CurveJSON struct {
	Name           string `json:"name"`
	FieldSize      int    `json:"fieldSize"`
	CompressPoints bool   `json:"compressPoints"`
	CompactPoints  bool   `json:"compactPoints"`
	Compaction     string `json:"compaction"`
	ConstantTime   bool   `json:"constantTime"`
}

func toJSON(v interface{}) interface{} {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func pointJSON(p weierstrass.EncodedPoint) PointJSON {
	return PointJSON{X: hex.EncodeToString(p.X), Y: hex.EncodeToString(p.Y)}
}

// lookup resolves args[0] to a codec and checks the argument count.
func lookup(args []js.Value, n int, usage string) (weierstrass.Codec, []js.Value, error) {
	if len(args) != n {
		return nil, nil, fmt.Errorf("expected %d arguments (%s)", n, usage)
	}
	c, err := curves.Lookup(args[0].String())
	if err != nil {
		return nil, nil, err
	}
	return c, args[1:], nil
}

func hexArg(v js.Value, name string) ([]byte, error) {
	b, err := hex.DecodeString(v.String())
	if err != nil {
		return nil, fmt.Errorf("invalid hex %s: %v", name, err)
	}
	return b, nil
}

func pointArgs(args []js.Value) (weierstrass.EncodedPoint, error) {
	x, err := hexArg(args[0], "x")
	if err != nil {
		return weierstrass.EncodedPoint{}, err
	}
	y, err := hexArg(args[1], "y")
	if err != nil {
		return weierstrass.EncodedPoint{}, err
	}
	return weierstrass.EncodedPoint{X: x, Y: y}, nil
}

// Curves lists the built-in curves.
// Returns:
// JSON array of CurveJSON
func Curves(this js.Value, args []js.Value) interface{} {
	reg := curves.Default()
	var out []CurveJSON
	for _, name := range reg.Names() {
		e, err := reg.Get(name)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		out = append(out, CurveJSON{
			Name:           name,
			FieldSize:      e.Codec.FieldSize(),
			CompressPoints: e.Codec.CompressPoints(),
			CompactPoints:  e.Codec.CompactPoints(),
			Compaction:     e.Codec.Compaction().String(),
			ConstantTime:   e.ConstantTime,
		})
	}
	return toJSON(out)
}

// Decompress recovers a point from x and the parity of y.
// Arguments:
// 0: curve name
// 1: x (hex)
// 2: y is odd (bool)
// Returns:
// JSON PointJSON or "error: ..."
func Decompress(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 3, "curve, x, yIsOdd")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	x, err := hexArg(rest[0], "x")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	var bit weierstrass.Choice
	if rest[1].Truthy() {
		bit = 1
	}
	p, ok := c.DecompressBytes(x, bit).Unwrap()
	if !ok {
		return "error: " + weierstrass.ErrInvalidPoint.Error()
	}
	return toJSON(pointJSON(p))
}

// Decompact recovers the canonical point with the given x.
// Arguments:
// 0: curve name
// 1: x (hex)
// Returns:
// JSON PointJSON or "error: ..."
func Decompact(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 2, "curve, x")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	x, err := hexArg(rest[0], "x")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, ok := c.DecompactBytes(x).Unwrap()
	if !ok {
		return "error: " + weierstrass.ErrInvalidPoint.Error()
	}
	return toJSON(pointJSON(p))
}

// Compress returns x and the parity of y.
// Arguments:
// 0: curve name
// 1: x (hex)
// 2: y (hex)
// Returns:
// JSON {x, yIsOdd} or "error: ..."
func Compress(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 3, "curve, x, y")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := pointArgs(rest)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	comp, ok := c.CompressBytes(p).Unwrap()
	if !ok {
		return "error: " + weierstrass.ErrInvalidPoint.Error()
	}
	return toJSON(map[string]interface{}{
		"x":      hex.EncodeToString(comp.X),
		"yIsOdd": comp.YIsOdd == 1,
	})
}

// Compact returns x if y is the canonical root.
// Arguments:
// 0: curve name
// 1: x (hex)
// 2: y (hex)
// Returns:
// x (hex) or "error: ..."
func Compact(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 3, "curve, x, y")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := pointArgs(rest)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if c.ValidateBytes(p).IsSome() != 1 {
		return "error: " + weierstrass.ErrInvalidPoint.Error()
	}
	x, ok := c.CompactBytes(p).Unwrap()
	if !ok {
		return "error: " + weierstrass.ErrNotCompactable.Error()
	}
	return hex.EncodeToString(x)
}

// Marshal frames a point in SEC 1 format.
// Arguments:
// 0: curve name
// 1: x (hex)
// 2: y (hex)
// 3: format ("", "uncompressed", "compressed", "compact")
// Returns:
// encoding (hex) or "error: ..."
func Marshal(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 4, "curve, x, y, format")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := pointArgs(rest)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	f, err := sec1.ParseFormat(rest[2].String())
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	enc, err := sec1.Marshal(c, p, f)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return hex.EncodeToString(enc)
}

// Unmarshal decodes a SEC 1 encoding.
// Arguments:
// 0: curve name
// 1: encoding (hex)
// Returns:
// JSON PointJSON or "error: ..."
func Unmarshal(this js.Value, args []js.Value) interface{} {
	c, rest, err := lookup(args, 2, "curve, data")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	data, err := hexArg(rest[0], "data")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	p, err := sec1.Unmarshal(c, data)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	if p.Identity {
		return toJSON(PointJSON{Identity: true})
	}
	return toJSON(pointJSON(p.Encoded()))
}
