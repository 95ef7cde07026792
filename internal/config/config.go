// Package config loads user-defined curves from YAML:
//
//	curves:
//	  - name: toy97
//	    p: 97
//	    a: 2
//	    b: "0x03"
//	    compress_points: true
//	    compact_points: true
//	    compaction: smaller-root
//
// Integers are decimal or 0x-prefixed hex. Curves are built on the generic
// prime-field backend, which is not constant time.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/smallyu/go-ecpoint/internal/crypto/curves"
	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// Config is the document root.
type Config struct {
	Curves []CurveConfig `yaml:"curves"`
}

// CurveConfig describes one curve y^2 = x^3 + ax + b over GF(p).
type CurveConfig struct {
	Name           string `yaml:"name"`
	P              string `yaml:"p"`
	A              string `yaml:"a"`
	B              string `yaml:"b"`
	CompressPoints bool   `yaml:"compress_points"`
	CompactPoints  bool   `yaml:"compact_points"`
	Compaction     string `yaml:"compaction"`
}

// Parse decodes a YAML document. Unknown fields are rejected.
func Parse(data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var cfg Config
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	return &cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Build constructs the curve described by c.
func (c CurveConfig) Build() (*weierstrass.Curve[curves.ModPElement], error) {
	if c.Name == "" {
		return nil, fmt.Errorf("config: %w", weierstrass.MakeError(weierstrass.ErrInvalidParams, "curve name is empty"))
	}

	p, err := parseInt(c.P)
	if err != nil {
		return nil, fmt.Errorf("config: curve %s: p: %w", c.Name, err)
	}
	a, err := parseInt(c.A)
	if err != nil {
		return nil, fmt.Errorf("config: curve %s: a: %w", c.Name, err)
	}
	b, err := parseInt(c.B)
	if err != nil {
		return nil, fmt.Errorf("config: curve %s: b: %w", c.Name, err)
	}
	rule, err := weierstrass.ParseCompactionRule(c.Compaction)
	if err != nil {
		return nil, fmt.Errorf("config: curve %s: %w", c.Name, err)
	}

	curve, err := curves.NewModPCurve(c.Name, p, a, b, c.CompressPoints, c.CompactPoints, rule)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return curve, nil
}

// Register builds every curve in cfg and adds it to r. It stops at the
// first error; curves registered before it stay registered.
func (cfg *Config) Register(r *curves.Registry) error {
	for _, cc := range cfg.Curves {
		curve, err := cc.Build()
		if err != nil {
			return err
		}
		if err := r.Register(curves.Entry{Codec: curve, ConstantTime: false}); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}

var errEmptyInt = errors.New("missing value")

// parseInt accepts decimal and 0x-prefixed hex. Negative values are allowed
// for the coefficients and reduced modulo p later.
func parseInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errEmptyInt
	}

	neg := strings.HasPrefix(s, "-")
	digits := strings.TrimPrefix(s, "-")
	base := 10
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		base = 16
		digits = digits[2:]
	}

	n, ok := new(big.Int).SetString(digits, base)
	if !ok || digits == "" {
		return nil, fmt.Errorf("invalid integer %q", s)
	}
	if neg {
		n.Neg(n)
	}
	return n, nil
}
