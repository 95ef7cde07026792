// Package curves provides field backends for the point codec and the
// descriptors of the built-in curves, together with a name-indexed registry.
package curves

import (
	"encoding/hex"
	"fmt"
	"sort"
	"sync"

	"github.com/smallyu/go-ecpoint/pkg/weierstrass"
)

// Entry is a registered curve.
type Entry struct {
	Codec weierstrass.Codec

	// ConstantTime is false for curves on the generic math/big backend.
	ConstantTime bool
}

// Registry maps curve names to codecs. It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	curves map[string]Entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{curves: make(map[string]Entry)}
}

// Builtin returns a new registry holding every built-in curve.
func Builtin() *Registry {
	r := NewRegistry()
	for _, e := range []Entry{
		{Codec: Secp256k1(), ConstantTime: true},
		{Codec: Wei25519(), ConstantTime: true},
		{Codec: BN254(), ConstantTime: true},
		{Codec: P256(), ConstantTime: false},
		{Codec: P384(), ConstantTime: false},
		{Codec: P521(), ConstantTime: false},
		{Codec: Toy97(), ConstantTime: false},
	} {
		if err := r.Register(e); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a curve. Names must be unique.
func (r *Registry) Register(e Entry) error {
	if e.Codec == nil {
		return weierstrass.MakeError(weierstrass.ErrInvalidParams, "nil codec")
	}
	name := e.Codec.Name()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.curves[name]; ok {
		return weierstrass.MakeError(weierstrass.ErrDuplicateCurve,
			fmt.Sprintf("curve %q is already registered", name))
	}
	r.curves[name] = e
	return nil
}

// Get returns the entry registered under name.
func (r *Registry) Get(name string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.curves[name]
	if !ok {
		return Entry{}, weierstrass.MakeError(weierstrass.ErrUnknownCurve,
			fmt.Sprintf("unknown curve %q", name))
	}
	return e, nil
}

// Lookup returns the codec registered under name.
func (r *Registry) Lookup(name string) (weierstrass.Codec, error) {
	e, err := r.Get(name)
	if err != nil {
		return nil, err
	}
	return e.Codec, nil
}

// Names returns the registered curve names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.curves))
	for name := range r.curves {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = Builtin()

// Default returns the process-wide registry of built-in curves.
func Default() *Registry {
	return defaultRegistry
}

// Lookup returns the built-in codec named name.
func Lookup(name string) (weierstrass.Codec, error) {
	return defaultRegistry.Lookup(name)
}

func hexBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
