package weierstrass

// Choice is a side-channel-safe boolean. It is always 0 or 1 and is combined
// with bitwise operators rather than branched on.
type Choice int

// Not returns 1 if c is 0, and 0 if c is 1.
func (c Choice) Not() Choice {
	return c ^ 1
}

// And returns 1 iff both c and d are 1.
func (c Choice) And(d Choice) Choice {
	return c & d
}

// Or returns 1 iff either c or d is 1.
func (c Choice) Or(d Choice) Choice {
	return c | d
}

// Eq returns 1 iff c == d.
func (c Choice) Eq(d Choice) Choice {
	return (c ^ d ^ 1) & 1
}

// Option is a value that may or may not be present. Unlike a pointer or an
// (value, error) pair, the value is always populated so that constructing an
// Option does not branch on whether the computation succeeded.
type Option[T any] struct {
	value  T
	isSome Choice
}

// NewOption returns an Option holding value, present iff isSome is 1.
func NewOption[T any](value T, isSome Choice) Option[T] {
	return Option[T]{value: value, isSome: isSome & 1}
}

// IsSome returns 1 if the option holds a value.
func (o Option[T]) IsSome() Choice {
	return o.isSome
}

// IsNone returns 1 if the option is empty.
func (o Option[T]) IsNone() Choice {
	return o.isSome.Not()
}

// Unwrap returns the value and whether it is present. This is the point
// where the caller leaves constant-time code, so it should only be called
// once the result is allowed to become observable.
func (o Option[T]) Unwrap() (T, bool) {
	if o.isSome != 1 {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MustUnwrap returns the value or panics if the option is empty. It is
// intended for tests and for built-in constants that are known to be valid.
func (o Option[T]) MustUnwrap() T {
	v, ok := o.Unwrap()
	if !ok {
		panic("weierstrass: unwrap of empty option")
	}
	return v
}

// optionMap applies f to the value of o, preserving presence. f is always
// evaluated.
func optionMap[T, U any](o Option[T], f func(T) U) Option[U] {
	return Option[U]{value: f(o.value), isSome: o.isSome}
}
