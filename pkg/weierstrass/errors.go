package weierstrass

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
//
// Errors are only ever produced from public data: curve parameters and the
// framing of encoded points. The decode paths of the codec itself report
// failure through an empty Option.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidParams is returned when a curve coefficient is not a
	// canonical field element encoding or a descriptor is incomplete.
	ErrInvalidParams = ErrorKind("ErrInvalidParams")

	// ErrSingularCurve is returned when 4a^3 + 27b^2 = 0.
	ErrSingularCurve = ErrorKind("ErrSingularCurve")

	// ErrInvalidLength is returned when an encoded point does not have one
	// of the lengths allowed for the curve.
	ErrInvalidLength = ErrorKind("ErrInvalidLength")

	// ErrInvalidFormat is returned when an encoded point carries an unknown
	// prefix byte or an unknown format is requested.
	ErrInvalidFormat = ErrorKind("ErrInvalidFormat")

	// ErrInvalidPoint is returned when an encoded point does not decode to
	// a point on the curve. Non-canonical coordinates and coordinates that
	// are not on the curve are deliberately not told apart.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrIdentityPoint is returned when the point at infinity is given to
	// an encoding that cannot represent it.
	ErrIdentityPoint = ErrorKind("ErrIdentityPoint")

	// ErrNotCompactable is returned when a point is asked to be compacted
	// but its y-coordinate is not the canonical root.
	ErrNotCompactable = ErrorKind("ErrNotCompactable")

	// ErrUnknownCurve is returned when a curve name is not registered.
	ErrUnknownCurve = ErrorKind("ErrUnknownCurve")

	// ErrDuplicateCurve is returned when a curve name is registered twice.
	ErrDuplicateCurve = ErrorKind("ErrDuplicateCurve")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to curve construction or point framing.
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
