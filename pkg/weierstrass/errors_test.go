package weierstrass

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidParams, "ErrInvalidParams"},
		{ErrSingularCurve, "ErrSingularCurve"},
		{ErrInvalidLength, "ErrInvalidLength"},
		{ErrInvalidFormat, "ErrInvalidFormat"},
		{ErrInvalidPoint, "ErrInvalidPoint"},
		{ErrIdentityPoint, "ErrIdentityPoint"},
		{ErrNotCompactable, "ErrNotCompactable"},
		{ErrUnknownCurve, "ErrUnknownCurve"},
		{ErrDuplicateCurve, "ErrDuplicateCurve"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidLength == ErrInvalidLength",
		err:       ErrInvalidLength,
		target:    ErrInvalidLength,
		wantMatch: true,
		wantAs:    ErrInvalidLength,
	}, {
		name:      "Error.ErrInvalidLength == ErrInvalidLength",
		err:       MakeError(ErrInvalidLength, ""),
		target:    ErrInvalidLength,
		wantMatch: true,
		wantAs:    ErrInvalidLength,
	}, {
		name:      "Error.ErrInvalidLength == Error.ErrInvalidLength",
		err:       MakeError(ErrInvalidLength, ""),
		target:    MakeError(ErrInvalidLength, ""),
		wantMatch: true,
		wantAs:    ErrInvalidLength,
	}, {
		name:      "ErrInvalidPoint != ErrInvalidFormat",
		err:       ErrInvalidPoint,
		target:    ErrInvalidFormat,
		wantMatch: false,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "Error.ErrInvalidPoint != ErrInvalidFormat",
		err:       MakeError(ErrInvalidPoint, ""),
		target:    ErrInvalidFormat,
		wantMatch: false,
		wantAs:    ErrInvalidPoint,
	}, {
		name:      "ErrSingularCurve != Error.ErrInvalidParams",
		err:       ErrSingularCurve,
		target:    MakeError(ErrInvalidParams, ""),
		wantMatch: false,
		wantAs:    ErrSingularCurve,
	}, {
		name:      "Error.ErrUnknownCurve != Error.ErrDuplicateCurve",
		err:       MakeError(ErrUnknownCurve, ""),
		target:    MakeError(ErrDuplicateCurve, ""),
		wantMatch: false,
		wantAs:    ErrUnknownCurve,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
