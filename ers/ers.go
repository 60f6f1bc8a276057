// Package ers provides some very basic error handling tools for the
// sorts packages: constant sentinel errors, and helpers to convert
// panics into errors.
//
// ers has no dependencies outside of the standard library.
package ers

import (
	"errors"
	"fmt"
)

// Error is a type alias for building/declaring sentinel errors
// as constants.
//
// In addition to nil error interface values, the Empty string is,
// considered equal to nil errors for the purposes of Is(). errors.As
// correctly handles unwrapping and casting Error-typed error objects.
type Error string

// New constructs an error object that uses the Error as the
// underlying type.
func New(str string) error { return Error(str) }

// Error implements the error interface for Error.
func (e Error) Error() string { return string(e) }

// Is satisfies the Is() interface without using reflection.
func (e Error) Is(err error) bool {
	switch {
	case err == nil && e == "":
		return true
	case (err == nil) != (e == ""):
		return false
	default:
		x, ok := err.(Error)
		return ok && x == e
	}
}

// ErrInvariantViolation is the root error of the error object that is
// the content of all panics produced when an internal invariant of a
// sorter does not hold.
const ErrInvariantViolation Error = Error("invariant violation")

// ErrRecoveredPanic is attached to all errors that were produced by
// recovering a panic.
const ErrRecoveredPanic Error = Error("recovered panic")

// ErrMalformedConfiguration indicates a configuration object that has
// failed validation.
const ErrMalformedConfiguration Error = Error("malformed configuration")

// ErrUnknownAlgorithm is returned when resolving a sorting algorithm
// by an unrecognized name or tag.
const ErrUnknownAlgorithm Error = Error("unknown algorithm")

// Join aggregates the non-nil errors. Returns nil when all of the
// inputs are nil, and the error itself when only one is not.
func Join(errs ...error) error {
	var out []error
	for _, err := range errs {
		if err != nil {
			out = append(out, err)
		}
	}

	switch len(out) {
	case 0:
		return nil
	case 1:
		return out[0]
	default:
		return errors.Join(out...)
	}
}

// When returns the error IF the conditional is true, and returns nil
// otherwise.
func When(cond bool, err error) error {
	if !cond {
		return nil
	}

	return err
}

// Wrapf annotates an error with a formatted message, preserving the
// original error for errors.Is. Returns nil when err is nil.
func Wrapf(err error, tmpl string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(tmpl, args...), err)
}
