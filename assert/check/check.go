// Package check provides the non-fatal forms of the assertions in the
// assert package: failures are reported and the test continues.
package check

import (
	"errors"
	"testing"

	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/assert/internal"
)

// True causes a test to fail if the condition is false.
func True(t testing.TB, cond bool) {
	t.Helper()
	if !cond {
		t.Error("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Errorf("values unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Errorf("values equal: <%v>", valOne)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Error("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Error(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Errorf("error <%v>, is not <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Error("expected a panic but got none")
		}
	}()
	fn()
}

// NotPanic asserts that the function does not panic.
func NotPanic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r != nil {
			t.Error("panic: ", r)
		}
	}()
	fn()
}

// EqualItems compares the values in two slices and reports a diff
// if they are not identical.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if diff := internal.ItemsDiff(one, two); diff != "" {
		t.Errorf("slices differ (-one +two):\n%s", diff)
	}
}

// Sorted reports the first adjacent pair of the slice that is out of
// order according to the comparator.
func Sorted[T any](t testing.TB, seq []T, order cmp.Compare[T]) {
	t.Helper()
	if idx := internal.UnsortedAt(seq, order); idx >= 0 {
		t.Errorf("items at index %d and %d [%v > %v] are out of order", idx, idx+1, seq[idx], seq[idx+1])
	}
}

// Permutation reports when the two slices do not hold exactly the
// same items with the same multiplicity.
func Permutation[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if msg := internal.PermutationMismatch(one, two); msg != "" {
		t.Error(msg)
	}
}

// Failing asserts that the specified test fails.
func Failing(t testing.TB, test func(testing.TB)) {
	t.Helper()
	if !internal.RunRecorded(t, test) {
		t.Errorf("expected test to fail in %s", t.Name())
	}
}
