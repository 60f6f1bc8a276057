// Package assert provides an incredibly simple assertion framework,
// that relies on generics and simplicity. All assertions are "fatal"
// and cause the test to abort at the failure line (rather than
// continue on error).
//
// In addition to the general purpose assertions, Sorted and
// Permutation check the postconditions of a sort.
package assert

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
		t.Fatal("assertion failure")
	}
}

// Equal causes a test to fail if the two (comparable) values are not
// equal.
func Equal[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne != valTwo {
		t.Fatalf("unequal: <%v> != <%v>", valOne, valTwo)
	}
}

// NotEqual causes a test to fail if two (comparable) values are
// equal.
func NotEqual[T comparable](t testing.TB, valOne, valTwo T) {
	t.Helper()
	if valOne == valTwo {
		t.Fatalf("equal: <%v>", valOne)
	}
}

// Error fails the test if the error is nil.
func Error(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected non-nil error")
	}
}

// NotError fails the test if the error is non-nil.
func NotError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

// ErrorIs is an assertion form of errors.Is, and fails the test if
// the error (or its wrapped values) are not equal to the target
// error.
func ErrorIs(t testing.TB, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("error <%v>, is not <%v>", err, target)
	}
}

// Panic asserts that the function raises a panic.
func Panic(t testing.TB, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		if r := recover(); r == nil {
			t.Fatal("expected a panic but got none")
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
			t.Fatal("panic: ", r)
		}
	}()
	fn()
}

// EqualItems compares the values in two slices and fails the test,
// with a diff of the two slices, if they are not identical.
func EqualItems[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if diff := internal.ItemsDiff(one, two); diff != "" {
		t.Fatalf("slices differ (-one +two):\n%s", diff)
	}
}

// Sorted fails the test if any adjacent pair of the slice is out of
// order according to the comparator.
func Sorted[T any](t testing.TB, seq []T, order cmp.Compare[T]) {
	t.Helper()
	if idx := internal.UnsortedAt(seq, order); idx >= 0 {
		t.Fatalf("items at index %d and %d [%v > %v] are out of order", idx, idx+1, seq[idx], seq[idx+1])
	}
}

// Permutation fails the test if the two slices do not hold exactly
// the same items with the same multiplicity, in any order.
func Permutation[T comparable](t testing.TB, one, two []T) {
	t.Helper()
	if msg := internal.PermutationMismatch(one, two); msg != "" {
		t.Fatal(msg)
	}
}

// Failing asserts that the specified test fails. This was required
// for validating the behavior of the assertion, and may be useful in
// your own testing.
func Failing(t testing.TB, test func(testing.TB)) {
	t.Helper()
	if !internal.RunRecorded(t, test) {
		t.Fatalf("expected test to fail in %s", t.Name())
	}
}
