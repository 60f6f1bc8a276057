// Package cmp provides three-way comparators for use with the sorters
// in the sorts package.
package cmp

import (
	"time"

	"golang.org/x/exp/constraints"
)

// Compare describes a three-way comparison: the result is negative
// when a orders before b, zero when they are equivalent, and positive
// when a orders after b. Sorters expect a strict total order.
type Compare[T any] func(a, b T) int

// Comparable allows users to define a method on their types which
// provides a three-way comparison with another value of the same
// type.
type Comparable[T any] interface{ Compare(T) int }

// Native compares values of any type that supports the < operator.
// For floating point values, NaN orders before every other value and
// is equal to other NaN values, which keeps the ordering total.
func Native[T constraints.Ordered](a, b T) int {
	aNaN, bNaN := isNaN(a), isNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return -1
	case bNaN:
		return 1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// isNaN reports whether x is a NaN without requiring math and
// a float constraint.
func isNaN[T constraints.Ordered](x T) bool { return x != x }

// Custom converts types that implement the Comparable interface.
func Custom[T Comparable[T]](a, b T) int { return a.Compare(b) }

// Converter provides a function to convert a non-orderable type to an
// orderable key, and compares values by that key.
func Converter[T any, S constraints.Ordered](converter func(T) S) Compare[T] {
	return func(a, b T) int { return Native(converter(a), converter(b)) }
}

// Time compares time values using the time.Time.Compare semantics.
func Time(a, b time.Time) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// FromLess builds a three-way comparison from a less-than function.
// The less function is called at most twice per comparison.
func FromLess[T any](less func(a, b T) bool) Compare[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse wraps an existing comparator and reverses its direction.
// Equivalent values remain equivalent.
func Reverse[T any](fn Compare[T]) Compare[T] { return func(a, b T) int { return fn(b, a) } }

// Then returns a comparator that uses next to break ties left by
// the receiver.
func (fn Compare[T]) Then(next Compare[T]) Compare[T] {
	return func(a, b T) int {
		if out := fn(a, b); out != 0 {
			return out
		}
		return next(a, b)
	}
}

// Less reports whether a orders strictly before b.
func (fn Compare[T]) Less(a, b T) bool { return fn(a, b) < 0 }
