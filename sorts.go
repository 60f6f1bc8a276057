// Package sorts provides generic, comparator-driven, in-place sorting
// algorithms: insertion sort, top-down merge sort, quicksort, and a
// hybrid of insertion sort over fixed-size runs followed by iterative
// merging.
//
// Every algorithm is available as a plain function (Insertion, Merge,
// Quick, Hybrid), as a stateless Sorter value (For), and by tag
// (Sort, Algorithm). None of the sorters retain state between calls,
// and they are safe to share, though a single slice must not be
// sorted concurrently.
//
// Sorters panic when an internal invariant does not hold, or when
// the comparator panics: use TrySort to convert these panics into
// errors.
package sorts

import (
	"golang.org/x/exp/constraints"

	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/ers"
)

// Sorter is the common contract of all sorting algorithms: Sort
// reorders the sequence in place so that it is non-decreasing under
// the order.
type Sorter[T any] interface {
	Sort(seq []T, order cmp.Compare[T])
}

// Func is a function-typed Sorter. The algorithm functions in this
// package convert directly to Func values.
type Func[T any] func(seq []T, order cmp.Compare[T])

// Sort calls the underlying function.
func (fn Func[T]) Sort(seq []T, order cmp.Compare[T]) { fn(seq, order) }

// For returns the stateless sorter for the algorithm. For panics
// with an invariant violation when the algorithm is not one of the
// defined tags: use Algorithm.Validate to check untrusted values.
func For[T any](alg Algorithm) Sorter[T] {
	switch alg {
	case InsertionSort:
		return Func[T](Insertion[T])
	case MergeSort:
		return Func[T](Merge[T])
	case QuickSort:
		return Func[T](Quick[T])
	case HybridSort:
		return Func[T](Hybrid[T])
	default:
		panic(ers.NewInvariantViolation(alg.Validate()))
	}
}

// Sort sorts the sequence in place using the algorithm.
func Sort[T any](alg Algorithm, seq []T, order cmp.Compare[T]) { For[T](alg).Sort(seq, order) }

// Ordered sorts the sequence in place using the algorithm and the
// natural order of the type.
func Ordered[T constraints.Ordered](alg Algorithm, seq []T) { Sort(alg, seq, cmp.Native[T]) }

// TrySort runs the sorter, and converts any panic raised while
// sorting (including panics in the comparator) into an error which
// wraps ers.ErrRecoveredPanic. When TrySort returns an error, the
// sequence may be partially reordered, but no item has been added or
// removed.
func TrySort[T any](sorter Sorter[T], seq []T, order cmp.Compare[T]) error {
	if sorter == nil {
		return ers.Wrapf(ers.ErrUnknownAlgorithm, "nil sorter")
	}
	return ers.WithRecoverCall(func() { sorter.Sort(seq, order) })
}

// IsSorted reports whether the sequence is non-decreasing under the
// order.
func IsSorted[T any](seq []T, order cmp.Compare[T]) bool {
	for idx := 1; idx < len(seq); idx++ {
		if order(seq[idx-1], seq[idx]) > 0 {
			return false
		}
	}
	return true
}
