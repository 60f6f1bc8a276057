package sorts

import (
	"fmt"

	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/ers"
	"github.com/tychoish/sorts/internal"
)

// Quick sorts the sequence in place using quicksort. The sort is not
// stable, allocates nothing, and runs in O(n log n) expected time.
//
// Pivots are chosen by median-of-three over the bounds of each range
// and its midpoint. The median is taken over the index values, not
// over the items at those positions, so the pivot of every range is
// the item at its midpoint. Sorted and reverse sorted input partition
// evenly; other adversarial input may take O(n²) time, though the
// stack depth is always O(log n).
func Quick[T any](seq []T, order cmp.Compare[T]) { quickSort(seq, order, 0, len(seq)) }

// quickSort sorts seq[lb:ub]. It recurses into the smaller side of
// each partition and loops over the larger one.
func quickSort[T any](seq []T, order cmp.Compare[T], lb, ub int) {
	for ub-lb > 1 {
		pivot := partition(seq, order, lb, ub)

		if pivot-lb < ub-pivot-1 {
			quickSort(seq, order, lb, pivot)
			lb = pivot + 1
		} else {
			quickSort(seq, order, pivot+1, ub)
			ub = pivot
		}
	}
}

// partition selects a pivot for seq[lb:ub] and rearranges the range
// so that every item before the pivot's final index orders at or
// before it, and every item after orders strictly after it. Returns
// the pivot's final index.
func partition[T any](seq []T, order cmp.Compare[T], lb, ub int) int {
	pivot := medianOfThree(lb, ub)
	if pivot < 0 {
		panic(ers.NewInvariantViolation(fmt.Sprintf("no median of three for range [%d, %d)", lb, ub)))
	}

	// The pivot lives at lb until the end: seq[lb+1:small] is <= pivot,
	// seq[large:ub] is > pivot, and seq[small:large] is unexamined.
	internal.Swap(seq, lb, pivot)
	small, large := lb+1, ub

	for small < large {
		switch {
		case order(seq[small], seq[lb]) <= 0:
			small++
		case order(seq[large-1], seq[lb]) > 0:
			large--
		default:
			large--
			internal.Swap(seq, small, large)
			small++
		}
	}

	internal.Swap(seq, lb, small-1)
	return small - 1
}

// medianOfThree returns whichever of left, right, and the midpoint
// between them is the median value. Returns -1 when no value is
// strictly the largest, which cannot happen for a range holding at
// least two items.
func medianOfThree(left, right int) int {
	middle := left + (right-left)/2

	if left > middle && left > right {
		if middle >= right {
			return middle
		}
		return right
	}

	if middle > left && middle > right {
		if left >= right {
			return left
		}
		return right
	}

	if right > middle && right > left {
		if middle >= left {
			return middle
		}
		return left
	}

	return -1
}
