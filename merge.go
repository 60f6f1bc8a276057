package sorts

import (
	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/intish"
)

// Merge sorts the sequence using a stable, top-down merge sort, in
// O(n log n) time. Each merge step allocates a buffer the size of the
// range it merges, which is released when the step completes.
func Merge[T any](seq []T, order cmp.Compare[T]) { mergeSort(seq, order, 0, len(seq)) }

// mergeSort sorts seq[lo:hi], bisecting until ranges hold at most one
// item.
func mergeSort[T any](seq []T, order cmp.Compare[T], lo, hi int) {
	if hi-lo <= 1 {
		return
	}

	mid := intish.Midpoint(lo, hi)
	mergeSort(seq, order, lo, mid)
	mergeSort(seq, order, mid, hi)
	merge(seq, order, lo, mid, hi)
}

// merge combines the sorted ranges seq[lo:mid] and seq[mid:hi] into
// one sorted range. On ties the left item is taken first, which keeps
// the merge stable.
func merge[T any](seq []T, order cmp.Compare[T], lo, mid, hi int) {
	buf := make([]T, hi-lo)
	left, right, out := lo, mid, 0

	for left < mid && right < hi {
		if order(seq[left], seq[right]) <= 0 {
			buf[out] = seq[left]
			left++
		} else {
			buf[out] = seq[right]
			right++
		}
		out++
	}

	// At most one of these copies anything.
	out += copy(buf[out:], seq[left:mid])
	copy(buf[out:], seq[right:hi])

	copy(seq[lo:hi], buf)
}
