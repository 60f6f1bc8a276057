package sorts

import (
	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/internal"
)

// Insertion sorts the sequence in place using insertion sort. The
// sort is stable, performs no allocation, and runs in O(n²) time.
// Sequences of fewer than two items are returned without calling the
// comparator.
func Insertion[T any](seq []T, order cmp.Compare[T]) {
	if len(seq) <= 1 {
		return
	}

	// seq[:barrier] is sorted.
	for barrier := 1; barrier < len(seq); barrier++ {
		insert(seq, order, barrier)
	}
}

// insert moves the item at barrier leftward, one swap at a time,
// until it no longer orders strictly before its predecessor. Equal
// items are never swapped.
func insert[T any](seq []T, order cmp.Compare[T], barrier int) {
	for idx := barrier; idx > 0 && order(seq[idx], seq[idx-1]) < 0; idx-- {
		internal.Swap(seq, idx-1, idx)
	}
}

// insertionRange sorts the inclusive range seq[left:right+1]. Items
// move by swaps, so the range always holds its original items even
// if the comparator panics.
func insertionRange[T any](seq []T, order cmp.Compare[T], left, right int) {
	for barrier := left + 1; barrier <= right; barrier++ {
		for idx := barrier; idx > left && order(seq[idx], seq[idx-1]) < 0; idx-- {
			internal.Swap(seq, idx-1, idx)
		}
	}
}
