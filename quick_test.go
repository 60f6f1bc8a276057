package sorts

import (
	"runtime"
	"testing"

	"github.com/tychoish/sorts/assert"
	"github.com/tychoish/sorts/assert/check"
	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/ers"
	"github.com/tychoish/sorts/intish"
	"github.com/tychoish/sorts/testt"
)

func TestMedianOfThree(t *testing.T) {
	t.Run("Ranges", func(t *testing.T) {
		for _, tt := range []struct{ left, right, expected int }{
			{0, 2, 1},
			{0, 3, 1},
			{0, 10, 5},
			{4, 9, 6},
			{100, 1000, 550},
		} {
			check.Equal(t, medianOfThree(tt.left, tt.right), tt.expected)
		}
	})
	t.Run("Inverted", func(t *testing.T) {
		// middle lies between the bounds, so it is still the median.
		check.Equal(t, medianOfThree(10, 0), 5)
		check.Equal(t, medianOfThree(9, 4), 7)
	})
	t.Run("SingleItem", func(t *testing.T) {
		check.Equal(t, medianOfThree(3, 4), 3)
	})
	t.Run("Degenerate", func(t *testing.T) {
		check.Equal(t, medianOfThree(0, 0), -1)
		check.Equal(t, medianOfThree(7, 7), -1)
	})
}

func TestPartition(t *testing.T) {
	t.Run("Invariant", func(t *testing.T) {
		r := testt.Rand(t)
		for _, size := range []int{2, 3, 5, 16, 101} {
			input := randomInts(r, size, 10)
			seq := clone(input)

			pivot := partition(seq, cmp.Native[int], 0, len(seq))
			assert.True(t, pivot >= 0 && pivot < len(seq))
			assert.Permutation(t, seq, input)
			for idx := 0; idx < pivot; idx++ {
				check.True(t, seq[idx] <= seq[pivot])
			}
			for idx := pivot + 1; idx < len(seq); idx++ {
				check.True(t, seq[idx] > seq[pivot])
			}
		}
	})
	t.Run("MidpointPivot", func(t *testing.T) {
		seq := []int{9, 1, 5, 3, 7}
		pivot := partition(seq, cmp.Native[int], 0, len(seq))
		assert.Equal(t, seq[pivot], 5)
		assert.Equal(t, pivot, 2)
	})
	t.Run("SubRange", func(t *testing.T) {
		seq := []int{100, 9, 1, 5, 3, 7, -100}
		pivot := partition(seq, cmp.Native[int], 1, 6)
		assert.Equal(t, seq[0], 100)
		assert.Equal(t, seq[6], -100)
		assert.Equal(t, seq[pivot], 5)
		assert.Equal(t, pivot, 3)
		assert.EqualItems(t, seq, []int{100, 3, 1, 5, 9, 7, -100})
	})
	t.Run("AllEqual", func(t *testing.T) {
		seq := []string{"delta", "delta", "delta", "delta"}
		pivot := partition(seq, cmp.Native[string], 0, len(seq))
		assert.Equal(t, pivot, len(seq)-1)
	})
	t.Run("EmptyRange", func(t *testing.T) {
		seq := []int{1, 2, 3, 4}
		err := ers.WithRecoverCall(func() { partition(seq, cmp.Native[int], 3, 3) })
		assert.ErrorIs(t, err, ers.ErrInvariantViolation)
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
		assert.EqualItems(t, seq, []int{1, 2, 3, 4})
	})
}

// midpointWorstCase builds a permutation of [0, size) for which the
// midpoint of every range quickSort visits holds that range's largest
// item, so each partition peels off a single item.
func midpointWorstCase(size int) []int {
	slots := make([]int, size)
	for idx := range slots {
		slots[idx] = idx
	}

	out := make([]int, size)
	for ub := size; ub > 1; ub-- {
		mid := ub / 2
		out[slots[mid]] = ub - 1
		slots[0], slots[mid] = slots[mid], slots[0]
		slots[0], slots[ub-1] = slots[ub-1], slots[0]
	}
	if size > 0 {
		out[slots[0]] = 0
	}
	return out
}

func TestQuick(t *testing.T) {
	t.Run("MidpointWorstCase", func(t *testing.T) {
		const size = 1000
		seq := midpointWorstCase(size)
		assert.Permutation(t, seq, sequence(size, func(i int) int { return i }))

		pcs := make([]uintptr, 4*size)
		minFrames, maxFrames, calls := len(pcs), 0, 0
		Quick(seq, func(a, b int) int {
			calls++
			frames := runtime.Callers(0, pcs)
			minFrames = intish.Min(minFrames, frames)
			if frames > maxFrames {
				maxFrames = frames
			}
			return cmp.Native(a, b)
		})

		assert.Sorted(t, seq, cmp.Native[int])
		// every partition compares each other item of its range once.
		assert.Equal(t, calls, size*(size-1)/2)
		// partitions only ever leave one non-empty side, which the loop
		// handles without recursing.
		assert.True(t, maxFrames-minFrames < 8)
		testt.Logf(t, "frames: min=%d max=%d", minFrames, maxFrames)
	})
	t.Run("SortedInputIsCheap", func(t *testing.T) {
		seq := make([]int, 4096)
		for idx := range seq {
			seq[idx] = idx
		}
		order, count := counting(cmp.Native[int])
		Quick(seq, order)
		assert.Sorted(t, seq, cmp.Native[int])
		// n log2 n with slack; the midpoint pivot splits sorted input evenly.
		assert.True(t, *count < 4096*12*3)
	})
	t.Run("ReverseInput", func(t *testing.T) {
		seq := make([]int, 2048)
		for idx := range seq {
			seq[idx] = len(seq) - idx
		}
		Quick(seq, cmp.Native[int])
		assert.Sorted(t, seq, cmp.Native[int])
	})
	t.Run("ManyDuplicates", func(t *testing.T) {
		seq := make([]int, 5000)
		for idx := range seq {
			seq[idx] = idx % 3
		}
		Quick(seq, cmp.Native[int])
		assert.Sorted(t, seq, cmp.Native[int])
	})
}
