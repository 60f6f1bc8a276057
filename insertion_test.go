package sorts

import (
	"testing"

	"github.com/tychoish/sorts/assert"
	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/ers"
	"github.com/tychoish/sorts/testt"
)

func TestInsertion(t *testing.T) {
	t.Run("EqualItemsNeverSwap", func(t *testing.T) {
		seq := records("delta", "delta", "delta", "delta")
		Insertion(seq, byKey)
		assert.EqualItems(t, seq, records("delta", "delta", "delta", "delta"))
	})
	t.Run("SortedInputIsLinear", func(t *testing.T) {
		order, count := counting(cmp.Native[int])
		Insertion(sequence(100, func(i int) int { return i }), order)
		assert.Equal(t, *count, 99)
	})
	t.Run("NoAllocations", func(t *testing.T) {
		input := randomInts(testt.Rand(t), 64, 32)
		seq := make([]int, len(input))
		allocs := testing.AllocsPerRun(10, func() {
			copy(seq, input)
			Insertion(seq, cmp.Native[int])
		})
		assert.Equal(t, allocs, 0.0)
		assert.Sorted(t, seq, cmp.Native[int])
	})
	t.Run("Range", func(t *testing.T) {
		seq := []int{9, 5, 4, 3, 2, 1, 0}
		insertionRange(seq, cmp.Native[int], 1, 4)
		assert.EqualItems(t, seq, []int{9, 2, 3, 4, 5, 1, 0})
	})
	t.Run("RangeSingleItem", func(t *testing.T) {
		seq := []int{3, 2, 1}
		order, count := counting(cmp.Native[int])
		insertionRange(seq, order, 2, 2)
		assert.EqualItems(t, seq, []int{3, 2, 1})
		assert.Equal(t, *count, 0)
	})
	t.Run("RangePanicKeepsItems", func(t *testing.T) {
		seq := []int{3, 2, 1}
		count := 0
		err := ers.WithRecoverCall(func() {
			insertionRange(seq, func(a, b int) int {
				count++
				if count == 3 {
					panic("stop")
				}
				return cmp.Native(a, b)
			}, 0, 2)
		})
		assert.ErrorIs(t, err, ers.ErrRecoveredPanic)
		assert.Permutation(t, seq, []int{1, 2, 3})
	})
	t.Run("RangeStable", func(t *testing.T) {
		seq := records("b", "a", "b", "a")
		insertionRange(seq, byKey, 0, 3)
		assert.EqualItems(t, seq, []record{{"a", 1}, {"a", 3}, {"b", 0}, {"b", 2}})
	})
}
