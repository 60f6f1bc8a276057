package sorts

import (
	"github.com/tychoish/sorts/cmp"
	"github.com/tychoish/sorts/intish"
)

// Hybrid sorts the sequence in place by sorting consecutive runs of
// DefaultRunSize items with insertion sort, and then merging adjacent
// runs in passes of doubling size. The sort is stable and runs in
// O(n log n) time. Adjacent runs that are already in order are not
// merged.
//
// Each merge allocates a buffer the size of the two runs it merges.
func Hybrid[T any](seq []T, order cmp.Compare[T]) {
	hybridSort(seq, order, HybridConf{RunSize: DefaultRunSize})
}

// NewHybrid returns a hybrid sorter configured by the options. The
// configuration is validated and copied: changes to it after NewHybrid
// returns have no effect.
func NewHybrid[T any](opts ...OptionProvider[*HybridConf]) (Sorter[T], error) {
	conf := &HybridConf{}
	if err := ApplyOptions(conf, opts...); err != nil {
		return nil, err
	}

	fixed := *conf
	return Func[T](func(seq []T, order cmp.Compare[T]) { hybridSort(seq, order, fixed) }), nil
}

func hybridSort[T any](seq []T, order cmp.Compare[T], conf HybridConf) {
	size := len(seq)
	if size <= 1 {
		return
	}

	for left := 0; left < size; left += conf.RunSize {
		insertionRange(seq, order, left, intish.Min(left+conf.RunSize, size)-1)
	}

	for width := conf.RunSize; width < size; width *= 2 {
		for left := 0; left < size; left += 2 * width {
			mid := intish.Min(size, left+width)
			right := intish.Min(size, left+2*width)

			// a trailing run with no partner is carried to the next pass.
			if mid >= right {
				continue
			}

			if order(seq[mid-1], seq[mid]) <= 0 {
				conf.observe(MergeEvent{Left: left, Mid: mid, Right: right, Skipped: true})
				continue
			}

			merge(seq, order, left, mid, right)
			conf.observe(MergeEvent{Left: left, Mid: mid, Right: right})
		}
	}
}
