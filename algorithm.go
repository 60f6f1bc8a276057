package sorts

import (
	"fmt"
	"strings"

	"github.com/tychoish/sorts/ers"
)

// Algorithm tags one of the sorting algorithms provided by this
// package. The zero value is not a valid algorithm.
type Algorithm int

const (
	InsertionSort Algorithm = iota + 1
	MergeSort
	QuickSort
	HybridSort
)

// Algorithms returns all defined algorithms, in tag order.
func Algorithms() []Algorithm { return []Algorithm{InsertionSort, MergeSort, QuickSort, HybridSort} }

func (a Algorithm) String() string {
	switch a {
	case InsertionSort:
		return "insertion"
	case MergeSort:
		return "merge"
	case QuickSort:
		return "quick"
	case HybridSort:
		return "hybrid"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Stable reports whether the algorithm preserves the relative order
// of items that the comparator considers equal.
func (a Algorithm) Stable() bool {
	switch a {
	case InsertionSort, MergeSort, HybridSort:
		return true
	default:
		return false
	}
}

// Validate returns an error wrapping ers.ErrUnknownAlgorithm if the
// value is not a defined algorithm.
func (a Algorithm) Validate() error {
	switch a {
	case InsertionSort, MergeSort, QuickSort, HybridSort:
		return nil
	default:
		return ers.Wrapf(ers.ErrUnknownAlgorithm, "%d", int(a))
	}
}

// ParseAlgorithm resolves an algorithm by name. Names are case
// insensitive, and may carry a "sort" suffix, so "merge", "MergeSort"
// and "merge-sort" all resolve to MergeSort. "tim" is accepted as an
// alias for the hybrid sort.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.TrimSuffix(strings.NewReplacer("-", "", "_", "", " ", "").Replace(key), "sort")

	switch key {
	case "insertion":
		return InsertionSort, nil
	case "merge":
		return MergeSort, nil
	case "quick":
		return QuickSort, nil
	case "hybrid", "tim":
		return HybridSort, nil
	default:
		return 0, ers.Wrapf(ers.ErrUnknownAlgorithm, "%q", name)
	}
}
