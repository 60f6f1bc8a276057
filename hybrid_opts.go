package sorts

import "github.com/tychoish/sorts/ers"

const (
	// DefaultRunSize is the number of items in each run that the
	// hybrid sort orders with insertion sort before merging.
	DefaultRunSize = 32
	// MaxRunSize bounds the run size: insertion sort is quadratic.
	MaxRunSize = 1 << 16
)

// MergeEvent describes one block examined during the merge phase of
// the hybrid sort: the ranges seq[Left:Mid] and seq[Mid:Right].
// Skipped is true when the two ranges were already in order, and no
// merge was needed.
type MergeEvent struct {
	Left    int
	Mid     int
	Right   int
	Skipped bool
}

// HybridConf describes the runtime options of the hybrid sort. The
// zero value is usable and equivalent to the defaults.
type HybridConf struct {
	// RunSize is the length of the runs sorted with insertion sort
	// before merging. Values less than 1 are converted to
	// DefaultRunSize; values greater than MaxRunSize are invalid.
	RunSize int
	// MergeObserver, when set, is called for every block examined
	// in the merge phase, including blocks that were skipped.
	MergeObserver func(MergeEvent)
}

// Validate ensures that the configuration is valid, and returns an
// error if there are impossible configurations.
func (o *HybridConf) Validate() error {
	if o.RunSize < 1 {
		o.RunSize = DefaultRunSize
	}

	return ers.When(o.RunSize > MaxRunSize,
		ers.Wrapf(ers.ErrMalformedConfiguration, "run size %d exceeds %d", o.RunSize, MaxRunSize))
}

func (o *HybridConf) observe(ev MergeEvent) {
	if o.MergeObserver != nil {
		o.MergeObserver(ev)
	}
}

// OptionProvider modifies a configuration value, returning an error
// when the option cannot be applied.
type OptionProvider[T any] func(T) error

// ApplyOptions applies every option to the configuration, and then
// validates it when it has a Validate method. All errors (and panics
// in the options) are collected and returned together.
func ApplyOptions[T any](opt T, opts ...OptionProvider[T]) (err error) {
	defer func() { err = ers.Join(err, ers.ParsePanic(recover())) }()
	for idx := range opts {
		err = ers.Join(err, opts[idx](opt))
	}

	if validator, ok := any(opt).(interface{ Validate() error }); ok {
		err = ers.Join(err, validator.Validate())
	}
	return err
}

// HybridConfSet overrides the configuration with the provided one.
func HybridConfSet(opt *HybridConf) OptionProvider[*HybridConf] {
	return func(o *HybridConf) error { *o = *opt; return nil }
}

// HybridConfRunSize sets the run size. The size must be positive.
func HybridConfRunSize(size int) OptionProvider[*HybridConf] {
	return func(o *HybridConf) error {
		if size < 1 {
			return ers.Wrapf(ers.ErrMalformedConfiguration, "run size %d must be positive", size)
		}
		o.RunSize = size
		return nil
	}
}

// HybridConfMergeObserver registers a function to observe the blocks
// of the merge phase.
func HybridConfMergeObserver(ob func(MergeEvent)) OptionProvider[*HybridConf] {
	return func(o *HybridConf) error { o.MergeObserver = ob; return nil }
}
