// Package intish provides a collection of strongly typed integer
// arithmetic operations used for index and bounds computations.
package intish

import "golang.org/x/exp/constraints"

// Min returns the lowest value.
func Min[T constraints.Integer](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Midpoint returns the index halfway between low and high, rounded
// toward low, without overflowing for large bounds.
func Midpoint[T constraints.Integer](low, high T) T { return low + (high-low)/2 }
