// Package internal holds the unexported shared helpers used by the
// sorters.
package internal

// Swap exchanges the elements at positions i and j.
func Swap[T any](seq []T, i, j int) { seq[i], seq[j] = seq[j], seq[i] }
