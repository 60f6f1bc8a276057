// Package internal holds the helpers shared by the assert and check
// packages.
package internal

import (
	"fmt"
	"reflect"
	"runtime"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
)

// ItemsDiff returns a human readable diff of the two slices, or the
// empty string when they hold identical items. Nil and empty slices
// are equivalent.
func ItemsDiff[T comparable](one, two []T) string {
	if len(one) == len(two) {
		equal := true
		for idx := range one {
			if one[idx] != two[idx] {
				equal = false
				break
			}
		}
		if equal {
			return ""
		}
	}

	return gocmp.Diff(one, two, gocmp.Exporter(func(reflect.Type) bool { return true }))
}

// UnsortedAt returns the first index i for which seq[i] orders after
// seq[i+1], or -1 when the slice is ordered.
func UnsortedAt[T any](seq []T, order func(a, b T) int) int {
	for idx := 0; idx+1 < len(seq); idx++ {
		if order(seq[idx], seq[idx+1]) > 0 {
			return idx
		}
	}
	return -1
}

// PermutationMismatch describes why the two slices are not
// permutations of each other, or returns the empty string when they
// are.
func PermutationMismatch[T comparable](one, two []T) string {
	if len(one) != len(two) {
		return fmt.Sprintf("slices are of different lengths [%d vs %d]", len(one), len(two))
	}

	counts := make(map[T]int, len(one))
	for _, it := range one {
		counts[it]++
	}
	for _, it := range two {
		counts[it]--
	}
	for it, n := range counts {
		if n != 0 {
			return fmt.Sprintf("item <%v> appears %d more times in the first slice", it, n)
		}
	}
	return ""
}

// recorder is a testing.TB that records failures rather than
// reporting them, so that assertions can be tested.
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper()               {}
func (r *recorder) Failed() bool          { return r.failed }
func (r *recorder) Log(...any)            {}
func (r *recorder) Logf(string, ...any)   {}
func (r *recorder) Error(...any)          { r.failed = true }
func (r *recorder) Errorf(string, ...any) { r.failed = true }
func (r *recorder) Fail()                 { r.failed = true }
func (r *recorder) FailNow()              { r.failed = true; runtime.Goexit() }
func (r *recorder) Fatal(...any)          { r.FailNow() }
func (r *recorder) Fatalf(string, ...any) { r.FailNow() }

// RunRecorded runs the test in its own goroutine, so that fatal
// failures can exit it, and reports whether it failed.
func RunRecorded(t testing.TB, test func(testing.TB)) bool {
	rec := &recorder{TB: t}
	done := make(chan struct{})
	go func() {
		defer close(done)
		test(rec)
	}()
	<-done
	return rec.failed
}
