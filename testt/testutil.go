// Package testt (for test tools), provides a couple of useful helpers
// for common test patterns. To be used as a optional companion of the
// assert/check library.
package testt

import (
	"math/rand"
	"testing"
	"time"
)

// Log calls t.Log with the given arguments *if* the test has failed.
func Log(t testing.TB, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Log(args...)
	}
}

// Logf calls t.Log with the given arguments *if* the test has failed.
func Logf(t testing.TB, format string, args ...any) {
	t.Helper()
	if t.Failed() {
		t.Logf(format, args...)
	}
}

// Rand returns a random source seeded from the clock. The seed is
// logged during the test's cleanup if the test has failed, so that
// failures with randomized input can be reproduced with RandSeed.
func Rand(t testing.TB) *rand.Rand {
	return RandSeed(t, time.Now().UnixNano())
}

// RandSeed returns a random source with the given seed, and logs the
// seed if the test fails.
func RandSeed(t testing.TB, seed int64) *rand.Rand {
	t.Cleanup(func() { Logf(t, "random seed: %d", seed) })
	return rand.New(rand.NewSource(seed))
}
