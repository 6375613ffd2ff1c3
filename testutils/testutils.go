// Package testutils provides utilities for testing boxed-value semantics.
package testutils

import (
	"sync"
	"testing"

	"github.com/zephyrtronium/contains"

	boxing "github.com/bodom0015/obscure-java-pitfalls"
)

// testRuntime is the runtime used for all tests.
var testRuntime *boxing.Runtime

var testRuntimeInit sync.Once

// Runtime returns a runtime for testing boxed values. The runtime is shared
// by all tests that use this package.
func Runtime() *boxing.Runtime {
	testRuntimeInit.Do(ResetRuntime)
	return testRuntime
}

// ResetRuntime reinitializes the runtime returned by Runtime. It is not safe
// to call this in parallel tests.
func ResetRuntime() {
	testRuntime = boxing.NewRuntime()
}

// An Identifiable is any object with a distinct identity, i.e. any boxed
// value or demonstration key.
type Identifiable interface {
	UniqueID() uintptr
}

// CheckAllDistinct is a testing helper to check that the given objects are
// mutually reference-distinct.
func CheckAllDistinct(t *testing.T, objs ...Identifiable) {
	t.Helper()
	seen := contains.Set{}
	for i, o := range objs {
		if !seen.Add(o.UniqueID()) {
			t.Errorf("object %d (%T@%p) duplicates an earlier identity", i, o, o)
		}
	}
}

// CheckInterned is a testing helper to check that boxing value through the
// runtime's cache yields the identical object on every attempt.
func CheckInterned(t *testing.T, r *boxing.Runtime, value int64) {
	t.Helper()
	if r.IntFor(value) != r.IntFor(value) {
		t.Error(value, "not cached")
	}
}
