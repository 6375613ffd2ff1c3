package boxing

import "testing"

// TestNewRuntimeWith tests that configured cache bounds control which values
// are interned.
func TestNewRuntimeWith(t *testing.T) {
	r, err := NewRuntimeWith(Config{CacheMin: 0, CacheMax: 255})
	if err != nil {
		t.Fatalf("could not create runtime: %v", err)
	}
	if r.CacheMin() != 0 || r.CacheMax() != 255 {
		t.Errorf("wrong cache bounds: want [0, 255], have [%d, %d]", r.CacheMin(), r.CacheMax())
	}
	if r.IntFor(255) != r.IntFor(255) {
		t.Error("255 not cached despite raised bound")
	}
	if r.IntFor(256) == r.IntFor(256) {
		t.Error("256 cached beyond the configured bound")
	}
	if r.IntFor(-1) == r.IntFor(-1) {
		t.Error("-1 cached below the configured bound")
	}
}

// TestNewRuntimeWithInverted tests that an inverted cache range is rejected.
func TestNewRuntimeWithInverted(t *testing.T) {
	r, err := NewRuntimeWith(Config{CacheMin: 10, CacheMax: 5})
	if err == nil {
		t.Fatalf("inverted range produced a runtime: %v", r)
	}
}

// TestMemoizeInt tests that explicitly memoized values become interned.
func TestMemoizeInt(t *testing.T) {
	r := NewRuntime()
	if r.IntFor(1000) == r.IntFor(1000) {
		t.Fatal("1000 interned before memoization")
	}
	r.MemoizeInt(1000)
	if r.IntFor(1000) != r.IntFor(1000) {
		t.Error("1000 not interned after memoization")
	}
}

// TestRuntimesIndependent tests that each runtime interns its own objects.
func TestRuntimesIndependent(t *testing.T) {
	r1, r2 := NewRuntime(), NewRuntime()
	if r1.IntFor(100) == r2.IntFor(100) {
		t.Error("two runtimes share an interned object")
	}
}
