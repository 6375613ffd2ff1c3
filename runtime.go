package boxing

// Runtime creates boxed values and owns the cache that makes small boxed
// integers incidentally reference-identical.
type Runtime struct {
	// IntMemo holds the boxed integers interned by this runtime, so that
	// boxing a cached value always yields the same object.
	IntMemo map[int64]*Int

	cacheMin, cacheMax int64
}

// NewRuntime prepares a runtime with the default cache range.
func NewRuntime() *Runtime {
	// The default configuration always validates.
	r, _ := NewRuntimeWith(DefaultConfig())
	return r
}

// NewRuntimeWith prepares a runtime with the given tunables.
func NewRuntimeWith(cfg Config) (*Runtime, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r := &Runtime{
		IntMemo:  make(map[int64]*Int, cfg.CacheMax-cfg.CacheMin+1),
		cacheMin: cfg.CacheMin,
		cacheMax: cfg.CacheMax,
	}
	// Memoize all integers in [cacheMin, cacheMax].
	for v := cfg.CacheMin; v <= cfg.CacheMax; v++ {
		r.MemoizeInt(v)
	}
	return r, nil
}

// MemoizeInt creates a quick-access Int with the given value.
func (r *Runtime) MemoizeInt(v int64) {
	r.IntMemo[v] = r.NewInt(v)
}

// CacheMin returns the smallest interned value.
func (r *Runtime) CacheMin() int64 {
	return r.cacheMin
}

// CacheMax returns the largest interned value.
func (r *Runtime) CacheMax() int64 {
	return r.cacheMax
}
