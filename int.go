package boxing

import (
	"fmt"
	"strconv"
)

// Int is the boxed form of an integer. These should be considered immutable.
type Int struct {
	Value int64
}

// NewInt creates a fresh Int object with a given value. The result is always
// a new allocation, never a memoized object, so two NewInt results are never
// reference-equal even when their values agree. Use IntFor to go through the
// cache instead.
func (r *Runtime) NewInt(value int64) *Int {
	return &Int{Value: value}
}

// IntFor returns a boxed form of value. If the value is memoized by the
// runtime, that object is returned; otherwise, a new object will be
// allocated.
func (r *Runtime) IntFor(value int64) *Int {
	if x, ok := r.IntMemo[value]; ok {
		return x
	}
	return &Int{Value: value}
}

// ParseInt converts a textual representation of an integer into boxed form,
// consulting the runtime's cache the same way IntFor does. Text that does
// not denote an integer yields an error.
func (r *Runtime) ParseInt(s string) (*Int, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("boxing: cannot box %q: %w", s, err)
	}
	return r.IntFor(v), nil
}

// EqualsValue reports whether the boxed value equals the raw value v. This
// is the unwrapping comparison: the box opens and the primitives compare.
func (n *Int) EqualsValue(v int64) bool {
	return n.Value == v
}

// Equals reports value equality with another boxed integer, regardless of
// whether the two share storage. A nil operand is never equal.
func (n *Int) Equals(m *Int) bool {
	return m != nil && n.Value == m.Value
}

// Cmp performs a three-way comparison with another boxed integer, returning
// -1, 0, or 1.
func (n *Int) Cmp(m *Int) int {
	return n.CmpValue(m.Value)
}

// CmpValue performs a three-way comparison with a raw value, returning -1,
// 0, or 1.
func (n *Int) CmpValue(v int64) int {
	if n.Value < v {
		return -1
	}
	if n.Value > v {
		return 1
	}
	return 0
}

// String creates a string representation of this integer.
func (n *Int) String() string {
	return strconv.FormatInt(n.Value, 10)
}
