package boxing

// IdentityHashKey holds an integer and compares equal by that integer, but
// derives its hash code from its own identity, ignoring the integer. That
// violates the Key contract: equal keys land in different buckets, so a
// HashMap never recognizes two distinct IdentityHashKey instances as the
// same logical key, even when they are equal.
//
// Equals recognizes only ValueHashKey operands. Equality reaching through
// the derived type is part of the demonstrated behavior; both map scenarios
// depend on it, so it stays asymmetric.
type IdentityHashKey struct {
	value int64
}

// NewIdentityHashKey creates a key holding the given value.
func NewIdentityHashKey(value int64) *IdentityHashKey {
	return &IdentityHashKey{value: value}
}

// IntValue returns the held integer.
func (k *IdentityHashKey) IntValue() int64 {
	return k.value
}

// Equals compares held integers, recognizing only ValueHashKey operands.
func (k *IdentityHashKey) Equals(other Key) bool {
	if that, ok := other.(*ValueHashKey); ok {
		return k.value == that.IntValue()
	}
	return false
}

// HashCode returns the identity hash. The held integer plays no part, so
// equal keys hash differently.
func (k *IdentityHashKey) HashCode() uintptr {
	return k.UniqueID()
}

// ValueHashKey is an IdentityHashKey whose hash code is a pure function of
// the held integer, restoring the Key contract: equal keys hash equally, so
// a HashMap collapses equal ValueHashKey instances into one logical key and
// the last write wins.
type ValueHashKey struct {
	IdentityHashKey
}

// NewValueHashKey creates a key holding the given value.
func NewValueHashKey(value int64) *ValueHashKey {
	return &ValueHashKey{IdentityHashKey{value: value}}
}

// HashCode returns the hash of the held integer.
func (k *ValueHashKey) HashCode() uintptr {
	return uintptr(k.value)
}
