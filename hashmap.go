package boxing

// Key is implemented by values usable as HashMap keys. The contract: two
// keys that are equal under Equals must return equal hash codes. HashMap
// only recognizes equal keys as the same logical key when the contract
// holds, because probing never leaves the bucket the hash code selects.
type Key interface {
	// HashCode returns the bucket hash for the key.
	HashCode() uintptr
	// Equals reports whether the key considers other to be equivalent.
	Equals(other Key) bool
}

type entry[V any] struct {
	key   Key
	value V
}

// HashMap is a hash-keyed mapping from Key to values of type V. Keys are
// bucketed by HashCode and probed by Equals. Probes check identity before
// Equals, so a stored key instance always finds its own entry even when its
// Equals is asymmetric.
type HashMap[V any] struct {
	buckets map[uintptr][]entry[V]
	size    int
}

// NewHashMap creates an empty HashMap.
func NewHashMap[V any]() *HashMap[V] {
	return &HashMap[V]{buckets: make(map[uintptr][]entry[V])}
}

func (m *HashMap[V]) probe(key Key) (uintptr, int) {
	h := key.HashCode()
	for i, e := range m.buckets[h] {
		if e.key == key || key.Equals(e.key) {
			return h, i
		}
	}
	return h, -1
}

// At returns the value at the given key and whether it is present.
func (m *HashMap[V]) At(key Key) (V, bool) {
	h, i := m.probe(key)
	if i < 0 {
		var zero V
		return zero, false
	}
	return m.buckets[h][i].value, true
}

// AtPut stores a value at the given key. If the map already holds an entry
// whose key the new key equals, that entry is overwritten and its original
// key instance is kept; otherwise a new entry is added.
func (m *HashMap[V]) AtPut(key Key, value V) {
	h, i := m.probe(key)
	if i >= 0 {
		m.buckets[h][i].value = value
		return
	}
	m.buckets[h] = append(m.buckets[h], entry[V]{key, value})
	m.size++
}

// HasKey reports whether the map holds an entry for the given key.
func (m *HashMap[V]) HasKey(key Key) bool {
	_, i := m.probe(key)
	return i >= 0
}

// RemoveAt removes the entry for the given key, reporting whether an entry
// was removed.
func (m *HashMap[V]) RemoveAt(key Key) bool {
	h, i := m.probe(key)
	if i < 0 {
		return false
	}
	b := m.buckets[h]
	m.buckets[h] = append(b[:i], b[i+1:]...)
	if len(m.buckets[h]) == 0 {
		delete(m.buckets, h)
	}
	m.size--
	return true
}

// Keys returns the key instance of every entry, in no particular order.
func (m *HashMap[V]) Keys() []Key {
	keys := make([]Key, 0, m.size)
	for _, b := range m.buckets {
		for _, e := range b {
			keys = append(keys, e.key)
		}
	}
	return keys
}

// Values returns the value of every entry, in no particular order.
func (m *HashMap[V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, b := range m.buckets {
		for _, e := range b {
			values = append(values, e.value)
		}
	}
	return values
}

// Size returns the number of entries in the map.
func (m *HashMap[V]) Size() int {
	return m.size
}

// Empty removes all entries from the map.
func (m *HashMap[V]) Empty() {
	m.buckets = make(map[uintptr][]entry[V])
	m.size = 0
}

// Foreach calls f for each entry in the map, in no particular order.
func (m *HashMap[V]) Foreach(f func(key Key, value V)) {
	for _, b := range m.buckets {
		for _, e := range b {
			f(e.key, e.value)
		}
	}
}
