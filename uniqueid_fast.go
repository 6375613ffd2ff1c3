//go:build !nounsafe

package boxing

import "unsafe"

// Using unsafe to retrieve the object's address is much faster than using
// reflect, and identity hashing sits on the path of every map probe.

// UniqueID returns the object's address.
func (n *Int) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(n))
}

// UniqueID returns the object's address.
func (k *IdentityHashKey) UniqueID() uintptr {
	return uintptr(unsafe.Pointer(k))
}
