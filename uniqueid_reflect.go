//go:build nounsafe

package boxing

import "reflect"

// The default implementation of UniqueID uses unsafe.Pointer. If you can't
// use packages importing unsafe, you can build with -tags=nounsafe to select
// this implementation instead at a performance penalty.

// UniqueID returns the object's address.
func (n *Int) UniqueID() uintptr {
	return reflect.ValueOf(n).Pointer()
}

// UniqueID returns the object's address.
func (k *IdentityHashKey) UniqueID() uintptr {
	return reflect.ValueOf(k).Pointer()
}
