/*
Package boxing demonstrates the machinery a runtime keeps behind boxed
integer values: reference identity versus value equality, the small-value
cache that makes some boxed results incidentally identical, and the
hash/equality contract that hash-keyed mappings demand of their keys.

Create a Runtime to box values. NewInt always allocates, so its results are
reference-distinct even when their values agree; IntFor and ParseInt consult
the runtime's cache first, so values inside the cache range come back as the
same object every time:

	r := boxing.NewRuntime()
	a := r.NewInt(300)
	b := r.NewInt(300)
	fmt.Println(a == b)      // false: distinct boxes
	fmt.Println(a.Equals(b)) // true: equal values
	fmt.Println(a.Cmp(b))    // 0

	x, _ := r.ParseInt("127")
	y, _ := r.ParseInt("127")
	fmt.Println(x == y)      // true: 127 is inside the cache range

The cache range defaults to [-128, 127] and is tunable through Config, in Go
or from a YAML document.

HashMap is a hash-keyed mapping whose keys supply their own hash code and
equality through the Key interface, which spells out the contract between
the two: keys equal under Equals must produce equal hash codes. A key type
that breaks the contract still goes into the map, but the map can no longer
recognize equal keys as the same logical key. IdentityHashKey and
ValueHashKey demonstrate the broken and the correct side of the contract;
see their documentation and the package tests.
*/
package boxing
