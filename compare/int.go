package compare

import "cmp"

// Int is an ordered wrapper type for the built-in int type.
// It implements Ordered[Int], so the differ treats it as an
// ordering-capable scalar rather than descending into it.
//
// To convert back to a regular int, use a type conversion:
//
//	var n compare.Int = 42
//	regularInt := int(n)
type Int int

// Compile-time check that Int implements Ordered[Int].
var _ Ordered[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// Compare three-way compares this Int against the other Int.
func (i Int) Compare(other Int) int {
	return cmp.Compare(int(i), int(other))
}
