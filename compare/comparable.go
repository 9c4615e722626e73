// Package compare defines the scalar comparison capabilities recognized by
// the differ: equality-only types and types with a total ordering.
//
// A type opts into one of the capabilities by implementing the matching
// interface with a value receiver. [Ordered] is the stronger one: two values
// are equal iff their three-way comparison yields zero. Types with no
// natural ordering implement just [Comparable].
package compare

// Comparable is the equality-only capability. Types implementing this
// interface decide for themselves what equality means.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Ordered is the three-way comparison capability. Compare returns a negative
// number when the receiver sorts before other, zero when the two are equal,
// and a positive number when the receiver sorts after other.
type Ordered[T any] interface {
	Comparable[T]

	Compare(other T) int
}

// Equals compares two values using the Comparable capability of the first
// argument. It delegates to its Equals method.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Compare three-way compares two values using the Ordered capability of the
// first argument. It delegates to its Compare method.
func Compare[T any](a Ordered[T], b T) int {
	return a.Compare(b)
}
