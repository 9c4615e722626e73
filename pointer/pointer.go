// Package pointer provides small helpers for working with pointers,
// used mostly when building values with nilable fields.
package pointer

// To returns a pointer to the given value. This is useful when you need the
// address of a literal or of an expression result.
//
// Example:
//
//	s := pointer.To("hello")  // *string
//	i := pointer.To(42)       // *int
func To[T any](v T) *T {
	return &v
}

// Value safely dereferences p. If p is nil it returns the zero value of T
// and false; otherwise the pointed-to value and true.
func Value[T any](p *T) (T, bool) {
	if p == nil {
		var zero T

		return zero, false
	}

	return *p, true
}

// Equal reports whether two pointers are equal by the values they point to.
// Two nil pointers are equal; a nil and a non-nil pointer never are.
func Equal[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
