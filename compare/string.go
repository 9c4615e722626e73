package compare

import "cmp"

// String is an ordered wrapper type for the built-in string type,
// implementing Ordered[String] with lexicographic ordering.
type String string

var _ Ordered[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) Compare(other String) int {
	return cmp.Compare(string(s), string(other))
}
