package compare

import "cmp"

// Byte is an ordered wrapper type for the built-in byte type.
// It implements Ordered[Byte] with numeric ordering.
//
// To convert back to a regular byte, use a type conversion:
//
//	var b compare.Byte = 'x'
//	regularByte := byte(b)
type Byte byte

// Compile-time check that Byte implements Ordered[Byte].
var _ Ordered[Byte] = (*Byte)(nil)

// Equals returns true if this Byte has the same value as the other Byte.
func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

// Compare three-way compares this Byte against the other Byte.
func (b Byte) Compare(other Byte) int {
	return cmp.Compare(byte(b), byte(other))
}
