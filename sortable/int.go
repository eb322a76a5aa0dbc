package sortable

import "cmp"

// Int is a sortable wrapper type for the built-in int type.
// It implements the Sortable[Int] interface, allowing integers to be
// handed straight to the tree sort.
//
// Example:
//
//	sorted, err := treesort.Slice([]sortable.Int{5, 3, 7})
//	// sorted is [3 5 7]
//
// To convert back to a regular int, use a type conversion:
//
//	var s sortable.Int = 42
//	regularInt := int(s)
type Int int

// Compile-time check that Int implements Sortable[Int].
var _ Sortable[Int] = (*Int)(nil)

// Equals returns true if this Int has the same value as the other Int.
func (i Int) Equals(other Int) bool {
	return int(i) == int(other)
}

// LessThan returns true if this Int is numerically less than the other Int.
func (i Int) LessThan(other Int) bool {
	return int(i) < int(other)
}

// Compare returns -1, 0 or 1 as this Int is less than, equal to, or greater than other.
func (i Int) Compare(other Int) int {
	return cmp.Compare(int(i), int(other))
}
