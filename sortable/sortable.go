// Package sortable provides sortable wrapper types for primitive types to implement comparison interfaces.
package sortable

import (
	"github.com/amp-labs/treesort/compare"
)

// Sortable is the full ordering contract for element types: equality, a strict
// less-than, and a three-way comparison that agrees with both.
type Sortable[T any] interface {
	compare.Comparable[T]
	compare.Comparator[T]

	LessThan(other T) bool
}

// Less derives a strict less-than from a type's three-way comparison.
func Less[T compare.Comparator[T]](a, b T) bool {
	return a.Compare(b) < 0
}
