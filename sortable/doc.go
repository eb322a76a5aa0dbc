// Package sortable provides wrapper types for primitive types that implement
// the Sortable interface, so they can be passed directly to the tree sort.
//
// # Overview
//
// The sortable package defines the [Sortable] interface and provides ready-to-use
// implementations for common primitive types: [Int], [Byte], [Float], [String]
// and [Natural]. Each of them implements
// [github.com/amp-labs/treesort/compare.Comparator] over itself, which is the
// only thing [github.com/amp-labs/treesort/treesort.Slice] requires.
//
// The Sortable interface extends [github.com/amp-labs/treesort/compare.Comparable]
// with a LessThan method and a three-way Compare method. The three methods must agree.
//
// # Usage
//
//	in := []sortable.Int{42, 10, 25}
//	out, err := treesort.Slice(in)
//	// out is [10 25 42], in is untouched
//
// [Natural] sorts strings the way humans expect when numbers are embedded:
//
//	files := []sortable.Natural{"img12.png", "img10.png", "img2.png", "img1.png"}
//	out, _ := treesort.Slice(files)
//	// img1.png img2.png img10.png img12.png
//
// # Creating Custom Sortable Types
//
// To create a custom sortable type, implement Compare (and Equals/LessThan if
// the full Sortable contract is wanted):
//
//	type Task struct {
//	    Priority int
//	    Name     string
//	}
//
//	func (t Task) Compare(other Task) int {
//	    if t.Priority != other.Priority {
//	        return cmp.Compare(t.Priority, other.Priority)
//	    }
//	    return strings.Compare(t.Name, other.Name)
//	}
//
// # Thread Safety
//
// The wrapper types in this package are value types and are inherently safe
// to share between goroutines.
package sortable
