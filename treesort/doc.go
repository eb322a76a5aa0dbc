// Package treesort sorts collections by building an unbalanced binary search
// tree from the input and reading it back in order.
//
// The first element becomes the root, every later element is inserted in input
// order, and the in-order traversal of the finished tree is collected into the
// result. The sort is stable: elements that compare equal come out in the order
// they went in. Sorting an empty collection fails with [ErrEmptyInput] and
// produces no output; nothing else is an error.
//
// Results come back in the same kind of container as the input:
//
//	out, err := treesort.Slice([]sortable.Int{5, 3, 5, 1, 4})     // []sortable.Int{1, 3, 4, 5, 5}
//	out, err := treesort.Ordered(names)                          // natural order of a []string
//	out, err := treesort.SliceFunc(people, compare.By(Person.Age)) // any ordering function
//	out, err := treesort.Collect[T, C](collection)               // user-defined containers
//
// Each call owns the tree it builds and runs to completion synchronously. Input
// that is already sorted (or reverse sorted) degenerates the tree into a chain;
// that costs O(n^2) comparisons but never exhausts the call stack.
package treesort
