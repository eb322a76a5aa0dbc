package tree

import (
	"iter"

	"github.com/amp-labs/treesort/compare"
)

// Node is a single vertex of the tree. It owns its value and, exclusively,
// its two subtrees. A child slot is filled at most once and never cleared
// while the tree is being built.
type Node[T any] struct {
	value   T
	lesser  *Node[T]
	greater *Node[T]
}

// New returns a leaf node holding value.
func New[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value held by this node.
func (n *Node[T]) Value() T { //nolint:ireturn
	return n.value
}

// Lesser returns the root of the lesser subtree, or nil.
func (n *Node[T]) Lesser() *Node[T] {
	return n.lesser
}

// Greater returns the root of the greater subtree, or nil.
func (n *Node[T]) Greater() *Node[T] {
	return n.greater
}

// Insert places value in the tree rooted at n. It compares value against each
// node on the way down, going to the lesser side only when value compares
// strictly less, and attaches a new leaf at the first empty slot.
// Time complexity: O(depth).
func (n *Node[T]) Insert(value T, cmp compare.Func[T]) {
	current := n

	for {
		if cmp(value, current.value) < 0 {
			if current.lesser == nil {
				current.lesser = New(value)

				return
			}

			current = current.lesser
		} else {
			if current.greater == nil {
				current.greater = New(value)

				return
			}

			current = current.greater
		}
	}
}

// Build roots a tree at the first value of values and inserts the remaining
// values in order. It returns false if values produced nothing.
func Build[T any](values iter.Seq[T], cmp compare.Func[T]) (*Node[T], bool) {
	var root *Node[T]

	for value := range values {
		if root == nil {
			root = New(value)

			continue
		}

		root.Insert(value, cmp)
	}

	return root, root != nil
}
