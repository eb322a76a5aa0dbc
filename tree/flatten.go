package tree

import "iter"

// Flatten returns the values of the tree rooted at root in in-order sequence:
// lesser subtree, node, greater subtree.
//
// The traversal takes ownership of the tree. Nodes are unlinked as their values
// are emitted, and stopping the iteration early discards whatever was not yet
// visited. The returned sequence is single-use: ranging over it a second time
// yields nothing. The traversal uses a heap-allocated stack, so a degenerate
// tree of any depth is safe to flatten.
func Flatten[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		current := root
		root = nil

		var stack []*Node[T]

		for current != nil || len(stack) > 0 {
			// Walk down the lesser chain, unlinking as we go.
			for current != nil {
				next := current.lesser
				current.lesser = nil
				stack = append(stack, current)
				current = next
			}

			node := stack[len(stack)-1]
			stack[len(stack)-1] = nil
			stack = stack[:len(stack)-1]

			current = node.greater
			node.greater = nil

			if !yield(node.value) {
				return
			}
		}
	}
}
