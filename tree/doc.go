// Package tree implements the unbalanced binary search tree behind the tree sort.
//
// A tree is rooted at the first value inserted. Every later value walks down from
// the root: values that compare less than a node go to its lesser subtree, values
// that compare equal or greater go to its greater subtree. Nothing is ever
// rebalanced, so the shape of the tree is a direct function of insertion order.
// Already-sorted input produces a chain as deep as the input is long; that is an
// accepted characteristic of the algorithm, and both insertion and traversal are
// written as loops with explicit work lists so a deep chain never grows the call stack.
//
// Because equal values always go right, and the in-order traversal visits a node
// before anything in its greater subtree, values that compare equal come out in
// the order they were inserted. The sort is stable.
//
// Flatten consumes the tree: nodes are detached as they are emitted, and a tree
// cannot be traversed twice.
package tree
