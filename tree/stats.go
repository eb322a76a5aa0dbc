package tree

// Stats describes the shape of a tree.
type Stats struct {
	// Size is the number of nodes.
	Size int
	// Depth is the number of nodes on the longest root-to-leaf path.
	// A single node has depth 1.
	Depth int
}

// Balance returns Depth relative to Size: 1.0 for a degenerate chain, close to
// 0 for a large, well-spread tree.
func (s Stats) Balance() float64 {
	if s.Size == 0 {
		return 0
	}

	return float64(s.Depth) / float64(s.Size)
}

type frame[T any] struct {
	node  *Node[T]
	depth int
}

// Stats walks the tree rooted at n and reports its size and depth.
// It does not modify the tree. Time complexity: O(n).
func (n *Node[T]) Stats() Stats {
	var stats Stats

	if n == nil {
		return stats
	}

	work := []frame[T]{{node: n, depth: 1}}

	for len(work) > 0 {
		top := work[len(work)-1]
		work = work[:len(work)-1]

		stats.Size++
		stats.Depth = max(stats.Depth, top.depth)

		if top.node.lesser != nil {
			work = append(work, frame[T]{node: top.node.lesser, depth: top.depth + 1})
		}

		if top.node.greater != nil {
			work = append(work, frame[T]{node: top.node.greater, depth: top.depth + 1})
		}
	}

	return stats
}

// Size returns the number of nodes in the tree rooted at n.
func (n *Node[T]) Size() int {
	return n.Stats().Size
}

// Depth returns the number of nodes on the longest path from n to a leaf.
func (n *Node[T]) Depth() int {
	return n.Stats().Depth
}
