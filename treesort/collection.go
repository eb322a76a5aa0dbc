package treesort

import (
	"iter"

	"github.com/amp-labs/treesort/compare"
)

// Collection is a container that can list its elements and build another
// container of its own kind from a sequence. Implementing it lets Collect
// return sorted results in the caller's container type.
type Collection[T any, C any] interface {
	// All yields the elements in their current order.
	All() iter.Seq[T]
	// FromSeq returns a new container holding the values of seq, in order.
	FromSeq(seq iter.Seq[T]) C
}

// CollectFunc sorts the elements of c by cmp into a new container built with c.FromSeq.
// The type arguments usually have to be spelled out:
//
//	sorted, err := treesort.CollectFunc[Task, *TaskList](tasks, byPriority)
func CollectFunc[T any, C any](c Collection[T, C], cmp compare.Func[T]) (C, error) {
	return SortFunc(c.All(), cmp, c.FromSeq)
}

// Collect is CollectFunc for element types that order themselves.
func Collect[T compare.Comparator[T], C any](c Collection[T, C]) (C, error) {
	return CollectFunc(c, compare.Of[T]())
}
