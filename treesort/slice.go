package treesort

import (
	"cmp"
	"iter"
	"slices"

	"github.com/amp-labs/treesort/compare"
	"github.com/amp-labs/treesort/tree"
)

// SliceFunc returns a sorted copy of s ordered by cmpFn. The result has the
// same slice type as s, and s itself is left untouched.
func SliceFunc[S ~[]T, T any](s S, cmpFn compare.Func[T]) (S, error) {
	return SortFunc(slices.Values(s), cmpFn, func(sorted iter.Seq[T]) S {
		return slices.AppendSeq(make(S, 0, len(s)), sorted)
	})
}

// Slice returns a sorted copy of s for element types that order themselves.
func Slice[S ~[]T, T compare.Comparator[T]](s S) (S, error) {
	return SliceFunc(s, compare.Of[T]())
}

// Ordered returns a sorted copy of s in the natural order of its elements.
func Ordered[S ~[]T, T cmp.Ordered](s S) (S, error) {
	return SliceFunc(s, compare.Natural[T]())
}

// ProfileFunc is SliceFunc that also reports the shape of the tree the sort
// built, which shows how far the input was from the degenerate (presorted) case.
func ProfileFunc[S ~[]T, T any](s S, cmpFn compare.Func[T]) (S, tree.Stats, error) {
	root, ok := tree.Build(slices.Values(s), cmpFn)
	if !ok {
		return nil, tree.Stats{}, ErrEmptyInput
	}

	stats := root.Stats()

	return slices.AppendSeq(make(S, 0, len(s)), tree.Flatten(root)), stats, nil
}
