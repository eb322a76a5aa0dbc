package treesort

import (
	"iter"

	"github.com/amp-labs/treesort/compare"
	"github.com/amp-labs/treesort/errors"
	"github.com/amp-labs/treesort/tree"
)

// ErrEmptyInput is returned when there is nothing to sort.
var ErrEmptyInput = errors.ErrEmptyInput

// SeqFunc builds a tree from input ordered by cmp and returns the lazy,
// single-use, in-order sequence of its values.
func SeqFunc[T any](input iter.Seq[T], cmp compare.Func[T]) (iter.Seq[T], error) {
	root, ok := tree.Build(input, cmp)
	if !ok {
		return nil, ErrEmptyInput
	}

	return tree.Flatten(root), nil
}

// Seq is SeqFunc for element types that order themselves.
func Seq[T compare.Comparator[T]](input iter.Seq[T]) (iter.Seq[T], error) {
	return SeqFunc(input, compare.Of[T]())
}

// SortFunc sorts input by cmp and hands the sorted sequence to collect, which
// builds the output container. On empty input collect is never called and the
// zero C is returned along with ErrEmptyInput.
func SortFunc[T any, C any](input iter.Seq[T], cmp compare.Func[T], collect func(iter.Seq[T]) C) (C, error) {
	sorted, err := SeqFunc(input, cmp)
	if err != nil {
		var empty C

		return empty, err
	}

	return collect(sorted), nil
}

// Sort is SortFunc for element types that order themselves.
func Sort[T compare.Comparator[T], C any](input iter.Seq[T], collect func(iter.Seq[T]) C) (C, error) {
	return SortFunc(input, compare.Of[T](), collect)
}
