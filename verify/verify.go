// Package verify holds diagnostics for checking the output of a sort: whether a
// sequence is in order, and whether a result is a rearrangement of its input.
// None of it is needed to sort; it backs the tests and the demonstration driver.
package verify

import (
	"fmt"
	"iter"
	"slices"

	"github.com/amp-labs/treesort/compare"
	"github.com/amp-labs/treesort/errors"
)

// IsSorted reports whether every element of seq compares greater than or equal
// to the one before it. Sequences of zero or one element are sorted.
func IsSorted[T compare.Comparator[T]](seq iter.Seq[T]) bool {
	return IsSortedFunc(seq, compare.Of[T]())
}

// IsSortedFunc is IsSorted with an explicit ordering function.
func IsSortedFunc[T any](seq iter.Seq[T], cmp compare.Func[T]) bool {
	return firstUnsorted(seq, cmp) < 0
}

// firstUnsorted returns the index of the first element that compares less than
// its predecessor, or -1.
func firstUnsorted[T any](seq iter.Seq[T], cmp compare.Func[T]) int {
	var prev T

	i := 0

	for v := range seq {
		if i > 0 && cmp(v, prev) < 0 {
			return i
		}

		prev = v
		i++
	}

	return -1
}

// Ordered returns an ErrNotSorted error naming the first out-of-order index,
// or nil when s is sorted.
func Ordered[T any](s []T, cmp compare.Func[T]) error {
	if i := firstUnsorted(slices.Values(s), cmp); i >= 0 {
		return fmt.Errorf("%w: element %d (%v) is less than element %d (%v)",
			errors.ErrNotSorted, i, s[i], i-1, s[i-1])
	}

	return nil
}

// Permutation returns nil when output holds exactly the same values as input,
// counting duplicates, in any order.
func Permutation[T comparable](input, output []T) error {
	if len(input) != len(output) {
		return fmt.Errorf("%w: input has %d elements, output has %d",
			errors.ErrLengthMismatch, len(input), len(output))
	}

	counts := make(map[T]int, len(input))

	for _, v := range input {
		counts[v]++
	}

	for _, v := range output {
		counts[v]--

		if counts[v] < 0 {
			return fmt.Errorf("%w: %v appears more often in the output than in the input",
				errors.ErrMultisetMismatch, v)
		}
	}

	return nil
}

// Check runs every check on a sort result and reports all violations at once.
func Check[T comparable](input, output []T, cmp compare.Func[T]) error {
	errs := &errors.Collection{}

	errs.Add(Permutation(input, output))
	errs.Add(Ordered(output, cmp))

	return errs.GetError()
}
