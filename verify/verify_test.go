package verify

import (
	"slices"
	"testing"

	"github.com/amp-labs/treesort/compare"
	"github.com/amp-labs/treesort/errors"
	"github.com/amp-labs/treesort/sortable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSorted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []sortable.Int
		expected bool
	}{
		{name: "empty", input: nil, expected: true},
		{name: "single element", input: []sortable.Int{3}, expected: true},
		{name: "ascending", input: []sortable.Int{1, 2, 3}, expected: true},
		{name: "ascending with duplicates", input: []sortable.Int{1, 1, 2, 2}, expected: true},
		{name: "descending pair", input: []sortable.Int{2, 1}, expected: false},
		{name: "unsorted tail", input: []sortable.Int{1, 2, 3, 0}, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, IsSorted(slices.Values(tt.input)))
		})
	}
}

func TestIsSortedFunc(t *testing.T) {
	t.Parallel()

	desc := compare.Reverse(compare.Natural[int]())

	assert.True(t, IsSortedFunc(slices.Values([]int{3, 2, 2, 1}), desc))
	assert.False(t, IsSortedFunc(slices.Values([]int{1, 2}), desc))
}

func TestOrdered(t *testing.T) {
	t.Parallel()

	natural := compare.Natural[int]()

	require.NoError(t, Ordered([]int{1, 2, 2, 5}, natural))
	require.NoError(t, Ordered([]int{}, natural))

	err := Ordered([]int{1, 4, 3}, natural)
	require.ErrorIs(t, err, errors.ErrNotSorted)
	assert.Contains(t, err.Error(), "element 2 (3) is less than element 1 (4)")
}

func TestPermutation(t *testing.T) {
	t.Parallel()

	t.Run("same values in another order", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, Permutation([]int{3, 1, 3, 2}, []int{1, 2, 3, 3}))
	})

	t.Run("different lengths", func(t *testing.T) {
		t.Parallel()

		err := Permutation([]int{1, 2}, []int{1})
		require.ErrorIs(t, err, errors.ErrLengthMismatch)
	})

	t.Run("duplicate swapped for another value", func(t *testing.T) {
		t.Parallel()

		err := Permutation([]int{1, 2, 2}, []int{1, 1, 2})
		require.ErrorIs(t, err, errors.ErrMultisetMismatch)
		assert.NotErrorIs(t, err, errors.ErrLengthMismatch)
	})
}

func TestCheck(t *testing.T) {
	t.Parallel()

	natural := compare.Natural[int]()

	t.Run("valid result", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, Check([]int{2, 1, 2}, []int{1, 2, 2}, natural))
	})

	t.Run("reports every violation", func(t *testing.T) {
		t.Parallel()

		err := Check([]int{2, 1, 3}, []int{3, 1}, natural)
		require.ErrorIs(t, err, errors.ErrLengthMismatch)
		require.ErrorIs(t, err, errors.ErrNotSorted)
	})

	t.Run("single violation", func(t *testing.T) {
		t.Parallel()

		err := Check([]int{2, 1}, []int{2, 1}, natural)
		require.ErrorIs(t, err, errors.ErrNotSorted)
		assert.NotErrorIs(t, err, errors.ErrMultisetMismatch)
	})
}
