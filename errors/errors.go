// Package errors holds the sentinel errors shared by the sort packages and a
// small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrEmptyInput is returned when asked to sort a collection with no elements.
	// A tree needs at least one value to be rooted.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotSorted is reported when a sequence is not in non-decreasing order.
	ErrNotSorted = errors.New("sequence is not sorted")

	// ErrLengthMismatch is reported when a sort result has a different length than its input.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrMultisetMismatch is reported when a sort result does not hold the same values as its input.
	ErrMultisetMismatch = errors.New("multiset mismatch")
)

// Collection accumulates errors so a check can report every violation it
// finds instead of stopping at the first. It is not safe for concurrent use.
type Collection struct {
	errors []error
}

// Add appends err. Nil errors are ignored, so results can be added unconditionally.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError reports whether anything has been collected.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// GetError returns nil for an empty collection, the error itself when there is
// exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
