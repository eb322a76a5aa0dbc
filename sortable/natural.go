package sortable

import "facette.io/natsort"

// Natural is a string that sorts in natural order: runs of digits are compared
// by numeric value, so "file2" sorts before "file10".
//
// Example:
//
//	sorted, _ := treesort.Slice([]sortable.Natural{"v10", "v9", "v1"})
//	// sorted is [v1 v9 v10]
type Natural string

var _ Sortable[Natural] = (*Natural)(nil)

func (n Natural) Equals(other Natural) bool {
	return string(n) == string(other)
}

func (n Natural) LessThan(other Natural) bool {
	return n.Compare(other) < 0
}

// Compare returns 0 only for identical strings. Strings that natsort cannot tell
// apart (e.g. "a01" and "a1") fall back to byte-wise order.
func (n Natural) Compare(other Natural) int {
	if n == other {
		return 0
	}

	less := natsort.Compare(string(n), string(other))
	greater := natsort.Compare(string(other), string(n))

	switch {
	case less && !greater:
		return -1
	case greater && !less:
		return 1
	case n < other:
		return -1
	default:
		return 1
	}
}
