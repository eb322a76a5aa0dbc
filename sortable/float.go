package sortable

import "cmp"

// Float is a sortable wrapper type for float64.
// NaN sorts before every other value and equals itself, as with cmp.Compare,
// so slices holding NaNs still come back in a consistent order.
type Float float64

var _ Sortable[Float] = (*Float)(nil)

func (f Float) Equals(other Float) bool {
	return f.Compare(other) == 0
}

func (f Float) LessThan(other Float) bool {
	return cmp.Less(float64(f), float64(other))
}

func (f Float) Compare(other Float) int {
	return cmp.Compare(float64(f), float64(other))
}
