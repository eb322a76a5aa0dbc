// Package compare provides utilities for comparing values.
package compare

import "cmp"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Comparator is implemented by types that can order themselves against a value of type U.
// Compare returns a negative number if the receiver is less than other, zero if they are
// equal, and a positive number if the receiver is greater. Usually U is the implementing
// type itself (T implements Comparator[T]), but nothing stops a type from ordering itself
// against something else.
//
// The ordering should be consistent (antisymmetric and transitive). Nothing enforces that;
// an inconsistent Compare produces an unspecified ordering, never a panic.
type Comparator[U any] interface {
	Compare(other U) int
}

// Func is the function form of a three-way comparison. It follows the same
// sign convention as Comparator.Compare and cmp.Compare.
type Func[T any] func(a, b T) int

// Of returns the Func for a type that implements Comparator over itself.
func Of[T Comparator[T]]() Func[T] {
	return func(a, b T) int {
		return a.Compare(b)
	}
}

// Natural returns the Func for the natural ordering of an ordered type.
func Natural[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// Reverse returns a Func that orders values the opposite way to f.
func Reverse[T any](f Func[T]) Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}

// By returns a Func that orders values of type T by a key extracted from them.
func By[T any, K cmp.Ordered](key func(T) K) Func[T] {
	return func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Sign normalizes the result of a comparison to -1, 0 or 1.
func Sign(result int) int {
	switch {
	case result < 0:
		return -1
	case result > 0:
		return 1
	default:
		return 0
	}
}
