package vector

import (
	"cmp"
	"slices"
)

// Equal reports whether a and b have the same length and pairwise equal
// elements. A nil vector equals an empty one.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// NotEqual is !Equal(a, b).
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}

// Less reports whether a orders before b lexicographically. Only the <
// operator is applied to elements; a proper prefix orders first.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	as, bs := a.Slice(), b.Slice()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] < bs[i] {
			return true
		}
		if bs[i] < as[i] {
			return false
		}
	}
	return len(as) < len(bs)
}

// LessOrEqual is !Less(b, a).
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater is Less(b, a).
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual is !Less(a, b).
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// Compare returns -1, 0 or +1 by lexicographic order, using cmp.Compare
// on elements.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return slices.Compare(a.Slice(), b.Slice())
}

// CompareFunc is Compare with a caller-supplied element comparison.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], compare func(T, U) int) int {
	return slices.CompareFunc(a.Slice(), b.Slice(), compare)
}
