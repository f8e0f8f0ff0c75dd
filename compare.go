package stablevec

import "cmp"

// CompareFunc compares two vectors lexicographically, using cmp to compare
// elements. It returns -1, 0 or +1.
func CompareFunc[T, U any](a *Vector[T], b *Vector[U], cmp func(T, U) int) int {
	n, m := a.Len(), b.Len()
	for i := 0; i < n && i < m; i++ {
		if c := cmp(a.idx.cells[i].value, b.idx.cells[i].value); c != 0 {
			return c
		}
	}
	switch {
	case n < m:
		return -1
	case n > m:
		return +1
	}
	return 0
}

// Compare compares two vectors of ordered elements lexicographically.
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// Less reports whether a sorts lexicographically before b.
func Less[T cmp.Ordered](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// LessOrEqual reports whether a does not sort after b.
func LessOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(b, a)
}

// Greater reports whether a sorts lexicographically after b.
func Greater[T cmp.Ordered](a, b *Vector[T]) bool {
	return Less(b, a)
}

// GreaterOrEqual reports whether a does not sort before b.
func GreaterOrEqual[T cmp.Ordered](a, b *Vector[T]) bool {
	return !Less(a, b)
}

// EqualFunc reports whether a and b have the same length and eq holds for
// every pair of elements at equal positions.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.idx.cells[i].value, b.idx.cells[i].value) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b hold equal elements in equal order.
//
// Equality is element-wise ==. For floating point elements this differs from
// ordering-derived equivalence: vectors containing NaN are never Equal, but
// may be Equivalent.
func Equal[T comparable](a, b *Vector[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// NotEqual is the negation of Equal.
func NotEqual[T comparable](a, b *Vector[T]) bool {
	return !Equal(a, b)
}

// Equivalent reports whether neither vector sorts before the other, given a
// strict weak ordering less on the elements.
func Equivalent[T any](a, b *Vector[T], less func(T, T) bool) bool {
	order := func(x, y T) int {
		switch {
		case less(x, y):
			return -1
		case less(y, x):
			return +1
		}
		return 0
	}
	return CompareFunc(a, b, order) == 0
}
