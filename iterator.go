package stablevec

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import "cmp"

// Iterator denotes an element of a vector, or its end position.
//
// An iterator refers to a cell, not to a slot. Arithmetic and comparison
// resolve the cell's current slot first, then offset within the vector's
// index, which keeps all operations O(1). Iterators are small values and are
// meant to be passed by value.
//
// The zero Iterator does not denote anything and must not be used except for
// Valid.
type Iterator[T any] struct {
	c *cell[T]
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[T any] struct {
	c *cell[T]
}

// Const converts it to a read-only iterator denoting the same element.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{c: it.c}
}

// Value returns the element it denotes. Calling Value on End() panics.
func (it Iterator[T]) Value() T {
	return it.c.deref().value
}

// Ptr returns a pointer to the element it denotes. The pointer stays valid
// until the element is erased.
func (it Iterator[T]) Ptr() *T {
	return &it.c.deref().value
}

// Set overwrites the element it denotes.
func (it Iterator[T]) Set(value T) {
	it.c.deref().value = value
}

// At returns the element k positions away from it (it[k]).
func (it Iterator[T]) At(k int) T {
	return it.c.offset(k).deref().value
}

// Add returns an iterator k positions away from it. k may be negative.
func (it Iterator[T]) Add(k int) Iterator[T] {
	return Iterator[T]{c: it.c.offset(k)}
}

// Sub returns an iterator k positions before it.
func (it Iterator[T]) Sub(k int) Iterator[T] {
	return it.Add(-k)
}

// Next returns an iterator to the following position.
func (it Iterator[T]) Next() Iterator[T] {
	return it.Add(1)
}

// Prev returns an iterator to the preceding position.
func (it Iterator[T]) Prev() Iterator[T] {
	return it.Add(-1)
}

// Index returns the position it currently resolves to.
func (it Iterator[T]) Index() int {
	return position(it.c)
}

// Distance returns the signed number of positions from other to it, i.e.
// other.Add(it.Distance(other)) denotes the same position as it.
func (it Iterator[T]) Distance(other Iterator[T]) int {
	return position(it.c) - position(other.c)
}

// AbsDistance returns the number of positions between it and other,
// regardless of their order.
func (it Iterator[T]) AbsDistance(other Iterator[T]) int {
	return absDistance(it.c, other.c)
}

// Compare orders iterators by the positions they resolve to.
func (it Iterator[T]) Compare(other Iterator[T]) int {
	return cmp.Compare(position(it.c), position(other.c))
}

// Less reports whether it resolves to a position before other.
func (it Iterator[T]) Less(other Iterator[T]) bool {
	return it.Compare(other) < 0
}

// Equal reports whether it and other resolve to the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.Compare(other) == 0
}

// IsEnd reports whether it is the past-the-end position of its vector.
func (it Iterator[T]) IsEnd() bool {
	return it.c != nil && it.c.sentinel
}

// Valid reports whether it still denotes a position of a vector. Iterators
// to erased elements and iterators invalidated by Clear, Assign or CopyFrom
// are not valid.
func (it Iterator[T]) Valid() bool {
	return it.c != nil && it.c.owner != nil
}

// --- ConstIterator -----------------------------------------------------------

// Value returns the element it denotes. Calling Value on CEnd() panics.
func (it ConstIterator[T]) Value() T {
	return it.c.deref().value
}

// At returns the element k positions away from it (it[k]).
func (it ConstIterator[T]) At(k int) T {
	return it.c.offset(k).deref().value
}

// Add returns an iterator k positions away from it. k may be negative.
func (it ConstIterator[T]) Add(k int) ConstIterator[T] {
	return ConstIterator[T]{c: it.c.offset(k)}
}

// Sub returns an iterator k positions before it.
func (it ConstIterator[T]) Sub(k int) ConstIterator[T] {
	return it.Add(-k)
}

// Next returns an iterator to the following position.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	return it.Add(1)
}

// Prev returns an iterator to the preceding position.
func (it ConstIterator[T]) Prev() ConstIterator[T] {
	return it.Add(-1)
}

// Index returns the position it currently resolves to.
func (it ConstIterator[T]) Index() int {
	return position(it.c)
}

// Distance returns the signed number of positions from other to it.
func (it ConstIterator[T]) Distance(other ConstIterator[T]) int {
	return position(it.c) - position(other.c)
}

// AbsDistance returns the number of positions between it and other.
func (it ConstIterator[T]) AbsDistance(other ConstIterator[T]) int {
	return absDistance(it.c, other.c)
}

// Compare orders iterators by the positions they resolve to.
func (it ConstIterator[T]) Compare(other ConstIterator[T]) int {
	return cmp.Compare(position(it.c), position(other.c))
}

// Less reports whether it resolves to a position before other.
func (it ConstIterator[T]) Less(other ConstIterator[T]) bool {
	return it.Compare(other) < 0
}

// Equal reports whether it and other resolve to the same position.
func (it ConstIterator[T]) Equal(other ConstIterator[T]) bool {
	return it.Compare(other) == 0
}

// IsEnd reports whether it is the past-the-end position of its vector.
func (it ConstIterator[T]) IsEnd() bool {
	return it.c != nil && it.c.sentinel
}

// Valid reports whether it still denotes a position of a vector.
func (it ConstIterator[T]) Valid() bool {
	return it.c != nil && it.c.owner != nil
}

func position[T any](c *cell[T]) int {
	assert(c != nil, "stablevec: zero iterator has no position")
	assert(c.owner != nil, "stablevec: invalidated iterator has no position")
	return c.pos
}

func absDistance[T any](a, b *cell[T]) int {
	d := position(a) - position(b)
	if d < 0 {
		return -d
	}
	return d
}
