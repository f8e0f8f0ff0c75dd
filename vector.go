package stablevec

/*
BSD 3-Clause License

Copyright (c) 2026, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"iter"
)

// Vector is a random-access sequence whose elements never move in memory.
//
// A vector created by
//
//	Vector[T]{}
//
// is a valid object and behaves like an empty vector with default
// configuration. Vectors must not be copied by value after first use; use
// Clone or CopyFrom instead.
type Vector[T any] struct {
	idx index[T]
	cfg Config
}

// New creates an empty vector.
//
// Invalid options trigger an assertion panic; use NewWith to get an error
// instead.
func New[T any](opts ...Option) *Vector[T] {
	cfg, err := configure(opts)
	assert(err == nil, "stablevec.New: invalid options")
	return newVector[T](cfg)
}

// NewWith creates an empty vector with a validated configuration.
func NewWith[T any](cfg Config) (*Vector[T], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return newVector[T](cfg.normalized()), nil
}

// Filled creates a vector of n copies of value.
func Filled[T any](n int, value T, opts ...Option) *Vector[T] {
	assert(n >= 0, "stablevec.Filled: negative length")
	v := New[T](opts...)
	v.build(func(yield func(T) bool) {
		for range n {
			if !yield(value) {
				return
			}
		}
	})
	return v
}

// Make creates a vector of n zero values.
func Make[T any](n int, opts ...Option) *Vector[T] {
	var zero T
	return Filled(n, zero, opts...)
}

// FromSlice creates a vector holding copies of values, in order.
func FromSlice[T any](values []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.build(func(yield func(T) bool) {
		for _, value := range values {
			if !yield(value) {
				return
			}
		}
	})
	return v
}

// FromSeq creates a vector from the values of a sequence, in order.
func FromSeq[T any](seq iter.Seq[T], opts ...Option) *Vector[T] {
	v := New[T](opts...)
	if seq != nil {
		v.build(seq)
	}
	return v
}

// FromRange creates a vector holding copies of the elements in [first,last).
// first and last must denote positions of the same vector, first not behind
// last.
func FromRange[T any](first, last ConstIterator[T], opts ...Option) *Vector[T] {
	v := New[T](opts...)
	v.build(rangeSeq(first, last))
	return v
}

func newVector[T any](cfg Config) *Vector[T] {
	v := &Vector[T]{cfg: cfg}
	v.reset()
	return v
}

// init lazily sets up a zero value vector.
func (v *Vector[T]) init() {
	if v.idx.cells == nil {
		v.cfg = v.cfg.normalized()
		v.reset()
	}
}

// reset installs an empty index holding just a fresh sentinel. Cells held
// before are not touched.
func (v *Vector[T]) reset() {
	cells := make([]*cell[T], 1, v.cfg.Capacity+1)
	cells[0] = &cell[T]{pos: 0, owner: v, sentinel: true}
	v.idx.cells = cells
	v.idx.fullResync = v.cfg.FullResync
	v.idx.shrinkThreshold = v.cfg.ShrinkThreshold
}

// build appends one cell per value in front of the sentinel. Back-references
// are set on creation.
func (v *Vector[T]) build(seq iter.Seq[T]) {
	v.init()
	sentinel := v.idx.cells[len(v.idx.cells)-1]
	cells := v.idx.cells[:len(v.idx.cells)-1]
	for value := range seq {
		cells = append(cells, v.newCell(value, len(cells)))
	}
	sentinel.pos = len(cells)
	v.idx.cells = append(cells, sentinel)
}

func (v *Vector[T]) newCell(value T, pos int) *cell[T] {
	return &cell[T]{value: value, pos: pos, owner: v}
}

// Clone returns a deep copy of v. Elements are copied by assignment into
// freshly allocated cells; no cell is shared between v and the clone.
func (v *Vector[T]) Clone() *Vector[T] {
	v.init()
	w := newVector[T](v.cfg)
	w.build(v.Values())
	return w
}

// CopyFrom replaces the contents of v by copies of the elements of src.
// All iterators of v are invalidated.
func (v *Vector[T]) CopyFrom(src *Vector[T]) {
	if src == v {
		return
	}
	v.replace(src.Clone())
}

// replace makes the cells of fresh the cells of v, destroying the cells v
// held before. fresh must not be used afterwards.
func (v *Vector[T]) replace(fresh *Vector[T]) {
	v.init()
	v.destroy()
	v.idx.cells = fresh.idx.cells
	fresh.idx.cells = nil
	v.idx.adopt(v)
}

// destroy detaches every cell including the sentinel.
func (v *Vector[T]) destroy() {
	for _, c := range v.idx.cells {
		c.detach()
	}
	v.idx.cells = nil
}

// --- Capacity and element access -------------------------------------------

// Len returns the number of elements in v.
func (v *Vector[T]) Len() int {
	if v == nil || len(v.idx.cells) == 0 {
		return 0
	}
	return len(v.idx.cells) - 1
}

// Empty reports whether v holds no elements.
func (v *Vector[T]) Empty() bool {
	return v.Len() == 0
}

// Get returns the element at position i. i is not range checked beyond what
// the runtime does; use At for checked access.
func (v *Vector[T]) Get(i int) T {
	return v.idx.get(i).deref().value
}

// Ref returns a pointer to the element at position i. The pointer stays valid
// until that element is erased.
func (v *Vector[T]) Ref(i int) *T {
	return &v.idx.get(i).deref().value
}

// Set overwrites the element at position i.
func (v *Vector[T]) Set(i int, value T) {
	v.idx.get(i).deref().value = value
}

// At returns the element at position pos, or ErrOutOfRange if pos is not a
// valid element position.
func (v *Vector[T]) At(pos int) (T, error) {
	if pos < 0 || pos >= v.Len() {
		var zero T
		return zero, fmt.Errorf("%w: position %d, length %d", ErrOutOfRange, pos, v.Len())
	}
	return v.idx.get(pos).value, nil
}

// Front returns the first element. v must not be empty.
func (v *Vector[T]) Front() T {
	v.init()
	return v.idx.get(0).deref().value
}

// Back returns the last element. v must not be empty.
func (v *Vector[T]) Back() T {
	assert(v.Len() > 0, "stablevec: Back on empty vector")
	return v.idx.get(v.Len() - 1).value
}

// --- Iteration ---------------------------------------------------------------

// Begin returns an iterator to the first element, or End() if v is empty.
func (v *Vector[T]) Begin() Iterator[T] {
	v.init()
	return Iterator[T]{c: v.idx.get(0)}
}

// End returns the past-the-end iterator. It must not be dereferenced.
func (v *Vector[T]) End() Iterator[T] {
	v.init()
	return Iterator[T]{c: v.idx.get(v.idx.len() - 1)}
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T]) CBegin() ConstIterator[T] {
	return v.Begin().Const()
}

// CEnd returns the read-only past-the-end iterator.
func (v *Vector[T]) CEnd() ConstIterator[T] {
	return v.End().Const()
}

// IteratorAt returns an iterator to position i, 0 ≤ i ≤ Len().
func (v *Vector[T]) IteratorAt(i int) Iterator[T] {
	v.init()
	assert(i >= 0 && i < v.idx.len(), "stablevec: IteratorAt out of range")
	return Iterator[T]{c: v.idx.get(i)}
}

// All iterates over positions and elements, front to back.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.idx.cells[i].value) {
				return
			}
		}
	}
}

// Backward iterates over positions and elements, back to front.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.idx.cells[i].value) {
				return
			}
		}
	}
}

// Values iterates over the elements, front to back.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.idx.cells[i].value) {
				return
			}
		}
	}
}

// ToSlice returns the elements of v as a newly allocated slice.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, 0, v.Len())
	for value := range v.Values() {
		out = append(out, value)
	}
	return out
}

// Stats returns counters for the structural work v has done so far.
func (v *Vector[T]) Stats() Stats {
	return v.idx.stats
}

// rangeSeq iterates over the elements in [first,last).
func rangeSeq[T any](first, last ConstIterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if first.c == nil || last.c == nil {
			return
		}
		assert(first.c.owner == last.c.owner, "stablevec: iterator range spans two vectors")
		assert(first.c.pos <= last.c.pos, "stablevec: iterator range is reversed")
		for it := first; it.c.pos < last.c.pos; it = it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
