package stablevec

// slotOf resolves pos to its slot in v's index.
func (v *Vector[T]) slotOf(pos ConstIterator[T]) int {
	assert(pos.c != nil, "stablevec: zero iterator used as position")
	assert(pos.c.owner == v, "stablevec: iterator does not belong to vector")
	return pos.c.pos
}

// Clear erases all elements. Every iterator to an element of v is
// invalidated; v keeps its configuration.
func (v *Vector[T]) Clear() {
	v.init()
	tracer().Debugf("stablevec: clear %d elements", v.Len())
	v.destroy()
	v.reset()
}

// Insert inserts value in front of pos and returns an iterator to the new
// element. Iterators to other elements stay valid.
func (v *Vector[T]) Insert(pos ConstIterator[T], value T) Iterator[T] {
	v.init()
	i := v.slotOf(pos)
	c := v.newCell(value, i)
	realloc := v.idx.insertHandles(i, 1)
	v.idx.cells[i] = c
	v.idx.resync(i, realloc)
	return Iterator[T]{c: c}
}

// InsertAt inserts value at position i, 0 ≤ i ≤ Len().
func (v *Vector[T]) InsertAt(i int, value T) Iterator[T] {
	return v.Insert(v.IteratorAt(i).Const(), value)
}

// InsertN inserts n copies of value in front of pos and returns an iterator
// to the first new element, or pos if n is 0.
func (v *Vector[T]) InsertN(pos ConstIterator[T], n int, value T) Iterator[T] {
	assert(n >= 0, "stablevec.InsertN: negative count")
	values := make([]T, n)
	for k := range values {
		values[k] = value
	}
	return v.splice(v.slotOf(pos), values)
}

// InsertSlice inserts copies of values in front of pos and returns an
// iterator to the first new element, or pos if values is empty.
func (v *Vector[T]) InsertSlice(pos ConstIterator[T], values ...T) Iterator[T] {
	v.init()
	i := v.slotOf(pos)
	return v.splice(i, append([]T(nil), values...))
}

// InsertRange inserts copies of the elements in [first,last) in front of pos
// and returns an iterator to the first new element, or pos if the range is
// empty. The range may be part of v itself.
func (v *Vector[T]) InsertRange(pos ConstIterator[T], first, last ConstIterator[T]) Iterator[T] {
	v.init()
	i := v.slotOf(pos)
	tmp := FromRange(first, last)
	return v.splice(i, tmp.ToSlice())
}

// splice creates one cell per value and inserts their handles at slot i in
// one index operation.
func (v *Vector[T]) splice(i int, values []T) Iterator[T] {
	if len(values) == 0 {
		return Iterator[T]{c: v.idx.get(i)}
	}
	realloc := v.idx.insertHandles(i, len(values))
	for k, value := range values {
		v.idx.cells[i+k] = v.newCell(value, i+k)
	}
	v.idx.resync(i, realloc)
	return Iterator[T]{c: v.idx.get(i)}
}

// Erase removes the element at pos and returns an iterator to the element
// now occupying its position (possibly End()). Iterators to pos are
// invalidated, iterators to other elements stay valid.
func (v *Vector[T]) Erase(pos ConstIterator[T]) Iterator[T] {
	v.init()
	i := v.slotOf(pos)
	c := v.idx.get(i)
	assert(!c.sentinel, "stablevec: cannot erase end()")
	realloc := v.idx.eraseHandles(i, i+1)
	c.detach()
	v.idx.resync(i, realloc)
	return Iterator[T]{c: v.idx.get(i)}
}

// EraseAt removes the element at position i.
func (v *Vector[T]) EraseAt(i int) Iterator[T] {
	return v.Erase(v.IteratorAt(i).Const())
}

// EraseRange removes the elements in [first,last) and returns an iterator to
// the element now occupying the position of first.
func (v *Vector[T]) EraseRange(first, last ConstIterator[T]) Iterator[T] {
	v.init()
	i, j := v.slotOf(first), v.slotOf(last)
	assert(i <= j, "stablevec: erase range is reversed")
	if i == j {
		return Iterator[T]{c: v.idx.get(i)}
	}
	erased := append([]*cell[T](nil), v.idx.cells[i:j]...)
	realloc := v.idx.eraseHandles(i, j)
	for _, c := range erased {
		c.detach()
	}
	v.idx.resync(i, realloc)
	return Iterator[T]{c: v.idx.get(i)}
}

// PushBack appends value.
func (v *Vector[T]) PushBack(value T) {
	v.Insert(v.CEnd(), value)
}

// PopBack removes the last element. v must not be empty.
func (v *Vector[T]) PopBack() {
	assert(v.Len() > 0, "stablevec: PopBack on empty vector")
	v.Erase(v.CEnd().Prev())
}

// Resize grows v with zero values or shrinks it from the back until it holds
// n elements.
func (v *Vector[T]) Resize(n int) {
	var zero T
	v.ResizeFill(n, zero)
}

// ResizeFill grows v with copies of value or shrinks it from the back until
// it holds n elements.
//
// Every single append or removal does its own re-synchronization; elements
// are not added or removed in bulk.
func (v *Vector[T]) ResizeFill(n int, value T) {
	assert(n >= 0, "stablevec.Resize: negative length")
	for v.Len() < n {
		v.PushBack(value)
	}
	for v.Len() > n {
		v.PopBack()
	}
}

// Assign replaces the contents of v by n copies of value. All iterators of v
// are invalidated.
func (v *Vector[T]) Assign(n int, value T) {
	tracer().Debugf("stablevec: assign %d copies", n)
	v.replace(Filled(n, value))
}

// AssignSlice replaces the contents of v by copies of values. All iterators
// of v are invalidated.
func (v *Vector[T]) AssignSlice(values []T) {
	tracer().Debugf("stablevec: assign %d values", len(values))
	v.replace(FromSlice(values))
}

// AssignRange replaces the contents of v by copies of the elements in
// [first,last). The range may be part of v itself. All iterators of v are
// invalidated.
func (v *Vector[T]) AssignRange(first, last ConstIterator[T]) {
	v.replace(FromRange(first, last))
}

// Swap exchanges the contents of v and other. Iterators stay valid, but
// denote elements of the other vector afterwards.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if other == v {
		return
	}
	v.init()
	other.init()
	tracer().Debugf("stablevec: swap %d and %d elements", v.Len(), other.Len())
	v.idx.cells, other.idx.cells = other.idx.cells, v.idx.cells
	v.idx.adopt(v)
	other.idx.adopt(other)
}
