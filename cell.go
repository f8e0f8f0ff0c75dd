package stablevec

// cell is the heap-stable home of a single element.
//
// A cell is exclusively owned by the vector whose index holds it. pos is the
// back-reference to the index slot holding the cell. Cells are never copied;
// erasing an element detaches its cell (owner == nil, pos == -1).
type cell[T any] struct {
	value    T
	pos      int
	owner    *Vector[T]
	sentinel bool
}

// deref checks that the cell may be dereferenced, i.e. it is a live element
// cell and not the end sentinel.
func (c *cell[T]) deref() *cell[T] {
	assert(c != nil, "stablevec: dereferencing a zero iterator")
	assert(c.owner != nil, "stablevec: dereferencing an invalidated iterator")
	assert(!c.sentinel, "stablevec: dereferencing end()")
	return c
}

// offset returns the cell k slots away from c in the owner's index.
func (c *cell[T]) offset(k int) *cell[T] {
	assert(c != nil, "stablevec: arithmetic on a zero iterator")
	assert(c.owner != nil, "stablevec: arithmetic on an invalidated iterator")
	i := c.pos + k
	cells := c.owner.idx.cells
	assert(i >= 0 && i < len(cells), "stablevec: iterator moved out of range")
	return cells[i]
}

func (c *cell[T]) detach() {
	var zero T
	c.value = zero
	c.pos = -1
	c.owner = nil
}
