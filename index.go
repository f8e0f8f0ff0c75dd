package stablevec

import "slices"

// Stats counts structural work done by a vector's index.
type Stats struct {
	Reallocs    int // index storage was reallocated
	FullResyncs int // back-references re-synchronized from slot 0
	TailResyncs int // back-references re-synchronized from the edit point
	Touched     int // back-references written in total
}

// index is the reallocatable array of owning cell handles. Its last slot
// always holds the end sentinel.
//
// Handles move on insertion, erasure and reallocation; cells do not. Between
// a handle operation and the following resync, back-references may be stale.
type index[T any] struct {
	cells           []*cell[T]
	fullResync      bool
	shrinkThreshold int
	stats           Stats
}

func (x *index[T]) len() int {
	return len(x.cells)
}

func (x *index[T]) get(i int) *cell[T] {
	return x.cells[i]
}

// insertHandles opens k empty slots at i. It reports whether the storage of
// the index has been reallocated.
func (x *index[T]) insertHandles(i, k int) bool {
	assert(len(x.cells) > 0, "stablevec: index without sentinel")
	assert(i >= 0 && i < len(x.cells), "stablevec: insert position out of range")
	base := &x.cells[0]
	x.cells = slices.Insert(x.cells, i, make([]*cell[T], k)...)
	return x.moved(base)
}

// eraseHandles removes slots [i,j). The sentinel slot cannot be removed.
// It reports whether the storage of the index has been reallocated.
func (x *index[T]) eraseHandles(i, j int) bool {
	assert(i >= 0 && i <= j && j < len(x.cells), "stablevec: erase range out of range")
	base := &x.cells[0]
	x.cells = slices.Delete(x.cells, i, j)
	x.shrink()
	return x.moved(base)
}

func (x *index[T]) moved(base **cell[T]) bool {
	if &x.cells[0] == base {
		return false
	}
	x.stats.Reallocs++
	tracer().Debugf("stablevec: index storage reallocated, len=%d cap=%d", len(x.cells), cap(x.cells))
	return true
}

func (x *index[T]) shrink() {
	if x.shrinkThreshold < 0 || cap(x.cells) < minShrinkCapacity {
		return
	}
	if len(x.cells) >= cap(x.cells)/x.shrinkThreshold {
		return
	}
	shrunk := make([]*cell[T], len(x.cells), 2*len(x.cells))
	copy(shrunk, x.cells)
	x.cells = shrunk
}

// resync re-establishes cell.pos == slot for the slots from `from` to the
// end. After a reallocation, or if the index is configured for full
// re-synchronization, all slots are visited.
func (x *index[T]) resync(from int, realloc bool) {
	if realloc || x.fullResync {
		from = 0
		x.stats.FullResyncs++
	} else {
		x.stats.TailResyncs++
	}
	for i := from; i < len(x.cells); i++ {
		x.cells[i].pos = i
	}
	x.stats.Touched += len(x.cells) - from
}

// adopt re-synchronizes every slot and makes owner the owner of every cell.
// It is used whenever complete cell sets change hands.
func (x *index[T]) adopt(owner *Vector[T]) {
	for i, c := range x.cells {
		c.pos = i
		c.owner = owner
	}
	x.stats.FullResyncs++
	x.stats.Touched += len(x.cells)
}
