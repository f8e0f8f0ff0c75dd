package stablevec

import "fmt"

// Check validates the structural invariants of v:
//
//   - the index holds Len()+1 cells,
//   - the last cell is the end sentinel, and no other cell is,
//   - every cell's back-reference resolves to the slot holding it,
//   - every cell is owned by v.
//
// This checker is meant to be used in tests.
func (v *Vector[T]) Check() error {
	if v == nil {
		return fmt.Errorf("%w: nil vector", ErrInconsistent)
	}
	if v.idx.cells == nil {
		return nil // zero value, not yet initialized
	}
	n := len(v.idx.cells)
	if n == 0 {
		return fmt.Errorf("%w: index without sentinel", ErrInconsistent)
	}
	for i, c := range v.idx.cells {
		if err := checkCell(v, c, i, n); err != nil {
			return err
		}
	}
	return nil
}

func checkCell[T any](v *Vector[T], c *cell[T], slot, n int) error {
	if c == nil {
		return fmt.Errorf("%w: nil cell at slot %d", ErrInconsistent, slot)
	}
	if c.sentinel != (slot == n-1) {
		if c.sentinel {
			return fmt.Errorf("%w: sentinel at slot %d of %d", ErrInconsistent, slot, n)
		}
		return fmt.Errorf("%w: last slot %d holds an element", ErrInconsistent, slot)
	}
	if c.pos != slot {
		return fmt.Errorf("%w: cell at slot %d refers back to slot %d", ErrInconsistent, slot, c.pos)
	}
	if c.owner != v {
		return fmt.Errorf("%w: cell at slot %d belongs to another vector", ErrInconsistent, slot)
	}
	return nil
}
