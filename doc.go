/*
Package stablevec implements a random-access sequence container with stable
element addresses.

Stable Vectors

A Go slice moves its elements whenever it grows, and shifts them whenever an
element is inserted or removed in the middle. Pointers into a slice are
therefore unreliable as soon as the slice is edited. A stable vector keeps
every element in an individually allocated cell; the vector itself only
holds an index of cell handles. Editing the sequence moves handles, never
cells, so a pointer to an element (or an iterator on it) survives every
insertion and erasure that does not remove that very element.

To keep iterator arithmetic O(1) despite the indirection, every cell carries
a back-reference to the index slot currently holding it. After every
structural change the vector re-synchronizes the back-references of the
affected slots, so that for every slot i

	index[i].pos == i

holds whenever control returns to the client.

	Operation        |   Stable Vector |  Slice
	-----------------+-----------------+--------
	Index            |   O(1)          |   O(1)
	Iterator ± k     |   O(1)          |   O(1)
	Insert / Erase   |   O(n)          |   O(n)
	Pointer survives |   yes           |   no

Iterators

Iterators refer to cells, not to positions. An iterator obtained before an
edit still denotes the same element afterwards, though its position (see
Iterator.Index) may have changed. Iterators to erased elements become
invalid; dereferencing them is a programming error and panics.

Assign, CopyFrom and Swap replace complete sequences: iterators obtained
from a vector before Assign or CopyFrom are invalidated, iterators survive
Swap but denote elements of the other vector afterwards.

Concurrency

Vectors are not synchronized. Concurrent readers are fine as long as there is
no concurrent writer.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stablevec

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'stablevec'
func tracer() tracing.Trace {
	return tracing.Select("stablevec")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}

// VectorError is an error type for the stablevec module.
type VectorError string

func (e VectorError) Error() string {
	return string(e)
}

// ErrOutOfRange is flagged by checked access whenever a position is not
// smaller than the length of the vector.
const ErrOutOfRange = VectorError("stablevec: position out of range")

// ErrInvalidConfig signals an invalid vector configuration.
const ErrInvalidConfig = VectorError("stablevec: invalid configuration")

// ErrInconsistent is returned by Check if the internal structure of a vector
// is corrupt.
const ErrInconsistent = VectorError("stablevec: inconsistent vector")
