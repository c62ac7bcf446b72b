// Package dvec implements DVec, a double-ended growable array.
package dvec

import (
	"errors"
	"fmt"
)

// DVec is a double-ended growable array. Pushing to either end is amortized
// O(1): the elements live in a window centered inside a larger block, and
// when the window reaches either edge of the block, the block doubles and the
// window is re-centered in the new one.
//
// Unlike a ring buffer, the elements of a DVec are always contiguous, so
// every logical index i maps to the physical slot off+i.
//
// Use New, WithCapacity, FromSlice, Of or Repeat to create a DVec. A DVec is
// not safe for concurrent use. It never shrinks.
type DVec[T any] struct {
	blk block[T]
	// Slots [off, off+len) of blk hold live elements. Every other slot holds
	// the zero value and is never read, handed out or finalized.
	off, len int
}

// Finalizer is implemented by element types that need to run cleanup logic
// when the DVec holding them is released. Release calls Finalize exactly once
// for every element still in the DVec. Elements that were popped or exported
// belong to the caller and are never finalized by the DVec.
type Finalizer interface {
	Finalize()
}

/*****************************************************************************
 * CONSTRUCTORS
 *****************************************************************************/

// New returns an empty DVec with no backing block. The first push allocates.
func New[T any]() *DVec[T] {
	return &DVec[T]{}
}

// WithCapacity returns an empty DVec with room for capacity elements. The
// empty window starts in the middle of the block, leaving the same headroom
// for PushFront and PushBack. Returns an error if capacity is negative.
func WithCapacity[T any](capacity int) (*DVec[T], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	return &DVec[T]{blk: allocBlock[T](capacity), off: capacity / 2}, nil
}

/*****************************************************************************
 * DVEC API
 *****************************************************************************/

// Len returns the number of elements in the DVec or 0 if nil.
func (d *DVec[T]) Len() int {
	if d == nil {
		return 0
	}
	return d.len
}

// Cap returns the number of slots in the backing block or 0 if nil.
func (d *DVec[T]) Cap() int {
	if d == nil {
		return 0
	}
	return d.blk.cap()
}

// Headroom returns how many elements can be pushed to the front and to the
// back before the DVec has to grow.
func (d *DVec[T]) Headroom() (front, back int) {
	if d == nil {
		return 0, 0
	}
	return d.off, d.blk.cap() - d.off - d.len
}

// PushFront puts t at the front of the DVec, growing it if there is no room
// before the first element.
func (d *DVec[T]) PushFront(t T) {
	if d.blk.cap() == 0 {
		d.grow(1)
		d.off = 1
	} else {
		// Doubling a block of one full slot re-centers at offset 0, so this
		// may take a second round.
		for d.off == 0 {
			d.grow(d.blk.cap() << 1)
		}
	}
	d.off--
	d.len++
	d.blk.slots[d.off] = t
}

// PushBack puts t at the back of the DVec, growing it if there is no room
// after the last element.
func (d *DVec[T]) PushBack(t T) {
	if d.blk.cap() == 0 {
		d.grow(1)
		d.off = 0
	} else if d.off+d.len == d.blk.cap() {
		d.grow(d.blk.cap() << 1)
	}
	d.len++
	d.blk.slots[d.off+d.len-1] = t
}

// Release finalizes every element in the DVec, front to back, and drops the
// backing block. Elements implementing Finalizer have Finalize called exactly
// once. The DVec is empty afterwards and may be reused.
func (d *DVec[T]) Release() {
	if d == nil {
		return
	}
	live := d.blk.slots[d.off : d.off+d.len]
	for i := range live {
		if f, ok := any(live[i]).(Finalizer); ok {
			f.Finalize()
		}
	}
	clear(live)
	d.blk.release()
	d.off, d.len = 0, 0
}

// grow moves the elements into a new block of newCap slots, centering them
// so both ends get the same headroom. The old block is dropped without
// finalizing anything, since its elements now live in the new block.
//
// Growing below the current length is a programming error and panics.
func (d *DVec[T]) grow(newCap int) {
	if newCap < d.len {
		panic(fmt.Sprintf("dvec: cannot grow to capacity %d below length %d", newCap, d.len))
	}

	nb := allocBlock[T](newCap)
	newOff := (newCap - d.len) / 2
	live := d.blk.slots[d.off : d.off+d.len]
	copy(nb.slots[newOff:], live)
	// The old slots no longer own their values.
	clear(live)

	old := d.blk
	d.blk = nb
	d.off = newOff
	old.release()
}

/*****************************************************************************
 * SENTINEL ERRORS
 *****************************************************************************/

// ErrNegativeCapacity is returned when asking for a DVec with a negative
// capacity.
var ErrNegativeCapacity = errors.New("capacity cannot be negative")

/*****************************************************************************
 * HELPERS
 *****************************************************************************/

func (d *DVec[T]) checkBounds(i int) {
	if i < 0 || i >= d.Len() {
		panic(fmt.Sprintf("dvec: index %d out of bounds with length %d", i, d.Len()))
	}
}

// live returns the window of live elements. It aliases the backing block.
func (d *DVec[T]) live() []T {
	if d == nil {
		return nil
	}
	return d.blk.slots[d.off : d.off+d.len]
}
