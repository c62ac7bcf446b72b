package dvec

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

/*****************************************************************************
 * INDEXING
 *****************************************************************************/

// At returns the i-th element counting from the front. Panics if out of
// bounds.
func (d *DVec[T]) At(i int) T {
	d.checkBounds(i)
	return d.blk.slots[d.off+i]
}

// Set overwrites the i-th element counting from the front. Panics if out of
// bounds. The overwritten value is not finalized; it is the caller's.
func (d *DVec[T]) Set(i int, t T) {
	d.checkBounds(i)
	d.blk.slots[d.off+i] = t
}

// Front returns the first element in the DVec. If the DVec is empty, it
// returns false.
func (d *DVec[T]) Front() (t T, ok bool) {
	if d.Len() == 0 {
		return
	}
	return d.blk.slots[d.off], true
}

// Back returns the last element in the DVec. If the DVec is empty, it returns
// false.
func (d *DVec[T]) Back() (t T, ok bool) {
	if d.Len() == 0 {
		return
	}
	return d.blk.slots[d.off+d.len-1], true
}

/*****************************************************************************
 * POPS
 *****************************************************************************/

// PopFront removes the first element and returns it. If the DVec is empty, it
// returns false. The value now belongs to the caller and is not finalized by
// the DVec. The vacated slot becomes front headroom.
func (d *DVec[T]) PopFront() (t T, ok bool) {
	if t, ok = d.Front(); ok {
		var zero T
		d.blk.slots[d.off] = zero
		d.off++
		d.len--
	}
	return
}

// PopBack removes the last element and returns it. If the DVec is empty, it
// returns false. The value now belongs to the caller and is not finalized by
// the DVec. The vacated slot becomes back headroom.
func (d *DVec[T]) PopBack() (t T, ok bool) {
	if t, ok = d.Back(); ok {
		var zero T
		d.blk.slots[d.off+d.len-1] = zero
		d.len--
	}
	return
}

/*****************************************************************************
 * ITER API
 *****************************************************************************/

// All returns an iterator over index-value pairs from front to back. It has
// the same semantics as slices.All over the elements at the time of the call.
func (d *DVec[T]) All() iter.Seq2[int, T] {
	return slices.All(d.live())
}

// Values returns an iterator over the elements from front to back.
func (d *DVec[T]) Values() iter.Seq[T] {
	return slices.Values(d.live())
}

// Backward returns an iterator over index-value pairs from back to front.
func (d *DVec[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(d.live())
}

/*****************************************************************************
 * EQUALITY
 *****************************************************************************/

// Equal returns whether both DVecs have the same length and the same elements
// in the same order. Capacity and the position of the elements inside the
// backing block do not matter. A nil DVec is equal to an empty one. This must
// not be a method, otherwise DVec would be constrained to comparable
// elements.
func Equal[T comparable](d1, d2 *DVec[T]) bool {
	return slices.Equal(d1.live(), d2.live())
}

// EqualFunc is like Equal but compares elements with eq, which lets DVecs of
// different element types be compared.
func EqualFunc[T, U any](d1 *DVec[T], d2 *DVec[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(d1.live(), d2.live(), eq)
}

// String formats the elements from front to back, e.g. "dvec[1 2 3]".
func (d *DVec[T]) String() string {
	var sb strings.Builder
	sb.WriteString("dvec[")
	for i, t := range d.All() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, t)
	}
	sb.WriteByte(']')
	return sb.String()
}
