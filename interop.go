package dvec

import "slices"

/*****************************************************************************
 * SLICE INTEROP
 *****************************************************************************/

// FromSlice builds a DVec on top of the backing array of s, without copying.
// The elements of s become the elements of the DVec, front to back, and the
// spare capacity of s becomes back headroom. Ownership moves to the DVec:
// the caller must not use s, or any slice sharing its backing array, after
// the call.
func FromSlice[T any](s []T) *DVec[T] {
	blk := adoptBlock(s)
	// Spare capacity may hold stale values left by the caller.
	clear(blk.slots[len(s):])
	return &DVec[T]{blk: blk, len: len(s)}
}

// IntoSlice moves the elements out of the DVec as a slice, front to back,
// without copying. Back headroom becomes spare capacity of the slice. The DVec
// is left empty with no backing block, and nothing is finalized.
func (d *DVec[T]) IntoSlice() []T {
	if d == nil {
		return nil
	}
	s := d.blk.slots[d.off : d.off+d.len : d.blk.cap()]
	// The block is not released: its array now belongs to s.
	d.blk = block[T]{}
	d.off, d.len = 0, 0
	return s
}

// MakeSliceCopy allocates a slice holding a copy of every element, front to
// back. The DVec is left untouched.
func (d *DVec[T]) MakeSliceCopy() []T {
	return slices.Clone(d.live())
}

/*****************************************************************************
 * LITERALS
 *****************************************************************************/

// Of returns a DVec holding ts in order. It adopts the variadic slice, so
// calling Of(s...) hands s over to the DVec just like FromSlice(s).
func Of[T any](ts ...T) *DVec[T] {
	return FromSlice(ts)
}

// Repeat returns a DVec holding n copies of t. It panics if n is negative.
func Repeat[T any](t T, n int) *DVec[T] {
	return FromSlice(slices.Repeat([]T{t}, n))
}
