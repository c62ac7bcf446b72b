package dvec

// block is a fixed-size run of element slots. It is pure storage: it never
// initializes or finalizes an element, and it does not know which slots are
// live. That bookkeeping belongs to the DVec that owns it.
type block[T any] struct {
	slots []T
}

// allocBlock reserves room for capacity elements. Every slot starts as the
// zero value, which the owner treats as uninitialized. Running out of memory
// is a fatal runtime error, not something callers can recover from.
func allocBlock[T any](capacity int) block[T] {
	if capacity == 0 {
		return block[T]{}
	}
	return block[T]{slots: make([]T, capacity)}
}

// adoptBlock takes over the backing array of s, including its spare
// capacity, without copying. The caller must stop using s afterwards.
func adoptBlock[T any](s []T) block[T] {
	return block[T]{slots: s[:cap(s)]}
}

func (b *block[T]) cap() int { return len(b.slots) }

// release drops the backing array. No element is finalized.
func (b *block[T]) release() { b.slots = nil }
