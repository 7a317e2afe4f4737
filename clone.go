package vec

// Cloner is implemented by element types whose copies must be deep. When
// the element type provides it, vector duplication (Clone, CopyFrom) and
// every storage transfer go through Clone instead of plain assignment, so
// duplicates and relocated elements share no inner state with the values
// they came from. Clone may panic; the vector orders its mutations so that
// a panicking Clone never leaves it half-updated (see the Vector docs for
// the one documented exception on CopyFrom's reuse path).
//
// The choice is made at the type level, once per operation: T must
// implement Cloner[T] with a value receiver for the deep branch to apply.
type Cloner[T any] interface {
	Clone() T
}

// hasClone reports whether T implements Cloner[T]. Decided from the type
// alone; element values are never consulted.
func hasClone[T any]() bool {
	var zero T
	_, ok := any(zero).(Cloner[T])
	return ok
}

// cloneValue duplicates x: through Clone when T provides it, by plain
// assignment otherwise.
func cloneValue[T any](x T) T {
	if c, ok := any(x).(Cloner[T]); ok {
		return c.Clone()
	}
	return x
}

// transfer fills dst with duplicates of src when elements are carried to a
// new block or overwritten from another vector. Plain values transfer by
// assignment, which cannot fail and never disturbs src. Cloner types
// transfer through Clone: dearer, but the duplicates detach completely from
// views of the old block, and a panicking Clone finds src untouched because
// transfer never writes to it.
func (v *Vector[T]) transfer(dst, src []T) {
	if !hasClone[T]() {
		v.moved += uint64(copy(dst, src))
		return
	}
	for i := range src {
		dst[i] = cloneValue(src[i])
	}
	v.cloned += uint64(len(src))
}

// Clone returns a deep copy of the vector. The copy's capacity equals the
// source's length and its metrics counters start fresh, counting only the
// construction itself.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{data: NewStorage[T](v.size), size: v.size}
	c.transfer(c.data.From(0), v.live())
	return c
}

// CopyFrom makes v an element-wise copy of other. Copying from itself is a
// no-op.
//
// When other holds more elements than v has slots, the copy is built fully
// on the side and swapped in: a panic from a Clone mid-copy leaves v
// untouched, at the cost of one extra block. Otherwise v's storage is
// reused: the overlapping prefix is overwritten element by element — a
// panic there leaves a partially updated prefix behind — and then the
// excess is either destroyed (shrinking) or clone-constructed into dead
// slots (growing). The tail construction re-zeroes whatever it had built
// before repanicking, so no value lingers past the live window.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	if other.size > v.data.Cap() {
		tmp := other.Clone()
		v.Swap(tmp)
		v.grows++
		return
	}
	n := min(v.size, other.size)
	v.transfer(v.live()[:n], other.live()[:n])
	switch {
	case other.size < v.size:
		clear(v.data.From(other.size)[:v.size-other.size])
	case other.size > v.size:
		v.constructTail(other.live()[v.size:])
	}
	v.size = other.size
}

// constructTail clones src into the dead slots starting at the live end.
// The caller extends the length afterwards; on a panic the built prefix is
// zeroed again before repanicking.
func (v *Vector[T]) constructTail(src []T) {
	dst := v.data.From(v.size)[:len(src)]
	defer func() {
		if r := recover(); r != nil {
			clear(dst)
			panic(r)
		}
	}()
	v.transfer(dst, src)
}
