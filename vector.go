package vec

import "fmt"

// Vector is a growable contiguous container with explicit growth, copy and
// move semantics. Elements occupy the first Len() slots of a Storage block;
// the remaining slots are dead and kept zeroed. Not goroutine-safe; distinct
// vectors may be used from distinct goroutines freely.
type Vector[T any] struct {
	data Storage[T]
	size int

	grows  uint64 // storage replacements with a larger block
	moved  uint64 // elements transferred by plain assignment
	cloned uint64 // elements transferred through Clone
}

// New creates an empty vector. No memory is allocated until the first
// element arrives or Reserve is called.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewWithSize creates a vector holding n zero-valued elements with capacity
// exactly n. If n <= 0, the vector is empty and holds no memory.
func NewWithSize[T any](n int) *Vector[T] {
	if n <= 0 {
		return &Vector[T]{}
	}
	return &Vector[T]{data: NewStorage[T](n), size: n}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Cap returns the number of slots in the current storage block.
func (v *Vector[T]) Cap() int {
	return v.data.Cap()
}

// live returns the window of slots currently holding elements.
func (v *Vector[T]) live() []T {
	return v.data.From(0)[:v.size]
}

// At returns the element at index i. It panics unless 0 <= i < Len().
func (v *Vector[T]) At(i int) T {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	return *v.data.At(i)
}

// Set replaces the element at index i. It panics unless 0 <= i < Len().
func (v *Vector[T]) Set(i int, x T) {
	if i < 0 || i >= v.size {
		panic("vec: index out of range")
	}
	*v.data.At(i) = x
}

// Slice returns the live elements as a slice sharing the vector's storage.
// The slice is valid until the next operation that grows, shrinks or
// reorders the vector; after that it may alias dead slots or a superseded
// block.
func (v *Vector[T]) Slice() []T {
	return v.live()
}

// Range calls fn for each element in index order until fn returns false.
func (v *Vector[T]) Range(fn func(i int, x T) bool) {
	for i, x := range v.live() {
		if !fn(i, x) {
			return
		}
	}
}

// Reserve grows the storage to exactly n slots. It is a no-op when n does
// not exceed the current capacity; Reserve never shrinks. Existing elements
// are transferred to the new block before it is swapped in, so a panic from
// a Clone during the transfer leaves the vector untouched.
func (v *Vector[T]) Reserve(n int) {
	if n <= v.data.Cap() {
		return
	}
	newData := NewStorage[T](n)
	v.transfer(newData.From(0)[:v.size], v.live())
	v.commit(&newData)
}

// Resize sets the length to n. Growing appends zero-valued elements,
// reserving more storage if needed; shrinking destroys the excess elements.
// Negative n is treated as zero.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		n = 0
	}
	switch {
	case n > v.size:
		if n > v.data.Cap() {
			v.Reserve(n)
		}
		clear(v.data.From(v.size)[:n-v.size])
	case n < v.size:
		clear(v.data.From(n)[:v.size-n])
	}
	v.size = n
}

// Push appends x. Amortized O(1): when the storage is full it is replaced
// by a block of twice the current length (one slot for an empty vector).
// The vector stores x as given; callers that need the vector to own an
// independent copy of a deep value should pass x.Clone() themselves.
func (v *Vector[T]) Push(x T) {
	if v.size == v.data.Cap() {
		v.pushGrow(func() T { return x })
		return
	}
	*v.data.At(v.size) = x
	v.size++
}

// PushWith appends the value built by ctor and returns a pointer to its
// slot. The pointer is valid until the next operation that grows or
// reorders the vector. On the growth path ctor runs against the new block
// before any element is transferred, so a panic from ctor or from a Clone
// leaves the vector untouched.
func (v *Vector[T]) PushWith(ctor func() T) *T {
	if v.size == v.data.Cap() {
		return v.pushGrow(ctor)
	}
	slot := v.data.At(v.size)
	*slot = ctor()
	v.size++
	return slot
}

// pushGrow appends through fresh storage: construct the new element at its
// final slot, transfer the existing elements, then swap the block in. The
// order is what makes a mid-way panic harmless.
func (v *Vector[T]) pushGrow(ctor func() T) *T {
	newData := NewStorage[T](nextCapacity(v.size))
	*newData.At(v.size) = ctor()
	v.transfer(newData.From(0)[:v.size], v.live())
	v.commit(&newData)
	slot := v.data.At(v.size)
	v.size++
	return slot
}

// Pop removes and returns the last element. It panics when the vector is
// empty. The vacated slot is zeroed so the collector can reclaim whatever
// the element referenced.
func (v *Vector[T]) Pop() T {
	if v.size == 0 {
		panic("vec: pop from empty vector")
	}
	slot := v.data.At(v.size - 1)
	x := *slot
	var zero T
	*slot = zero
	v.size--
	return x
}

// Insert places x at index i, shifting later elements right.
// It panics unless 0 <= i <= Len(); i == Len() appends.
func (v *Vector[T]) Insert(i int, x T) {
	v.InsertWith(i, func() T { return x })
}

// InsertWith places the value built by ctor at index i and returns a
// pointer to its slot, valid until the next operation that grows or
// reorders the vector. It panics unless 0 <= i <= Len().
//
// When the insert forces growth, ctor runs against the new block before any
// element is transferred and a mid-way panic leaves the vector untouched.
// When it does not, ctor still runs before the vector is touched, and the
// shift that follows is plain assignment and cannot fail.
func (v *Vector[T]) InsertWith(i int, ctor func() T) *T {
	if i < 0 || i > v.size {
		panic("vec: insert index out of range")
	}
	if i == v.size {
		return v.PushWith(ctor)
	}
	if v.size == v.data.Cap() {
		return v.insertGrow(i, ctor)
	}
	x := ctor()
	window := v.data.From(0)[:v.size+1]
	copy(window[i+1:], window[i:v.size])
	window[i] = x
	v.size++
	return &window[i]
}

// insertGrow inserts through fresh storage: construct the new element at
// its target slot, transfer the prefix, transfer the suffix one slot to the
// right, then swap the block in.
func (v *Vector[T]) insertGrow(i int, ctor func() T) *T {
	newData := NewStorage[T](nextCapacity(v.size))
	*newData.At(i) = ctor()
	v.transfer(newData.From(0)[:i], v.live()[:i])
	v.transfer(newData.From(i+1)[:v.size-i], v.live()[i:])
	v.commit(&newData)
	v.size++
	return v.data.At(i)
}

// Erase removes the element at index i, shifting later elements left.
// i == Len() degenerates to removing the last element, so Erase panics on
// an empty vector just as Pop does; anything outside [0, Len()] panics.
// A half-completed Erase is not observable in practice (the shift is plain
// assignment), but unlike the growth paths no stronger promise is made.
func (v *Vector[T]) Erase(i int) {
	if i < 0 || i > v.size {
		panic("vec: erase index out of range")
	}
	if i < v.size {
		live := v.live()
		copy(live[i:], live[i+1:])
	}
	v.Pop()
}

// Move returns a vector that has taken over this vector's storage and
// elements. The source is left empty with zero capacity and remains usable.
func (v *Vector[T]) Move() *Vector[T] {
	moved := &Vector[T]{}
	moved.data.Swap(&v.data)
	moved.size, v.size = v.size, 0
	return moved
}

// Swap exchanges storage and length with other in O(1). No element is
// touched. Metrics counters stay with their vector.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data.Swap(&other.data)
	v.size, other.size = other.size, v.size
}

// Clear destroys all live elements but keeps the storage for reuse.
func (v *Vector[T]) Clear() {
	clear(v.live())
	v.size = 0
}

// Release destroys all live elements and drops the storage. The vector
// ends empty with zero capacity and remains usable.
func (v *Vector[T]) Release() {
	v.data.Release()
	v.size = 0
}

// String returns a short diagnostic summary.
func (v *Vector[T]) String() string {
	return fmt.Sprintf("Vector{len=%d, cap=%d}", v.size, v.data.Cap())
}

// commit swaps fully prepared storage into place. The superseded block is
// dropped wholesale; the collector reclaims its elements.
func (v *Vector[T]) commit(newData *Storage[T]) {
	v.data.Swap(newData)
	v.grows++
}

// nextCapacity reports the block size for growing a vector of the given
// length: doubling, with one slot as the floor.
func nextCapacity(size int) int {
	if size == 0 {
		return 1
	}
	return size * 2
}
