package vec

// Storage is a fixed block of element slots. It owns the slots but never
// tracks which of them hold live values; that bookkeeping belongs entirely
// to the container built on top of it. Slots are zero-valued when the block
// is created and must be re-zeroed by the owner when a value is destroyed,
// so the collector never sees stale references in dead slots.
//
// A Storage must not be copied after first use; hand it around by pointer
// or exchange two blocks with Swap.
type Storage[T any] struct {
	buf []T // slot block; nil when capacity is zero
}

// NewStorage returns a block of exactly capacity zeroed slots.
// If capacity <= 0, the block is empty and holds no memory.
func NewStorage[T any](capacity int) Storage[T] {
	if capacity <= 0 {
		return Storage[T]{}
	}
	return Storage[T]{buf: make([]T, capacity)}
}

// Cap returns the number of slots in the block.
func (s *Storage[T]) Cap() int {
	return len(s.buf)
}

// At returns a pointer to slot i. It panics unless 0 <= i < Cap().
func (s *Storage[T]) At(i int) *T {
	if i < 0 || i >= len(s.buf) {
		panic("vec: storage index out of range")
	}
	return &s.buf[i]
}

// From returns the window of slots starting at offset. offset == Cap() is
// legal and yields an empty window (one past the last slot); anything
// outside [0, Cap()] panics.
func (s *Storage[T]) From(offset int) []T {
	if offset < 0 || offset > len(s.buf) {
		panic("vec: storage offset out of range")
	}
	return s.buf[offset:]
}

// Swap exchanges the blocks of s and other. No slot is read or written.
func (s *Storage[T]) Swap(other *Storage[T]) {
	s.buf, other.buf = other.buf, s.buf
}

// Release drops the block. Safe to call repeatedly and on an empty Storage.
func (s *Storage[T]) Release() {
	s.buf = nil
}
