// Package vec implements a growable contiguous container (a vector) with
// explicit storage, growth, copy and move semantics.
//
// # Overview
//
// A Vector keeps its elements in the leading slots of a single Storage
// block and replaces the block with a larger one as it fills. Splitting
// the container from its storage keeps the rules honest: Storage owns raw
// slots and nothing else, Vector decides which slots hold live values and
// how they travel when the block changes. This is particularly useful for:
//
//   - Hot paths that want capacity planned up front (Reserve) instead of
//     append's reallocation heuristics
//   - Element types whose copies must be deep (see Cloner)
//   - Code that needs predictable behavior when an element operation
//     panics mid-update
//   - Workloads that reuse one buffer across rounds (Clear) and want
//     dead slots zeroed so the collector can reclaim referents
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // drop the storage when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(1, 9)  // [1 9 2]
//	v.Erase(0)      // [9 2]
//	last := v.Pop() // last == 2, v is [9]
//
//	sized := vec.NewWithSize[int](5) // five zeros, capacity 5
//	sized.Resize(3)                  // shrink, excess slots zeroed
//
// # Growth and Guarantees
//
// A full vector grows to twice its length (one slot when empty), so
// repeated pushes see the capacity sequence 1, 2, 4, 8, ... Reserve(n)
// allocates exactly n slots and never shrinks.
//
// Operations that replace the storage block (push or insert on a full
// vector, Reserve, CopyFrom into a too-small vector) prepare the new block
// completely before swapping it in: the incoming element is constructed
// first, existing elements are transferred after it, and the old block
// stays untouched until the swap. A panic anywhere in that sequence —
// from a PushWith or InsertWith constructor, or from a Cloner element —
// leaves the vector exactly as it was.
//
// In-place operations are weaker by contract: Insert's shift, Erase's
// shift and CopyFrom's prefix overwrite run element by element over live
// slots. The shifts are plain assignment and cannot fail in Go, but only
// the growth paths promise to leave the vector untouched on a panic.
//
// # Deep Copies
//
// Element types may implement Cloner to make their copies deep:
//
//	type Row struct{ cells []string }
//
//	func (r Row) Clone() Row {
//		return Row{cells: append([]string(nil), r.cells...)}
//	}
//
// Clone, CopyFrom and every storage transfer then go through Clone; plain
// types move by assignment. Push and Insert store the value they are
// given either way — pass x.Clone() to hand the vector its own copy.
//
// # Thread Safety
//
// Vector and Storage are not goroutine-safe and ship no locked variant;
// callers that share a vector across goroutines own the synchronization.
// Distinct vectors on distinct goroutines need none.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized
//   - Insert, Erase: O(n) in the elements after the index
//   - Move, Swap: O(1), no element is touched
//   - Clone, CopyFrom: O(n)
//   - Clear: O(n) zeroing, keeps the storage
//
// # Important Notes
//
//   - Slice() views and PushWith/InsertWith slot pointers are valid only
//     until the next operation that grows or reorders the vector
//   - Dead slots are always zeroed; popping or shrinking releases element
//     references to the collector immediately
//   - Contract violations (index out of range, pop from empty) panic with
//     a "vec:" prefix
//
// # Metrics and Monitoring
//
// The vector counts its storage replacements and element transfers:
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization * 100)
//	fmt.Printf("Grown %d times, moved %d, cloned %d\n", m.Grows, m.Moved, m.Cloned)
package vec
