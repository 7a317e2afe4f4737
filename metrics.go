package vec

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	capacity := v.data.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(capacity)
}

// Grows returns how many times the vector has replaced its storage with a
// larger block (growth on push or insert, Reserve, and copies that had to
// allocate).
func (v *Vector[T]) Grows() uint64 {
	return v.grows
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Len:         v.size,
		Cap:         v.data.Cap(),
		Utilization: v.Utilization(),
		Grows:       v.grows,
		Moved:       v.moved,
		Cloned:      v.cloned,
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Len         int     // Live elements
	Cap         int     // Slots in the current storage block
	Utilization float64 // Ratio of live elements to capacity (0.0-1.0)
	Grows       uint64  // Storage replacements with a larger block
	Moved       uint64  // Elements transferred by plain assignment
	Cloned      uint64  // Elements transferred through Clone
}
