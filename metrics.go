package vec

// SizeBytes returns the number of bytes occupied by live elements.
func (v *Vec[T]) SizeBytes() int {
	return v.size * int(elemSize[T]())
}

// CapBytes returns the number of bytes reserved by the vector's storage.
func (v *Vec[T]) CapBytes() int {
	return v.buf.Cap() * int(elemSize[T]())
}

// Utilization returns the ratio of live slots to reserved slots (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vec[T]) Utilization() float64 {
	if v.buf.Cap() == 0 {
		return 0
	}
	return float64(v.size) / float64(v.buf.Cap())
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() Metrics {
	return Metrics{
		Len:         v.Len(),
		Cap:         v.Cap(),
		SizeBytes:   v.SizeBytes(),
		CapBytes:    v.CapBytes(),
		Utilization: v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Len         int     // Live elements
	Cap         int     // Reserved element slots
	SizeBytes   int     // Bytes occupied by live elements
	CapBytes    int     // Bytes reserved in storage
	Utilization float64 // Ratio of live to reserved slots (0.0-1.0)
}
