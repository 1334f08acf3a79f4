package vector

import "fmt"

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if nothing is allocated.
func (v *Vector[T]) Utilization() float64 {
	if v.Cap() == 0 {
		return 0
	}
	return float64(v.Len()) / float64(v.Cap())
}

// Metrics returns a snapshot of the vector's storage statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	elem := int(slotSize[T]())
	return VectorMetrics{
		Size:          v.Len(),
		Capacity:      v.Cap(),
		Free:          v.Cap() - v.Len(),
		ElemSize:      elem,
		BytesInUse:    v.Len() * elem,
		BytesReserved: v.Cap() * elem,
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains storage statistics for a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Free          int     // Allocated but unused slots
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Size * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Size / Capacity (0.0-1.0)
}

// String formats the live elements like a slice, e.g. "[1 2 3]".
func (v *Vector[T]) String() string {
	return fmt.Sprint(v.Slice())
}
