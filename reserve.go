package vector

// ReserveHint asks NewReserved to pre-allocate Capacity slots without
// setting a logical size.
type ReserveHint struct {
	Capacity int
}

// Reserve returns a ReserveHint for n slots.
//
//	v := vector.NewReserved[int](vector.Reserve(64))
func Reserve(n int) ReserveHint {
	return ReserveHint{Capacity: n}
}

// NewReserved returns an empty vector with hint.Capacity allocated slots.
func NewReserved[T any](hint ReserveHint) *Vector[T] {
	v := &Vector[T]{}
	v.items.adopt(mustAllocSlots[T](hint.Capacity))
	v.capacity = hint.Capacity
	return v
}
