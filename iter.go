package vector

import "iter"

// Slice returns the live range [0, Len()) as a slice aliasing the
// vector's buffer. Writes through it are visible in the vector. Appending
// to the returned slice never affects the vector.
func (v *Vector[T]) Slice() []T {
	if v == nil || v.size == 0 {
		return nil
	}
	return v.items.Slots()[:v.size:v.size]
}

// All yields index/value pairs over the live range in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(i, v.items.Get(i)) {
				return
			}
		}
	}
}

// Values yields the live elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.Len(); i++ {
			if !yield(v.items.Get(i)) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.Len() - 1; i >= 0; i-- {
			if !yield(i, v.items.Get(i)) {
				return
			}
		}
	}
}
