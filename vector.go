package vector

// GrowthFactor is the multiplier applied to capacity when an append or
// insert finds the vector full.
const GrowthFactor = 2

// Vector is a resizable sequence of T backed by a single owned Buffer.
// The zero value is an empty vector ready to use. Not goroutine-safe.
//
// Slots [0, Len()) hold live elements; slots [Len(), Cap()) are allocated
// but logically unused. Slices and iterators obtained from a Vector are
// invalidated by any operation that reallocates or shifts elements.
type Vector[T any] struct {
	items    Buffer[T]
	size     int
	capacity int
}

// New returns an empty vector with no allocation.
func New[T any]() *Vector[T] {
	return &Vector[T]{}
}

// NewSized returns a vector of n zero-valued elements.
func NewSized[T any](n int) *Vector[T] {
	v := &Vector[T]{}
	v.items.adopt(mustAllocSlots[T](n))
	v.size, v.capacity = n, n
	return v
}

// NewFilled returns a vector of n copies of value.
func NewFilled[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	for i := 0; i < n; i++ {
		v.items.Set(i, value)
	}
	return v
}

// Of returns a vector holding exactly values, in order.
func Of[T any](values ...T) *Vector[T] {
	v := &Vector[T]{}
	v.adoptCopy(values)
	return v
}

// Clone returns an independent copy of the live elements. The copy is
// tightly sized: its capacity equals its size.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{}
	c.adoptCopy(v.Slice())
	return c
}

// Move transfers the buffer, size and capacity of v into a new vector.
// v is left empty and reusable.
func (v *Vector[T]) Move() *Vector[T] {
	m := &Vector[T]{}
	m.items.Swap(&v.items)
	m.size, v.size = v.size, 0
	m.capacity, v.capacity = v.capacity, 0
	return m
}

// Assign replaces the contents of v with a copy of other. The copy is
// built before v is touched, so an allocation failure leaves v intact.
func (v *Vector[T]) Assign(other *Vector[T]) {
	if v == other {
		return
	}
	tmp := other.Clone()
	v.Swap(tmp)
}

// MoveFrom takes over other's buffer, size and capacity. other is left
// empty and its previous storage is dropped.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.items.Swap(&other.items)
	v.size, other.size = other.size, 0
	v.capacity, other.capacity = other.capacity, 0
	other.items.Free()
}

// adoptCopy replaces the storage with a tight copy of src.
func (v *Vector[T]) adoptCopy(src []T) {
	tmp := NewBuffer[T](len(src))
	copy(tmp.Slots(), src)
	v.items.Swap(tmp)
	tmp.Free()
	v.size, v.capacity = len(src), len(src)
}

// PushBack appends value, growing the buffer if it is full.
func (v *Vector[T]) PushBack(value T) {
	if v.size == v.capacity {
		v.grow(v.nextCapacity(v.size + 1))
	}
	v.items.Set(v.size, value)
	v.size++
}

// Insert places value at pos, shifting [pos, Len()) one slot right, and
// returns the index of the inserted element. pos == Len() appends.
// Panics unless 0 <= pos <= Len().
func (v *Vector[T]) Insert(pos int, value T) int {
	if pos < 0 || pos > v.size {
		panicf("Insert position %d out of range [0:%d]", pos, v.size)
	}
	if v.size == v.capacity {
		v.grow(v.nextCapacity(v.size + 1))
	}
	s := v.items.Slots()
	copy(s[pos+1:v.size+1], s[pos:v.size])
	s[pos] = value
	v.size++
	return pos
}

// PopBack drops the last element. The vacated slot is not reset.
// Panics on an empty vector.
func (v *Vector[T]) PopBack() {
	if v.size == 0 {
		panic("vector: PopBack on empty vector")
	}
	v.size--
}

// Erase removes the element at pos, shifting the tail one slot left, and
// returns pos, which now holds the element that followed the erased one.
// Panics unless 0 <= pos < Len().
func (v *Vector[T]) Erase(pos int) int {
	if v.size == 0 {
		panic("vector: Erase on empty vector")
	}
	if pos < 0 || pos >= v.size {
		panicf("Erase position %d out of range [0:%d]", pos, v.size)
	}
	s := v.items.Slots()
	copy(s[pos:v.size-1], s[pos+1:v.size])
	v.size--
	return pos
}

// Reserve grows the capacity to exactly n if n exceeds it. Never shrinks.
// Panics with *AllocError if the storage cannot be allocated.
func (v *Vector[T]) Reserve(n int) {
	if n > v.capacity {
		v.grow(n)
	}
}

// TryReserve is Reserve reporting allocation failure as an error.
// On failure v is unchanged.
func (v *Vector[T]) TryReserve(n int) error {
	if n <= v.capacity {
		return nil
	}
	tmp, err := Allocate[T](n)
	if err != nil {
		return err
	}
	v.relocate(tmp, n)
	return nil
}

// Resize sets the size to n. Elements below n are preserved; newly
// exposed elements are zero-valued. Capacity never shrinks.
// Panics if n is negative.
func (v *Vector[T]) Resize(n int) {
	if n < 0 {
		panicf("Resize to negative size %d", n)
	}
	if n <= v.size {
		v.size = n
		return
	}
	if n > v.capacity {
		v.grow(max(n, v.capacity*GrowthFactor))
	}
	clear(v.items.Slots()[v.size:n])
	v.size = n
}

// Clear sets the size to zero. Capacity and storage are kept.
func (v *Vector[T]) Clear() {
	v.size = 0
}

// Swap exchanges the contents of v and other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.items.Swap(&other.items)
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
}

// At returns element i, or a *RangeError if i is not below Len().
func (v *Vector[T]) At(i int) (T, error) {
	if err := checkIndex(i, v.Len()); err != nil {
		var zero T
		return zero, err
	}
	return v.items.Get(i), nil
}

// Ref returns a pointer to element i, or a *RangeError if i is not below
// Len(). The pointer is invalidated by reallocation.
func (v *Vector[T]) Ref(i int) (*T, error) {
	if err := checkIndex(i, v.Len()); err != nil {
		return nil, err
	}
	return v.items.At(i), nil
}

// Set stores value at i, or returns a *RangeError if i is not below Len().
func (v *Vector[T]) Set(i int, value T) error {
	if err := checkIndex(i, v.Len()); err != nil {
		return err
	}
	v.items.Set(i, value)
	return nil
}

// Index returns element i without bounds checking.
// The caller guarantees 0 <= i < Len(); anything else is undefined behaviour.
func (v *Vector[T]) Index(i int) T {
	return v.items.Get(i)
}

// Ptr returns a pointer to element i without bounds checking. See Index.
func (v *Vector[T]) Ptr(i int) *T {
	return v.items.At(i)
}

// Front returns the first element. Unchecked.
func (v *Vector[T]) Front() T {
	return v.items.Get(0)
}

// Back returns the last element. Unchecked.
func (v *Vector[T]) Back() T {
	return v.items.Get(v.size - 1)
}

// Len returns the number of live elements. A nil vector has length 0.
func (v *Vector[T]) Len() int {
	if v == nil {
		return 0
	}
	return v.size
}

// Size is an alias for Len.
func (v *Vector[T]) Size() int {
	return v.Len()
}

// Cap returns the number of allocated slots.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return v.capacity
}

// Capacity is an alias for Cap.
func (v *Vector[T]) Capacity() int {
	return v.Cap()
}

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool {
	return v.Len() == 0
}

// nextCapacity applies the growth policy for a request of need slots.
func (v *Vector[T]) nextCapacity(need int) int {
	if v.capacity == 0 {
		return max(need, 1)
	}
	return max(need, v.capacity*GrowthFactor)
}

// grow moves the live elements into a fresh buffer of newCap slots and
// drops the old one only after the new one is in place.
func (v *Vector[T]) grow(newCap int) {
	v.relocate(NewBuffer[T](newCap), newCap)
}

// relocate moves the live elements into tmp and takes ownership of it.
func (v *Vector[T]) relocate(tmp *Buffer[T], newCap int) {
	copy(tmp.Slots(), v.Slice())
	v.items.Swap(tmp)
	tmp.Free()
	v.capacity = newCap
}
