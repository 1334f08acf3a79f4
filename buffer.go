package vector

import "unsafe"

// noCopy makes go vet's copylocks check flag value copies of a Buffer.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Buffer exclusively owns zero or one backing array of a fixed slot count.
// It has no notion of size or capacity beyond "this many slots".
//
// A Buffer must not be copied after first use. Ownership moves with Swap,
// Release and FromRaw; it is never duplicated.
type Buffer[T any] struct {
	_   noCopy
	ptr *T  // first slot, nil when empty
	n   int // slot count
}

// NewBuffer returns a Buffer owning n zero-valued slots.
// n == 0 yields an empty Buffer. Panics with *AllocError if the request
// cannot be satisfied.
func NewBuffer[T any](n int) *Buffer[T] {
	return FromRaw(mustAllocSlots[T](n))
}

// Allocate is NewBuffer returning the allocation failure instead of panicking.
func Allocate[T any](n int) (*Buffer[T], error) {
	s, err := allocSlots[T](n)
	if err != nil {
		return nil, err
	}
	return FromRaw(s), nil
}

// FromRaw takes ownership of raw. The slot count is len(raw).
// The caller must not use raw afterwards. Never allocates.
func FromRaw[T any](raw []T) *Buffer[T] {
	b := &Buffer[T]{}
	b.adopt(raw)
	return b
}

func (b *Buffer[T]) adopt(raw []T) {
	if len(raw) == 0 {
		b.ptr, b.n = nil, 0
		return
	}
	b.ptr, b.n = &raw[0], len(raw)
}

// At returns a pointer to slot i without bounds checking.
// The caller guarantees 0 <= i < Len(); anything else is undefined behaviour.
func (b *Buffer[T]) At(i int) *T {
	return (*T)(unsafe.Add(unsafe.Pointer(b.ptr), uintptr(i)*slotSize[T]()))
}

// Get returns slot i. Unchecked, see At.
func (b *Buffer[T]) Get(i int) T {
	return *b.At(i)
}

// Set stores v into slot i. Unchecked, see At.
func (b *Buffer[T]) Set(i int, v T) {
	*b.At(i) = v
}

// Len returns the number of owned slots.
func (b *Buffer[T]) Len() int {
	return b.n
}

// Slots returns every owned slot as a slice aliasing the buffer.
// The buffer keeps ownership.
func (b *Buffer[T]) Slots() []T {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice(b.ptr, b.n)
}

// Owns reports whether the buffer currently owns an array.
func (b *Buffer[T]) Owns() bool {
	return b.ptr != nil
}

// Release hands the owned array to the caller and leaves the buffer empty.
// Calling it again before the buffer owns something returns nil.
func (b *Buffer[T]) Release() []T {
	s := b.Slots()
	b.ptr, b.n = nil, 0
	return s
}

// Swap exchanges the owned arrays of b and other in O(1).
func (b *Buffer[T]) Swap(other *Buffer[T]) {
	b.ptr, other.ptr = other.ptr, b.ptr
	b.n, other.n = other.n, b.n
}

// Free drops the owned array. Safe on an empty buffer.
func (b *Buffer[T]) Free() {
	b.ptr, b.n = nil, 0
}
