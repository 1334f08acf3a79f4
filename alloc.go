package vector

import (
	"fmt"
	"math/bits"
	"unsafe"
)

// maxAllocBytes mirrors the largest heap object the runtime will hand out.
// Requests above it fail with an *AllocError instead of a runtime panic
// inside makeslice.
var maxAllocBytes = func() uintptr {
	if bits.UintSize == 64 {
		return 1 << 47
	}
	return 1<<31 - 1
}()

// AllocError reports a slot request that cannot be satisfied.
type AllocError struct {
	Slots    int     // Requested slot count
	ElemSize uintptr // Size of one slot in bytes
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("vector: cannot allocate %d slots of %d bytes", e.Slots, e.ElemSize)
}

// Unwrap lets errors.Is match ErrAllocation.
func (e *AllocError) Unwrap() error {
	return ErrAllocation
}

// slotSize returns the in-memory size of one T.
func slotSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// allocSlots returns a fresh zeroed array of n slots of type T.
// Returns nil, nil if n == 0.
func allocSlots[T any](n int) ([]T, error) {
	size := slotSize[T]()
	if n < 0 {
		return nil, &AllocError{Slots: n, ElemSize: size}
	}
	if n == 0 {
		return nil, nil
	}
	if size > 0 {
		hi, total := bits.Mul(uint(n), uint(size))
		if hi != 0 || uintptr(total) > maxAllocBytes {
			return nil, &AllocError{Slots: n, ElemSize: size}
		}
	}
	return make([]T, n), nil
}

// mustAllocSlots is allocSlots for paths where failure is fatal.
func mustAllocSlots[T any](n int) []T {
	s, err := allocSlots[T](n)
	if err != nil {
		panic(err)
	}
	return s
}
