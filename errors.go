package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is wrapped by every *AllocError.
	ErrAllocation = errors.New("vector: allocation failed")
	// ErrOutOfRange is wrapped by every *RangeError.
	ErrOutOfRange = errors.New("vector: index out of range")
)

// RangeError is returned by the checked accessors when Index is not
// below Size.
type RangeError struct {
	Index int
	Size  int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("vector: index %d out of range [0:%d]", e.Index, e.Size)
}

func (e *RangeError) Unwrap() error {
	return ErrOutOfRange
}

// checkIndex returns a *RangeError unless 0 <= i < size.
func checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return &RangeError{Index: i, Size: size}
	}
	return nil
}

// panicf raises a precondition violation. These are caller bugs, not
// recoverable errors.
func panicf(format string, args ...any) {
	panic("vector: " + fmt.Sprintf(format, args...))
}
