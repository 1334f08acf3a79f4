// Package vector implements a generic dynamic array backed by a single,
// explicitly owned buffer.
//
// # Overview
//
// Two layers make up the package:
//
//   - Buffer owns zero or one backing array of a fixed slot count. It
//     offers unchecked slot access, Release, Swap and Free, and is never
//     copied: ownership moves, it is not shared.
//   - Vector wraps a Buffer with a logical size and a capacity and
//     implements appends, inserts, removals and growth on top of it.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	v.PushBack(1)
//	v.PushBack(2)
//	v.PushBack(3) // size 3, capacity 4
//
//	x, err := v.At(5) // checked: err wraps vector.ErrOutOfRange
//	y := v.Index(1)   // unchecked: caller guarantees 1 < v.Len()
//
//	r := vector.NewReserved[string](vector.Reserve(128)) // size 0, capacity 128
//
// # Growth
//
// When an append or insert finds the vector full, a new buffer of twice the
// capacity (1 for an empty vector) is allocated, the live elements are moved
// across, and only then is the old buffer dropped. Reserve grows to exactly
// the requested capacity. Capacity never shrinks.
//
// # Copy and Move
//
// Clone and Assign produce independent, tightly sized copies: capacity equals
// size. Move and MoveFrom transfer the buffer and leave the source empty with
// zero capacity. Assign builds its copy before touching the receiver, so an
// allocation failure leaves the receiver intact.
//
// # Views
//
// Slice, All, Values and Backward expose the live range [0, Len()). A view is
// invalidated by any operation that reallocates (PushBack, Insert, Resize or
// Reserve beyond the current capacity) or shifts elements (Insert, Erase).
//
// # Errors
//
// At, Ref and Set return a *RangeError wrapping ErrOutOfRange. Requests for
// storage that cannot be satisfied panic with an *AllocError wrapping
// ErrAllocation; Allocate and TryReserve return it instead. PopBack on an
// empty vector and out-of-range Insert or Erase positions are caller bugs and
// panic.
//
// # Thread Safety
//
// Vector and Buffer are not goroutine-safe. Callers that share a vector
// across goroutines must synchronize access themselves.
package vector
