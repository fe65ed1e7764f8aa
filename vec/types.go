// File: types.go
// Role: Vector, Hooks, Option, sentinel errors, and the New constructor.

package vec

import "errors"

// Sentinel errors for vector operations.
var (
	// ErrBadCapacity indicates a negative capacity was passed to a constructor.
	ErrBadCapacity = errors.New("vec: capacity must be non-negative")

	// ErrBadCount indicates a negative element count was requested.
	ErrBadCount = errors.New("vec: element count must be non-negative")

	// ErrCapacityExceeded indicates an operation would push the live
	// element count past the fixed capacity.
	ErrCapacityExceeded = errors.New("vec: fixed capacity exceeded")

	// ErrIndexOutOfRange indicates an index or position outside the valid range.
	ErrIndexOutOfRange = errors.New("vec: index out of range")

	// ErrNilConstruct indicates a nil construction callback was passed to Emplace.
	ErrNilConstruct = errors.New("vec: nil construct callback")
)

// Hooks customizes the element lifecycle of a Vector.
//
// Each hook receives destination and source pointers that point into
// the vector's backing storage (or, for construction from caller
// values, at the caller's value), so hooks can maintain state tied to
// the element's slot address.
//
// Semantics per hook, with the fallback used when the hook is nil:
//
//   - Copy(dst, src): construct *dst as a copy of *src; dst is an
//     empty slot. Fallback: *dst = *src.
//   - Move(dst, src): construct *dst by moving from *src; dst is an
//     empty slot, *src is left moved-from but still live. Fallback:
//     *dst = *src, then *src is zeroed.
//   - Assign(dst, src): overwrite the live element *dst with a copy of
//     *src. Fallback: Copy hook if set, else plain assignment.
//   - MoveAssign(dst, src): overwrite the live element *dst by moving
//     from *src. Fallback: Move hook if set, else plain assignment
//     with the source zeroed.
//   - Destroy(slot): release the live element *slot. The slot is
//     zeroed after the hook returns regardless, so the container never
//     pins garbage.
//
// Hooks do not return errors. A hook that panics aborts the operation
// mid-flight: the container guarantees it will never destroy a slot it
// did not construct and never destroy a slot twice, but elements
// relocated before the panic stay relocated, and slots constructed by
// the aborted operation may miss their Destroy call.
type Hooks[T any] struct {
	Copy       func(dst, src *T)
	Move       func(dst, src *T)
	Assign     func(dst, src *T)
	MoveAssign func(dst, src *T)
	Destroy    func(slot *T)
}

// Option configures a Vector before any element is constructed.
type Option[T any] func(*Vector[T])

// WithHooks installs lifecycle hooks on the new vector. Clone and Move
// carry the hooks over to the vector they create.
func WithHooks[T any](h Hooks[T]) Option[T] {
	return func(v *Vector[T]) { v.hooks = h }
}

// Vector is a fixed-capacity sequence of T.
//
// The backing slice is allocated once by the constructor with
// len == cap == capacity and is never reallocated. Slots [0, live)
// hold constructed elements; slots [live, capacity) are empty.
type Vector[T any] struct {
	slots []T // fixed backing storage, allocated once
	live  int // count of leading constructed slots
	hooks Hooks[T]
}

// New returns an empty Vector with the given fixed capacity.
// Returns ErrBadCapacity if capacity is negative.
func New[T any](capacity int, opts ...Option[T]) (*Vector[T], error) {
	if capacity < 0 {
		return nil, ErrBadCapacity
	}
	v := &Vector[T]{slots: make([]T, capacity)}
	for _, opt := range opts {
		opt(v)
	}

	return v, nil
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.live }

// Cap returns the fixed capacity set at construction.
func (v *Vector[T]) Cap() int { return len(v.slots) }

// IsEmpty reports whether the vector holds no live elements.
func (v *Vector[T]) IsEmpty() bool { return v.live == 0 }
