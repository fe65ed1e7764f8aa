// File: methods.go
// Role: indexed access, append/pop, and clearing.

package vec

import "fmt"

// boundsCheck panics unless 0 <= i < v.live. Used by the unchecked
// accessors, mirroring slice index behavior.
func (v *Vector[T]) boundsCheck(i int) {
	if i < 0 || i >= v.live {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.live))
	}
}

// Get returns the element at index i. Unchecked: panics when i is
// outside the live region, exactly like a slice index.
func (v *Vector[T]) Get(i int) T {
	v.boundsCheck(i)

	return v.slots[i]
}

// Set overwrites the live element at index i with value, through the
// assignment lifecycle. Unchecked: panics when i is outside the live
// region.
func (v *Vector[T]) Set(i int, value T) {
	v.boundsCheck(i)
	v.assignValue(&v.slots[i], &value)
}

// At returns the element at index i, or ErrIndexOutOfRange when i is
// outside the live region. The checked counterpart of Get.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.live {
		var zero T

		return zero, ErrIndexOutOfRange
	}

	return v.slots[i], nil
}

// Ref returns a pointer to the live element at index i, valid until
// the next operation that changes the vector's length or relocates
// elements. Unchecked: panics when i is outside the live region.
func (v *Vector[T]) Ref(i int) *T {
	v.boundsCheck(i)

	return &v.slots[i]
}

// Append copy-constructs values onto the end of the vector. Returns
// ErrCapacityExceeded, leaving v untouched, when the result would
// exceed capacity.
func (v *Vector[T]) Append(values ...T) error {
	if v.live+len(values) > len(v.slots) {
		return ErrCapacityExceeded
	}
	for i := range values {
		v.copyValue(&v.slots[v.live], &values[i])
		v.live++
	}

	return nil
}

// Pop moves the last element out of the vector, destroys its slot, and
// returns the moved value. Returns ErrIndexOutOfRange on an empty
// vector.
func (v *Vector[T]) Pop() (T, error) {
	var out T
	if v.live == 0 {
		return out, ErrIndexOutOfRange
	}
	v.moveValue(&out, &v.slots[v.live-1])
	v.drain(v.live - 1)

	return out, nil
}

// Clear destroys every live element, in reverse index order, leaving
// the vector empty with its capacity and hooks intact. This is also
// the teardown operation: once every vector holding instrumented
// elements has been cleared, any external live-instance counter the
// hooks maintain must be back at zero.
func (v *Vector[T]) Clear() {
	v.drain(0)
}
