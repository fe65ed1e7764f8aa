// File: construct.go
// Role: value-bearing constructors plus copy and move construction
// between vectors.

package vec

import "iter"

// Repeat returns a vector holding n copies of value.
// n == 0 yields an empty vector; n == capacity fills it.
// Returns ErrBadCount for negative n and ErrCapacityExceeded when
// n > capacity.
func Repeat[T any](capacity, n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, ErrBadCount
	}
	if n > capacity {
		return nil, ErrCapacityExceeded
	}
	v, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		v.copyValue(&v.slots[i], &value)
		v.live++
	}

	return v, nil
}

// Of returns a vector holding elems in order, the initializer-list
// constructor. Returns ErrCapacityExceeded when len(elems) > capacity.
// Elements are copied with plain assignment; hook-instrumented types
// should construct via New plus Append or Emplace instead.
func Of[T any](capacity int, elems ...T) (*Vector[T], error) {
	if len(elems) > capacity {
		return nil, ErrCapacityExceeded
	}
	v, err := New[T](capacity)
	if err != nil {
		return nil, err
	}
	for i := range elems {
		v.copyValue(&v.slots[i], &elems[i])
		v.live++
	}

	return v, nil
}

// Collect returns a vector holding the values produced by s, in order,
// the iterator-range constructor. If s yields more than capacity
// values, the elements constructed so far are destroyed and
// ErrCapacityExceeded is returned.
func Collect[T any](capacity int, s iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	for value := range s {
		if v.live == len(v.slots) {
			v.drain(0)

			return nil, ErrCapacityExceeded
		}
		v.copyValue(&v.slots[v.live], &value)
		v.live++
	}

	return v, nil
}

// Clone returns a deep copy of v: same capacity, same hooks, and every
// live slot copy-constructed in index order. Mutating the clone never
// affects v.
//
// Complexity: O(n) copy constructions.
func (v *Vector[T]) Clone() *Vector[T] {
	clone := &Vector[T]{slots: make([]T, len(v.slots)), hooks: v.hooks}
	for i := 0; i < v.live; i++ {
		v.copyValue(&clone.slots[i], &v.slots[i])
		clone.live++
	}

	return clone
}

// Move returns a new vector that takes ownership of v's elements: each
// live slot is move-constructed into the new vector in index order,
// then v's slots are destroyed and v becomes empty.
//
// Complexity: O(n) move constructions plus O(n) destructions.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{slots: make([]T, len(v.slots)), hooks: v.hooks}
	for i := 0; i < v.live; i++ {
		v.moveValue(&dst.slots[i], &v.slots[i])
		dst.live++
	}
	v.drain(0)

	return dst
}
