// File: iterator.go
// Role: random-access iteration over the live region.

package vec

import "iter"

// Iterator is a random-access position over a Vector's live region,
// in the half-open range [Begin(), End()]. Iterators are plain values:
// arithmetic returns new iterators and never mutates the receiver.
//
// Any operation that changes the vector's length or relocates elements
// (insert, erase, assignment, Clear) invalidates outstanding
// iterators; using one afterward observes the relocated contents.
type Iterator[T any] struct {
	vec *Vector[T]
	pos int
}

// Begin returns an iterator at the first live element.
func (v *Vector[T]) Begin() Iterator[T] { return Iterator[T]{vec: v, pos: 0} }

// End returns the past-the-end iterator.
func (v *Vector[T]) End() Iterator[T] { return Iterator[T]{vec: v, pos: v.live} }

// Pos returns the iterator's index within the vector.
func (it Iterator[T]) Pos() int { return it.pos }

// Valid reports whether the iterator points at a live element.
func (it Iterator[T]) Valid() bool { return it.vec != nil && it.pos >= 0 && it.pos < it.vec.live }

// Next returns the iterator advanced by one position.
func (it Iterator[T]) Next() Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos + 1} }

// Prev returns the iterator moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos - 1} }

// Advance returns the iterator moved by k positions (k may be negative).
func (it Iterator[T]) Advance(k int) Iterator[T] { return Iterator[T]{vec: it.vec, pos: it.pos + k} }

// Sub returns the distance it - other, in elements.
func (it Iterator[T]) Sub(other Iterator[T]) int { return it.pos - other.pos }

// Equal reports whether both iterators denote the same position.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.pos == other.pos
}

// Less reports whether it precedes other.
func (it Iterator[T]) Less(other Iterator[T]) bool { return it.pos < other.pos }

// Value returns the element at the iterator's position.
// Panics when the iterator is not Valid.
func (it Iterator[T]) Value() T { return it.vec.Get(it.pos) }

// SetValue overwrites the element at the iterator's position through
// the assignment lifecycle. Panics when the iterator is not Valid.
func (it Iterator[T]) SetValue(value T) { it.vec.Set(it.pos, value) }

// Ref returns a pointer to the element at the iterator's position,
// with the same validity window as Vector.Ref.
func (it Iterator[T]) Ref() *T { return it.vec.Ref(it.pos) }

// All returns an index/value iterator over the live region, for use
// with range-over-func. The vector must not be mutated during the walk.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(i, v.slots[i]) {
				return
			}
		}
	}
}

// Values returns a value-only iterator over the live region.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.live; i++ {
			if !yield(v.slots[i]) {
				return
			}
		}
	}
}

// ToSlice returns a freshly allocated snapshot of the live region.
// The result does not alias the backing storage.
func (v *Vector[T]) ToSlice() []T {
	out := make([]T, v.live)
	copy(out, v.slots[:v.live])

	return out
}
