// File: erase.go
// Role: positional erasure.

package vec

// Erase removes the element at position p, move-assigning each element
// of the tail one slot down and destroying the now-redundant last
// slot. Returns ErrIndexOutOfRange for an invalid position.
func (v *Vector[T]) Erase(p int) error {
	if p < 0 || p >= v.live {
		return ErrIndexOutOfRange
	}
	v.closeGap(p, 1)

	return nil
}

// EraseRange removes the elements in [i, j), shifting the tail down by
// j-i slots and destroying the trailing now-empty slots. i == j is a
// legal no-op. Returns ErrIndexOutOfRange unless 0 <= i <= j <= Len().
func (v *Vector[T]) EraseRange(i, j int) error {
	if i < 0 || j < i || j > v.live {
		return ErrIndexOutOfRange
	}
	if i == j {
		return nil
	}
	v.closeGap(i, j-i)

	return nil
}
