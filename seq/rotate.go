// File: rotate.go
// Role: in-place reversal and rotation.

package seq

// Reverse reverses the elements of [first, last) in place.
//
// Complexity: O(n) element swaps.
func Reverse[T any](s Sequence[T], first, last int) error {
	if err := checkRange(s, first, last); err != nil {
		return err
	}
	reverse(s, first, last)

	return nil
}

// Rotate left-rotates [first, last) so that the element at middle
// becomes the first element of the subrange and the element at
// middle-1 becomes the last, preserving relative order within both
// halves. Requires first <= middle <= last.
//
// Implemented as the classic triple reversal, touching each element a
// constant number of times through Get/Set only.
//
// Complexity: O(n) element swaps.
func Rotate[T any](s Sequence[T], first, middle, last int) error {
	if err := checkRange(s, first, last); err != nil {
		return err
	}
	if middle < first || middle > last {
		return ErrBadRange
	}
	rotate(s, first, middle, last)

	return nil
}

func reverse[T any](s Sequence[T], first, last int) {
	for i, j := first, last-1; i < j; i, j = i+1, j-1 {
		a, b := s.Get(i), s.Get(j)
		s.Set(i, b)
		s.Set(j, a)
	}
}

func rotate[T any](s Sequence[T], first, middle, last int) {
	if middle == first || middle == last {
		return
	}
	reverse(s, first, middle)
	reverse(s, middle, last)
	reverse(s, first, last)
}
