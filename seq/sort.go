// File: sort.go
// Role: sortedness checks and rotation-based insertion sort.

package seq

// IsSorted reports whether the whole sequence is ordered with respect
// to less.
func IsSorted[T any](s Sequence[T], less func(a, b T) bool) (bool, error) {
	if less == nil {
		return false, ErrNilFunc
	}
	if s == nil {
		return false, ErrNilSequence
	}
	for i := 1; i < s.Len(); i++ {
		if less(s.Get(i), s.Get(i-1)) {
			return false, nil
		}
	}

	return true, nil
}

// InsertionSort sorts the sequence in place, stably, with respect to
// less. Each element is rotated into its upper-bound position within
// the already-sorted prefix, so the sort exercises nothing beyond the
// random-access Get/Set contract.
//
// Complexity: O(n log n) comparisons, O(n²) element moves.
func InsertionSort[T any](s Sequence[T], less func(a, b T) bool) error {
	if less == nil {
		return ErrNilFunc
	}
	if s == nil {
		return ErrNilSequence
	}
	for i := 0; i < s.Len(); i++ {
		pos := upperBound(s, 0, i, s.Get(i), less)
		rotate(s, pos, i, i+1)
	}

	return nil
}
