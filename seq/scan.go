// File: scan.go
// Role: elementwise scans and transforms.

package seq

// Equal reports whether a and b have the same length and equal
// elements at every position.
func Equal[T comparable](a, b Sequence[T]) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilSequence
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	for i := 0; i < a.Len(); i++ {
		if a.Get(i) != b.Get(i) {
			return false, nil
		}
	}

	return true, nil
}

// EqualFunc is Equal with a caller-supplied element equality.
func EqualFunc[A, B any](a Sequence[A], b Sequence[B], eq func(A, B) bool) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilSequence
	}
	if eq == nil {
		return false, ErrNilFunc
	}
	if a.Len() != b.Len() {
		return false, nil
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Get(i), b.Get(i)) {
			return false, nil
		}
	}

	return true, nil
}

// AllOf reports whether pred holds for every element.
// Vacuously true on an empty sequence.
func AllOf[T any](s Sequence[T], pred func(T) bool) (bool, error) {
	if s == nil {
		return false, ErrNilSequence
	}
	if pred == nil {
		return false, ErrNilFunc
	}
	for i := 0; i < s.Len(); i++ {
		if !pred(s.Get(i)) {
			return false, nil
		}
	}

	return true, nil
}

// Transform applies f to each element of src in order and appends the
// results to dst, the transform-with-back-inserter shape. Stops at the
// first append failure (for a fixed-capacity sink, capacity overflow)
// and returns that error.
func Transform[A, B any](src Sequence[A], dst Appender[B], f func(A) B) error {
	if src == nil {
		return ErrNilSequence
	}
	if dst == nil || f == nil {
		return ErrNilFunc
	}
	for i := 0; i < src.Len(); i++ {
		if err := dst.Append(f(src.Get(i))); err != nil {
			return err
		}
	}

	return nil
}
