// File: search.go
// Role: binary search bounds over a sorted subrange.

package seq

// LowerBound returns the first position in [first, last) whose element
// is not ordered before value, or last if no such position exists.
// The subrange must already be sorted with respect to less.
//
// Complexity: O(log n) comparisons.
func LowerBound[T any](s Sequence[T], first, last int, value T, less func(a, b T) bool) (int, error) {
	if less == nil {
		return 0, ErrNilFunc
	}
	if err := checkRange(s, first, last); err != nil {
		return 0, err
	}

	return lowerBound(s, first, last, value, less), nil
}

// UpperBound returns the first position in [first, last) whose element
// is ordered after value, or last if no such position exists.
// The subrange must already be sorted with respect to less.
//
// Complexity: O(log n) comparisons.
func UpperBound[T any](s Sequence[T], first, last int, value T, less func(a, b T) bool) (int, error) {
	if less == nil {
		return 0, ErrNilFunc
	}
	if err := checkRange(s, first, last); err != nil {
		return 0, err
	}

	return upperBound(s, first, last, value, less), nil
}

func lowerBound[T any](s Sequence[T], first, last int, value T, less func(a, b T) bool) int {
	for first < last {
		mid := int(uint(first+last) >> 1)
		if less(s.Get(mid), value) {
			first = mid + 1
		} else {
			last = mid
		}
	}

	return first
}

func upperBound[T any](s Sequence[T], first, last int, value T, less func(a, b T) bool) int {
	for first < last {
		mid := int(uint(first+last) >> 1)
		if less(value, s.Get(mid)) {
			last = mid
		} else {
			first = mid + 1
		}
	}

	return first
}
