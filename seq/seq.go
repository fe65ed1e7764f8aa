// File: seq.go
// Role: capability interfaces, sentinel errors, and the slice adapter.

package seq

import "errors"

// Sentinel errors for sequence algorithms.
var (
	// ErrNilSequence indicates a nil sequence was handed to an algorithm.
	ErrNilSequence = errors.New("seq: nil sequence")

	// ErrNilFunc indicates a nil comparator, predicate, or transform.
	ErrNilFunc = errors.New("seq: nil function argument")

	// ErrBadRange indicates bounds not satisfying 0 <= first <= last <= Len.
	ErrBadRange = errors.New("seq: bad range bounds")
)

// Sequence is a mutable random-access range of T. *vec.Vector[T]
// satisfies it directly. Get and Set follow slice semantics: indices
// outside [0, Len()) panic.
type Sequence[T any] interface {
	Len() int
	Get(i int) T
	Set(i int, value T)
}

// Appender receives transformed elements; *vec.Vector[T] satisfies it.
type Appender[T any] interface {
	Append(values ...T) error
}

// SliceSequence adapts a plain slice to the Sequence interface.
type SliceSequence[T any] []T

// Len returns the slice length.
func (s SliceSequence[T]) Len() int { return len(s) }

// Get returns the element at index i.
func (s SliceSequence[T]) Get(i int) T { return s[i] }

// Set overwrites the element at index i.
func (s SliceSequence[T]) Set(i int, value T) { s[i] = value }

// checkRange validates 0 <= first <= last <= s.Len().
func checkRange[T any](s Sequence[T], first, last int) error {
	if s == nil {
		return ErrNilSequence
	}
	if first < 0 || last < first || last > s.Len() {
		return ErrBadRange
	}

	return nil
}
