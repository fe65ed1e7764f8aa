// Package seq provides generic algorithms over mutable random-access
// sequences: binary bounds, rotation, insertion sort, and elementwise
// scans and transforms.
//
// Algorithms see containers only through the Sequence capability
// interface (Len/Get/Set), so they run unchanged on a vec.Vector, a
// SliceSequence adapter, or any other random-access range. No
// algorithm allocates beyond O(1) scratch, and none assumes anything
// about how the sequence stores its elements.
//
// ⚙️ Usage:
//
//	v, _ := vec.Of(20, 2, 4, 2, 0, 5)
//	err := seq.InsertionSort[int](v, func(a, b int) bool { return a < b })
//
// Errors:
//
//	ErrNilSequence - nil sequence handed to an algorithm.
//	ErrNilFunc     - nil comparator, predicate, or transform.
//	ErrBadRange    - bounds not satisfying 0 <= first <= last <= Len.
//
// Complexity is documented per function; InsertionSort is O(n²) moves
// and exists chiefly to exercise the rotate/upper-bound composition
// over the iterator contract, not to compete with sort.Slice.
package seq
