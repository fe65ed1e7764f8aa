// File: assign.go
// Role: whole-vector copy and move assignment.

package vec

// CopyFrom makes v an elementwise copy of u, the copy-assignment
// operation: the overlapping prefix is copy-assigned, extra source
// elements are copy-constructed into newly live slots, and surplus
// destination slots are destroyed. Afterward v.Len() == u.Len().
//
// Self-assignment is a no-op. Returns ErrCapacityExceeded, leaving v
// untouched, when u holds more live elements than v's capacity.
func (v *Vector[T]) CopyFrom(u *Vector[T]) error {
	if v == u {
		return nil
	}
	if u.live > len(v.slots) {
		return ErrCapacityExceeded
	}
	overlap := min(v.live, u.live)
	for i := 0; i < overlap; i++ {
		v.assignValue(&v.slots[i], &u.slots[i])
	}
	for i := overlap; i < u.live; i++ {
		v.copyValue(&v.slots[i], &u.slots[i])
		v.live++
	}
	v.drain(u.live)

	return nil
}

// MoveFrom transfers u's elements into v, the move-assignment
// operation: the overlapping prefix is move-assigned, extra source
// elements are move-constructed, surplus destination slots are
// destroyed, and finally u is drained (ownership transferred).
//
// Self-move-assignment is a no-op. Returns ErrCapacityExceeded,
// leaving both vectors untouched, when u holds more live elements
// than v's capacity.
func (v *Vector[T]) MoveFrom(u *Vector[T]) error {
	if v == u {
		return nil
	}
	if u.live > len(v.slots) {
		return ErrCapacityExceeded
	}
	overlap := min(v.live, u.live)
	for i := 0; i < overlap; i++ {
		v.moveAssignValue(&v.slots[i], &u.slots[i])
	}
	for i := overlap; i < u.live; i++ {
		v.moveValue(&v.slots[i], &u.slots[i])
		v.live++
	}
	v.drain(u.live)
	u.drain(0)

	return nil
}
