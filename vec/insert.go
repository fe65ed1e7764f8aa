// File: insert.go
// Role: positional insertion and in-place emplacement.

package vec

// insertCheck validates position p and the headroom for k new
// elements, before any slot is touched.
func (v *Vector[T]) insertCheck(p, k int) error {
	if p < 0 || p > v.live {
		return ErrIndexOutOfRange
	}
	if v.live+k > len(v.slots) {
		return ErrCapacityExceeded
	}

	return nil
}

// Insert inserts a copy of value before position p, shifting elements
// [p, Len()) one slot up while preserving their order. p == 0 prepends,
// p == Len() appends. Returns ErrIndexOutOfRange for an invalid
// position and ErrCapacityExceeded when the vector is full; in both
// cases v is untouched.
func (v *Vector[T]) Insert(p int, value T) error {
	if err := v.insertCheck(p, 1); err != nil {
		return err
	}
	v.openAndFill(p, 1,
		func(dst *T, _ int) { v.copyValue(dst, &value) },
		func(dst *T, _ int) { v.assignValue(dst, &value) },
	)

	return nil
}

// InsertMove inserts an element before position p by moving from *src,
// for element types that cannot be copied. *src is left moved-from.
func (v *Vector[T]) InsertMove(p int, src *T) error {
	if err := v.insertCheck(p, 1); err != nil {
		return err
	}
	v.openAndFill(p, 1,
		func(dst *T, _ int) { v.moveValue(dst, src) },
		func(dst *T, _ int) { v.moveAssignValue(dst, src) },
	)

	return nil
}

// InsertRepeat inserts n copies of value before position p.
// Returns ErrBadCount for negative n.
func (v *Vector[T]) InsertRepeat(p, n int, value T) error {
	if n < 0 {
		return ErrBadCount
	}
	if err := v.insertCheck(p, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	v.openAndFill(p, n,
		func(dst *T, _ int) { v.copyValue(dst, &value) },
		func(dst *T, _ int) { v.assignValue(dst, &value) },
	)

	return nil
}

// InsertSlice inserts copies of values before position p, in source
// order, the range-insert operation: the tail shifts len(values) slots
// up and the new elements occupy [p, p+len(values)).
func (v *Vector[T]) InsertSlice(p int, values ...T) error {
	if err := v.insertCheck(p, len(values)); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	v.openAndFill(p, len(values),
		func(dst *T, off int) { v.copyValue(dst, &values[off]) },
		func(dst *T, off int) { v.assignValue(dst, &values[off]) },
	)

	return nil
}

// Emplace constructs a new element directly in the slot at position p,
// via the construct callback, instead of copying or moving an existing
// value. When p lands on a live (moved-from) slot, its previous value
// is destroyed before construct runs, so the callback always sees an
// empty slot. Returns ErrNilConstruct for a nil callback.
func (v *Vector[T]) Emplace(p int, construct func(slot *T)) error {
	if construct == nil {
		return ErrNilConstruct
	}
	if err := v.insertCheck(p, 1); err != nil {
		return err
	}
	v.openAndFill(p, 1,
		func(dst *T, _ int) { construct(dst) },
		func(dst *T, _ int) {
			v.destroyValue(dst)
			construct(dst)
		},
	)

	return nil
}
