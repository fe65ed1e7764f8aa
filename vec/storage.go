// File: storage.go
// Role: slot-level lifecycle primitives. Only the code in this file
// touches element values directly; every public operation is expressed
// in terms of these, which is what keeps nontrivial element types
// correct under relocation.

package vec

// copyValue copy-constructs *dst from *src. dst must be an empty slot
// (or a caller-owned destination); *src stays live.
func (v *Vector[T]) copyValue(dst, src *T) {
	if v.hooks.Copy != nil {
		v.hooks.Copy(dst, src)

		return
	}
	*dst = *src
}

// moveValue move-constructs *dst from *src. dst must be empty; *src is
// left moved-from but still counted live until explicitly destroyed.
func (v *Vector[T]) moveValue(dst, src *T) {
	if v.hooks.Move != nil {
		v.hooks.Move(dst, src)

		return
	}
	var zero T
	*dst = *src
	*src = zero
}

// assignValue copy-assigns *src over the live element *dst.
func (v *Vector[T]) assignValue(dst, src *T) {
	switch {
	case v.hooks.Assign != nil:
		v.hooks.Assign(dst, src)
	case v.hooks.Copy != nil:
		v.hooks.Copy(dst, src)
	default:
		*dst = *src
	}
}

// moveAssignValue move-assigns *src over the live element *dst.
func (v *Vector[T]) moveAssignValue(dst, src *T) {
	switch {
	case v.hooks.MoveAssign != nil:
		v.hooks.MoveAssign(dst, src)
	case v.hooks.Move != nil:
		v.hooks.Move(dst, src)
	default:
		var zero T
		*dst = *src
		*src = zero
	}
}

// destroyValue releases the live element *slot and zeroes the slot so
// the backing array never pins dead references.
func (v *Vector[T]) destroyValue(slot *T) {
	if v.hooks.Destroy != nil {
		v.hooks.Destroy(slot)
	}
	var zero T
	*slot = zero
}

// drain destroys live slots [keep, live) in reverse index order,
// decrementing the live count one slot at a time so the constructed
// region stays exactly [0, live) even if a Destroy hook panics.
func (v *Vector[T]) drain(keep int) {
	for v.live > keep {
		v.destroyValue(&v.slots[v.live-1])
		v.live--
	}
}

// openAndFill opens a width-k gap at position p and fills it with k
// new elements, growing the live count from n to n+k.
//
// constructNew builds new element off (0-based within the gap) into
// the empty slot dst; assignNew overwrites a live, moved-from slot
// with new element off. The phases run in the only order that never
// overwrites an element before it has been relocated:
//
//  1. Construct slots [n, n+k) in increasing order: targets at or past
//     p+k receive the shifted tail via move-construction, the rest
//     receive new elements directly.
//  2. Move-assign the remaining tail backward, from slot n-1 down to
//     p+k, each element sliding k slots up.
//  3. Fill gap positions still below n front-to-back via assignNew.
//
// Callers validate p and capacity beforehand.
func (v *Vector[T]) openAndFill(p, k int,
	constructNew func(dst *T, off int),
	assignNew func(dst *T, off int),
) {
	n := v.live
	for dst := n; dst < n+k; dst++ {
		if dst >= p+k {
			v.moveValue(&v.slots[dst], &v.slots[dst-k])
		} else {
			constructNew(&v.slots[dst], dst-p)
		}
		v.live++
	}
	for dst := n - 1; dst >= p+k; dst-- {
		v.moveAssignValue(&v.slots[dst], &v.slots[dst-k])
	}
	for j := p; j < p+k && j < n; j++ {
		assignNew(&v.slots[j], j-p)
	}
}

// closeGap shifts slots [i+w, live) down by w via move-assignment and
// destroys the w now-redundant trailing slots.
func (v *Vector[T]) closeGap(i, w int) {
	for dst := i; dst+w < v.live; dst++ {
		v.moveAssignValue(&v.slots[dst], &v.slots[dst+w])
	}
	v.drain(v.live - w)
}
