// Package vec provides Vector, a fixed-capacity sequence container
// whose storage is allocated exactly once and never grown.
//
// A Vector[T] owns a contiguous block of capacity slots. The leading
// Len() slots are live (they hold constructed elements); the rest are
// empty. Every operation that creates, overwrites, relocates, or
// removes an element goes through a slot-level lifecycle primitive,
// never a bulk byte copy, so element types whose values carry
// invariants tied to their own slot address behave correctly under
// copy, move, insert, and erase.
//
// ⚙️ Construction:
//
//	v, err := vec.New[int](10)            // empty, capacity 10
//	v, err := vec.Repeat(10, 3, 100)      // [100, 100, 100]
//	v, err := vec.Of(10, 1, 2, 3)         // [1, 2, 3]
//	v, err := vec.Collect(10, someSeq)    // from an iter.Seq[T]
//
// Mutation:
//
//	err := v.Insert(1, 100)               // [1, 100, 2, 3]
//	err := v.Erase(2)                     // [1, 100, 3]
//	err := v.Append(4, 5)
//	v.Clear()                             // drain every live slot
//
// Lifecycle hooks:
//
//	Element types with nontrivial copy/move/destroy behavior install
//	Hooks via WithHooks. Hooks receive pointers into the backing
//	storage, so a hook can maintain self-referential state or external
//	counters per slot. With no hooks installed, transitions degrade to
//	plain value assignment and destruction zeroes the slot.
//
// Errors:
//
//	ErrBadCapacity      - negative capacity at construction.
//	ErrBadCount         - negative element count.
//	ErrCapacityExceeded - operation would exceed fixed capacity.
//	ErrIndexOutOfRange  - index or position outside the valid range.
//	ErrNilConstruct     - nil construction callback passed to Emplace.
//
// All failures are reported to the caller; the container is left in
// its prior valid state whenever an operation fails.
//
// Complexity: access O(1); insert/erase O(n) element moves; copy and
// move construction/assignment O(n) element operations. Memory: one
// allocation of capacity slots per container, at construction only.
//
// Vector is not safe for concurrent use; callers must serialize
// access or use separate instances.
package vec
