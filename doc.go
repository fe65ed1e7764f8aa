// Package staticvec is a fixed-capacity, allocation-free sequence
// container for Go, together with generic algorithms that operate on it.
//
// 🚀 What is staticvec?
//
//	A small library built around one idea: a vector whose capacity is
//	fixed when it is created and whose storage is allocated exactly
//	once — never grown, never reallocated:
//		• Core container: construct from counts, literals, or iterators;
//		  copy, move, insert, emplace, erase with element-exact lifecycle
//		• Lifecycle hooks: plug in copy/move/destroy behavior for element
//		  types whose values carry invariants tied to their own slot
//		• Sequence algorithms: rotate, bounds, insertion sort, transforms
//		  over any mutable random-access range
//
// ✨ Why choose staticvec?
//
//   - Predictable memory – one allocation per container, period
//   - Exact element lifecycle – every copy, move, and destroy is a
//     deliberate, observable call, never a hidden byte copy
//   - Generic surface – algorithms see only a capability interface,
//     so they work on any random-access sequence
//
// Everything is organized under two subpackages:
//
//	vec/ — the fixed-capacity Vector, its iterators and lifecycle hooks
//	seq/ — generic algorithms over mutable random-access sequences
//
// Quick example:
//
//	v, _ := vec.Of(10, 1, 2, 3)
//	_ = v.Insert(1, 100)     // v is now [1, 100, 2, 3]
//	_ = v.Erase(2)           // v is now [1, 100, 3]
//
// Dive into the per-package documentation for the full contract.
//
//	go get github.com/ostankov/staticvec
package staticvec
