// Package vec implements a generic dynamic array with explicit storage
// ownership.
//
// # Overview
//
// A Vec owns a contiguous block of element slots and a live-element count,
// and keeps the two strictly separate: storage capacity is managed by a
// RawBuf, while element lifetime (construction into a slot, destruction of
// a slot) is managed only by the Vec. This is useful for:
//
//   - Value-semantic ordered sequences with explicit copy/move/clone
//     operations instead of implicit sharing
//   - Code that needs control over when storage is allocated, reused,
//     and released
//   - Building-block use in higher-level containers that want the
//     capacity/count distinction surfaced rather than hidden
//
// # Basic Usage
//
//	v := vec.New[int]()
//	v.Push(1)
//	v.Push(2)
//	v.Insert(1, 5)      // [1 5 2]
//	v.Erase(0)          // [5 2]
//
//	w := v.Clone()      // independent deep copy
//	m := v.Take()       // O(1) move; v is left empty
//
//	v.Reserve(64)       // exact capacity
//	v.Resize(8)         // zero-construct up, destroy down
//
// # Memory Layout
//
// Storage is a single block of Cap() slots. Slots [0, Len()) hold live
// values; slots [Len(), Cap()) are dead. When capacity runs out, a new
// block of twice the old capacity (minimum 1) is allocated, live elements
// are relocated into it and the old block is discarded. Reserve and Resize
// may request an exact or larger target directly.
//
// Destroying an element writes the zero value into its slot, so anything
// the element referenced becomes collectable immediately rather than when
// the block itself is discarded.
//
// # Failure Safety
//
// The only recoverable failures are errors from caller-supplied
// constructors and copiers (Emplace, EmplaceAt, CloneFunc, CopyFromFunc).
// Construction runs before any storage mutation, so a failed operation
// leaves the vector exactly as it was. Allocation exhaustion is a runtime
// fault, not a recoverable error.
//
// Programmer errors (index out of range, Pop on an empty vector) panic.
// Building with the vecunchecked tag compiles the checks out, after which
// such calls have undefined behavior. Insert, EmplaceAt and Erase never
// panic on bad positions: position validity is a runtime-derived condition,
// so they report it instead.
//
// # Thread Safety
//
// Vec is not goroutine-safe. Concurrent mutation of the same instance must
// be serialized by the caller.
//
// # Performance Characteristics
//
//   - Push/Emplace: O(1) amortized
//   - Insert/Erase: O(n) in the elements at or after the position
//   - Swap, Take: O(1), cannot fail
//   - Index access, Len, Cap: O(1)
package vec
