package vec

import "unsafe"

// RawBuf owns a fixed-capacity block of element slots. It allocates and
// releases the block and hands out addresses into it, but never reads or
// writes element values itself: which slots hold live values is its
// owner's concern.
//
// A RawBuf must not be duplicated by value copy; ownership moves with
// Take and Swap. The zero RawBuf is the empty state (no block, capacity 0).
type RawBuf[T any] struct {
	base *T
	cap  int
}

// NewRawBuf allocates storage for capacity element slots. A capacity of
// zero (or less) allocates nothing and returns the empty state.
func NewRawBuf[T any](capacity int) RawBuf[T] {
	if capacity <= 0 {
		return RawBuf[T]{}
	}
	block := make([]T, capacity)
	return RawBuf[T]{base: &block[0], cap: capacity}
}

// Cap returns the number of slots in the block. It is fixed at
// construction and never changes in place.
func (b *RawBuf[T]) Cap() int {
	return b.cap
}

// Ptr returns the address of slot i. i must be in [0, Cap()).
func (b *RawBuf[T]) Ptr(i int) *T {
	contract(i >= 0 && i < b.cap, "vec: raw buffer index out of range")
	return (*T)(unsafe.Add(unsafe.Pointer(b.base), uintptr(i)*elemSize[T]()))
}

// Slice returns a typed window over slots [i, j). Both bounds must be in
// [0, Cap()]. The window shares the block; it does not convey ownership.
func (b *RawBuf[T]) Slice(i, j int) []T {
	contract(i >= 0 && i <= j && j <= b.cap, "vec: raw buffer range out of bounds")
	return unsafe.Slice(b.base, b.cap)[i:j:j]
}

// Swap exchanges blocks and capacities with other in constant time.
func (b *RawBuf[T]) Swap(other *RawBuf[T]) {
	b.base, other.base = other.base, b.base
	b.cap, other.cap = other.cap, b.cap
}

// Take moves the block out of b, leaving b empty. No allocation occurs.
func (b *RawBuf[T]) Take() RawBuf[T] {
	out := RawBuf[T]{base: b.base, cap: b.cap}
	b.base, b.cap = nil, 0
	return out
}

// Release drops the block, returning b to the empty state. Releasing an
// empty RawBuf is a no-op.
func (b *RawBuf[T]) Release() {
	b.base, b.cap = nil, 0
}

// elemSize returns the slot size for T.
func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// contract panics with msg when a precondition does not hold. Compiled out
// under the vecunchecked build tag.
func contract(ok bool, msg string) {
	if checked && !ok {
		panic(msg)
	}
}
