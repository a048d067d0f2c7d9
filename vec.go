package vec

import "iter"

// Vec is a generic dynamic array. It owns one RawBuf and a live-element
// count; slots [0, Len()) hold live values and slots [Len(), Cap()) are
// dead. Vec is the only component that writes element values into the
// buffer or destroys them. The zero Vec is an empty vector, ready to use.
// Not goroutine-safe.
type Vec[T any] struct {
	buf  RawBuf[T]
	size int
}

// New returns an empty vector with no allocated storage.
func New[T any]() *Vec[T] {
	return &Vec[T]{}
}

// NewSize returns a vector of n zero-valued elements with capacity n.
func NewSize[T any](n int) *Vec[T] {
	contract(n >= 0, "vec: negative size")
	return &Vec[T]{buf: NewRawBuf[T](n), size: n}
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int {
	return v.size
}

// Cap returns the number of element slots currently reserved.
func (v *Vec[T]) Cap() int {
	return v.buf.Cap()
}

// At returns the element at index i. i must be in [0, Len()).
func (v *Vec[T]) At(i int) T {
	contract(i >= 0 && i < v.size, "vec: index out of range")
	return *v.buf.Ptr(i)
}

// Ref returns a pointer to the element at index i for in-place mutation.
// The pointer is invalidated by any operation that changes capacity.
// i must be in [0, Len()).
func (v *Vec[T]) Ref(i int) *T {
	contract(i >= 0 && i < v.size, "vec: index out of range")
	return v.buf.Ptr(i)
}

// Set replaces the element at index i. i must be in [0, Len()).
func (v *Vec[T]) Set(i int, x T) {
	contract(i >= 0 && i < v.size, "vec: index out of range")
	*v.buf.Ptr(i) = x
}

// Slice returns the live elements as a slice sharing the vector's storage.
// Mutating slice elements mutates the vector. The slice is invalidated by
// any operation that changes the vector's length or capacity.
func (v *Vec[T]) Slice() []T {
	return v.buf.Slice(0, v.size)
}

// All returns a read-only index/value iterator over the live elements.
func (v *Vec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, *v.buf.Ptr(i)) {
				return
			}
		}
	}
}

// Refs returns an index/pointer iterator over the live elements for
// in-place mutation.
func (v *Vec[T]) Refs() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf.Ptr(i)) {
				return
			}
		}
	}
}

// Push appends x to the end, growing storage if needed, and returns a
// pointer to the stored element. Amortized O(1).
func (v *Vec[T]) Push(x T) *T {
	if v.size == v.buf.Cap() {
		v.growTo(grownCap(v.buf.Cap()))
	}
	p := v.buf.Ptr(v.size)
	*p = x
	v.size++
	return p
}

// Emplace appends an element produced by ctor. The constructor runs before
// any storage mutation, so a constructor error leaves the vector unchanged.
func (v *Vec[T]) Emplace(ctor func() (T, error)) (*T, error) {
	x, err := ctor()
	if err != nil {
		return nil, err
	}
	return v.Push(x), nil
}

// Pop destroys the last element. The vector must not be empty.
func (v *Vec[T]) Pop() {
	contract(v.size > 0, "vec: pop of empty vector")
	v.size--
	var zero T
	*v.buf.Ptr(v.size) = zero
}

// Insert places x at index i, shifting the elements at and after i one
// slot toward the end. Valid positions are [0, Len()]; Insert reports
// false for any other position and leaves the vector unchanged. On success
// the new element is at index i.
func (v *Vec[T]) Insert(i int, x T) bool {
	if i < 0 || i > v.size {
		return false
	}
	v.insert(i, x)
	return true
}

// EmplaceAt inserts an element produced by ctor at index i. It reports
// (false, nil) for positions outside [0, Len()], and the constructor's
// error, with the vector unchanged, when construction fails.
func (v *Vec[T]) EmplaceAt(i int, ctor func() (T, error)) (bool, error) {
	if i < 0 || i > v.size {
		return false, nil
	}
	x, err := ctor()
	if err != nil {
		return false, err
	}
	v.insert(i, x)
	return true, nil
}

// Erase removes the element at index i, shifting later elements one slot
// toward the beginning and destroying the vacated trailing slot. Valid
// positions are [0, Len()); Erase reports false for any other position.
// On success the former successor of the removed element is at index i.
func (v *Vec[T]) Erase(i int) bool {
	if i < 0 || i >= v.size {
		return false
	}
	window := v.buf.Slice(0, v.size)
	copy(window[i:], window[i+1:])
	v.size--
	var zero T
	window[v.size] = zero
	return true
}

// Reserve grows capacity to exactly n slots, relocating the live elements
// into the new storage. It is a no-op when n does not exceed Cap().
func (v *Vec[T]) Reserve(n int) {
	if n <= v.buf.Cap() {
		return
	}
	v.growTo(n)
}

// Resize sets the element count to n. Shrinking destroys the trailing
// elements; growing reserves max(2*Cap(), n) slots if needed and
// zero-constructs the new tail.
func (v *Vec[T]) Resize(n int) {
	contract(n >= 0, "vec: negative size")
	switch {
	case n < v.size:
		clear(v.buf.Slice(n, v.size))
	case n > v.size:
		if n > v.buf.Cap() {
			v.growTo(max(2*v.buf.Cap(), n))
		}
		clear(v.buf.Slice(v.size, n))
	}
	v.size = n
}

// Clear destroys all elements. Capacity is retained.
func (v *Vec[T]) Clear() {
	clear(v.buf.Slice(0, v.size))
	v.size = 0
}

// Release destroys all elements and drops the storage, returning the
// vector to the empty zero-capacity state. The vector remains usable.
func (v *Vec[T]) Release() {
	v.buf.Release()
	v.size = 0
}

// Clone returns an independent deep copy with capacity equal to Len().
func (v *Vec[T]) Clone() *Vec[T] {
	out := &Vec[T]{buf: NewRawBuf[T](v.size), size: v.size}
	copy(out.buf.Slice(0, v.size), v.buf.Slice(0, v.size))
	return out
}

// CloneFunc returns a deep copy built with a per-element copier. If the
// copier fails, no copy is produced and the source is untouched.
func (v *Vec[T]) CloneFunc(copyFn func(T) (T, error)) (*Vec[T], error) {
	out := &Vec[T]{buf: NewRawBuf[T](v.size)}
	for i := 0; i < v.size; i++ {
		x, err := copyFn(*v.buf.Ptr(i))
		if err != nil {
			return nil, err
		}
		*out.buf.Ptr(i) = x
		out.size++
	}
	return out, nil
}

// Take moves the vector's storage and elements into a new vector in O(1),
// leaving v empty with zero capacity.
func (v *Vec[T]) Take() *Vec[T] {
	out := &Vec[T]{buf: v.buf.Take(), size: v.size}
	v.size = 0
	return out
}

// CopyFrom makes v an element-wise copy of src. When src fits within v's
// current capacity the elements are copied in place: the overlapping
// prefix is assigned, then the tail is either copy-constructed (src
// longer) or destroyed (src shorter). Otherwise v takes over a fresh clone
// of src by swap.
func (v *Vec[T]) CopyFrom(src *Vec[T]) {
	if v == src {
		return
	}
	n := src.size
	if n <= v.buf.Cap() {
		k := min(v.size, n)
		copy(v.buf.Slice(0, k), src.buf.Slice(0, k))
		if v.size <= n {
			copy(v.buf.Slice(v.size, n), src.buf.Slice(v.size, n))
		} else {
			clear(v.buf.Slice(n, v.size))
		}
		v.size = n
		return
	}
	v.Swap(src.Clone())
}

// CopyFromFunc is CopyFrom with a fallible per-element copier. In the
// clone-and-swap branch a copier error leaves v completely unchanged. In
// the in-place branch v keeps its length on error, though a prefix may
// already hold copied values.
func (v *Vec[T]) CopyFromFunc(src *Vec[T], copyFn func(T) (T, error)) error {
	if v == src {
		return nil
	}
	n := src.size
	if n <= v.buf.Cap() {
		for i := 0; i < min(v.size, n); i++ {
			x, err := copyFn(*src.buf.Ptr(i))
			if err != nil {
				return err
			}
			*v.buf.Ptr(i) = x
		}
		if v.size <= n {
			for i := v.size; i < n; i++ {
				x, err := copyFn(*src.buf.Ptr(i))
				if err != nil {
					clear(v.buf.Slice(v.size, i))
					return err
				}
				*v.buf.Ptr(i) = x
			}
		} else {
			clear(v.buf.Slice(n, v.size))
		}
		v.size = n
		return nil
	}
	tmp, err := src.CloneFunc(copyFn)
	if err != nil {
		return err
	}
	v.Swap(tmp)
	return nil
}

// Swap exchanges contents with other in constant time. Swap is also the
// move-assignment operation: after v.Swap(other), other holds v's former
// state.
func (v *Vec[T]) Swap(other *Vec[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// insert places x at slot i without position validation. When at capacity
// the new element is written at its final offset in the new block before
// the prefix and suffix are relocated around it, so the element is built
// exactly once and the old block stays intact until the relocation is done.
func (v *Vec[T]) insert(i int, x T) {
	if v.size == v.buf.Cap() {
		next := NewRawBuf[T](grownCap(v.buf.Cap()))
		*next.Ptr(i) = x
		copy(next.Slice(0, i), v.buf.Slice(0, i))
		copy(next.Slice(i+1, v.size+1), v.buf.Slice(i, v.size))
		v.buf.Swap(&next)
		next.Release()
	} else {
		window := v.buf.Slice(0, v.size+1)
		copy(window[i+1:], window[i:v.size])
		window[i] = x
	}
	v.size++
}

// growTo reallocates to newCap slots and relocates the live elements.
// newCap must be at least Len(). The old block is discarded whole; its
// slots need no individual destruction.
func (v *Vec[T]) growTo(newCap int) {
	next := NewRawBuf[T](newCap)
	copy(next.Slice(0, v.size), v.buf.Slice(0, v.size))
	v.buf.Swap(&next)
	next.Release()
}

// grownCap returns the doubled capacity, minimum 1.
func grownCap(oldCap int) int {
	if oldCap == 0 {
		return 1
	}
	return 2 * oldCap
}
