package vec

import "fmt"

// initialCapacity is the capacity a zero-capacity vector jumps to on its
// first growth.
const initialCapacity = 8

// Vec is a growable array. It owns exactly one Store, whose length is the
// vector's capacity; the first Len() slots hold the live elements and the
// remainder is never observable through the public API.
//
// Not goroutine-safe; see the package documentation.
type Vec[T any] struct {
	store  *Store[T]
	length int
}

// New creates an empty vector with zero capacity.
func New[T any]() *Vec[T] {
	return &Vec[T]{store: NewStore[T](0)}
}

// WithCapacity creates an empty vector whose store already holds n slots.
// Panics if n is negative.
func WithCapacity[T any](n int) *Vec[T] {
	return &Vec[T]{store: NewStore[T](n)}
}

// Of creates a vector holding the given values in order.
func Of[T any](xs ...T) *Vec[T] {
	v := WithCapacity[T](len(xs))
	v.Append(xs...)
	return v
}

// FromSlice creates a vector holding a copy of s. The vector never aliases s.
func FromSlice[T any](s []T) *Vec[T] {
	v := WithCapacity[T](len(s))
	v.Append(s...)
	return v
}

// Filled creates a vector of n elements, each holding v.
// Panics if n is negative.
func Filled[T any](n int, v T) *Vec[T] {
	return &Vec[T]{store: NewStoreFilled(n, v), length: n}
}

// FromFunc creates a vector of n elements where element i holds fn(i).
// Panics if n is negative.
func FromFunc[T any](n int, fn func(i int) T) *Vec[T] {
	return &Vec[T]{store: NewStoreFunc(n, fn), length: n}
}

// FromArray creates a vector holding a copy of the fixed array's elements.
func FromArray[T any](a *Array[T]) *Vec[T] {
	return FromSlice(a.store.slots)
}

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.length }

// Cap returns the physical slot count of the owned store.
func (v *Vec[T]) Cap() int { return v.store.Len() }

// IsEmpty reports whether the vector holds no elements.
func (v *Vec[T]) IsEmpty() bool { return v.length == 0 }

// Get returns the element at index i.
// Panics if i is out of range; use GetOpt when absence is a normal outcome.
func (v *Vec[T]) Get(i int) T {
	v.checkIndex(i)
	return v.store.slots[i]
}

// GetOpt returns the element at index i, or the zero value and false if i is
// out of range.
func (v *Vec[T]) GetOpt(i int) (T, bool) {
	if i < 0 || i >= v.length {
		var zero T
		return zero, false
	}
	return v.store.slots[i], true
}

// Set replaces the element at index i with x. Panics if i is out of range.
func (v *Vec[T]) Set(i int, x T) {
	v.checkIndex(i)
	v.store.slots[i] = x
}

// Swap exchanges the elements at indexes i and j.
// Panics if either index is out of range.
func (v *Vec[T]) Swap(i, j int) {
	v.checkIndex(i)
	v.checkIndex(j)
	v.store.slots[i], v.store.slots[j] = v.store.slots[j], v.store.slots[i]
}

// Push appends x, growing the store when length has reached capacity.
// Amortized O(1).
func (v *Vec[T]) Push(x T) {
	if v.length == v.store.Len() {
		v.grow(v.length + 1)
	}
	v.store.slots[v.length] = x
	v.length++
}

// Append appends all of xs in order. A single reallocation covers the whole
// batch, so appending n elements is O(n) even when growth is needed.
func (v *Vec[T]) Append(xs ...T) {
	if len(xs) == 0 {
		return
	}
	if v.length+len(xs) > v.store.Len() {
		v.grow(v.length + len(xs))
	}
	copy(v.store.slots[v.length:], xs)
	v.length += len(xs)
}

// Pop removes and returns the last element, or the zero value and false if
// the vector is empty. Capacity is unchanged.
func (v *Vec[T]) Pop() (T, bool) {
	var zero T
	if v.length == 0 {
		return zero, false
	}
	v.length--
	x := v.store.slots[v.length]
	v.store.slots[v.length] = zero
	return x, true
}

// MustPop removes and returns the last element. Panics if the vector is
// empty; use Pop when absence is a normal outcome.
func (v *Vec[T]) MustPop() T {
	x, ok := v.Pop()
	if !ok {
		panic("vec: pop from empty vector (length 0)")
	}
	return x
}

// Reserve ensures capacity is at least n, reallocating to exactly n if it is
// not. A caller hint: the doubling policy does not apply here. No-op when
// capacity already suffices.
func (v *Vec[T]) Reserve(n int) {
	if n <= v.store.Len() {
		return
	}
	v.realloc(n)
}

// ShrinkToFit reallocates so capacity equals length. No-op when they already
// match. Element order and values are preserved exactly.
func (v *Vec[T]) ShrinkToFit() {
	if v.store.Len() <= v.length {
		return
	}
	v.realloc(v.length)
}

// ToSlice returns a copy of the live elements. The slice never aliases the
// vector's store.
func (v *Vec[T]) ToSlice() []T {
	out := make([]T, v.length)
	copy(out, v.store.slots[:v.length])
	return out
}

// Clone returns a new vector with the same elements and capacity equal to
// the length.
func (v *Vec[T]) Clone() *Vec[T] {
	return FromSlice(v.store.slots[:v.length])
}

// ToArray returns a fixed array holding a copy of the live elements.
func (v *Vec[T]) ToArray() *Array[T] {
	return ArrayFromSlice(v.store.slots[:v.length])
}

// String renders the live elements as "[e0, e1, ...]".
func (v *Vec[T]) String() string {
	return formatSeq[T](v)
}

// grow reallocates following the doubling policy: an empty store jumps to
// initialCapacity, otherwise capacity doubles until it covers min.
func (v *Vec[T]) grow(min int) {
	newCap := v.store.Len()
	if newCap == 0 {
		newCap = initialCapacity
	}
	for newCap < min {
		newCap *= 2
	}
	v.realloc(newCap)
}

// realloc replaces the store with one of newCap slots, copying only the live
// prefix. The dead region of the old store is never touched.
func (v *Vec[T]) realloc(newCap int) {
	next := NewStore[T](newCap)
	copy(next.slots, v.store.slots[:v.length])
	v.store = next
}

func (v *Vec[T]) checkIndex(i int) {
	if i < 0 || i >= v.length {
		panic(fmt.Sprintf("vec: index %d out of range [0, %d)", i, v.length))
	}
}
