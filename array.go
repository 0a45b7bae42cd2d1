package vec

import "fmt"

// Array is a fixed-length array: a single Store whose length never changes.
// There is no capacity concept and no reallocation. It shares the search,
// sort, fold, map, iterate, equality, and prefix/suffix families with Vec
// through the Seq and MutSeq interfaces.
type Array[T any] struct {
	store *Store[T]
}

// NewArray creates an array of n zero-valued elements.
// Panics if n is negative.
func NewArray[T any](n int) *Array[T] {
	return &Array[T]{store: NewStore[T](n)}
}

// ArrayFilled creates an array of n elements, each holding v.
func ArrayFilled[T any](n int, v T) *Array[T] {
	return &Array[T]{store: NewStoreFilled(n, v)}
}

// ArrayFunc creates an array of n elements where element i holds fn(i).
func ArrayFunc[T any](n int, fn func(i int) T) *Array[T] {
	return &Array[T]{store: NewStoreFunc(n, fn)}
}

// ArrayOf creates an array holding the given values in order.
func ArrayOf[T any](xs ...T) *Array[T] {
	return ArrayFromSlice(xs)
}

// ArrayFromSlice creates an array holding a copy of s.
func ArrayFromSlice[T any](s []T) *Array[T] {
	a := NewArray[T](len(s))
	copy(a.store.slots, s)
	return a
}

// Len returns the fixed element count.
func (a *Array[T]) Len() int { return a.store.Len() }

// Get returns the element at index i. Panics if i is out of range.
func (a *Array[T]) Get(i int) T {
	a.checkIndex(i)
	return a.store.slots[i]
}

// GetOpt returns the element at index i, or the zero value and false if i
// is out of range.
func (a *Array[T]) GetOpt(i int) (T, bool) {
	if i < 0 || i >= a.store.Len() {
		var zero T
		return zero, false
	}
	return a.store.slots[i], true
}

// Set replaces the element at index i with x. Panics if i is out of range.
func (a *Array[T]) Set(i int, x T) {
	a.checkIndex(i)
	a.store.slots[i] = x
}

// Swap exchanges the elements at indexes i and j.
// Panics if either index is out of range.
func (a *Array[T]) Swap(i, j int) {
	a.checkIndex(i)
	a.checkIndex(j)
	a.store.slots[i], a.store.slots[j] = a.store.slots[j], a.store.slots[i]
}

// Fill sets every element to v.
func (a *Array[T]) Fill(v T) {
	for i := range a.store.slots {
		a.store.slots[i] = v
	}
}

// Reverse reverses the element order in place.
func (a *Array[T]) Reverse() {
	n := a.store.Len()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		a.store.slots[i], a.store.slots[j] = a.store.slots[j], a.store.slots[i]
	}
}

// ToSlice returns a copy of the elements.
func (a *Array[T]) ToSlice() []T {
	out := make([]T, a.store.Len())
	copy(out, a.store.slots)
	return out
}

// Clone returns a new array with the same elements.
func (a *Array[T]) Clone() *Array[T] {
	return ArrayFromSlice(a.store.slots)
}

// ToVec returns a growable vector holding a copy of the elements.
func (a *Array[T]) ToVec() *Vec[T] {
	return FromArray(a)
}

// String renders the elements as "[e0, e1, ...]".
func (a *Array[T]) String() string {
	return formatSeq[T](a)
}

func (a *Array[T]) checkIndex(i int) {
	if i < 0 || i >= a.store.Len() {
		panic(fmt.Sprintf("vec: array index %d out of range [0, %d)", i, a.store.Len()))
	}
}
