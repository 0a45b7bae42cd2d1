package vec

import "fmt"

// Insert places x at index i, shifting elements [i, length) one slot right.
// i == Len() appends. Panics if i is outside [0, Len()]. O(length - i).
func (v *Vec[T]) Insert(i int, x T) {
	if i < 0 || i > v.length {
		panic(fmt.Sprintf("vec: insert index %d out of range [0, %d]", i, v.length))
	}
	if v.length == v.store.Len() {
		v.grow(v.length + 1)
	}
	// Shift high to low so no live slot is overwritten before it is read.
	for j := v.length; j > i; j-- {
		v.store.slots[j] = v.store.slots[j-1]
	}
	v.store.slots[i] = x
	v.length++
}

// Remove deletes and returns the element at index i, shifting elements
// (i, length) one slot left. Panics if i is out of range. O(length - i);
// capacity is unchanged.
func (v *Vec[T]) Remove(i int) T {
	v.checkIndex(i)
	x := v.store.slots[i]
	copy(v.store.slots[i:v.length-1], v.store.slots[i+1:v.length])
	v.length--
	var zero T
	v.store.slots[v.length] = zero
	return x
}

// Drain removes the elements at [begin, end) in a single compaction pass and
// returns them, in order, in a fresh vector. The source keeps its original
// [0, begin) and [end, length) segments concatenated; capacity is unchanged.
// Panics unless 0 <= begin <= end <= Len().
func (v *Vec[T]) Drain(begin, end int) *Vec[T] {
	if begin < 0 || end < begin || end > v.length {
		panic(fmt.Sprintf("vec: drain bounds [%d, %d) out of range [0, %d]", begin, end, v.length))
	}
	out := FromSlice(v.store.slots[begin:end])
	copy(v.store.slots[begin:], v.store.slots[end:v.length])
	v.truncateTo(v.length - (end - begin))
	return out
}

// SplitAt returns copies of the elements before and from index i as two
// fresh vectors; the source is unchanged. Panics unless 0 <= i <= Len().
func (v *Vec[T]) SplitAt(i int) (*Vec[T], *Vec[T]) {
	if i < 0 || i > v.length {
		panic(fmt.Sprintf("vec: split index %d out of range [0, %d]", i, v.length))
	}
	return FromSlice(v.store.slots[:i]), FromSlice(v.store.slots[i:v.length])
}

// Truncate shortens the vector to n elements. No-op when n >= Len().
// Panics if n is negative. Capacity is unchanged.
func (v *Vec[T]) Truncate(n int) {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative truncate length %d", n))
	}
	if n >= v.length {
		return
	}
	v.truncateTo(n)
}

// Resize sets the length to n, truncating or appending copies of fill as
// needed. Panics if n is negative.
func (v *Vec[T]) Resize(n int, fill T) {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative resize length %d", n))
	}
	if n <= v.length {
		v.truncateTo(n)
		return
	}
	if n > v.store.Len() {
		v.grow(n)
	}
	for i := v.length; i < n; i++ {
		v.store.slots[i] = fill
	}
	v.length = n
}

// Clear removes all elements, keeping capacity.
func (v *Vec[T]) Clear() {
	v.truncateTo(0)
}

// Reverse reverses the element order in place.
func (v *Vec[T]) Reverse() {
	for i, j := 0, v.length-1; i < j; i, j = i+1, j-1 {
		v.store.slots[i], v.store.slots[j] = v.store.slots[j], v.store.slots[i]
	}
}

// truncateTo drops length to n, zeroing the vacated slots so reference
// types are released to the GC.
func (v *Vec[T]) truncateTo(n int) {
	var zero T
	for i := n; i < v.length; i++ {
		v.store.slots[i] = zero
	}
	v.length = n
}
