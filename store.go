package vec

import "fmt"

// Store is a fixed-length, indexable block of element slots. It is the raw
// storage substrate Vec is built on and also backs Array. A store's length is
// decided at creation and never changes; there is no growth concept here.
//
// Newly created slots hold T's zero value.
type Store[T any] struct {
	slots []T
}

// NewStore creates a store of n zero-valued slots. Panics if n is negative.
func NewStore[T any](n int) *Store[T] {
	if n < 0 {
		panic(fmt.Sprintf("vec: negative store length %d", n))
	}
	return &Store[T]{slots: make([]T, n)}
}

// NewStoreFilled creates a store of n slots, each holding v.
func NewStoreFilled[T any](n int, v T) *Store[T] {
	s := NewStore[T](n)
	for i := range s.slots {
		s.slots[i] = v
	}
	return s
}

// NewStoreFunc creates a store of n slots where slot i holds fn(i).
// fn is called once per slot, in index order.
func NewStoreFunc[T any](n int, fn func(i int) T) *Store[T] {
	s := NewStore[T](n)
	for i := range s.slots {
		s.slots[i] = fn(i)
	}
	return s
}

// Len returns the number of slots.
func (s *Store[T]) Len() int { return len(s.slots) }

// Get returns the element in slot i. Panics if i is out of range.
func (s *Store[T]) Get(i int) T {
	if i < 0 || i >= len(s.slots) {
		panic(fmt.Sprintf("vec: store index %d out of range [0, %d)", i, len(s.slots)))
	}
	return s.slots[i]
}

// Set writes v into slot i. Panics if i is out of range.
func (s *Store[T]) Set(i int, v T) {
	if i < 0 || i >= len(s.slots) {
		panic(fmt.Sprintf("vec: store index %d out of range [0, %d)", i, len(s.slots)))
	}
	s.slots[i] = v
}
