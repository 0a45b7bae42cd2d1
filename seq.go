package vec

import (
	"fmt"
	"iter"
	"strings"
)

// Seq is the read surface shared by Vec and Array: a length and O(1) indexed
// access. The traversal, fold, search, and comparison families operate on
// Seq so both container types get them.
type Seq[T any] interface {
	Len() int
	Get(i int) T
}

// MutSeq adds the write surface. Sorting, shuffling, and in-place mapping
// operate on MutSeq.
type MutSeq[T any] interface {
	Seq[T]
	Set(i int, x T)
	Swap(i, j int)
}

var (
	_ MutSeq[int] = (*Vec[int])(nil)
	_ MutSeq[int] = (*Array[int])(nil)
)

// Iter calls fn once per element, front to back.
func Iter[T any](s Seq[T], fn func(x T)) {
	for i := 0; i < s.Len(); i++ {
		fn(s.Get(i))
	}
}

// IterRev calls fn once per element, back to front.
func IterRev[T any](s Seq[T], fn func(x T)) {
	for i := s.Len() - 1; i >= 0; i-- {
		fn(s.Get(i))
	}
}

// Iteri calls fn once per element, front to back, with the element's index.
func Iteri[T any](s Seq[T], fn func(i int, x T)) {
	for i := 0; i < s.Len(); i++ {
		fn(i, s.Get(i))
	}
}

// IterRevi calls fn once per element, back to front. The index passed to fn
// is the element's forward position, not its reverse-order rank: the last
// element is visited first with index Len()-1.
func IterRevi[T any](s Seq[T], fn func(i int, x T)) {
	for i := s.Len() - 1; i >= 0; i-- {
		fn(i, s.Get(i))
	}
}

// All returns a forward index/element iterator usable with range.
func All[T any](s Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < s.Len(); i++ {
			if !yield(i, s.Get(i)) {
				return
			}
		}
	}
}

// Backward returns a back-to-front index/element iterator usable with range.
// Indexes are forward positions, matching IterRevi.
func Backward[T any](s Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := s.Len() - 1; i >= 0; i-- {
			if !yield(i, s.Get(i)) {
				return
			}
		}
	}
}

// Map applies fn to every element, front to back, collecting the results in
// a fresh vector.
func Map[T, U any](s Seq[T], fn func(x T) U) *Vec[U] {
	out := WithCapacity[U](s.Len())
	for i := 0; i < s.Len(); i++ {
		out.Push(fn(s.Get(i)))
	}
	return out
}

// Mapi is Map with the element's index supplied to fn.
func Mapi[T, U any](s Seq[T], fn func(i int, x T) U) *Vec[U] {
	out := WithCapacity[U](s.Len())
	for i := 0; i < s.Len(); i++ {
		out.Push(fn(i, s.Get(i)))
	}
	return out
}

// MapInPlace replaces every element with fn applied to it, front to back.
func MapInPlace[T any](s MutSeq[T], fn func(x T) T) {
	for i := 0; i < s.Len(); i++ {
		s.Set(i, fn(s.Get(i)))
	}
}

// MapiInPlace is MapInPlace with the element's index supplied to fn.
func MapiInPlace[T any](s MutSeq[T], fn func(i int, x T) T) {
	for i := 0; i < s.Len(); i++ {
		s.Set(i, fn(i, s.Get(i)))
	}
}

// FoldLeft threads one accumulator across a full forward pass:
// fn(fn(fn(init, e0), e1), e2) for a three-element sequence.
func FoldLeft[T, A any](s Seq[T], init A, fn func(acc A, x T) A) A {
	acc := init
	for i := 0; i < s.Len(); i++ {
		acc = fn(acc, s.Get(i))
	}
	return acc
}

// FoldLefti is FoldLeft with the element's forward index supplied to fn.
func FoldLefti[T, A any](s Seq[T], init A, fn func(i int, acc A, x T) A) A {
	acc := init
	for i := 0; i < s.Len(); i++ {
		acc = fn(i, acc, s.Get(i))
	}
	return acc
}

// FoldRight threads one accumulator across a full backward pass: the last
// element is folded first.
func FoldRight[T, A any](s Seq[T], init A, fn func(acc A, x T) A) A {
	acc := init
	for i := s.Len() - 1; i >= 0; i-- {
		acc = fn(acc, s.Get(i))
	}
	return acc
}

// FoldRighti is FoldRight with an index supplied to fn. The index is the
// element's distance from the end, not its forward position: the last
// element is folded first with index 0. Both "i" variants thus report how
// many elements the pass has already folded.
func FoldRighti[T, A any](s Seq[T], init A, fn func(i int, acc A, x T) A) A {
	acc := init
	n := s.Len()
	for i := n - 1; i >= 0; i-- {
		acc = fn(n-1-i, acc, s.Get(i))
	}
	return acc
}

// formatSeq renders a sequence as "[e0, e1, ...]" using each element's
// default formatting.
func formatSeq[T any](s Seq[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", s.Get(i))
	}
	b.WriteByte(']')
	return b.String()
}
