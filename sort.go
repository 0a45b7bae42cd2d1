package vec

import (
	"cmp"
	"sort"
)

// IntN is the randomness capability consumed by the shuffle operations: it
// returns a uniformly distributed int in [0, n). (*math/rand/v2.Rand).IntN
// satisfies it. Passing the generator explicitly keeps shuffling
// deterministic under test; no global generator is ever read.
type IntN func(n int) int

// sorter adapts a MutSeq and a three-way comparator to sort.Interface.
type sorter[T any] struct {
	s       MutSeq[T]
	compare func(a, b T) int
}

func (x sorter[T]) Len() int           { return x.s.Len() }
func (x sorter[T]) Less(i, j int) bool { return x.compare(x.s.Get(i), x.s.Get(j)) < 0 }
func (x sorter[T]) Swap(i, j int)      { x.s.Swap(i, j) }

// Sort reorders s into non-descending order. Not guaranteed stable; use
// StableSort to preserve the relative order of equal elements.
func Sort[T cmp.Ordered](s MutSeq[T]) {
	SortBy(s, cmp.Compare[T])
}

// StableSort reorders s into non-descending order, preserving the relative
// order of equal elements.
func StableSort[T cmp.Ordered](s MutSeq[T]) {
	StableSortBy(s, cmp.Compare[T])
}

// SortBy reorders s by the given three-way comparator (negative: a before
// b, zero: equal, positive: a after b). Not guaranteed stable.
func SortBy[T any](s MutSeq[T], compare func(a, b T) int) {
	sort.Sort(sorter[T]{s, compare})
}

// StableSortBy is SortBy with the stability guarantee.
func StableSortBy[T any](s MutSeq[T], compare func(a, b T) int) {
	sort.Stable(sorter[T]{s, compare})
}

// SortByKey reorders s into non-descending order of key(x). Stable, so
// elements with equal keys keep their relative order.
func SortByKey[T any, K cmp.Ordered](s MutSeq[T], key func(x T) K) {
	StableSortBy(s, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// ShuffleInPlace permutes s using the Fisher-Yates walk driven entirely by
// rng.
func ShuffleInPlace[T any](s MutSeq[T], rng IntN) {
	for i := s.Len() - 1; i > 0; i-- {
		s.Swap(i, rng(i+1))
	}
}

// Shuffle returns a fresh vector holding a permutation of s driven by rng;
// s is unchanged.
func Shuffle[T any](s Seq[T], rng IntN) *Vec[T] {
	out := WithCapacity[T](s.Len())
	for i := 0; i < s.Len(); i++ {
		out.Push(s.Get(i))
	}
	ShuffleInPlace[T](out, rng)
	return out
}
