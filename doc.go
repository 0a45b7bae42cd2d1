// Package vec implements a generic growable array (vector) and its
// fixed-length sibling for Go.
//
// # Overview
//
// Vec is a dynamic array built on an owned fixed-length Store: it tracks a
// logical length alongside the store's physical capacity and reallocates with
// a doubling policy when capacity runs out. This gives amortized O(1) append
// together with a broad set of in-place and non-destructive transformations:
//
//   - Structural mutation: push, pop, insert, remove, drain, swap
//   - Compaction: retain, extract-if, dedup
//   - Partitioning: chunks, chunk-by, split, flatten, join, repeat
//   - Traversal: forward/reverse iteration, map, fold (left and right)
//   - Search and comparison: contains, search, prefix/suffix, equality
//   - Ordering: sort, stable sort, custom comparators, injected-rand shuffle
//
// Array is the fixed-length counterpart: a single Store with no growth
// concept, sharing the algorithm family (search, sort, fold, map, iterate,
// equality, prefix/suffix) with Vec through the Seq and MutSeq interfaces.
//
// # Basic Usage
//
//	v := vec.Of(3, 1, 2)
//	v.Push(4)            // [3, 1, 2, 4]
//	vec.Sort[int](v)     // [1, 2, 3, 4]
//
//	x, ok := v.Pop()     // 4, true
//
//	evens := v.ExtractIf(func(x int) bool { return x%2 == 0 })
//
// Operations whose element constraints cannot be expressed on a method of
// Vec[T any] (equality-based search, default-ordered sorting, map to a
// different element type, folds) are package-level generic functions taking
// the container as their first argument, e.g. vec.Contains(v, 3) and
// vec.FoldLeft(v, 0, add).
//
// # Error Handling
//
// Out-of-range indexes on direct access or index-taking mutation, popping an
// empty vector via MustPop, and negative sizes are programming defects: they
// panic immediately with a message carrying the offending index and the
// current length. Call sites that treat absence as a normal outcome use the
// optional variants (GetOpt, Pop, Search, StripPrefix, StripSuffix), which
// return an ok flag instead.
//
// # Thread Safety
//
// Vec and Array are not synchronized. Each value assumes a single logical
// owner; concurrent mutation without external locking is undefined behavior.
// Callbacks passed to traversal or filtering operations run synchronously on
// the caller's goroutine and must not mutate the container they were handed.
//
// # Performance Characteristics
//
//   - Push: O(1) amortized (capacity doubles, 8 slots minimum)
//   - Get/Set/Pop/Swap: O(1)
//   - Insert/Remove/Drain: O(n) shifting
//   - Retain/ExtractIf/Dedup: single O(n) compaction pass
//   - Reserve/ShrinkToFit: O(n) reallocation, exact capacity
package vec
