package vec

import "cmp"

// Contains reports whether x occurs in s. Linear; stops at the first match.
func Contains[T comparable](s Seq[T], x T) bool {
	_, ok := Search(s, x)
	return ok
}

// Search returns the index of the first occurrence of x in s, or 0 and
// false if x does not occur.
func Search[T comparable](s Seq[T], x T) (int, bool) {
	for i := 0; i < s.Len(); i++ {
		if s.Get(i) == x {
			return i, true
		}
	}
	return 0, false
}

// SearchBy returns the index of the first element pred accepts, or 0 and
// false if none does.
func SearchBy[T any](s Seq[T], pred func(x T) bool) (int, bool) {
	for i := 0; i < s.Len(); i++ {
		if pred(s.Get(i)) {
			return i, true
		}
	}
	return 0, false
}

// StartsWith reports whether s begins with prefix. An empty prefix matches
// everything.
func StartsWith[T comparable](s, prefix Seq[T]) bool {
	if prefix.Len() > s.Len() {
		return false
	}
	for i := 0; i < prefix.Len(); i++ {
		if s.Get(i) != prefix.Get(i) {
			return false
		}
	}
	return true
}

// EndsWith reports whether s ends with suffix. An empty suffix matches
// everything.
func EndsWith[T comparable](s, suffix Seq[T]) bool {
	off := s.Len() - suffix.Len()
	if off < 0 {
		return false
	}
	for i := 0; i < suffix.Len(); i++ {
		if s.Get(off+i) != suffix.Get(i) {
			return false
		}
	}
	return true
}

// StripPrefix returns a fresh vector holding s without its leading prefix,
// or nil and false if s does not start with prefix.
func StripPrefix[T comparable](s, prefix Seq[T]) (*Vec[T], bool) {
	if !StartsWith(s, prefix) {
		return nil, false
	}
	out := WithCapacity[T](s.Len() - prefix.Len())
	for i := prefix.Len(); i < s.Len(); i++ {
		out.Push(s.Get(i))
	}
	return out, true
}

// StripSuffix returns a fresh vector holding s without its trailing suffix,
// or nil and false if s does not end with suffix.
func StripSuffix[T comparable](s, suffix Seq[T]) (*Vec[T], bool) {
	if !EndsWith(s, suffix) {
		return nil, false
	}
	n := s.Len() - suffix.Len()
	out := WithCapacity[T](n)
	for i := 0; i < n; i++ {
		out.Push(s.Get(i))
	}
	return out, true
}

// IsSorted reports whether every adjacent pair of s is non-descending.
// Empty and single-element sequences are trivially sorted.
func IsSorted[T cmp.Ordered](s Seq[T]) bool {
	for i := 1; i < s.Len(); i++ {
		if s.Get(i) < s.Get(i-1) {
			return false
		}
	}
	return true
}

// Equal reports whether a and b have the same length and equal elements in
// index order. Short-circuits on the length check, then on the first
// differing pair.
func Equal[T comparable](a, b Seq[T]) bool {
	return EqualBy(a, b, func(x, y T) bool { return x == y })
}

// EqualBy is Equal under a caller-supplied element equality.
func EqualBy[T any](a, b Seq[T], eq func(x, y T) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !eq(a.Get(i), b.Get(i)) {
			return false
		}
	}
	return true
}
