package vec

// Retain keeps only the elements pred accepts, preserving their relative
// order, and discards the rest. Single forward compaction pass: pred is
// evaluated exactly once per original element, in index order. O(length).
func (v *Vec[T]) Retain(pred func(x T) bool) {
	w := 0
	for r := 0; r < v.length; r++ {
		if pred(v.store.slots[r]) {
			v.store.slots[w] = v.store.slots[r]
			w++
		}
	}
	v.truncateTo(w)
}

// ExtractIf removes and returns the elements pred accepts. Both the returned
// vector and the remaining elements keep their original relative order. The
// write index tracks how far prior removals have already shifted the
// survivors, so a run of matches never skips the element sliding into a
// vacated slot. O(length).
func (v *Vec[T]) ExtractIf(pred func(x T) bool) *Vec[T] {
	out := New[T]()
	w := 0
	for r := 0; r < v.length; r++ {
		x := v.store.slots[r]
		if pred(x) {
			out.Push(x)
		} else {
			v.store.slots[w] = x
			w++
		}
	}
	v.truncateTo(w)
	return out
}

// DedupBy removes consecutive runs of elements equal under eq, keeping the
// first element of each run. This is not global deduplication: equal
// elements separated by a non-equal one survive.
//
// The scan is a single left-to-right pass comparing each element against the
// last kept one, so duplicates that become adjacent only because of earlier
// removals in the same pass are removed too; the scan never restarts.
func (v *Vec[T]) DedupBy(eq func(a, b T) bool) {
	if v.length < 2 {
		return
	}
	w := 1
	for r := 1; r < v.length; r++ {
		if !eq(v.store.slots[w-1], v.store.slots[r]) {
			v.store.slots[w] = v.store.slots[r]
			w++
		}
	}
	v.truncateTo(w)
}

// Dedup is DedupBy under element equality.
func Dedup[T comparable](v *Vec[T]) {
	v.DedupBy(func(a, b T) bool { return a == b })
}
