package vec

import "fmt"

// Chunks partitions the elements front to back into consecutive groups of
// exactly size elements; the final group holds the remainder. Each chunk is
// a fresh vector that never aliases the source. Panics if size is not
// positive. An empty vector yields no chunks.
func (v *Vec[T]) Chunks(size int) []*Vec[T] {
	if size <= 0 {
		panic(fmt.Sprintf("vec: non-positive chunk size %d", size))
	}
	var out []*Vec[T]
	for i := 0; i < v.length; i += size {
		end := i + size
		if end > v.length {
			end = v.length
		}
		out = append(out, FromSlice(v.store.slots[i:end]))
	}
	return out
}

// ChunkBy groups consecutive elements a, b for which pred(a, b) holds into
// the same chunk; a new chunk starts at the first adjacent pair where pred
// is false. pred sees adjacent pairs of the source only, never pairs across
// an already-broken boundary.
func (v *Vec[T]) ChunkBy(pred func(a, b T) bool) []*Vec[T] {
	var out []*Vec[T]
	start := 0
	for i := 1; i < v.length; i++ {
		if !pred(v.store.slots[i-1], v.store.slots[i]) {
			out = append(out, FromSlice(v.store.slots[start:i]))
			start = i
		}
	}
	if v.length > 0 {
		out = append(out, FromSlice(v.store.slots[start:v.length]))
	}
	return out
}

// Split cuts the vector at every element pred accepts; the matched element
// itself is discarded. Adjacent matches yield an empty chunk between them,
// and leading/trailing matches yield leading/trailing empty chunks.
func (v *Vec[T]) Split(pred func(x T) bool) []*Vec[T] {
	out := []*Vec[T]{}
	cur := New[T]()
	for i := 0; i < v.length; i++ {
		x := v.store.slots[i]
		if pred(x) {
			out = append(out, cur)
			cur = New[T]()
		} else {
			cur.Push(x)
		}
	}
	return append(out, cur)
}

// Repeat returns a fresh vector holding n copies of the source in order.
// n <= 0 yields an empty vector.
func (v *Vec[T]) Repeat(n int) *Vec[T] {
	if n <= 0 {
		return New[T]()
	}
	out := WithCapacity[T](v.length * n)
	for i := 0; i < n; i++ {
		out.Append(v.store.slots[:v.length]...)
	}
	return out
}

// Flatten concatenates the parts in order into one fresh vector.
func Flatten[T any](parts []*Vec[T]) *Vec[T] {
	total := 0
	for _, p := range parts {
		total += p.length
	}
	out := WithCapacity[T](total)
	for _, p := range parts {
		out.Append(p.store.slots[:p.length]...)
	}
	return out
}

// Join concatenates the parts in order, inserting sep between consecutive
// parts (never after the last).
func Join[T any](parts []*Vec[T], sep T) *Vec[T] {
	out := New[T]()
	for i, p := range parts {
		if i > 0 {
			out.Push(sep)
		}
		out.Append(p.store.slots[:p.length]...)
	}
	return out
}
