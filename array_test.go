package vec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArrayConstructors(t *testing.T) {
	tests := []struct {
		name string
		a    *Array[int]
		want []int
	}{
		{"NewArray", NewArray[int](3), []int{0, 0, 0}},
		{"ArrayFilled", ArrayFilled(3, 7), []int{7, 7, 7}},
		{"ArrayFunc", ArrayFunc(3, func(i int) int { return i + 1 }), []int{1, 2, 3}},
		{"ArrayOf", ArrayOf(4, 5), []int{4, 5}},
		{"ArrayFromSlice", ArrayFromSlice([]int{6}), []int{6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.ToSlice())
			assert.Equal(t, len(tt.want), tt.a.Len())
		})
	}

	mustPanic(t, func() { NewArray[int](-1) })
}

func TestArrayGetSet(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	if got := a.Get(2); got != 3 {
		t.Errorf("Get(2) = %d, want 3", got)
	}
	a.Set(2, 9)
	if got := a.Get(2); got != 9 {
		t.Errorf("Get(2) after Set = %d, want 9", got)
	}
	// Length never changes: there is no growth surface at all.
	if a.Len() != 3 {
		t.Errorf("length = %d, want 3", a.Len())
	}

	for _, i := range []int{-1, 3} {
		mustPanic(t, func() { a.Get(i) })
		mustPanic(t, func() { a.Set(i, 0) })
	}

	x, ok := a.GetOpt(1)
	assert.True(t, ok)
	assert.Equal(t, 2, x)
	_, ok = a.GetOpt(3)
	assert.False(t, ok)
}

func TestArrayPanicMessage(t *testing.T) {
	a := ArrayOf(1, 2)
	assert.PanicsWithValue(t, "vec: array index 2 out of range [0, 2)", func() { a.Get(2) })
}

func TestArraySwapFillReverse(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	a.Swap(0, 2)
	assert.Equal(t, []int{3, 2, 1}, a.ToSlice())
	a.Reverse()
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	a.Fill(0)
	assert.Equal(t, []int{0, 0, 0}, a.ToSlice())
	mustPanic(t, func() { a.Swap(0, 3) })
}

func TestArrayClone(t *testing.T) {
	a := ArrayOf(1, 2)
	c := a.Clone()
	c.Set(0, 9)
	assert.Equal(t, []int{1, 2}, a.ToSlice())
	assert.Equal(t, []int{9, 2}, c.ToSlice())
}

func TestArrayVecConversions(t *testing.T) {
	a := ArrayOf(1, 2, 3)
	v := a.ToVec()
	v.Push(4)
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())
	assert.Equal(t, []int{1, 2, 3, 4}, v.ToSlice())

	back := v.ToArray()
	assert.Equal(t, []int{1, 2, 3, 4}, back.ToSlice())
	assert.Equal(t, 4, back.Len())
}

// The shared algorithm family works on Array through Seq/MutSeq.
func TestArrayAlgorithmSurface(t *testing.T) {
	a := ArrayOf(3, 1, 2)

	i, ok := Search[int](a, 1)
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	assert.True(t, Contains[int](a, 3))

	assert.False(t, IsSorted[int](a))
	StableSort[int](a)
	assert.True(t, IsSorted[int](a))
	assert.Equal(t, []int{1, 2, 3}, a.ToSlice())

	assert.True(t, StartsWith[int](a, Of(1, 2)))
	assert.True(t, EndsWith[int](a, ArrayOf(3)))

	rest, ok := StripPrefix[int](a, ArrayOf(1))
	assert.True(t, ok)
	assert.Equal(t, []int{2, 3}, rest.ToSlice())

	sum := FoldLeft[int](a, 0, func(acc, x int) int { return acc + x })
	assert.Equal(t, 6, sum)

	doubled := Map[int](a, func(x int) int { return x * 2 })
	assert.Equal(t, []int{2, 4, 6}, doubled.ToSlice())

	var seen []int
	IterRev[int](a, func(x int) { seen = append(seen, x) })
	assert.Equal(t, []int{3, 2, 1}, seen)
}

func TestArrayString(t *testing.T) {
	if got := ArrayOf(1, 2).String(); got != "[1, 2]" {
		t.Errorf("String() = %q, want %q", got, "[1, 2]")
	}
	if got := NewArray[int](0).String(); got != "[]" {
		t.Errorf("String() on empty = %q, want %q", got, "[]")
	}
}
