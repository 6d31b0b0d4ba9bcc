package seq_test

import (
	"iter"
	"testing"

	"github.com/sotte/pelper/seq"

	"github.com/stretchr/testify/assert"
)

// naturals yields 0, 1, 2, ... forever.
func naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

func TestTake(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want []int
	}{
		{name: "first two", n: 2, want: []int{0, 1}},
		{name: "zero", n: 0, want: []int{}},
		{name: "negative", n: -3, want: []int{}},
		{name: "five", n: 5, want: []int{0, 1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seq.Take(naturals(), tt.n))
		})
	}
}

func TestTake_ShortSequence(t *testing.T) {
	s := seq.FromSlice([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, seq.Take(s, 10))
}

func TestNth(t *testing.T) {
	assert.Equal(t, 2, seq.Nth(naturals(), 2, -1))
	assert.Equal(t, 0, seq.Nth(naturals(), 0, -1))

	short := seq.FromSlice([]int{0, 1, 2, 3, 4})
	assert.Equal(t, -1, seq.Nth(short, 6, -1))
	assert.Equal(t, -1, seq.Nth(short, -2, -1))
}

func TestMapFilterCollect(t *testing.T) {
	squares := seq.Map(
		seq.FromSlice([]int{0, 1, 2, 3, 4}),
		func(x int) int { return x * x },
	)
	assert.Equal(t, []int{0, 1, 4, 9, 16}, seq.Collect(squares))

	big := seq.Filter(
		seq.FromSlice([]int{0, 1, 2, 3, 4}),
		func(x int) bool { return x > 2 },
	)
	assert.Equal(t, []int{3, 4}, seq.Collect(big))
}

func TestMap_LazyOnInfinite(t *testing.T) {
	doubled := seq.Map(naturals(), func(x int) int { return x * 2 })
	assert.Equal(t, []int{0, 2, 4}, seq.Take(doubled, 3))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want []any
	}{
		{
			name: "flat input",
			in:   []any{0, 1, 2},
			want: []any{0, 1, 2},
		},
		{
			name: "one level",
			in:   []any{1, []any{2, 2}},
			want: []any{1, 2, 2},
		},
		{
			name: "deeply nested",
			in:   []any{1, []any{2, 2}, []any{3, 3, 3, []any{4, 4, 4, 4}, 3}, 1},
			want: []any{1, 2, 2, 3, 3, 3, 4, 4, 4, 4, 3, 1},
		},
		{
			name: "strings stay whole",
			in:   []any{"one", []any{"two", "three", []any{"four"}}},
			want: []any{"one", "two", "three", "four"},
		},
		{
			name: "typed inner slices",
			in:   []any{[]int{1, 2}, []string{"a"}},
			want: []any{1, 2, "a"},
		},
		{
			name: "scalar becomes singleton",
			in:   42,
			want: []any{42},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, seq.Flatten(tt.in))
		})
	}
}

func TestFlattenSlices(t *testing.T) {
	assert.Equal(t,
		[]int{1, 2, 3, 4, 5},
		seq.FlattenSlices([][]int{{1, 2}, {}, {3, 4, 5}}),
	)
	assert.Equal(t, []int{}, seq.FlattenSlices([][]int{}))
}
