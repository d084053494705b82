package adjacent_test

import (
	"iter"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/KasperOmsK/adjacent"
	"github.com/KasperOmsK/adjacent/internal/iterx"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestSeq_Literals(t *testing.T) {
	tests := []struct {
		name string
		in   []int
		want []adjacent.Pair[int]
	}{
		{name: "empty", in: nil, want: nil},
		{name: "single", in: []int{1}, want: nil},
		{name: "two", in: []int{1, 2}, want: []adjacent.Pair[int]{{Prev: 1, Cur: 2}}},
		{name: "three", in: []int{1, 2, 3}, want: []adjacent.Pair[int]{
			{Prev: 1, Cur: 2},
			{Prev: 2, Cur: 3},
		}},
		{name: "six", in: []int{1, 2, 3, 4, 5, 6}, want: []adjacent.Pair[int]{
			{Prev: 1, Cur: 2},
			{Prev: 2, Cur: 3},
			{Prev: 3, Cur: 4},
			{Prev: 4, Cur: 5},
			{Prev: 5, Cur: 6},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjacent.CollectPairs(adjacent.Seq(iterx.FromSlice(tt.in)))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestSeq_StopsWhenConsumerBreaks(t *testing.T) {
	pulled := 0
	src := func(yield func(int) bool) {
		for i := range 100 {
			pulled++
			if !yield(i) {
				return
			}
		}
	}

	for range adjacent.Seq(src) {
		break
	}

	require.Equal(t, 2, pulled)
}

func TestSeq_MatchesPairs(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{}))

	for range 200 {
		n := rng.IntN(50)
		values := make([]int, n)
		for i := range values {
			values[i] = rng.IntN(1000)
		}

		pushed := adjacent.CollectPairs(adjacent.Seq(slices.Values(values)))
		pulled := adjacent.Of(values...).Collect()

		if diff := cmp.Diff(pulled, pushed); diff != "" {
			t.Fatalf("Seq and Pairs disagree for %v (-pulled +pushed):\n%s", values, diff)
		}

		require.Len(t, pushed, max(n-1, 0))
		for i, p := range pushed {
			require.Equal(t, values[i], p.Prev)
			require.Equal(t, values[i+1], p.Cur)
		}
	}
}

func TestSeqFunc_DuplicatesKeptValue(t *testing.T) {
	in := [][]int{{1}, {2}, {3}}

	var prevs [][]int
	for prev, cur := range adjacent.SeqFunc(slices.Values(in), slices.Clone[[]int]) {
		prevs = append(prevs, prev)
		cur[0] *= 10
	}

	require.Equal(t, [][]int{{1}, {2}}, prevs)
}

func TestSeqFunc_PanicsOnNilDup(t *testing.T) {
	require.Panics(t, func() {
		adjacent.SeqFunc[int](iterx.FromSlice([]int{1}), nil)
	})
}

func TestMapPairs_Deltas(t *testing.T) {
	readings := iterx.FromSlice([]int{10, 12, 15, 11})

	deltas := adjacent.MapPairs(readings, func(prev, cur int) int {
		return cur - prev
	})

	require.Equal(t, []int{2, 3, -4}, slices.Collect(deltas))
}

func TestMapPairs_ChannelInput(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)

	joined := adjacent.MapPairs(iterx.FromChan(ch), func(prev, cur string) string {
		return prev + cur
	})

	require.Equal(t, []string{"ab", "bc"}, slices.Collect(joined))
}

func TestMapPairs_Break(t *testing.T) {
	var seq iter.Seq[int] = slices.Values([]int{1, 2, 3, 4})

	var got []int
	for sum := range adjacent.MapPairs(seq, func(prev, cur int) int { return prev + cur }) {
		got = append(got, sum)
		if len(got) == 2 {
			break
		}
	}

	require.Equal(t, []int{3, 5}, got)
}
