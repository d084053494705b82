package adjacent

import (
	"iter"
)

// PairFunc combines two successive values into a single value.
type PairFunc[T, Out any] func(prev, cur T) Out

// Seq returns an iterator over the adjacent pairs of seq.
//
// Like Pairs, it keeps a single value between two yields and ranges over
// seq exactly once. A seq yielding n values produces max(n-1, 0) pairs.
//
// For example, given input values:
//
//	1, 2, 3, 4
//
// Seq will yield:
//
//	(1, 2), (2, 3), (3, 4)
func Seq[T any](seq iter.Seq[T]) iter.Seq2[T, T] {
	return SeqFunc(seq, identity[T])
}

// SeqFunc is like Seq but duplicates each value kept for the next pair with
// dup.
//
// SeqFunc panics if dup is nil.
func SeqFunc[T any](seq iter.Seq[T], dup DupFunc[T]) iter.Seq2[T, T] {
	if dup == nil {
		panic("adjacent.SeqFunc: dup must not be nil")
	}
	return func(yield func(T, T) bool) {
		var prev T
		hasPrev := false
		for cur := range seq {
			// duplicate before yielding so the consumer cannot alter the
			// next pair's first value
			kept := dup(cur)
			if hasPrev && !yield(prev, cur) {
				return
			}
			prev = kept
			hasPrev = true
		}
	}
}

// MapPairs applies fn to each pair of adjacent values of seq and returns an
// iterator over the results.
//
// For example, to compute the differences between successive readings:
//
//	deltas := adjacent.MapPairs(readings, func(prev, cur int) int {
//	    return cur - prev
//	})
func MapPairs[T, Out any](seq iter.Seq[T], fn PairFunc[T, Out]) iter.Seq[Out] {
	return func(yield func(Out) bool) {
		for prev, cur := range Seq(seq) {
			if !yield(fn(prev, cur)) {
				return
			}
		}
	}
}

// CollectPairs drains seq and returns its pairs in order.
func CollectPairs[T any](seq iter.Seq2[T, T]) []Pair[T] {
	var out []Pair[T]
	for prev, cur := range seq {
		out = append(out, Pair[T]{Prev: prev, Cur: cur})
	}
	return out
}
