/*
Package adjacent turns a sequence of values into a lazily-evaluated sequence
of overlapping adjacent pairs, without buffering the input.

Given the values 1, 2, 3, 4 the pairs are (1, 2), (2, 3) and (3, 4). A
sequence of n values always produces max(n-1, 0) pairs, in order, and every
value except the first and the last appears in exactly two pairs.

The package offers two ways to consume pairs.

Pairs is a pull-based adapter around a Source, the package's minimal
"Next() (T, bool)" contract. It keeps a single value between calls, so it
works just as well over unbounded sources such as channels:

	p := adjacent.Of(1, 2, 3, 4)

	for {
		prev, cur, ok := p.Next()
		if !ok {
			break
		}
		fmt.Println(prev, cur)
	}

Sources may optionally report size bounds (SizeHinter, Lener), be cloned
(Cloner), report a failure (Failer) or hold resources (Stopper). Pairs
forwards each of these capabilities: SizeHint and Len report the number of
pairs left, Clone copies the adapter mid-stream, Err returns the source's
error unchanged and Stop releases the source.

Seq, SeqFunc and MapPairs are package-level transformations over iter.Seq
for callers that prefer range-over-func:

	readings := slices.Values([]int{10, 12, 15, 11})

	deltas := adjacent.MapPairs(readings, func(prev, cur int) int {
	    return cur - prev
	})

	for d := range deltas {
		fmt.Println(d) // 2, 3, -4
	}

Values kept for the next pair are duplicated by assignment. When values
share mutable data, use WrapFunc or SeqFunc with a function that returns an
independent copy, for example slices.Clone.
*/
package adjacent
