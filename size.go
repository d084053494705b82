package adjacent

// SizeHint returns bounds on the number of pairs left, derived from the
// source's own bounds. ok reports whether upper is known.
//
// A source that is not a SizeHinter is treated as reporting no lower bound
// and no upper bound. A Lener source reports an exact count.
//
// The bounds are recomputed on every call.
func (p *Pairs[T]) SizeHint() (lower, upper int, ok bool) {
	switch s := p.source.(type) {
	case SizeHinter:
		lower, upper, ok = s.SizeHint()
	case Lener:
		lower = s.Len()
		upper, ok = lower, true
	}

	lower = p.remainingPairs(lower)
	if ok {
		upper = p.remainingPairs(upper)
	}
	return lower, upper, ok
}

// Len returns the exact number of pairs left. ok is false when the source
// cannot report an exact count.
func (p *Pairs[T]) Len() (n int, ok bool) {
	if l, isLener := p.source.(Lener); isLener {
		return p.remainingPairs(l.Len()), true
	}
	lower, upper, bounded := p.SizeHint()
	if bounded && lower == upper {
		return lower, true
	}
	return 0, false
}

// remainingPairs converts a count of values left in the source into a count
// of pairs left, accounting for the carried value.
func (p *Pairs[T]) remainingPairs(size int) int {
	if p.hasCarried {
		// the carried value pairs with each remaining source value
		return max(size, 0)
	}
	return max(size-1, 0)
}
