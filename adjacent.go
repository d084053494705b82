package adjacent

import (
	"fmt"
	"iter"
)

// Pair holds two successive values of a sequence.
type Pair[T any] struct {
	Prev T
	Cur  T
}

func (p Pair[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.Prev, p.Cur)
}

// DupFunc returns a copy of v that the caller may keep independently of v.
type DupFunc[T any] func(v T) T

// Pairs yields the overlapping adjacent pairs of a Source: the first value
// with the second, the second with the third, and so on.
//
// Pairs never buffers more than one value of the source. Each value of the
// source is pulled exactly once, and a source with n values yields
// max(n-1, 0) pairs.
//
// A Pairs is not safe for concurrent use.
type Pairs[T any] struct {
	source Source[T]
	dup    DupFunc[T]

	carried    T
	hasCarried bool
}

// Wrap returns a Pairs pulling from src.
//
// Values are duplicated by assignment. Use WrapFunc when T holds references
// to mutable data (slices, maps, pointers) that the caller may modify.
//
// Wrap panics if src is a nil interface. A typed nil, such as a nil
// *SliceSource, is accepted and panics on the first call to Next.
func Wrap[T any](src Source[T]) *Pairs[T] {
	return WrapFunc(src, identity[T])
}

// WrapFunc is like Wrap but duplicates each carried value with dup.
//
// WrapFunc panics if src is a nil interface or dup is nil.
func WrapFunc[T any](src Source[T], dup DupFunc[T]) *Pairs[T] {
	if src == nil {
		panic("adjacent.Wrap: src must not be nil")
	}
	if dup == nil {
		panic("adjacent.WrapFunc: dup must not be nil")
	}
	return &Pairs[T]{
		source: src,
		dup:    dup,
	}
}

// From converts it into a Source and wraps it.
func From[T any](it Iterable[T]) *Pairs[T] {
	return Wrap(it.Iter())
}

// Of returns a Pairs over items.
func Of[T any](items ...T) *Pairs[T] {
	return Wrap[T](Slice(items))
}

// Next returns the next pair of successive values. ok is false once fewer
// than two values remain.
//
// Pairs keeps no end-of-sequence state of its own: once ok is false it stays
// false as long as the source keeps returning false.
func (p *Pairs[T]) Next() (prev, cur T, ok bool) {
	if p.hasCarried {
		prev = p.carried
		p.clearCarried()
	} else if prev, ok = p.source.Next(); !ok {
		return prev, cur, false
	}

	if cur, ok = p.source.Next(); !ok {
		// a trailing single value never starts a new pair
		var zero T
		return zero, zero, false
	}

	p.carried = p.dup(cur)
	p.hasCarried = true
	return prev, cur, true
}

func (p *Pairs[T]) clearCarried() {
	var zero T
	p.carried = zero
	p.hasCarried = false
}

// All returns an iterator over the remaining pairs. Breaking out of the loop
// leaves the remaining pairs available to Next.
func (p *Pairs[T]) All() iter.Seq2[T, T] {
	return func(yield func(T, T) bool) {
		for {
			prev, cur, ok := p.Next()
			if !ok {
				return
			}
			if !yield(prev, cur) {
				return
			}
		}
	}
}

// Collect drains p and returns the remaining pairs.
func (p *Pairs[T]) Collect() []Pair[T] {
	return CollectPairs(p.All())
}

// Err returns the error reported by the source, if it is a Failer, unchanged.
func (p *Pairs[T]) Err() error {
	if f, ok := p.source.(Failer); ok {
		return f.Err()
	}
	return nil
}

// Stop releases the source if it is a Stopper. It is a no-op otherwise.
func (p *Pairs[T]) Stop() {
	if s, ok := p.source.(Stopper); ok {
		s.Stop()
	}
}

// Clone returns an independent copy of p, resuming at the same position.
// The carried value is duplicated with p's duplication function.
//
// ok is false if the source does not implement Cloner.
func (p *Pairs[T]) Clone() (clone *Pairs[T], ok bool) {
	c, ok := p.source.(Cloner[T])
	if !ok {
		return nil, false
	}
	clone = &Pairs[T]{
		source: c.Clone(),
		dup:    p.dup,
	}
	if p.hasCarried {
		clone.carried = p.dup(p.carried)
		clone.hasCarried = true
	}
	return clone, true
}

func identity[T any](v T) T { return v }
