package adjacent

import (
	"fmt"
	"iter"
)

type (
	// Source is a pull-based sequence of values.
	//
	// Next returns the next value and true, or the zero value and false once
	// the source has no more values. A false result is the normal end of the
	// sequence, not a failure.
	Source[T any] interface {
		Next() (T, bool)
	}

	// Iterable is anything that can be converted into a Source.
	Iterable[T any] interface {
		Iter() Source[T]
	}

	// SizeHinter is implemented by sources that know bounds on the number of
	// values they have left. ok reports whether upper is known.
	SizeHinter interface {
		SizeHint() (lower, upper int, ok bool)
	}

	// Lener is implemented by sources that know exactly how many values they
	// have left.
	Lener interface {
		Len() int
	}

	// Cloner is implemented by sources that can produce an independent copy
	// of themselves at their current position.
	Cloner[T any] interface {
		Clone() Source[T]
	}

	// Failer is implemented by sources that can stop early because of an
	// error. Err is only meaningful once Next has returned false.
	Failer interface {
		Err() error
	}

	// Stopper is implemented by sources holding resources that must be
	// released when the caller stops pulling before the end.
	Stopper interface {
		Stop()
	}
)

// SliceSource pulls values from an in-memory slice.
type SliceSource[T any] struct {
	items []T
	pos   int
}

// Slice returns a Source over items. The slice is not copied.
func Slice[T any](items []T) *SliceSource[T] {
	return &SliceSource[T]{items: items}
}

// Next returns the next item of the slice.
func (s *SliceSource[T]) Next() (T, bool) {
	if s.pos >= len(s.items) {
		var zero T
		return zero, false
	}
	v := s.items[s.pos]
	s.pos++
	return v, true
}

// Len returns the number of items left.
func (s *SliceSource[T]) Len() int {
	return len(s.items) - s.pos
}

// SizeHint reports Len as both bounds.
func (s *SliceSource[T]) SizeHint() (int, int, bool) {
	n := s.Len()
	return n, n, true
}

// Clone returns a source positioned at the same item. Both sources share the
// underlying slice.
func (s *SliceSource[T]) Clone() Source[T] {
	c := *s
	return &c
}

// Iter returns a fresh source over the remaining items, which makes a
// SliceSource usable with From.
func (s *SliceSource[T]) Iter() Source[T] {
	return Slice(s.items[s.pos:])
}

// String prints the remaining items as Iter([...]).
func (s *SliceSource[T]) String() string {
	return fmt.Sprintf("Iter(%v)", s.items[s.pos:])
}

// ChanSource pulls values from a channel until it is closed.
type ChanSource[T any] struct {
	ch <-chan T
}

// Chan returns a Source that receives from ch. Next blocks until a value is
// available or ch is closed.
func Chan[T any](ch <-chan T) *ChanSource[T] {
	return &ChanSource[T]{ch: ch}
}

// Next receives the next value, blocking until one is sent or the channel
// is closed.
func (c *ChanSource[T]) Next() (T, bool) {
	v, ok := <-c.ch
	return v, ok
}

// SizeHint reports the number of buffered values as a lower bound. The upper
// bound is unknown while the channel is open.
func (c *ChanSource[T]) SizeHint() (int, int, bool) {
	return len(c.ch), 0, false
}

// String prints the number of buffered values as Chan(n).
func (c *ChanSource[T]) String() string {
	return fmt.Sprintf("Chan(%d)", len(c.ch))
}

// PullSource converts a push iterator into a Source using iter.Pull.
//
// Callers that stop pulling before the end must call Stop.
type PullSource[T any] struct {
	next func() (T, bool)
	stop func()
}

// Pull returns a Source over seq.
func Pull[T any](seq iter.Seq[T]) *PullSource[T] {
	if seq == nil {
		panic("adjacent.Pull: seq must not be nil")
	}
	next, stop := iter.Pull(seq)
	return &PullSource[T]{next: next, stop: stop}
}

// Next resumes the sequence until it yields its next value.
func (p *PullSource[T]) Next() (T, bool) {
	return p.next()
}

// Stop ends the sequence. Next returns false afterwards.
func (p *PullSource[T]) Stop() {
	p.stop()
}
