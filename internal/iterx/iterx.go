// Package iterx provides small sources and sequences used by the tests of
// package adjacent.
package iterx

import (
	"iter"

	"github.com/KasperOmsK/adjacent"
)

func FromSlice[T any](in []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range in {
			if !yield(item) {
				break
			}
		}
	}
}

func FromChan[T any](in chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range in {
			if !yield(i) {
				break
			}
		}
	}
}

// TwoIterable holds exactly two values. It reports no size and cannot be
// cloned, so it exercises the bare Source contract.
type TwoIterable[T any] struct {
	first, second T
}

func Two[T any](first, second T) TwoIterable[T] {
	return TwoIterable[T]{first: first, second: second}
}

func (t TwoIterable[T]) Iter() adjacent.Source[T] {
	return &twoSource[T]{values: [2]T{t.first, t.second}}
}

type twoSource[T any] struct {
	values [2]T
	pos    int
}

func (s *twoSource[T]) Next() (T, bool) {
	if s.pos >= len(s.values) {
		var zero T
		return zero, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// Failing yields its items and then fails with err.
type Failing[T any] struct {
	items []T
	err   error
	done  bool
}

func NewFailing[T any](err error, items ...T) *Failing[T] {
	return &Failing[T]{items: items, err: err}
}

func (f *Failing[T]) Next() (T, bool) {
	if len(f.items) == 0 {
		f.done = true
		var zero T
		return zero, false
	}
	v := f.items[0]
	f.items = f.items[1:]
	return v, true
}

func (f *Failing[T]) Err() error {
	if !f.done {
		return nil
	}
	return f.err
}

// Counting wraps a source and counts the calls to Next.
type Counting[T any] struct {
	Source adjacent.Source[T]
	Pulls  int
}

func (c *Counting[T]) Next() (T, bool) {
	c.Pulls++
	return c.Source.Next()
}

// Unfused returns false once after each run of values, then resumes with the
// next run. It is used to check that Pairs does not add a fused guarantee of
// its own.
type Unfused[T any] struct {
	runs [][]T
}

func NewUnfused[T any](runs ...[]T) *Unfused[T] {
	return &Unfused[T]{runs: runs}
}

func (u *Unfused[T]) Next() (T, bool) {
	var zero T
	if len(u.runs) == 0 {
		return zero, false
	}
	if len(u.runs[0]) == 0 {
		u.runs = u.runs[1:]
		return zero, false
	}
	v := u.runs[0][0]
	u.runs[0] = u.runs[0][1:]
	return v, true
}
