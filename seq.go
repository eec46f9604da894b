package genseq

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

// Seq is a read-only, randomly indexable view over a one-shot source.
//
// Elements are pulled from the source on demand and memoized in order. Every query computes the
// number of elements it needs and pulls only those that have not been pulled yet, so no element is
// ever pulled twice, and the source is never pulled again once it has ended.
//
// Although its API looks like that of an immutable sequence, a Seq consumes its source as a side
// effect of being read:
//
//   - At(i) with i >= 0 consumes the source up to and including element i.
//   - At(i) with i < 0, Len, and Slice with any negative bound consume the entire source.
//   - Slice with non-negative bounds consumes nothing until the returned Seq is read.
//   - Iteration consumes the source one element at a time.
//   - String consumes at most the preview limit plus one element.
//
// Errors returned by the source are passed to the caller of the query that triggered the pull,
// unchanged. Elements pulled before the error remain memoized.
//
// A Seq must not be used concurrently, and its source must not read the Seq it feeds.
type Seq[T any] struct {
	src source[T]

	resolved  []T
	exhausted bool
	advancing bool

	err error

	cfg config
}

// all is the advance target that consumes the entire source.
const all = -1

func newSeq[T any](src source[T], cfg config) *Seq[T] {
	return &Seq[T]{
		src: src,
		cfg: cfg,
	}
}

// advance pulls from the source until to elements are resolved, or until the source ends.
// If to is negative, it pulls until the source ends.
func (s *Seq[T]) advance(to int) error {
	if s.exhausted {
		return nil
	}

	if s.advancing {
		panic("sequence advanced while pulling from its own source")
	}

	s.advancing = true
	defer func() {
		s.advancing = false
	}()

	for to < 0 || len(s.resolved) < to {
		elem, ok, err := s.src.next()
		if err != nil {
			return err
		}

		if !ok {
			s.finish()
			return nil
		}

		s.resolved = append(s.resolved, elem)
	}

	return nil
}

// finish marks the sequence as exhausted and releases the source.
func (s *Seq[T]) finish() {
	s.exhausted = true

	if s.src.stop != nil {
		s.src.stop()
	}

	s.src = source[T]{}
}

// At returns the element at index.
// A negative index counts from the end of the sequence, which consumes the entire source.
// If the source does not produce enough elements, it returns an *IndexError.
func (s *Seq[T]) At(index int) (T, error) {
	var zero T

	to := index + 1
	if index < 0 {
		to = all
	}

	if err := s.advance(to); err != nil {
		return zero, err
	}

	i := index
	if i < 0 {
		i += len(s.resolved)
	}

	if i < 0 || i >= len(s.resolved) {
		return zero, &IndexError{
			Index: index,
			Len:   len(s.resolved),
		}
	}

	return s.resolved[i], nil
}

// Len returns the number of elements in the sequence.
// It always consumes the entire source.
func (s *Seq[T]) Len() (int, error) {
	if err := s.advance(all); err != nil {
		return 0, err
	}

	return len(s.resolved), nil
}

// Resolved returns the number of elements pulled from the source so far.
// It never pulls.
func (s *Seq[T]) Resolved() int {
	return len(s.resolved)
}

// Exhausted returns true if the source has ended, that is, all elements have been resolved.
// It never pulls.
func (s *Seq[T]) Exhausted() bool {
	return s.exhausted
}

// All returns an iterator over the indexes and elements of the sequence, pulling one element at a time.
// If the source returns an error, iteration stops and Err reports the error.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s.err = nil

		for i := 0; ; i++ {
			elem, ok, err := s.pull(i)
			if err != nil {
				s.err = err
				return
			}

			if !ok || !yield(i, elem) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements of the sequence, pulling one element at a time.
// If the source returns an error, iteration stops and Err reports the error.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range s.All() {
			if !yield(elem) {
				return
			}
		}
	}
}

// Err returns the error that stopped the most recent iteration using All or Values, if any.
func (s *Seq[T]) Err() error {
	return s.err
}

// Close releases the source without consuming it further.
// Elements resolved so far remain accessible, and the sequence behaves as if the source had ended.
// Calling Close is optional. It is needed only to release resources held by the source early,
// such as the goroutine behind a ProducerFunc.
func (s *Seq[T]) Close() {
	if s.exhausted {
		return
	}

	s.finish()
}

// Describe returns a preview of the sequence, such as "[1, 2, 3]".
// Elements are formatted using %v, except for strings, which are quoted.
// At most the preview limit number of elements are shown. If there are more, the preview
// ends with ", ...]". It consumes at most one element beyond the preview limit.
func (s *Seq[T]) Describe() (string, error) {
	limit := s.cfg.previewLimit

	items, err := ReduceSlice(s.window(0, limit+1, 1, true))
	if err != nil {
		return "", err
	}

	more := len(items) > limit
	if more {
		items = items[:limit]
	}

	sb := strings.Builder{}
	sb.WriteByte('[')

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}

		switch item := any(item).(type) {
		case string:
			sb.WriteString(strconv.Quote(item))

		default:
			fmt.Fprintf(&sb, "%v", item)
		}
	}

	if more {
		sb.WriteString(", ...")
	}

	sb.WriteByte(']')

	return sb.String(), nil
}

// String implements fmt.Stringer using Describe.
func (s *Seq[T]) String() string {
	str, err := s.Describe()
	if err != nil {
		return fmt.Sprintf("%%!v(genseq: %v)", err)
	}

	return str
}
