package genseq

import (
	"fmt"
	"iter"
)

// Sequence is a read-only, indexable sequence of elements.
//
// Every method except Err may consume the underlying source, and may return the source's errors.
// Seq is the only implementation; the interface is sealed so that it can grow without breaking
// callers.
type Sequence[T any] interface {
	fmt.Stringer

	// At returns the element at the given index.
	// A negative index counts from the end of the sequence.
	At(index int) (T, error)

	// Len returns the number of elements in the sequence.
	Len() (int, error)

	// Slice returns a new sequence of the elements selected by b.
	Slice(b Bounds) (*Seq[T], error)

	// All returns an iterator over the indexes and elements of the sequence.
	All() iter.Seq2[int, T]

	// Values returns an iterator over the elements of the sequence.
	Values() iter.Seq[T]

	// Err returns the error that stopped the most recent iteration, if any.
	Err() error

	seal()
}

func (s *Seq[T]) seal() {}

var _ Sequence[int] = (*Seq[int])(nil)
