package genseq

import "errors"

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem in the sequence.
// Returning ErrShortCircuit stops the operation without error. Returning any other error stops the
// operation and returns that error.
type ConsumerFunc[T any] func(elem T, index int) error

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem in the sequence.
type AccumulatorFunc[T any, A any] func(elem T, index int, acc A) (A, error)

// Each calls each for each element of s, in order, pulling one element at a time.
// It returns the first error returned by the source or by each, other than ErrShortCircuit.
func Each[T any](s *Seq[T], each ConsumerFunc[T]) error {
	for index := 0; ; index++ {
		elem, ok, err := s.pull(index)
		if err != nil {
			return err
		}

		if !ok {
			return nil
		}

		if err := each(elem, index); err != nil {
			if errors.Is(err, ErrShortCircuit) {
				err = nil
			}

			return err
		}
	}
}

// Reduce calls reduce for each element of s, folding it into accumulator acc, returning the final accumulator.
// If the source or reduce return an error, it returns the accumulator so far, and the error.
func Reduce[T any, A any](s *Seq[T], acc A, reduce AccumulatorFunc[T, A]) (A, error) {
	err := Each(s, func(elem T, index int) error {
		var err error
		acc, err = reduce(elem, index, acc)

		return err
	})

	return acc, err
}

// ReduceSlice returns the elements of s as a slice. It consumes the entire source.
func ReduceSlice[T any](s *Seq[T]) ([]T, error) {
	return Reduce(s, nil, CollectSlice[T]())
}

// AnyMatch returns true as soon as pred returns true for an element of s, that is, an element matches.
// It stops pulling at the first match, but does not return for an infinite source without a match.
func AnyMatch[T any](s *Seq[T], pred PredicateFunc[T]) (bool, error) {
	anyMatch := false

	err := Each(s, func(elem T, index int) error {
		if !pred(elem, index) {
			return nil
		}

		anyMatch = true

		return ErrShortCircuit
	})

	return anyMatch, err
}

// AllMatch returns true if pred returns true for all elements of s, that is, all elements match.
// It stops pulling at the first element that does not match.
func AllMatch[T any](s *Seq[T], pred PredicateFunc[T]) (bool, error) {
	allMatch := true

	err := Each(s, func(elem T, index int) error {
		if pred(elem, index) {
			return nil
		}

		allMatch = false

		return ErrShortCircuit
	})

	return allMatch, err
}

// Count returns the number of elements of s for which pred returns true. It consumes the entire source.
func Count[T any](s *Seq[T], pred PredicateFunc[T]) (int, error) {
	count := 0

	err := Each(s, func(elem T, index int) error {
		if pred(elem, index) {
			count++
		}

		return nil
	})

	return count, err
}

// IndexFunc returns the index of the first element of s for which pred returns true, or -1 if there is none.
func IndexFunc[T any](s *Seq[T], pred PredicateFunc[T]) (int, error) {
	found := -1

	err := Each(s, func(elem T, index int) error {
		if !pred(elem, index) {
			return nil
		}

		found = index

		return ErrShortCircuit
	})

	return found, err
}

// Index returns the index of the first occurrence of v in s, or -1 if there is none.
func Index[T comparable](s *Seq[T], v T) (int, error) {
	return IndexFunc(s, func(elem T, _ int) bool {
		return elem == v
	})
}

// Contains returns true if v is an element of s.
// It scans s linearly, and does not return for an infinite source that does not contain v.
func Contains[T comparable](s *Seq[T], v T) (bool, error) {
	index, err := Index(s, v)
	return index >= 0, err
}

// Equal returns true if a and b have the same elements, in the same order.
// It pulls from both sequences in lockstep and stops at the first difference.
func Equal[T comparable](a *Seq[T], b *Seq[T]) (bool, error) {
	for index := 0; ; index++ {
		elemA, okA, err := a.pull(index)
		if err != nil {
			return false, err
		}

		elemB, okB, err := b.pull(index)
		if err != nil {
			return false, err
		}

		if okA != okB || elemA != elemB {
			return false, nil
		}

		if !okA {
			return true, nil
		}
	}
}
