package genseq

import "iter"

// Wrap returns a function that calls fn and returns its elements as a sequence.
//
// This is most useful for generator functions:
//
//	var digits = genseq.Wrap(func() iter.Seq[int] {
//		return func(yield func(int) bool) {
//			for i := range 10 {
//				if !yield(i) {
//					return
//				}
//			}
//		}
//	})
//
// Every call of the returned function calls fn again, and returns a new, independent sequence.
func Wrap[T any](fn func() iter.Seq[T], opts ...Option) func() *Seq[T] {
	return func() *Seq[T] {
		return New(fn(), opts...)
	}
}

// Wrap1 is like Wrap, for functions with one argument.
func Wrap1[A any, T any](fn func(A) iter.Seq[T], opts ...Option) func(A) *Seq[T] {
	return func(a A) *Seq[T] {
		return New(fn(a), opts...)
	}
}

// Wrap2 is like Wrap, for functions with two arguments.
func Wrap2[A any, B any, T any](fn func(A, B) iter.Seq[T], opts ...Option) func(A, B) *Seq[T] {
	return func(a A, b B) *Seq[T] {
		return New(fn(a, b), opts...)
	}
}

// WrapErr1 is like Wrap1, for functions that may fail before producing a sequence.
// An error returned by fn is returned unchanged, and no sequence is created.
func WrapErr1[A any, T any](fn func(A) (iter.Seq[T], error), opts ...Option) func(A) (*Seq[T], error) {
	return func(a A) (*Seq[T], error) {
		seq, err := fn(a)
		if err != nil {
			return nil, err
		}

		return New(seq, opts...), nil
	}
}
