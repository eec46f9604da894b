package genseq

import (
	"context"
	"errors"
	"iter"
)

// source is the pull side of a one-shot producer of elements.
// next returns the next element and true, or false once the source has ended.
// stop, if set, releases the source. It is called at most once.
type source[T any] struct {
	next func() (T, bool, error)
	stop func()
}

// ProducerFunc returns a channel of elements for a stream.
// The producer must close the channel when it is done, and must stop producing when ctx is canceled.
type ProducerFunc[T any] func(ctx context.Context, cancel context.CancelCauseFunc) <-chan T

// New returns a sequence of the elements of seq.
// seq is iterated at most once.
func New[T any](seq iter.Seq[T], opts ...Option) *Seq[T] {
	next, stop := iter.Pull(seq)

	return newSeq(source[T]{
		next: func() (T, bool, error) {
			elem, ok := next()
			return elem, ok, nil
		},
		stop: stop,
	}, newConfig(opts))
}

// NewFallible returns a sequence of the elements of seq.
// seq is iterated at most once. An element paired with a non-nil error is not added to the sequence;
// instead, the error is returned by the query that pulled it.
func NewFallible[T any](seq iter.Seq2[T, error], opts ...Option) *Seq[T] {
	next, stop := iter.Pull2(seq)

	return newSeq(source[T]{
		next: func() (T, bool, error) {
			elem, err, ok := next()
			if !ok {
				var zero T
				return zero, false, nil
			}

			if err != nil {
				var zero T
				return zero, false, err
			}

			return elem, true, nil
		},
		stop: stop,
	}, newConfig(opts))
}

// FromSlice returns a sequence of the elements of values, in order.
// values must not be modified while the sequence is still pulling from it.
func FromSlice[T any](values []T, opts ...Option) *Seq[T] {
	return newSeq(sliceSource(values), newConfig(opts))
}

func sliceSource[T any](values []T) source[T] {
	idx := 0

	return source[T]{
		next: func() (T, bool, error) {
			if idx >= len(values) {
				var zero T
				return zero, false, nil
			}

			elem := values[idx]
			idx++

			return elem, true, nil
		},
	}
}

// Of returns a sequence of the given elements.
func Of[T any](elems ...T) *Seq[T] {
	return FromSlice(elems)
}

// FromChannel returns a sequence of the elements received through ch.
// The sequence ends when ch is closed.
func FromChannel[T any](ch <-chan T, opts ...Option) *Seq[T] {
	return newSeq(source[T]{
		next: func() (T, bool, error) {
			elem, ok := <-ch
			return elem, ok, nil
		},
	}, newConfig(opts))
}

// FromFunc returns a sequence of the elements returned by next.
// next is called until it returns false, and is not called again after that.
func FromFunc[T any](next func() (T, bool), opts ...Option) *Seq[T] {
	return newSeq(source[T]{
		next: func() (T, bool, error) {
			elem, ok := next()
			return elem, ok, nil
		},
	}, newConfig(opts))
}

// FromProducer returns a sequence of the elements produced by prod.
// prod is called immediately, using a child context of ctx that is canceled once the sequence is
// exhausted or closed. If the producer's context is canceled with a cause other than ErrShortCircuit,
// the cause is returned by the query that was pulling at the time.
func FromProducer[T any](ctx context.Context, prod ProducerFunc[T], opts ...Option) *Seq[T] {
	ctx, cancel := context.WithCancelCause(ctx)

	ch := prod(ctx, cancel)

	return newSeq(source[T]{
		next: func() (T, bool, error) {
			var zero T

			if ctx.Err() != nil {
				return zero, false, producerErr(ctx)
			}

			elem, ok := <-ch
			if !ok {
				return zero, false, producerErr(ctx)
			}

			return elem, true, nil
		},
		stop: func() {
			cancel(nil)
		},
	}, newConfig(opts))
}

// producerErr returns the cause of ctx's cancelation, treating ErrShortCircuit as the regular end.
func producerErr(ctx context.Context) error {
	err := context.Cause(ctx)
	if errors.Is(err, ErrShortCircuit) {
		err = nil
	}

	return err
}

// Produce returns a producer that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) ProducerFunc[T] {
	return func(ctx context.Context, _ context.CancelCauseFunc) <-chan T {
		outCh := make(chan T)

		go func() {
			defer close(outCh)

			for _, slice := range slices {
				for _, elem := range slice {
					select {
					case outCh <- elem:

					case <-ctx.Done():
						return
					}
				}
			}
		}()

		return outCh
	}
}
