package genseq

import "golang.org/x/exp/slices"

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem in the upstream sequence.
type MapperFunc[T any, U any] func(elem T, index int) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem in the upstream sequence.
type PredicateFunc[T any] func(elem T, index int) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ int) U {
		return mapp(elem)
	}
}

// cursor returns a source that pulls the elements of s one at a time, starting at index 0,
// and passes each of them to emit. Elements for which emit returns false are skipped.
func cursor[T any, U any](s *Seq[T], emit func(elem T, index int) (U, bool)) source[U] {
	index := 0

	return source[U]{
		next: func() (U, bool, error) {
			var zero U

			for {
				elem, ok, err := s.pull(index)
				if !ok || err != nil {
					return zero, false, err
				}

				out, keep := emit(elem, index)
				index++

				if keep {
					return out, true, nil
				}
			}
		},
	}
}

// Map returns a lazy sequence that calls mapp for each element of s, mapping it to type U.
// mapp is called at most once per element.
func Map[T any, U any](s *Seq[T], mapp MapperFunc[T, U]) *Seq[U] {
	return newSeq(cursor(s, func(elem T, index int) (U, bool) {
		return mapp(elem, index), true
	}), s.cfg)
}

// Filter returns a lazy sequence of the elements of s for which filter returns true.
func Filter[T any](s *Seq[T], filter PredicateFunc[T]) *Seq[T] {
	return newSeq(cursor(s, func(elem T, index int) (T, bool) {
		return elem, filter(elem, index)
	}), s.cfg)
}

// Peek returns a lazy sequence of the same elements as s that calls peek for each element when it is
// first pulled.
func Peek[T any](s *Seq[T], peek func(elem T, index int)) *Seq[T] {
	return newSeq(cursor(s, func(elem T, index int) (T, bool) {
		peek(elem, index)
		return elem, true
	}), s.cfg)
}

// Limit returns a lazy sequence of the first max elements of s, that is, [:max].
func Limit[T any](s *Seq[T], max uint) *Seq[T] {
	return s.window(0, clampIndex(max), 1, true)
}

// Skip returns a lazy sequence of the elements of s after the first num elements, that is, [num:].
func Skip[T any](s *Seq[T], num uint) *Seq[T] {
	return s.window(clampIndex(num), 0, 1, false)
}

// Sorted returns a sequence of the elements of s, sorted stably using less.
// Nothing is pulled until the new sequence is read. Reading it consumes the entire source of s.
func Sorted[T any](s *Seq[T], less LessFunc[T]) *Seq[T] {
	var sorted *source[T]

	return newSeq(source[T]{
		next: func() (T, bool, error) {
			if sorted == nil {
				if err := s.advance(all); err != nil {
					var zero T
					return zero, false, err
				}

				result := slices.Clone(s.resolved)
				slices.SortStableFunc(result, less)

				src := sliceSource(result)
				sorted = &src
			}

			return sorted.next()
		},
	}, s.cfg)
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T, _ int) T {
		return elem
	}
}
