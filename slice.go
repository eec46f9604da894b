package genseq

import "math"

// Bounds describes a slice of a sequence, written [start:stop:step], where each bound is optional.
//
// A negative start or stop counts from the end of the sequence. Bounds are clamped to the
// sequence, so a slice never fails for being out of range. A negative step selects elements in
// reverse order, from start down to, but excluding, stop. A missing start or stop means the
// respective end of the sequence, and a missing step means 1.
//
// The zero value is the full slice, [:]. Use From, To and Step to set bounds,
// for example From(1).To(4).Step(2) for [1:4:2], or To(2).Step(-2) for [:2:-2].
type Bounds struct {
	start, stop, step          int
	hasStart, hasStop, hasStep bool
}

// Span returns the full slice, [:].
func Span() Bounds {
	return Bounds{}
}

// From returns a slice that starts at start, [start:].
func From(start int) Bounds {
	return Bounds{}.From(start)
}

// To returns a slice that stops before stop, [:stop].
func To(stop int) Bounds {
	return Bounds{}.To(stop)
}

// Step returns a slice that takes every step'th element, [::step].
func Step(step int) Bounds {
	return Bounds{}.Step(step)
}

// From returns b with its start set.
func (b Bounds) From(start int) Bounds {
	b.start, b.hasStart = start, true
	return b
}

// To returns b with its stop set.
func (b Bounds) To(stop int) Bounds {
	b.stop, b.hasStop = stop, true
	return b
}

// Step returns b with its step set.
func (b Bounds) Step(step int) Bounds {
	b.step, b.hasStep = step, true
	return b
}

// negative returns true if any bound is present and negative.
func (b Bounds) negative() bool {
	return (b.hasStart && b.start < 0) || (b.hasStop && b.stop < 0) || (b.hasStep && b.step < 0)
}

// indices resolves b against a sequence of length n, clamping the bounds to the sequence.
func (b Bounds) indices(n int) (int, int, int) {
	step := 1
	if b.hasStep {
		step = b.step
	}

	lower, upper := 0, n
	if step < 0 {
		lower, upper = -1, n-1
	}

	clamp := func(v int, has bool, def int) int {
		if !has {
			return def
		}

		if v < 0 {
			v += n
			if v < lower {
				v = lower
			}

			return v
		}

		if v > upper {
			v = upper
		}

		return v
	}

	if step < 0 {
		return clamp(b.start, b.hasStart, upper), clamp(b.stop, b.hasStop, lower), step
	}

	return clamp(b.start, b.hasStart, lower), clamp(b.stop, b.hasStop, upper), step
}

// Slice returns a new sequence of the elements selected by b.
//
// If all bounds in b are non-negative or absent, the returned sequence is lazy: nothing is pulled
// until it is read, and reading it consumes the source only up to the elements it needs.
// If any bound is negative, including the step, the entire source is consumed first.
//
// It returns ErrZeroStep if b has a step of zero.
func (s *Seq[T]) Slice(b Bounds) (*Seq[T], error) {
	if b.hasStep && b.step == 0 {
		return nil, ErrZeroStep
	}

	if b.negative() {
		if err := s.advance(all); err != nil {
			return nil, err
		}

		start, stop, step := b.indices(len(s.resolved))

		var elems []T
		for i, ok := start, true; ok && ((step > 0 && i < stop) || (step < 0 && i > stop)); i, ok = stepIndex(i, step) {
			elems = append(elems, s.resolved[i])
		}

		return newSeq(sliceSource(elems), s.cfg), nil
	}

	step := 1
	if b.hasStep {
		step = b.step
	}

	return s.window(b.start, b.stop, step, b.hasStop), nil
}

// window returns a lazy sequence of the elements from start, stepping by step, stopping before stop if bounded.
// start and step must be non-negative and positive, respectively.
func (s *Seq[T]) window(start int, stop int, step int, bounded bool) *Seq[T] {
	pos, more := start, true

	return newSeq(source[T]{
		next: func() (T, bool, error) {
			var zero T

			if !more || (bounded && pos >= stop) {
				return zero, false, nil
			}

			elem, ok, err := s.pull(pos)
			if !ok || err != nil {
				return zero, false, err
			}

			pos, more = stepIndex(pos, step)

			return elem, true, nil
		},
	}, s.cfg)
}

// pull returns the element at index, advancing the source as necessary.
// It returns false if the source ends before index.
func (s *Seq[T]) pull(index int) (T, bool, error) {
	var zero T

	if index < 0 {
		return zero, false, nil
	}

	to := index + 1
	if index == math.MaxInt {
		to = all
	}

	if err := s.advance(to); err != nil {
		return zero, false, err
	}

	if index >= len(s.resolved) {
		return zero, false, nil
	}

	return s.resolved[index], true, nil
}

// stepIndex returns i+step, or false if that is beyond the largest possible index.
// i must be non-negative.
func stepIndex(i int, step int) (int, bool) {
	if step > 0 && i > math.MaxInt-step {
		return 0, false
	}

	return i + step, true
}

// clampIndex converts n to an index, saturating at the largest possible index.
func clampIndex(n uint) int {
	if n > math.MaxInt {
		return math.MaxInt
	}

	return int(n)
}
