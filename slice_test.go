package genseq

import (
	"errors"
	"math"
	"testing"

	"github.com/matryer/is"
)

func TestSlice(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	sliced, err := seq.Slice(From(1).To(4))
	is.NoErr(err)
	is.Equal(seq.Resolved(), 0)

	result, _ := ReduceSlice(sliced)
	is.Equal(result, chars("bcd"))
	is.Equal(src.rest(), chars("ef"))

	result, _ = ReduceSlice(seq)
	is.Equal(result, chars("abcd"))
}

func TestSlice_Step(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	sliced, err := seq.Slice(From(1).To(4).Step(2))
	is.NoErr(err)

	result, _ := ReduceSlice(sliced)
	is.Equal(result, chars("bd"))
	is.Equal(src.rest(), chars("ef"))

	result, _ = ReduceSlice(seq)
	is.Equal(result, chars("abcd"))
}

func TestSlice_NegativeStart(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	sliced, err := seq.Slice(From(-5).To(4))
	is.NoErr(err)
	is.True(seq.Exhausted())

	result, _ := ReduceSlice(sliced)
	is.Equal(result, chars("bcd"))
	is.Equal(len(src.rest()), 0)

	result, _ = ReduceSlice(seq)
	is.Equal(result, chars("abcdef"))
}

func TestSlice_NegativeStop(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	sliced, _ := seq.Slice(From(1).To(-2))

	result, _ := ReduceSlice(sliced)
	is.Equal(result, chars("bcd"))
	is.Equal(len(src.rest()), 0)

	result, _ = ReduceSlice(seq)
	is.Equal(result, chars("abcdef"))
}

func TestSlice_NegativeStep(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	sliced, _ := seq.Slice(To(2).Step(-2))

	result, _ := ReduceSlice(sliced)
	is.Equal(result, chars("fd"))
	is.Equal(len(src.rest()), 0)

	result, _ = ReduceSlice(seq)
	is.Equal(result, chars("abcdef"))
}

func TestSlice_Bounds(t *testing.T) {
	tests := []struct {
		name   string
		bounds Bounds
		want   string
	}{
		{"full", Span(), "abcdef"},
		{"from", From(4), "ef"},
		{"to", To(2), "ab"},
		{"step", Step(3), "ad"},
		{"stop past end", From(2).To(100), "cdef"},
		{"start past end", From(100), ""},
		{"inverted", From(4).To(1), ""},
		{"reverse", Step(-1), "fedcba"},
		{"reverse from", From(3).Step(-1), "dcba"},
		{"reverse clamped", From(100).To(-100).Step(-2), "fdb"},
		{"negative both", From(-3).To(-1), "de"},
		{"negative clamped", From(-100).To(2), "ab"},
		{"negative inverted", From(-1).To(-3), ""},
		{"huge step", From(1).Step(math.MaxInt), "b"},
		{"huge step bounded", From(1).To(math.MaxInt).Step(math.MaxInt - 1), "b"},
		{"huge step negative start", From(-2).Step(math.MaxInt), "e"},
		{"huge negative step", Step(math.MinInt), "f"},
		{"huge stop", To(math.MaxInt), "abcdef"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			is := is.New(t)

			sliced, err := FromSlice(chars("abcdef")).Slice(test.bounds)
			is.NoErr(err)

			result, _ := Reduce(sliced, []string{}, CollectSlice[string]())

			want := []string{}
			if test.want != "" {
				want = chars(test.want)
			}

			is.Equal(result, want)
		})
	}
}

func TestSlice_ZeroStep(t *testing.T) {
	is := is.New(t)

	src := letters("abcdef")
	seq := FromFunc(src.next)

	_, err := seq.Slice(From(1).Step(0))

	is.True(errors.Is(err, ErrZeroStep))
	is.Equal(src.pulls, 0)
}

func TestSlice_Infinite(t *testing.T) {
	is := is.New(t)

	seq := New(naturals())
	defer seq.Close()

	sliced, err := seq.Slice(From(2).To(5))
	is.NoErr(err)

	result, _ := ReduceSlice(sliced)
	is.Equal(result, []int{2, 3, 4})
	is.Equal(seq.Resolved(), 5)

	open, _ := seq.Slice(From(10).Step(10))
	elem, err := open.At(2)
	is.NoErr(err)
	is.Equal(elem, 30)
	is.Equal(seq.Resolved(), 31)
}

func TestSlice_OfSlice(t *testing.T) {
	is := is.New(t)

	src := letters("abcdefghij")
	seq := FromFunc(src.next)

	outer, _ := seq.Slice(From(2))
	inner, _ := outer.Slice(From(1).To(3))

	result, _ := ReduceSlice(inner)
	is.Equal(result, chars("de"))
	is.Equal(seq.Resolved(), 5)
	is.Equal(outer.Resolved(), 3)
}

func TestSlice_SourceError(t *testing.T) {
	is := is.New(t)

	boom := errors.New("boom")
	seq := NewFallible(failing(boom, "a", "b", "c"))
	defer seq.Close()

	_, err := seq.Slice(From(-1))
	is.Equal(err, boom)

	seq = NewFallible(failing(boom, "a", "b", "c"))
	defer seq.Close()

	sliced, err := seq.Slice(From(1))
	is.NoErr(err)

	result, err := ReduceSlice(sliced)
	is.Equal(err, boom)
	is.Equal(result, chars("bc"))
}
