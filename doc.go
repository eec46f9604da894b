// Package genseq provides a lazily resolving, indexable sequence over a one-shot source.
//
// A Seq is constructed from a source that can only be consumed once and in order, such as an
// iter.Seq, a channel, a pull function, or a ProducerFunc. No element is pulled at construction.
//
// Queries on a Seq pull from the source only as far as they need to, and every pulled element is
// memoized, so the sequence can be indexed, sliced and iterated any number of times.
//
// Reading a Seq is NOT free of side effects: At, Slice, Len, iteration and String all consume the
// underlying source as far as they need to. In particular, Len, negative indexes, and slices with
// any negative bound consume the entire source, and will not return for an infinite source.
// String only ever consumes the elements it previews.
//
// A Seq is not safe for concurrent use.
package genseq
