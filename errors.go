package genseq

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is wrapped by every IndexError.
	ErrOutOfRange = errors.New("index out of range")

	// ErrZeroStep is returned when slicing with a step of zero.
	ErrZeroStep = errors.New("slice step cannot be zero")

	// ErrShortCircuit is a generic error used by consumers to stop a terminal operation early.
	// Terminal operations do not report it as a failure.
	ErrShortCircuit = errors.New("short circuit")
)

// An IndexError is returned when indexing beyond the elements the source ultimately produces.
type IndexError struct {
	// Index is the requested index, as given by the caller.
	Index int

	// Len is the total number of elements in the sequence.
	Len int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index out of range [%d] with length %d", e.Index, e.Len)
}

// Unwrap returns ErrOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}
