package blockvec

import (
	"errors"
	"fmt"
)

var (
	// ErrReleased is returned when a block or vector is used after Release,
	// and by a second Release of the same block.
	ErrReleased = errors.New("blockvec: released")

	// ErrEmpty is returned by reductions over a vector with no elements.
	ErrEmpty = errors.New("blockvec: empty vector")

	// ErrDivisionByZero is returned by Div on integer vectors when the divisor
	// holds a zero element. Nothing is written in that case.
	ErrDivisionByZero = errors.New("blockvec: integer division by zero")
)

// ErrAllocation indicates that block storage could not be obtained, either
// because the requested size is invalid or because the memory budget is
// exhausted.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrAllocation struct {
	Size  int
	cause error
}

func (e *ErrAllocation) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("allocation of %d elements failed: %v", e.Size, e.cause)
	}
	return fmt.Sprintf("allocation of %d elements failed: size must be a positive integer", e.Size)
}

func (e *ErrAllocation) Unwrap() error { return e.cause }

// ErrInvalidRange indicates that an offset/length/stride combination does not
// fit inside its source block, vector or array.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidRange struct {
	Offset int
	N      int
	Stride int
	Extent int
	Reason string
	cause  error
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range (offset=%d n=%d stride=%d extent=%d): %s",
		e.Offset, e.N, e.Stride, e.Extent, e.Reason)
}

func (e *ErrInvalidRange) Unwrap() error { return e.cause }

// ErrIndexOutOfRange indicates a single-element access outside [0, Size).
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d not in [0, %d)", e.Index, e.Size)
}

// ErrSizeMismatch indicates a binary operation on vectors of unequal length.
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}
