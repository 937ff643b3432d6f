package conv

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

// ErrOverflow is returned when an index computation does not fit in an int.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// IntToInt64 converts int to int64. It never fails on supported platforms.
func IntToInt64(v int) int64 {
	return int64(v)
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// LastIndex returns offset + (n-1)*stride, the physical index of the last
// element of a strided range. n, stride and offset must be non-negative and
// n must be at least 1. ErrOverflow is returned if the result does not fit
// in an int.
func LastIndex(offset, n, stride int) (int, error) {
	if offset < 0 || n < 1 || stride < 0 {
		return 0, fmt.Errorf("%w: negative range component (offset=%d n=%d stride=%d)", ErrOverflow, offset, n, stride)
	}
	hi, span := bits.Mul64(uint64(n-1), uint64(stride))
	if hi != 0 {
		return 0, fmt.Errorf("%w: (%d-1)*%d", ErrOverflow, n, stride)
	}
	last, carry := bits.Add64(span, uint64(offset), 0)
	if carry != 0 || last > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d+(%d-1)*%d", ErrOverflow, offset, n, stride)
	}
	return int(last), nil
}

// MulInt returns a*b for non-negative operands, or ErrOverflow.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("%w: negative operand %d*%d", ErrOverflow, a, b)
	}
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: %d*%d", ErrOverflow, a, b)
	}
	return int(lo), nil
}
