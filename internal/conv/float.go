package conv

import (
	"math"
	"unsafe"
)

// Integer is the set of integer element types.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Number is the set of integer and floating-point element types.
type Number interface {
	Integer | ~float32 | ~float64
}

// IsFloat reports whether T is a floating-point type.
func IsFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// IsSigned reports whether T can hold negative values.
func IsSigned[T Number]() bool {
	var zero T
	return zero-1 < 0
}

func bitSize[T Number]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value representable by the integer type T.
func MaxOf[T Integer]() T {
	return maxOfNumber[T]()
}

// MinOf returns the smallest value representable by the integer type T.
func MinOf[T Integer]() T {
	return minOfNumber[T]()
}

// FromFloat64 converts f to T.
//
// Floating-point targets use Go's native conversion. Integer targets
// truncate toward zero and saturate at the bounds of T; NaN maps to 0.
func FromFloat64[T Number](f float64) T {
	if IsFloat[T]() {
		return T(f)
	}
	if math.IsNaN(f) {
		return 0
	}
	f = math.Trunc(f)

	n := bitSize[T]()
	var lo, hiExcl float64
	if IsSigned[T]() {
		lo = -math.Ldexp(1, n-1)
		hiExcl = math.Ldexp(1, n-1)
	} else {
		lo = 0
		hiExcl = math.Ldexp(1, n)
	}

	switch {
	case f <= lo:
		return minOfNumber[T]()
	case f >= hiExcl:
		return maxOfNumber[T]()
	default:
		return T(f)
	}
}

// maxOfNumber and minOfNumber are only meaningful for integer instantiations.
// Shifts are not allowed on Number, so the bound is built by doubling.
func maxOfNumber[T Number]() T {
	n := bitSize[T]()
	if IsSigned[T]() {
		one := T(1)
		for i := 0; i < n-2; i++ {
			one *= 2
		}
		return one - 1 + one
	}
	var zero T
	return zero - 1
}

func minOfNumber[T Number]() T {
	if IsSigned[T]() {
		return -maxOfNumber[T]() - 1
	}
	return 0
}
