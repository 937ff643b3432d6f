// Package conv provides safe numeric conversion utilities.
//
// The integer helpers perform bounds checking to prevent overflow when
// converting between Go's platform-dependent int and fixed-width types, and
// when computing the extent of strided ranges.
//
// FromFloat64 implements the scalar policy used by Scale and AddConstant:
// floating-point targets convert natively, integer targets truncate toward
// zero and saturate at the type bounds.
package conv
