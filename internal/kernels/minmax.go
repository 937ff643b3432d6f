package kernels

import "github.com/hupe1980/blockvec/internal/conv"

// A NaN element (x != x) terminates every scan below and is reported as the
// extremum. The comparison is always false for integer types.

// MaxIndex returns the index of the first largest element.
func MaxIndex[T conv.Number](x []T, stride, n int) int {
	best, imax := x[0], 0
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		v := x[p]
		if v != v {
			return i
		}
		if v > best {
			best, imax = v, i
		}
	}
	return imax
}

// MinIndex returns the index of the first smallest element.
func MinIndex[T conv.Number](x []T, stride, n int) int {
	best, imin := x[0], 0
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		v := x[p]
		if v != v {
			return i
		}
		if v < best {
			best, imin = v, i
		}
	}
	return imin
}

// MinMaxIndex returns the indices of the first smallest and first largest
// elements in a single pass.
func MinMaxIndex[T conv.Number](x []T, stride, n int) (imin, imax int) {
	lo, hi := x[0], x[0]
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		v := x[p]
		if v != v {
			return i, i
		}
		if v < lo {
			lo, imin = v, i
		}
		if v > hi {
			hi, imax = v, i
		}
	}
	return imin, imax
}
