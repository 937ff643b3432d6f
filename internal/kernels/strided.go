package kernels

import "github.com/hupe1980/blockvec/internal/conv"

// Fill writes v to n elements of x spaced stride apart.
func Fill[T conv.Number](x []T, stride, n int, v T) {
	if stride == 1 {
		x = x[:n]
		for i := range x {
			x[i] = v
		}
		return
	}
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		x[p] = v
	}
}

// Copy copies n elements from src into dst, each honoring its own stride.
func Copy[T conv.Number](dst []T, ds int, src []T, ss int, n int) {
	if ds == 1 && ss == 1 {
		copy(dst[:n], src[:n])
		return
	}
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+ds, q+ss {
		dst[p] = src[q]
	}
}

// Swap exchanges n elements of a and b element by element.
func Swap[T conv.Number](a []T, sa int, b []T, sb int, n int) {
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+sa, q+sb {
		a[p], b[q] = b[q], a[p]
	}
}

// Reverse reverses the order of n strided elements of x in place.
func Reverse[T conv.Number](x []T, stride, n int) {
	for i := 0; i < n/2; i++ {
		j := n - 1 - i
		x[i*stride], x[j*stride] = x[j*stride], x[i*stride]
	}
}

// IsZero reports whether all n strided elements of x equal zero.
func IsZero[T conv.Number](x []T, stride, n int) bool {
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		if x[p] != 0 {
			return false
		}
	}
	return true
}

// Sum returns the sum of n strided elements using T's native arithmetic.
func Sum[T conv.Number](x []T, stride, n int) T {
	var s T
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		s += x[p]
	}
	return s
}

// Gather copies n strided elements of x into a new contiguous slice.
func Gather[T conv.Number](x []T, stride, n int) []T {
	out := make([]T, n)
	Copy(out, 1, x, stride, n)
	return out
}
