package kernels

import (
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/hupe1980/blockvec/internal/conv"
)

// Add computes a[i] += b[i] over n strided elements.
func Add[T conv.Number](a []T, sa int, b []T, sb int, n int) {
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+sa, q+sb {
		a[p] += b[q]
	}
}

// Sub computes a[i] -= b[i] over n strided elements.
func Sub[T conv.Number](a []T, sa int, b []T, sb int, n int) {
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+sa, q+sb {
		a[p] -= b[q]
	}
}

// Mul computes a[i] *= b[i] over n strided elements.
func Mul[T conv.Number](a []T, sa int, b []T, sb int, n int) {
	if sa == 1 && sb == 1 && active == VecMath {
		if af, ok := any(a).([]float64); ok {
			vecmath.MulBlockInPlace(af[:n], any(b).([]float64)[:n])
			return
		}
	}
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+sa, q+sb {
		a[p] *= b[q]
	}
}

// Div computes a[i] /= b[i] over n strided elements.
// Integer division truncates toward zero and panics on a zero divisor, so
// callers check HasZero first. Floating-point division follows IEEE 754.
func Div[T conv.Number](a []T, sa int, b []T, sb int, n int) {
	for i, p, q := 0, 0, 0; i < n; i, p, q = i+1, p+sa, q+sb {
		a[p] /= b[q]
	}
}

// HasZero reports whether any of n strided elements of x is zero.
func HasZero[T conv.Number](x []T, stride, n int) bool {
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		if x[p] == 0 {
			return true
		}
	}
	return false
}

// Scale multiplies each strided element by f, computing in float64 and
// converting back with conv.FromFloat64.
func Scale[T conv.Number](x []T, stride, n int, f float64) {
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		x[p] = conv.FromFloat64[T](float64(x[p]) * f)
	}
}

// AddConstant adds c to each strided element, computing in float64 and
// converting back with conv.FromFloat64.
func AddConstant[T conv.Number](x []T, stride, n int, c float64) {
	for i, p := 0, 0; i < n; i, p = i+1, p+stride {
		x[p] = conv.FromFloat64[T](float64(x[p]) + c)
	}
}
