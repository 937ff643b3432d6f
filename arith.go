package blockvec

import (
	"github.com/hupe1980/blockvec/internal/conv"
	"github.com/hupe1980/blockvec/internal/kernels"
)

// Add computes v[i] += b[i].
func (v *Vector[T]) Add(b Readable[T]) error {
	s, err := v.binarySource(b)
	if err != nil {
		return err
	}
	kernels.Add(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// Sub computes v[i] -= b[i].
func (v *Vector[T]) Sub(b Readable[T]) error {
	s, err := v.binarySource(b)
	if err != nil {
		return err
	}
	kernels.Sub(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// Mul computes v[i] *= b[i].
func (v *Vector[T]) Mul(b Readable[T]) error {
	s, err := v.binarySource(b)
	if err != nil {
		return err
	}
	kernels.Mul(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// Div computes v[i] /= b[i].
//
// Integer vectors truncate toward zero; if any divisor element is zero Div
// returns ErrDivisionByZero and leaves v unchanged. Floating-point vectors
// follow IEEE 754 and produce ±Inf or NaN.
func (v *Vector[T]) Div(b Readable[T]) error {
	s, err := v.binarySource(b)
	if err != nil {
		return err
	}
	if !conv.IsFloat[T]() && kernels.HasZero(s.data, s.stride, s.size) {
		return ErrDivisionByZero
	}
	kernels.Div(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// Scale multiplies every element by x.
//
// The product is computed in float64. Integer vectors truncate the result
// toward zero and saturate at the bounds of T; NaN becomes zero.
func (v *Vector[T]) Scale(x float64) error {
	if v.released {
		return ErrReleased
	}
	kernels.Scale(v.data, v.stride, v.size, x)
	return nil
}

// AddConstant adds x to every element, with the same conversion rule as
// Scale.
func (v *Vector[T]) AddConstant(x float64) error {
	if v.released {
		return ErrReleased
	}
	kernels.AddConstant(v.data, v.stride, v.size, x)
	return nil
}
