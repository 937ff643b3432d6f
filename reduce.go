package blockvec

import (
	"github.com/hupe1980/blockvec/internal/kernels"
)

func (v *Vector[T]) checkNonEmpty() error {
	if v.released {
		return ErrReleased
	}
	if v.size == 0 {
		return ErrEmpty
	}
	return nil
}

// Max returns the largest element. For floating-point vectors a NaN element
// is returned as the maximum.
func (v *Vector[T]) Max() (T, error) {
	i, err := v.MaxIndex()
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[i*v.stride], nil
}

// Min returns the smallest element. For floating-point vectors a NaN element
// is returned as the minimum.
func (v *Vector[T]) Min() (T, error) {
	i, err := v.MinIndex()
	if err != nil {
		var zero T
		return zero, err
	}
	return v.data[i*v.stride], nil
}

// MinMax returns the smallest and largest elements in a single pass.
func (v *Vector[T]) MinMax() (T, T, error) {
	imin, imax, err := v.MinMaxIndex()
	if err != nil {
		var zero T
		return zero, zero, err
	}
	return v.data[imin*v.stride], v.data[imax*v.stride], nil
}

// MaxIndex returns the index of the first largest element, or of the first
// NaN.
func (v *Vector[T]) MaxIndex() (int, error) {
	if err := v.checkNonEmpty(); err != nil {
		return 0, err
	}
	return kernels.MaxIndex(v.data, v.stride, v.size), nil
}

// MinIndex returns the index of the first smallest element, or of the first
// NaN.
func (v *Vector[T]) MinIndex() (int, error) {
	if err := v.checkNonEmpty(); err != nil {
		return 0, err
	}
	return kernels.MinIndex(v.data, v.stride, v.size), nil
}

// MinMaxIndex returns the indices of the first smallest and first largest
// elements.
func (v *Vector[T]) MinMaxIndex() (int, int, error) {
	if err := v.checkNonEmpty(); err != nil {
		return 0, 0, err
	}
	imin, imax := kernels.MinMaxIndex(v.data, v.stride, v.size)
	return imin, imax, nil
}
