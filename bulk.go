package blockvec

import (
	"github.com/hupe1980/blockvec/internal/kernels"
)

// SetAll writes x to every element.
func (v *Vector[T]) SetAll(x T) error {
	if v.released {
		return ErrReleased
	}
	kernels.Fill(v.data, v.stride, v.size, x)
	return nil
}

// SetZero writes the zero value to every element.
func (v *Vector[T]) SetZero() error {
	var zero T
	return v.SetAll(zero)
}

// SetBasis zeroes v and sets element i to one.
func (v *Vector[T]) SetBasis(i int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	var zero T
	kernels.Fill(v.data, v.stride, v.size, zero)
	v.data[i*v.stride] = 1
	return nil
}

// Copy copies the elements of src into dst. Both must have the same length;
// their strides may differ.
func Copy[T Numeric](dst *Vector[T], src Readable[T]) error {
	return dst.CopyFrom(src)
}

// CopyFrom copies the elements of src into v.
func (v *Vector[T]) CopyFrom(src Readable[T]) error {
	s, err := v.binarySource(src)
	if err != nil {
		return err
	}
	kernels.Copy(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// Swap exchanges the contents of v and w element by element.
func (v *Vector[T]) Swap(w *Vector[T]) error {
	s, err := v.binarySource(w)
	if err != nil {
		return err
	}
	kernels.Swap(v.data, v.stride, s.data, s.stride, v.size)
	return nil
}

// SwapElements exchanges elements i and j.
func (v *Vector[T]) SwapElements(i, j int) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	if err := v.checkIndex(j); err != nil {
		return err
	}
	pi, pj := i*v.stride, j*v.stride
	v.data[pi], v.data[pj] = v.data[pj], v.data[pi]
	return nil
}

// Reverse reverses the order of the elements in place.
func (v *Vector[T]) Reverse() error {
	if v.released {
		return ErrReleased
	}
	kernels.Reverse(v.data, v.stride, v.size)
	return nil
}

// IsNull reports whether every element equals zero. A released vector is
// never null.
func (v *Vector[T]) IsNull() bool {
	if v.released {
		return false
	}
	return kernels.IsZero(v.data, v.stride, v.size)
}

// Sum returns the sum of all elements in the element type's own arithmetic.
func (v *Vector[T]) Sum() T {
	if v.released {
		var zero T
		return zero
	}
	return kernels.Sum(v.data, v.stride, v.size)
}

// Slice returns the elements as a new contiguous slice.
func (v *Vector[T]) Slice() []T {
	if v.released {
		return nil
	}
	return kernels.Gather(v.data, v.stride, v.size)
}

// Clone returns an owning vector holding a copy of the elements of v.
func (v *Vector[T]) Clone(opts ...Option) (*Vector[T], error) {
	if v.released {
		return nil, ErrReleased
	}
	if v.size == 0 {
		return nil, ErrEmpty
	}
	out, err := Alloc[T](v.size, opts...)
	if err != nil {
		return nil, err
	}
	kernels.Copy(out.data, 1, v.data, v.stride, v.size)
	return out, nil
}

// binarySource validates the second operand of a binary operation.
func (v *Vector[T]) binarySource(r Readable[T]) (*Vector[T], error) {
	if v.released {
		return nil, ErrReleased
	}
	s, err := source(r)
	if err != nil {
		return nil, err
	}
	if s.size != v.size {
		return nil, &ErrSizeMismatch{Expected: v.size, Actual: s.size}
	}
	return s, nil
}
