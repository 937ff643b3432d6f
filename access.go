package blockvec

func (v *Vector[T]) checkIndex(i int) error {
	if v.released {
		return ErrReleased
	}
	if i < 0 || i >= v.size {
		return &ErrIndexOutOfRange{Index: i, Size: v.size}
	}
	return nil
}

// Get returns element i.
func (v *Vector[T]) Get(i int) (T, error) {
	if RangeCheck {
		if err := v.checkIndex(i); err != nil {
			var zero T
			return zero, err
		}
	}
	return v.data[i*v.stride], nil
}

// Set stores x at element i.
func (v *Vector[T]) Set(i int, x T) error {
	if RangeCheck {
		if err := v.checkIndex(i); err != nil {
			return err
		}
	}
	v.data[i*v.stride] = x
	return nil
}

// Ptr returns a pointer to the storage of element i, for in-place updates.
func (v *Vector[T]) Ptr(i int) (*T, error) {
	if RangeCheck {
		if err := v.checkIndex(i); err != nil {
			return nil, err
		}
	}
	return &v.data[i*v.stride], nil
}

// ConstPtr returns a pointer to the storage of element i. Callers must not
// write through it.
func (v *Vector[T]) ConstPtr(i int) (*T, error) {
	return v.Ptr(i)
}
