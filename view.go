package blockvec

// View is a non-owning, read-write Vector over storage owned elsewhere:
// caller memory, a Block, or another Vector. The storage must outlive the
// View.
type View[T Numeric] struct {
	v *Vector[T]
}

// Vector returns the underlying non-owning Vector. Releasing it has no
// effect on the referenced storage.
func (w View[T]) Vector() *Vector[T] {
	return w.v
}

// Len returns the number of elements in the view.
func (w View[T]) Len() int {
	if w.v == nil {
		return 0
	}
	return w.v.size
}

func (w View[T]) readVector() *Vector[T] { return w.v }

// ConstView is a non-owning, read-only Vector. Only read accessors are
// exposed; ConstPtr results must not be written through.
type ConstView[T Numeric] struct {
	v *Vector[T]
}

// Len returns the number of elements in the view.
func (c ConstView[T]) Len() int {
	if c.v == nil {
		return 0
	}
	return c.v.size
}

// Stride returns the physical distance between consecutive elements.
func (c ConstView[T]) Stride() int {
	if c.v == nil {
		return 0
	}
	return c.v.stride
}

// Get returns element i.
func (c ConstView[T]) Get(i int) (T, error) {
	if c.v == nil {
		var zero T
		return zero, ErrReleased
	}
	return c.v.Get(i)
}

// ConstPtr returns a pointer to the storage of element i.
func (c ConstView[T]) ConstPtr(i int) (*T, error) {
	if c.v == nil {
		return nil, ErrReleased
	}
	return c.v.ConstPtr(i)
}

// Max returns the largest element.
func (c ConstView[T]) Max() (T, error) { return c.vector().Max() }

// Min returns the smallest element.
func (c ConstView[T]) Min() (T, error) { return c.vector().Min() }

// MinMax returns the smallest and largest elements.
func (c ConstView[T]) MinMax() (T, T, error) { return c.vector().MinMax() }

// MaxIndex returns the index of the first largest element.
func (c ConstView[T]) MaxIndex() (int, error) { return c.vector().MaxIndex() }

// MinIndex returns the index of the first smallest element.
func (c ConstView[T]) MinIndex() (int, error) { return c.vector().MinIndex() }

// MinMaxIndex returns the indices of the first smallest and largest elements.
func (c ConstView[T]) MinMaxIndex() (int, int, error) { return c.vector().MinMaxIndex() }

// IsNull reports whether every element equals zero.
func (c ConstView[T]) IsNull() bool { return c.vector().IsNull() }

// Sum returns the sum of all elements.
func (c ConstView[T]) Sum() T { return c.vector().Sum() }

// Slice returns the elements as a new contiguous slice.
func (c ConstView[T]) Slice() []T { return c.vector().Slice() }

// Clone returns an owning copy of the viewed elements.
func (c ConstView[T]) Clone(opts ...Option) (*Vector[T], error) { return c.vector().Clone(opts...) }

// ConstSubvector returns a read-only view of n elements starting at i.
func (c ConstView[T]) ConstSubvector(i, n int) (ConstView[T], error) {
	return c.vector().ConstSubvectorWithStride(i, 1, n)
}

// ConstSubvectorWithStride returns a read-only strided view of n elements
// starting at i.
func (c ConstView[T]) ConstSubvectorWithStride(i, stride, n int) (ConstView[T], error) {
	return c.vector().ConstSubvectorWithStride(i, stride, n)
}

func (c ConstView[T]) readVector() *Vector[T] { return c.v }

// vector returns the wrapped Vector, or a released placeholder for the zero
// ConstView so that every accessor reports ErrReleased.
func (c ConstView[T]) vector() *Vector[T] {
	if c.v == nil {
		return &Vector[T]{released: true}
	}
	return c.v
}

// Readable is implemented by *Vector, View and ConstView. Binary operations
// accept any Readable as their source operand.
type Readable[T Numeric] interface {
	Len() int
	readVector() *Vector[T]
}

func (v *Vector[T]) readVector() *Vector[T] { return v }

var (
	_ Readable[float64] = (*Vector[float64])(nil)
	_ Readable[float64] = View[float64]{}
	_ Readable[int32]   = ConstView[int32]{}
)

// ViewArray returns a view over every element of data.
func ViewArray[T Numeric](data []T) (View[T], error) {
	return ViewArrayWithStride(data, 1, len(data))
}

// ViewArrayWithStride returns a view of n elements of base, stride elements
// apart. Requires (n-1)*stride < len(base).
func ViewArrayWithStride[T Numeric](base []T, stride, n int) (View[T], error) {
	v, err := viewOver(base, stride, n)
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{v: v}, nil
}

// ConstViewArray returns a read-only view over every element of data.
func ConstViewArray[T Numeric](data []T) (ConstView[T], error) {
	return ConstViewArrayWithStride(data, 1, len(data))
}

// ConstViewArrayWithStride is the read-only form of ViewArrayWithStride.
func ConstViewArrayWithStride[T Numeric](base []T, stride, n int) (ConstView[T], error) {
	v, err := viewOver(base, stride, n)
	if err != nil {
		return ConstView[T]{}, err
	}
	return ConstView[T]{v: v}, nil
}

// source resolves a Readable operand, rejecting nil and released vectors.
func source[T Numeric](r Readable[T]) (*Vector[T], error) {
	if r == nil {
		return nil, ErrReleased
	}
	v := r.readVector()
	if v == nil || v.released {
		return nil, ErrReleased
	}
	return v, nil
}
