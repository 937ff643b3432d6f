package blockvec

import (
	"github.com/hupe1980/blockvec/internal/conv"
)

// Vector is a strided, bounded window over block or caller storage.
//
// Logical element i lives at data[i*stride]. An owning Vector holds a
// private Block of exactly Len() elements and releases it in Release; a
// non-owning Vector must not outlive the storage it references.
//
// Vectors are not safe for concurrent mutation, including through distinct
// Vectors or Views that share a Block.
type Vector[T Numeric] struct {
	size     int
	stride   int
	data     []T
	block    *Block[T]
	owner    bool
	released bool
}

// Alloc returns an owning Vector of n elements with unspecified contents,
// backed by a private Block.
func Alloc[T Numeric](n int, opts ...Option) (*Vector[T], error) {
	b, err := NewBlock[T](n, opts...)
	if err != nil {
		return nil, err
	}
	return ownVector(b), nil
}

// AllocZeroed returns an owning Vector of n zero-valued elements.
func AllocZeroed[T Numeric](n int, opts ...Option) (*Vector[T], error) {
	b, err := NewBlockZeroed[T](n, opts...)
	if err != nil {
		return nil, err
	}
	return ownVector(b), nil
}

func ownVector[T Numeric](b *Block[T]) *Vector[T] {
	return &Vector[T]{
		size:   b.size,
		stride: 1,
		data:   b.data,
		block:  b,
		owner:  true,
	}
}

// AllocFromBlock returns a non-owning Vector of n elements starting at
// offset in b, stride elements apart. The range must satisfy
// offset+(n-1)*stride < b.Len().
func AllocFromBlock[T Numeric](b *Block[T], offset, n, stride int) (*Vector[T], error) {
	if b == nil || b.data == nil {
		return nil, ErrReleased
	}
	last, err := checkRange(offset, n, stride, b.size, "vector would extend past end of block")
	if err != nil {
		return nil, err
	}
	return &Vector[T]{
		size:   n,
		stride: stride,
		data:   b.data[offset : last+1],
		block:  b,
	}, nil
}

// AllocFromVector returns a non-owning Vector over n logical elements of v,
// starting at logical offset, stride logical elements apart.
//
// The result addresses the same storage as the equivalent single-level
// range: its physical stride is stride*v.Stride().
func AllocFromVector[T Numeric](v *Vector[T], offset, n, stride int) (*Vector[T], error) {
	return v.derive(offset, n, stride, "vector would extend past end of vector")
}

func (v *Vector[T]) derive(offset, n, stride int, reason string) (*Vector[T], error) {
	if v == nil || v.released {
		return nil, ErrReleased
	}
	last, err := checkRange(offset, n, stride, v.size, reason)
	if err != nil {
		return nil, err
	}
	physStride, err := conv.MulInt(stride, v.stride)
	if err != nil {
		return nil, &ErrInvalidRange{Offset: offset, N: n, Stride: stride, Extent: v.size, Reason: "stride overflows", cause: err}
	}
	// last < v.size, so both products fit: (v.size-1)*v.stride indexes v.data.
	return &Vector[T]{
		size:   n,
		stride: physStride,
		data:   v.data[offset*v.stride : last*v.stride+1],
		block:  v.block,
	}, nil
}

// viewOver builds a non-owning Vector over caller storage.
func viewOver[T Numeric](base []T, stride, n int) (*Vector[T], error) {
	last, err := checkRange(0, n, stride, len(base), "view would extend past end of array")
	if err != nil {
		return nil, err
	}
	return &Vector[T]{
		size:   n,
		stride: stride,
		data:   base[:last+1],
	}, nil
}

// checkRange validates offset, n and stride against extent and returns the
// physical index of the last element.
func checkRange(offset, n, stride, extent int, reason string) (int, error) {
	rangeErr := func(why string, cause error) error {
		return &ErrInvalidRange{Offset: offset, N: n, Stride: stride, Extent: extent, Reason: why, cause: cause}
	}

	switch {
	case n < 1:
		return 0, rangeErr("length n must be a positive integer", nil)
	case stride < 1:
		return 0, rangeErr("stride must be a positive integer", nil)
	case offset < 0:
		return 0, rangeErr("offset must not be negative", nil)
	}

	last, err := conv.LastIndex(offset, n, stride)
	if err != nil {
		return 0, rangeErr(reason, err)
	}
	if last >= extent {
		return 0, rangeErr(reason, nil)
	}
	return last, nil
}

// Len returns the logical number of elements.
func (v *Vector[T]) Len() int {
	return v.size
}

// Stride returns the distance between consecutive logical elements in the
// underlying storage, in elements.
func (v *Vector[T]) Stride() int {
	return v.stride
}

// Owner reports whether the vector owns its block and releases it in Release.
func (v *Vector[T]) Owner() bool {
	return v.owner
}

// Block returns the block the vector draws from, or nil for views over
// caller storage.
func (v *Vector[T]) Block() *Block[T] {
	return v.block
}

// Released reports whether Release has been called on v.
func (v *Vector[T]) Released() bool {
	return v.released
}

// Release invalidates v. An owning vector also releases its private block;
// a non-owning vector leaves the referenced storage untouched. v is
// invalidated even when its block was already released.
func (v *Vector[T]) Release() error {
	if v.released {
		return ErrReleased
	}
	var err error
	if v.owner && v.block != nil {
		err = v.block.Release()
	}
	v.released = true
	v.size = 0
	v.data = nil
	v.block = nil
	v.owner = false
	return err
}

// Subvector returns a view of n elements of v starting at i.
func (v *Vector[T]) Subvector(i, n int) (View[T], error) {
	return v.SubvectorWithStride(i, 1, n)
}

// SubvectorWithStride returns a view of n elements of v starting at i,
// stride logical elements apart. Requires i+(n-1)*stride < v.Len().
func (v *Vector[T]) SubvectorWithStride(i, stride, n int) (View[T], error) {
	sub, err := v.derive(i, n, stride, "view would extend past end of vector")
	if err != nil {
		return View[T]{}, err
	}
	return View[T]{v: sub}, nil
}

// ConstSubvector returns a read-only view of n elements of v starting at i.
func (v *Vector[T]) ConstSubvector(i, n int) (ConstView[T], error) {
	return v.ConstSubvectorWithStride(i, 1, n)
}

// ConstSubvectorWithStride is the read-only form of SubvectorWithStride.
func (v *Vector[T]) ConstSubvectorWithStride(i, stride, n int) (ConstView[T], error) {
	sub, err := v.derive(i, n, stride, "view would extend past end of vector")
	if err != nil {
		return ConstView[T]{}, err
	}
	return ConstView[T]{v: sub}, nil
}
