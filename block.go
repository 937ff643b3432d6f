package blockvec

import (
	"fmt"
	"time"

	"github.com/hupe1980/blockvec/internal/arena"
	"github.com/hupe1980/blockvec/internal/mem"
)

// Block is an owning, contiguous, fixed-length buffer of elements.
//
// The storage lives in an arena slot. Exactly one party releases a Block;
// every Vector or View built over it becomes invalid at that point.
type Block[T Numeric] struct {
	size    int
	data    []T
	ref     arena.Ref
	arena   *Arena
	logger  *Logger
	metrics MetricsCollector
}

// NewBlock allocates a Block of n elements with unspecified contents.
// Storage recycled from a released block keeps its previous values.
func NewBlock[T Numeric](n int, opts ...Option) (*Block[T], error) {
	return newBlock[T](n, false, applyOptions(opts))
}

// NewBlockZeroed allocates a Block of n zero-valued elements.
func NewBlockZeroed[T Numeric](n int, opts ...Option) (*Block[T], error) {
	return newBlock[T](n, true, applyOptions(opts))
}

func newBlock[T Numeric](n int, zero bool, o options) (*Block[T], error) {
	start := time.Now()

	bytes, ok := mem.BytesFor[T](n)
	if n <= 0 || !ok {
		err := &ErrAllocation{Size: n}
		if n > 0 {
			err.cause = fmt.Errorf("%d elements exceed the addressable size", n)
		}
		o.metrics.RecordAlloc(0, time.Since(start), err)
		o.logger.LogAlloc(n, 0, zero, err)
		return nil, err
	}

	ref, buf, err := o.arena.inner.Alloc(bytes, zero)
	if err != nil {
		allocErr := &ErrAllocation{Size: n, cause: err}
		o.metrics.RecordAlloc(bytes, time.Since(start), allocErr)
		o.logger.LogAlloc(n, bytes, zero, allocErr)
		return nil, allocErr
	}

	b := &Block[T]{
		size:    n,
		data:    mem.Cast[T](buf, n),
		ref:     ref,
		arena:   o.arena,
		logger:  o.logger,
		metrics: o.metrics,
	}

	o.metrics.RecordAlloc(bytes, time.Since(start), nil)
	o.logger.LogAlloc(n, bytes, zero, nil)

	return b, nil
}

// Len returns the number of elements in the block. It is 0 after Release.
func (b *Block[T]) Len() int {
	return b.size
}

// Data returns the block storage. The slice must not be used after Release.
func (b *Block[T]) Data() []T {
	return b.data
}

// Arena returns the arena that owns the block storage.
func (b *Block[T]) Arena() *Arena {
	return b.arena
}

// Released reports whether Release has been called, or whether the arena
// slot behind the block no longer belongs to it.
func (b *Block[T]) Released() bool {
	return b.data == nil || !b.arena.inner.Valid(b.ref)
}

// Release frees the block storage. Calling Release again returns ErrReleased.
func (b *Block[T]) Release() error {
	if b.data == nil {
		return ErrReleased
	}

	size := b.size
	bytes, _ := mem.BytesFor[T](size)

	if err := b.arena.inner.Release(b.ref); err != nil {
		err = fmt.Errorf("%w: %w", ErrReleased, err)
		b.logger.LogRelease(size, bytes, err)
		return err
	}

	b.data = nil
	b.size = 0
	b.ref = arena.Ref{}

	b.metrics.RecordRelease(bytes)
	b.logger.LogRelease(size, bytes, nil)

	return nil
}
