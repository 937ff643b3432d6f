// Package arena provides the slot allocator that owns block storage.
//
// # Concurrency Model
//
// Arena methods are safe for concurrent use; a single mutex guards the slot
// table. Blocks obtain their storage once at allocation time, so the lock is
// never taken on the element access path.
//
// # Memory Management
//
// Every allocation occupies one slot and is addressed by a Ref. Releasing a
// Ref bumps the slot generation, so any later lookup through the same Ref is
// rejected as stale. Released buffers stay cached in their slot, up to a
// byte bound, and are handed out again to later allocations that fit,
// unless recycling is disabled or Reset is called. Cached capacity counts
// against the memory acquirer and is evicted when an allocation would
// otherwise be refused.
package arena

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/blockvec/internal/conv"
	"github.com/hupe1980/blockvec/internal/mem"
)

// MemoryAcquirer is an interface for acquiring memory.
type MemoryAcquirer interface {
	AcquireMemory(amount int64) error
	ReleaseMemory(amount int64)
}

var (
	// ErrMaxSlotsExceeded is returned when the arena exceeds the maximum number of slots.
	ErrMaxSlotsExceeded = errors.New("arena: max slots exceeded")
	// ErrAllocationFailed is returned when an allocation fails.
	ErrAllocationFailed = errors.New("arena: allocation failed")
	// ErrStaleRef is returned when a Ref no longer addresses a live allocation.
	ErrStaleRef = errors.New("arena: stale reference")
)

// MaxSlots limits the number of simultaneously tracked slots.
const MaxSlots = 1 << 30

// Stats tracks arena memory usage metrics.
//
// Note on semantics:
//   - BytesLive: buffer capacity held by live allocations
//   - BytesCached: buffer capacity retained by released slots for reuse
//   - LiveSlots: number of live allocations
//   - TotalAllocs: cumulative allocation count
//   - Recycled: allocations served from a cached buffer
type Stats struct {
	Slots       uint64
	LiveSlots   uint64
	BytesLive   uint64
	BytesCached uint64
	TotalAllocs uint64
	Recycled    uint64
}

// Ref represents a safe reference to an arena allocation.
// It includes the generation ID to detect stale references.
// The zero Ref never addresses a live allocation.
type Ref struct {
	Index uint32
	Gen   uint32
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.Gen == 0
}

type atomicStats struct {
	LiveSlots   atomic.Uint64
	BytesLive   atomic.Uint64
	BytesCached atomic.Uint64
	TotalAllocs atomic.Uint64
	Recycled    atomic.Uint64
}

type slot struct {
	buf  []byte
	size int
	gen  uint32
	live bool
}

// DefaultMaxCachedBytes bounds the bytes an Arena keeps for recycling.
const DefaultMaxCachedBytes = 64 << 20

// Arena is a slot allocator for block storage.
//
// The memory acquirer is charged for the full capacity of every buffer the
// arena holds, live or cached. AcquireMemory and ReleaseMemory are called
// with the arena lock held and must not block.
type Arena struct {
	mu        sync.Mutex
	slots     []slot
	free      *roaring.Bitmap // indices of released slots
	acquirer  MemoryAcquirer
	recycle   bool
	maxCached uint64
	stats     atomicStats
	slotCount atomic.Uint64
}

// Option is a configuration option for Arena.
type Option func(*Arena)

// WithMemoryAcquirer sets the memory acquirer for the arena.
func WithMemoryAcquirer(acquirer MemoryAcquirer) Option {
	return func(a *Arena) {
		a.acquirer = acquirer
	}
}

// WithRecycling controls whether released buffers are kept for reuse.
// Recycling is enabled by default.
func WithRecycling(enabled bool) Option {
	return func(a *Arena) {
		a.recycle = enabled
	}
}

// WithMaxCachedBytes bounds the capacity kept for recycling. Buffers that
// would exceed it are dropped on release.
func WithMaxCachedBytes(n uint64) Option {
	return func(a *Arena) {
		a.maxCached = n
	}
}

// New creates a new Arena.
func New(opts ...Option) *Arena {
	a := &Arena{
		free:      roaring.New(),
		recycle:   true,
		maxCached: DefaultMaxCachedBytes,
	}

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Alloc reserves size bytes and returns the Ref and the byte slice.
//
// If zero is false the contents are unspecified: a recycled buffer keeps
// whatever its previous owner wrote. If zero is true every byte is 0.
//
// A cached buffer is reused only if its capacity is at most twice size, so
// a live allocation never holds more than double what it asked for.
func (a *Arena) Alloc(size int, zero bool) (Ref, []byte, error) {
	if size <= 0 {
		return Ref{}, nil, fmt.Errorf("%w: invalid size %d", ErrAllocationFailed, size)
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if idx, ok := a.findCached(size); ok {
		a.free.Remove(idx)
		s := &a.slots[idx]
		a.stats.BytesCached.Add(^uint64(cap(s.buf) - 1))

		s.buf = s.buf[:size]
		if zero {
			clear(s.buf)
		}
		a.stats.Recycled.Add(1)
		return a.activate(idx, size), s.buf, nil
	}

	if err := a.charge(size); err != nil {
		return Ref{}, nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}

	idx, err := a.takeSlot()
	if err != nil {
		a.uncharge(size)
		return Ref{}, nil, err
	}

	s := &a.slots[idx]
	a.dropCached(s)
	s.buf = mem.AllocAligned(size)

	return a.activate(idx, size), s.buf, nil
}

// findCached returns a free slot whose cached buffer fits size.
func (a *Arena) findCached(size int) (uint32, bool) {
	if a.stats.BytesCached.Load() == 0 {
		return 0, false
	}
	it := a.free.Iterator()
	for it.HasNext() {
		idx := it.Next()
		if c := cap(a.slots[idx].buf); c >= size && c <= 2*size {
			return idx, true
		}
	}
	return 0, false
}

func (a *Arena) takeSlot() (uint32, error) {
	if !a.free.IsEmpty() {
		idx := a.free.Minimum()
		a.free.Remove(idx)
		return idx, nil
	}

	if len(a.slots) >= MaxSlots {
		return 0, ErrMaxSlotsExceeded
	}
	idx, err := conv.IntToUint32(len(a.slots))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMaxSlotsExceeded, err)
	}
	a.slots = append(a.slots, slot{gen: 1})
	a.slotCount.Add(1)
	return idx, nil
}

func (a *Arena) activate(idx uint32, size int) Ref {
	s := &a.slots[idx]
	s.size = size
	s.live = true

	a.stats.LiveSlots.Add(1)
	a.stats.BytesLive.Add(uint64(cap(s.buf)))
	a.stats.TotalAllocs.Add(1)

	return Ref{Index: idx, Gen: s.gen}
}

// charge reserves n bytes. If the acquirer refuses, cached buffers are
// dropped and the reservation is retried once.
func (a *Arena) charge(n int) error {
	if a.acquirer == nil {
		return nil
	}
	err := a.acquirer.AcquireMemory(conv.IntToInt64(n))
	if err != nil && a.evictCached() > 0 {
		err = a.acquirer.AcquireMemory(conv.IntToInt64(n))
	}
	return err
}

func (a *Arena) uncharge(n int) {
	if a.acquirer != nil && n > 0 {
		a.acquirer.ReleaseMemory(conv.IntToInt64(n))
	}
}

// dropCached frees the cached buffer of a released slot.
func (a *Arena) dropCached(s *slot) int {
	held := cap(s.buf)
	if held == 0 {
		return 0
	}
	s.buf = nil
	a.stats.BytesCached.Add(^uint64(held - 1))
	a.uncharge(held)
	return held
}

// evictCached drops every cached buffer and returns the bytes freed.
func (a *Arena) evictCached() int {
	freed := 0
	it := a.free.Iterator()
	for it.HasNext() {
		freed += a.dropCached(&a.slots[it.Next()])
	}
	return freed
}

// Get returns the byte slice addressed by ref, or nil if ref is stale.
func (a *Arena) Get(ref Ref) []byte {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.lookup(ref)
	if s == nil {
		return nil
	}
	return s.buf
}

// Valid reports whether ref addresses a live allocation.
func (a *Arena) Valid(ref Ref) bool {
	return a.Get(ref) != nil
}

func (a *Arena) lookup(ref Ref) *slot {
	if ref.IsZero() || int(ref.Index) >= len(a.slots) {
		return nil
	}
	s := &a.slots[ref.Index]
	if !s.live || s.gen != ref.Gen {
		return nil
	}
	return s
}

// Release frees the allocation addressed by ref.
// Releasing the same Ref twice returns ErrStaleRef.
//
// The buffer stays cached, and charged, while recycling is enabled and the
// cache is below its bound; otherwise it is dropped and uncharged.
func (a *Arena) Release(ref Ref) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.lookup(ref)
	if s == nil {
		return ErrStaleRef
	}

	held := cap(s.buf)
	s.live = false
	s.size = 0
	s.gen++
	if s.gen == 0 {
		// Generation 0 is reserved for the zero Ref.
		s.gen = 1
	}

	a.stats.LiveSlots.Add(^uint64(0))
	a.stats.BytesLive.Add(^uint64(held - 1))

	if a.recycle && a.stats.BytesCached.Load()+uint64(held) <= a.maxCached {
		a.stats.BytesCached.Add(uint64(held))
	} else {
		s.buf = nil
		a.uncharge(held)
	}
	a.free.Add(ref.Index)

	return nil
}

// Reset drops every cached buffer of released slots and returns their
// charge to the memory acquirer. Live allocations are not affected.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.evictCached()
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() Stats {
	return Stats{
		Slots:       a.slotCount.Load(),
		LiveSlots:   a.stats.LiveSlots.Load(),
		BytesLive:   a.stats.BytesLive.Load(),
		BytesCached: a.stats.BytesCached.Load(),
		TotalAllocs: a.stats.TotalAllocs.Load(),
		Recycled:    a.stats.Recycled.Load(),
	}
}

func (a *Arena) String() string {
	stats := a.Stats()
	return fmt.Sprintf(
		"Arena{slots: %d, live: %d, live bytes: %d, cached bytes: %d, allocs: %d, recycled: %d}",
		stats.Slots,
		stats.LiveSlots,
		stats.BytesLive,
		stats.BytesCached,
		stats.TotalAllocs,
		stats.Recycled,
	)
}
