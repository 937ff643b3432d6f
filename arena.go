package blockvec

import (
	"github.com/hupe1980/blockvec/internal/arena"
	"github.com/hupe1980/blockvec/resource"
)

// Arena owns the storage of every Block allocated through it.
//
// Blocks hold a generation-checked handle into their arena slot; releasing
// a Block invalidates the handle, and the slot's buffer may be recycled by a
// later allocation. An Arena is safe for concurrent use.
type Arena struct {
	inner *arena.Arena
	rc    *resource.Controller
}

// ArenaStats is a snapshot of arena usage.
type ArenaStats struct {
	Slots       uint64
	LiveBlocks  uint64
	BytesLive   uint64
	BytesCached uint64
	TotalAllocs uint64
	Recycled    uint64
}

type arenaOptions struct {
	rc        *resource.Controller
	recycle   bool
	maxCached uint64
}

// ArenaOption configures NewArena.
type ArenaOption func(*arenaOptions)

// WithMemoryController charges the storage held by the arena against rc,
// including released storage cached for recycling. Cached storage is
// evicted before an allocation is refused; allocations beyond the
// controller's limit fail with *ErrAllocation wrapping
// resource.ErrMemoryLimitExceeded.
func WithMemoryController(rc *resource.Controller) ArenaOption {
	return func(o *arenaOptions) {
		o.rc = rc
	}
}

// WithRecycling controls whether released block storage is reused by later
// allocations. Enabled by default.
func WithRecycling(enabled bool) ArenaOption {
	return func(o *arenaOptions) {
		o.recycle = enabled
	}
}

// WithMaxCachedBytes bounds the capacity of released storage kept for
// recycling. Defaults to 64 MiB.
func WithMaxCachedBytes(n uint64) ArenaOption {
	return func(o *arenaOptions) {
		o.maxCached = n
	}
}

// NewArena creates an Arena.
func NewArena(opts ...ArenaOption) *Arena {
	o := arenaOptions{recycle: true, maxCached: arena.DefaultMaxCachedBytes}
	for _, opt := range opts {
		opt(&o)
	}

	arenaOpts := []arena.Option{
		arena.WithRecycling(o.recycle),
		arena.WithMaxCachedBytes(o.maxCached),
	}
	if o.rc != nil {
		arenaOpts = append(arenaOpts, arena.WithMemoryAcquirer(o.rc))
	}

	return &Arena{
		inner: arena.New(arenaOpts...),
		rc:    o.rc,
	}
}

var defaultArena = NewArena()

// DefaultArena returns the arena used when no WithArena option is given.
func DefaultArena() *Arena {
	return defaultArena
}

// MemoryController returns the controller configured with WithMemoryController, or nil.
func (a *Arena) MemoryController() *resource.Controller {
	return a.rc
}

// Stats returns the current arena statistics.
func (a *Arena) Stats() ArenaStats {
	s := a.inner.Stats()
	return ArenaStats{
		Slots:       s.Slots,
		LiveBlocks:  s.LiveSlots,
		BytesLive:   s.BytesLive,
		BytesCached: s.BytesCached,
		TotalAllocs: s.TotalAllocs,
		Recycled:    s.Recycled,
	}
}

// Reset drops the cached storage of released blocks and returns it to the
// memory controller.
func (a *Arena) Reset() {
	a.inner.Reset()
}

func (a *Arena) String() string {
	return a.inner.String()
}
