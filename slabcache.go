package slabcache

import (
	"time"

	"github.com/nymphbox/slabcache/internal/slab"
	"github.com/nymphbox/slabcache/internal/usage"
)

// Metadata records per-entry access bookkeeping.
type Metadata[K comparable] struct {
	// LastAccessed is the UTC UNIX timestamp of the last successful lookup,
	// in microseconds. Zero means the entry has never been read.
	LastAccessed int64
	// Frequency counts successful lookups since the entry was created.
	Frequency uint64
	// Hits counts cache hits for the entry.
	Hits uint64
	// Key is the caller-supplied key, kept so a slot handle can be mapped
	// back to its key during eviction.
	Key K
}

// Cache is a fixed-capacity LRU cache backed by a reusable-slot arena.
//
// Values are addressed by integer slot handles: the key index maps keys to
// handles, the metadata table maps handles to access bookkeeping, and the
// recency list orders handles from least- to most-recently-used. No entry
// references another except through handles, so the cache allocates no list
// nodes.
//
// A Cache must be owned by a single goroutine; it is not internally
// synchronized.
type Cache[K comparable, V any] struct {
	slots    *slab.Slab[V]
	keys     map[K]int
	meta     map[int]*Metadata[K]
	usage    *usage.List
	capacity int

	recorder Recorder
	logger   *Logger
	now      func() int64 // µs UTC epoch; swapped in tests
}

// New creates a Cache holding at most capacity entries. All internal
// structures are pre-sized with one slot of headroom for the transient
// over-capacity state during an overflow insert, so inserts never
// reallocate.
//
// Returns ErrInvalidCapacity if capacity is not positive.
func New[K comparable, V any](capacity int, opts ...Option) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// An overflow insert holds capacity+1 entries until its eviction
	// completes. The headroom keeps the slot store from growing then,
	// which would move live values out from under returned pointers.
	return &Cache[K, V]{
		slots:    slab.New[V](capacity + 1),
		keys:     make(map[K]int, capacity+1),
		meta:     make(map[int]*Metadata[K], capacity+1),
		usage:    usage.NewList(capacity + 1),
		capacity: capacity,
		recorder: o.recorder,
		logger:   o.logger,
		now:      func() int64 { return time.Now().UnixMicro() },
	}, nil
}

// Insert stores value under key and returns the key. The new entry starts at
// the most-recently-used position with zeroed metadata.
//
// If the insert pushes the cache over capacity, the least-recently-used entry
// is evicted; inserts never fail for lack of space. Inserting a key that is
// already present replaces the previous entry.
func (c *Cache[K, V]) Insert(key K, value V) K {
	if h, ok := c.keys[key]; ok {
		c.remove(h)
	}

	h := c.slots.Put(value)
	c.meta[h] = &Metadata[K]{Key: key}
	c.keys[key] = h
	c.usage.PushBack(h)

	if c.slots.Len() > c.capacity {
		c.evict()
	}

	c.recorder.RecordOccupancy(c.slots.Len())
	return key
}

// Get returns a pointer to the value stored under key. On a hit the entry's
// last-access time, frequency, and hit count are updated and the entry moves
// to the most-recently-used position. On a miss nothing is mutated.
//
// The returned pointer stays valid until the entry is evicted, replaced, or
// flushed.
func (c *Cache[K, V]) Get(key K) (*V, bool) {
	h, ok := c.keys[key]
	if !ok {
		c.recorder.RecordMiss()
		return nil, false
	}

	m := c.meta[h]
	m.LastAccessed = c.now()
	m.Frequency++
	m.Hits++
	c.usage.MoveToBack(h)
	c.recorder.RecordHit()

	return c.slots.Get(h), true
}

// GetLRU returns a pointer to the value of the least-recently-used entry,
// the next eviction candidate. It mutates no entry state and records no
// statistics. ok is false when the cache is empty.
func (c *Cache[K, V]) GetLRU() (*V, bool) {
	h, ok := c.usage.Front()
	if !ok {
		return nil, false
	}
	return c.slots.Get(h), true
}

// Flush removes every entry while keeping the allocated capacity of all
// internal structures. Cumulative statistics are not reset.
func (c *Cache[K, V]) Flush() {
	n := c.slots.Len()
	c.slots.Reset()
	c.usage.Reset()
	clear(c.keys)
	clear(c.meta)
	c.logger.Debug("cache flushed", "entries", n)
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return c.slots.Len()
}

// Capacity returns the configured maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

func (c *Cache[K, V]) evict() {
	h, ok := c.usage.Front()
	if !ok {
		return
	}
	m := c.meta[h]
	c.remove(h)
	c.logger.Debug("evicted lru entry",
		"key", m.Key,
		"frequency", m.Frequency,
		"occupancy", c.slots.Len(),
	)
}

// remove drops the entry at handle h from all four structures.
func (c *Cache[K, V]) remove(h int) {
	m := c.meta[h]
	c.usage.Remove(h)
	c.slots.Delete(h)
	delete(c.keys, m.Key)
	delete(c.meta, h)
}
