// Package slab implements a reusable-slot value arena.
//
// A Slab stores values in dense, index-addressed slots. Put returns an
// integer handle that stays stable until Delete or Reset; freed handles are
// recycled in stack order. Because entries are addressed by handle rather
// than pointer, callers can build cross-references between entries without
// per-node heap allocation.
package slab

type slot[V any] struct {
	value V
	live  bool
}

// Slab is a reusable-slot arena for values of type V.
// It is not safe for concurrent use.
type Slab[V any] struct {
	slots []slot[V]
	free  []int
	count int
}

// New creates a Slab pre-sized for capacity entries.
func New[V any](capacity int) *Slab[V] {
	return &Slab[V]{
		slots: make([]slot[V], 0, capacity),
		free:  make([]int, 0, capacity),
	}
}

// Put stores value and returns its handle.
// Freed handles are reused before the slot array grows.
func (s *Slab[V]) Put(value V) int {
	s.count++
	if n := len(s.free); n > 0 {
		h := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[h] = slot[V]{value: value, live: true}
		return h
	}
	s.slots = append(s.slots, slot[V]{value: value, live: true})
	return len(s.slots) - 1
}

// Get returns a pointer to the value at handle h, or nil if h is not live.
// The pointer stays valid until the handle is deleted or the slab is reset.
func (s *Slab[V]) Get(h int) *V {
	if h < 0 || h >= len(s.slots) || !s.slots[h].live {
		return nil
	}
	return &s.slots[h].value
}

// Delete frees the slot at handle h and returns its value.
// ok is false if h is not live.
func (s *Slab[V]) Delete(h int) (value V, ok bool) {
	if h < 0 || h >= len(s.slots) || !s.slots[h].live {
		return value, false
	}
	value = s.slots[h].value
	s.slots[h] = slot[V]{}
	s.free = append(s.free, h)
	s.count--
	return value, true
}

// Reset frees every slot while keeping the allocated backing arrays, so
// subsequent Puts up to the original capacity do not reallocate.
func (s *Slab[V]) Reset() {
	clear(s.slots)
	s.slots = s.slots[:0]
	s.free = s.free[:0]
	s.count = 0
}

// Len returns the number of live slots.
func (s *Slab[V]) Len() int {
	return s.count
}

// Cap returns the capacity of the backing slot array.
func (s *Slab[V]) Cap() int {
	return cap(s.slots)
}
