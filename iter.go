package slabcache

import (
	"cmp"
	"slices"
)

// SortOrder controls the direction of frequency iteration.
type SortOrder int

const (
	// SortAscending yields entries from least- to most-frequently accessed.
	SortAscending SortOrder = iota
	// SortDescending yields entries from most- to least-frequently accessed.
	SortDescending
)

// Entry is a snapshot of one cache element.
type Entry[K comparable, V any] struct {
	Key      K
	Value    V
	Metadata Metadata[K]
}

// FrequencyIter yields cache entries ordered by access frequency.
//
// The iterator is a snapshot taken when IterFrequency was called: cache
// mutations made afterwards are not visible through it. It is single-use; an
// exhausted iterator stays exhausted.
type FrequencyIter[K comparable, V any] struct {
	entries []Entry[K, V]
}

// Next returns the next entry in frequency order.
// ok is false once the iterator is exhausted.
func (it *FrequencyIter[K, V]) Next() (e Entry[K, V], ok bool) {
	if len(it.entries) == 0 {
		return e, false
	}
	e = it.entries[0]
	it.entries[0] = Entry[K, V]{}
	it.entries = it.entries[1:]
	return e, true
}

// IterFrequency returns an iterator over every live entry, ordered by
// Frequency per order. The order among entries with equal frequency is
// unspecified.
func (c *Cache[K, V]) IterFrequency(order SortOrder) *FrequencyIter[K, V] {
	handles := make([]int, 0, len(c.meta))
	for h := range c.meta {
		handles = append(handles, h)
	}
	slices.SortFunc(handles, func(a, b int) int {
		if d := cmp.Compare(c.meta[a].Frequency, c.meta[b].Frequency); d != 0 {
			return d
		}
		// Handles recycle; tie order is not part of the contract.
		return cmp.Compare(a, b)
	})
	if order == SortDescending {
		slices.Reverse(handles)
	}

	entries := make([]Entry[K, V], 0, len(handles))
	for _, h := range handles {
		m := c.meta[h]
		entries = append(entries, Entry[K, V]{
			Key:      m.Key,
			Value:    *c.slots.Get(h),
			Metadata: *m,
		})
	}
	return &FrequencyIter[K, V]{entries: entries}
}
