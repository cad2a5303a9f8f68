// Package slabcache provides a fixed-capacity in-memory LRU cache backed by a
// reusable-slot arena.
//
// Entries live in dense, index-addressed slots instead of heap-allocated list
// nodes; the recency order is kept as intrusive links over the integer slot
// handles. Lookups, inserts, and recency updates are O(1).
//
// # Quick Start
//
//	cache, err := slabcache.New[string, string](128)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	cache.Insert("foo", "bar")
//
//	if v, ok := cache.Get("foo"); ok {
//	    fmt.Println(*v)
//	}
//
//	// Walk entries from least- to most-frequently accessed.
//	it := cache.IterFrequency(slabcache.SortAscending)
//	for e, ok := it.Next(); ok; e, ok = it.Next() {
//	    fmt.Println(e.Key, e.Metadata.Frequency)
//	}
//
// # Eviction
//
// Inserting into a full cache evicts the least-recently-used entry; inserts
// never fail for lack of space. Use GetLRU to peek at the next eviction
// candidate without touching recency order or statistics.
//
// # Concurrency
//
// A Cache is owned by a single goroutine. It performs no internal locking;
// callers needing shared access must serialize externally.
package slabcache
