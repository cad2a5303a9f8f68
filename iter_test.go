package slabcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K comparable, V any](it *FrequencyIter[K, V]) []Entry[K, V] {
	var entries []Entry[K, V]
	for e, ok := it.Next(); ok; e, ok = it.Next() {
		entries = append(entries, e)
	}
	return entries
}

func keysOf[K comparable, V any](entries []Entry[K, V]) []K {
	keys := make([]K, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

func TestIterFrequency(t *testing.T) {
	c, err := New[string, string](3)
	require.NoError(t, err)

	c.Insert("key1", "value1")
	c.Insert("key2", "value2")
	c.Insert("key3", "value3")

	c.Get("key1")
	c.Get("key1")
	c.Get("key1")
	c.Get("key2")
	c.Get("key2")
	c.Get("key3")

	asc := collect(c.IterFrequency(SortAscending))
	assert.Equal(t, []string{"key3", "key2", "key1"}, keysOf(asc))

	desc := collect(c.IterFrequency(SortDescending))
	assert.Equal(t, []string{"key1", "key2", "key3"}, keysOf(desc))

	// Entries carry value and metadata snapshots.
	assert.Equal(t, "value3", asc[0].Value)
	assert.Equal(t, uint64(1), asc[0].Metadata.Frequency)
	assert.Equal(t, uint64(3), asc[2].Metadata.Frequency)
	assert.Equal(t, "key1", asc[2].Metadata.Key)
}

func TestIterFrequencyNonDecreasing(t *testing.T) {
	c, err := New[int, int](8)
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		c.Insert(i, i)
		for j := 0; j < i%4; j++ {
			c.Get(i)
		}
	}

	entries := collect(c.IterFrequency(SortAscending))
	require.Len(t, entries, 8)
	for i := 1; i < len(entries); i++ {
		assert.GreaterOrEqual(t, entries[i].Metadata.Frequency, entries[i-1].Metadata.Frequency)
	}
}

func TestIterFrequencyReadOnly(t *testing.T) {
	stats := NewUsageStats()
	c, err := New[string, int](4, WithRecorder(stats))
	require.NoError(t, err)

	c.Insert("a", 1)
	c.Insert("b", 2)
	c.Get("a")

	before := stats.Snapshot()
	order := c.usage.Handles()

	collect(c.IterFrequency(SortDescending))

	// Iteration touches neither statistics, recency order, nor metadata.
	assert.Equal(t, before, stats.Snapshot())
	assert.Equal(t, order, c.usage.Handles())
	assert.Equal(t, uint64(1), c.meta[c.keys["a"]].Frequency)
}

func TestIterFrequencySnapshotIsolation(t *testing.T) {
	c, err := New[string, string](2)
	require.NoError(t, err)

	c.Insert("a", "1")
	c.Insert("b", "2")

	it := c.IterFrequency(SortAscending)

	// Evict "a" and mutate "b" after the snapshot was taken.
	c.Insert("c", "3")
	c.Get("b")

	entries := collect(it)
	require.Len(t, entries, 2)
	assert.ElementsMatch(t, []string{"a", "b"}, keysOf(entries))
	for _, e := range entries {
		assert.Equal(t, uint64(0), e.Metadata.Frequency)
	}
}

func TestIterFrequencySingleUse(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)
	c.Insert("a", 1)

	it := c.IterFrequency(SortAscending)

	_, ok := it.Next()
	require.True(t, ok)
	_, ok = it.Next()
	require.False(t, ok)

	// Exhausted iterators stay exhausted, even after new inserts.
	c.Insert("b", 2)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestIterFrequencyEmpty(t *testing.T) {
	c, err := New[string, int](2)
	require.NoError(t, err)

	_, ok := c.IterFrequency(SortAscending).Next()
	assert.False(t, ok)
}
