package slabcache

import (
	"strconv"
	"testing"

	"github.com/nymphbox/slabcache/testutil"
)

func BenchmarkInsert(b *testing.B) {
	rng := testutil.NewRNG(1)
	keys := rng.Keys(4096, 4096)

	c, _ := New[string, int](1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Insert(keys[i%len(keys)], i)
	}
}

func BenchmarkGetHit(b *testing.B) {
	rng := testutil.NewRNG(1)

	c, _ := New[string, int](1024)
	for i := 0; i < 1024; i++ {
		c.Insert("key-"+strconv.Itoa(i), i)
	}
	keys := rng.Keys(4096, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get(keys[i%len(keys)])
	}
}

func BenchmarkGetMiss(b *testing.B) {
	c, _ := New[string, int](1024)
	for i := 0; i < 1024; i++ {
		c.Insert("key-"+strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("absent")
	}
}

func BenchmarkIterFrequency(b *testing.B) {
	c, _ := New[string, int](1024)
	rng := testutil.NewRNG(1)
	for i := 0; i < 1024; i++ {
		c.Insert("key-"+strconv.Itoa(i), i)
		for j := 0; j < rng.Intn(4); j++ {
			c.Get("key-" + strconv.Itoa(i))
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := c.IterFrequency(SortAscending)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
	}
}
