// Package testutil provides testing utilities for slabcache.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, reproducible random source for generating key and
// access-pattern workloads.
//
// # Workload Generation
//
//	rng := testutil.NewRNG(seed)
//	key := rng.Key(1000)      // one of 1000 deterministic keys
//	keys := rng.Keys(64, 16)  // 64 keys drawn from a space of 16
package testutil
