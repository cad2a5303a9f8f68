package slabcache

// Recorder receives usage events from the cache.
// Implement this interface to integrate with monitoring systems.
//
// The cache calls RecordHit or RecordMiss exactly once per Get and
// RecordOccupancy exactly once per Insert, after any eviction.
type Recorder interface {
	// RecordHit is called when Get finds the key.
	RecordHit()
	// RecordMiss is called when Get does not find the key.
	RecordMiss()
	// RecordOccupancy is called after each Insert with the live entry count.
	RecordOccupancy(n int)
}

// NoopRecorder is a no-op implementation of Recorder.
// It is the default when no recorder is configured.
type NoopRecorder struct{}

func (NoopRecorder) RecordHit()          {}
func (NoopRecorder) RecordMiss()         {}
func (NoopRecorder) RecordOccupancy(int) {}

// UsageStats provides simple in-memory usage counters.
// Counters accumulate for the lifetime of the recorder; Cache.Flush does not
// reset them.
//
// UsageStats is not synchronized; the cache contract is single-owner.
type UsageStats struct {
	hits      uint64
	misses    uint64
	occupancy int
}

// NewUsageStats creates an empty UsageStats.
func NewUsageStats() *UsageStats {
	return &UsageStats{}
}

// RecordHit implements Recorder.
func (s *UsageStats) RecordHit() {
	s.hits++
}

// RecordMiss implements Recorder.
func (s *UsageStats) RecordMiss() {
	s.misses++
}

// RecordOccupancy implements Recorder.
func (s *UsageStats) RecordOccupancy(n int) {
	s.occupancy = n
}

// Hits returns the cumulative hit count.
func (s *UsageStats) Hits() uint64 {
	return s.hits
}

// Misses returns the cumulative miss count.
func (s *UsageStats) Misses() uint64 {
	return s.misses
}

// Occupancy returns the last-reported live entry count.
func (s *UsageStats) Occupancy() int {
	return s.occupancy
}

// Snapshot returns a copy of the current counters.
func (s *UsageStats) Snapshot() UsageSnapshot {
	return UsageSnapshot{
		Hits:      s.hits,
		Misses:    s.misses,
		Occupancy: s.occupancy,
	}
}

// UsageSnapshot is a point-in-time copy of UsageStats counters.
type UsageSnapshot struct {
	Hits      uint64
	Misses    uint64
	Occupancy int
}
