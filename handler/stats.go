package handler

import (
	"sync/atomic"
)

// Stats tracks handler counters
type Stats struct {
	// WrittenTotal counts records rendered and written to the sink
	WrittenTotal uint64
	// FilteredTotal counts records rejected by the verbosity gate
	FilteredTotal uint64
	// ThrottledTotal counts records dropped by the rate limiter
	ThrottledTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementWritten atomically increments the written counter
func (s *Stats) IncrementWritten() {
	atomic.AddUint64(&s.WrittenTotal, 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementThrottled atomically increments the throttled counter
func (s *Stats) IncrementThrottled() {
	atomic.AddUint64(&s.ThrottledTotal, 1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.WrittenTotal, 0)
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.ThrottledTotal, 0)
}

// Snapshot is a point-in-time copy of the counters
type Snapshot struct {
	WrittenTotal   uint64
	FilteredTotal  uint64
	ThrottledTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		WrittenTotal:   atomic.LoadUint64(&s.WrittenTotal),
		FilteredTotal:  atomic.LoadUint64(&s.FilteredTotal),
		ThrottledTotal: atomic.LoadUint64(&s.ThrottledTotal),
	}
}
