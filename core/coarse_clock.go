package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseClockOnce sync.Once
	coarseNow       unsafe.Pointer // *time.Time, nil until started
)

// StartCoarseClock starts the background goroutine that caches
// time.Now() every 100ms. The console line layout only shows second
// resolution, so the cached value is indistinguishable from a live
// clock read in the rendered output. Safe to call multiple times; the
// goroutine is started exactly once and runs for the lifetime of the
// process.
func StartCoarseClock() {
	coarseClockOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(100 * time.Millisecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached time.Time value, or the
// live clock when StartCoarseClock has not been called.
func CoarseNow() time.Time {
	p := atomic.LoadPointer(&coarseNow)
	if p == nil {
		return time.Now()
	}
	return *(*time.Time)(p)
}
