package core

import (
	"sync"
	"time"
)

// Record represents a single log event routed through the bridge
type Record struct {
	Time    time.Time
	Level   Severity
	Channel string
	Message string
	// Context carries per-call data, Extra carries data attached by
	// the emitting logger itself. Both keep insertion order.
	Context []Field
	Extra   []Field
}

// recordPool is a pool of Record objects to reduce allocations
var recordPool = sync.Pool{
	New: func() interface{} {
		return &Record{
			Context: make([]Field, 0, 8), // Pre-allocate for 8 fields
			Extra:   make([]Field, 0, 4),
		}
	},
}

// GetRecord retrieves a Record from the pool, stamped with the coarse clock
func GetRecord() *Record {
	r := recordPool.Get().(*Record)
	r.Time = CoarseNow()
	r.Context = r.Context[:0]
	r.Extra = r.Extra[:0]
	return r
}

// PutRecord returns a Record to the pool
func PutRecord(r *Record) {
	if r == nil {
		return
	}
	// Re-slice to zero length; GC handles reference cleanup
	r.Context = r.Context[:0]
	r.Extra = r.Extra[:0]
	r.Channel = ""
	r.Message = ""
	recordPool.Put(r)
}
