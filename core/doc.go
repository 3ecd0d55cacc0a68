// Package core defines the shared types used across the bridge.
//
// It provides the Severity type on the RFC 5424 scale, the Verbosity
// type describing how chatty a console stream should be, the Record
// type that represents a single log event, and the Field type for
// ordered structured key-value pairs.
//
// Record objects are pooled via sync.Pool to keep the hot path
// allocation-free. Callers get a Record with GetRecord and must
// return it with PutRecord once the handler has consumed it. The pool
// pre-allocates the Context slice with capacity 8, which covers most
// log calls without triggering a slice growth.
//
// Context and Extra are slices of Field rather than maps so that the
// rendered line preserves the order the pairs were attached in. Field
// encodes values into fixed-size numeric fields (Int64, Float64)
// wherever possible so that common types like int, bool, and time.Time
// never escape to the heap. The Any field exists as a fallback for
// arbitrary types but will cause an allocation.
package core
