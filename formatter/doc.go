// Package formatter renders log records into terminal lines.
//
// ConsoleFormatter produces one fixed-layout line per record: the time
// of day, the severity name padded to a fixed column, the bracketed
// channel, the message, and the record's context and extra data as
// JSON. Empty collections render as the token [] instead of being
// dropped, so every line has the same shape.
//
// Two presentation flags exist. Decorated wraps the level name and
// channel in ANSI color by severity; it never changes the order of the
// fields. Detailed moves the context and extra serializations onto
// their own lines below the message, which is what a debug-verbosity
// stream shows.
//
// Formatting is deterministic: the same record and flags always yield
// byte-identical output. Buffers come from a shared sync.Pool.
package formatter
