// Package handler routes log records to a terminal sink.
//
// The central decision is the verbosity gate: a VerbosityMap says, per
// verbosity of the output stream, which minimum severity a record
// needs. The defaults are
//
//	quiet         ERROR
//	normal        WARNING
//	verbose       NOTICE
//	very-verbose  INFO
//	debug         DEBUG
//
// and individual verbosities can be overridden at construction without
// touching the rest of the table. The gate reads the sink's verbosity
// on every record, so toggling the stream mid-run changes what gets
// through immediately. A handler without a sink accepts nothing; that
// is a valid quiet state, not an error.
//
// ConsoleHandler renders accepted records with the formatter package,
// picks the detailed layout when the stream is at debug verbosity,
// optionally splits Error-and-above onto a second sink, and can
// throttle output with a rate.Limiter. Counters for written, filtered
// and throttled records are kept in Stats.
//
// SlogHandler adapts any Handler to log/slog.Handler so the bridge
// plugs in as a drop-in backend for the standard library.
package handler
