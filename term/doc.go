// Package term provides the output sink that rendered log lines are
// written to.
//
// An Output wraps an io.Writer with two live properties: the current
// verbosity (how chatty the stream consumer wants it) and whether
// ANSI decoration is wanted. Both can be toggled at any time and each
// write decision reads the current value, so externally changing the
// verbosity affects records that are already in flight.
//
// BufferedOutput defers writes until Flush, which the cli package
// uses to emit everything once at the end of a command run.
package term
