// Package cli wires the console bridge into a cobra command tree.
//
// Setup hooks the two ends of the command lifecycle: at command start
// it builds the verbosity-aware sinks on the command's streams and
// installs the bridge as the slog default logger; at command end it
// flushes buffered output once and restores the previous logger.
// Everything logging through slog while the command runs, no matter
// when it was registered, goes through the same gate and formatter.
package cli
