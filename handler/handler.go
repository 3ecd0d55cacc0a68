package handler

import (
	"github.com/viserio/monolog-bridge/core"
)

// Handler defines the interface for log record handlers
type Handler interface {
	// Handle routes one log record
	Handle(record *core.Record) error

	// Accepts reports whether a record of the given severity would be
	// emitted right now. The decision depends on the live verbosity of
	// the underlying sink and must be re-evaluated per record.
	Accepts(severity core.Severity) bool

	// Close closes the handler and releases resources
	Close() error
}
