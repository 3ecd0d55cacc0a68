package handler

import (
	"golang.org/x/time/rate"

	"github.com/viserio/monolog-bridge/core"
	"github.com/viserio/monolog-bridge/formatter"
	"github.com/viserio/monolog-bridge/term"
)

// ConsoleHandler routes log records to a terminal sink, gating each
// record against the sink's live verbosity and rendering accepted
// records as console lines.
type ConsoleHandler struct {
	out        term.Sink
	errOut     term.Sink
	custom     formatter.Formatter
	thresholds VerbosityMap
	limiter    *rate.Limiter
	stats      *Stats

	// console formatters indexed by [detailed][decorated]; built once
	// so Handle never allocates a formatter
	formatters [2][2]*formatter.ConsoleFormatter
}

// ConsoleConfig holds configuration for the console handler
type ConsoleConfig struct {
	// Output is the sink lines are written to. A nil output puts the
	// handler into the no-output state where every record is rejected.
	Output term.Sink
	// ErrOutput, when set, receives records at Error severity and
	// above instead of Output (the usual stderr split).
	ErrOutput term.Sink
	// Formatter overrides the built-in console formatter
	Formatter formatter.Formatter
	// Overrides replaces the default minimum severity for the
	// verbosities it names; all others keep their defaults.
	Overrides VerbosityMap
	// TimestampFormat for the built-in formatter (default "15:04:05")
	TimestampFormat string
	// Limiter, when set, throttles output; records over the limit are
	// counted and dropped.
	Limiter *rate.Limiter
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	h := &ConsoleHandler{
		out:        cfg.Output,
		errOut:     cfg.ErrOutput,
		custom:     cfg.Formatter,
		thresholds: cfg.Overrides.clone(),
		limiter:    cfg.Limiter,
		stats:      NewStats(),
	}

	if h.custom == nil {
		for detailed := 0; detailed < 2; detailed++ {
			for decorated := 0; decorated < 2; decorated++ {
				h.formatters[detailed][decorated] = formatter.NewConsoleFormatter(formatter.Config{
					TimestampFormat: cfg.TimestampFormat,
					Detailed:        detailed == 1,
					Decorated:       decorated == 1,
				})
			}
		}
	}

	return h
}

// Accepts reports whether a record of the given severity would be
// emitted right now. The sink's verbosity is read on every call, so an
// externally toggled verbosity takes effect without reconstructing the
// handler. With no sink configured nothing is ever accepted.
func (h *ConsoleHandler) Accepts(severity core.Severity) bool {
	if h.out == nil {
		return false
	}
	return h.thresholds.Accepts(h.out.Verbosity(), severity)
}

// Handle gates, formats and writes one record
func (h *ConsoleHandler) Handle(record *core.Record) error {
	if !h.Accepts(record.Level) {
		if h.out != nil {
			h.stats.IncrementFiltered()
		}
		return nil
	}

	if h.limiter != nil && !h.limiter.Allow() {
		h.stats.IncrementThrottled()
		return nil
	}

	sink := h.out
	if h.errOut != nil && record.Level >= core.SeverityError {
		sink = h.errOut
	}

	data, err := h.pickFormatter(sink).Format(record)
	if err != nil {
		return err
	}

	if err := sink.Write(string(data), false); err != nil {
		return err
	}
	h.stats.IncrementWritten()
	return nil
}

// pickFormatter matches the rendering to the sink's current state:
// debug verbosity gets the detailed layout, a decorated sink gets
// color.
func (h *ConsoleHandler) pickFormatter(sink term.Sink) formatter.Formatter {
	if h.custom != nil {
		return h.custom
	}

	detailed := 0
	if h.out.Verbosity() == core.VerbosityDebug {
		detailed = 1
	}
	decorated := 0
	if sink.Decorated() {
		decorated = 1
	}
	return h.formatters[detailed][decorated]
}

// Stats returns a snapshot of the current statistics
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close closes the handler
func (h *ConsoleHandler) Close() error {
	return nil
}
