package benchmark

import (
	"github.com/viserio/monolog-bridge/core"
	"github.com/viserio/monolog-bridge/handler"
)

// noopHandler accepts everything and renders nothing, isolating the
// cost of the slog adapter itself.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(r *core.Record) error {
	_ = len(r.Message)
	return nil
}

func (h *noopHandler) Accepts(core.Severity) bool {
	return true
}

func (h *noopHandler) Close() error {
	return nil
}
