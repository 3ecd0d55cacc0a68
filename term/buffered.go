package term

import (
	"bytes"
	"sync"

	"github.com/viserio/monolog-bridge/core"
)

// BufferedOutput collects writes in memory and forwards them to the
// wrapped Output in a single Flush. Verbosity and decoration are
// delegated to the wrapped output, so a verbosity toggle on the target
// is seen by everything writing through the buffer.
type BufferedOutput struct {
	mu     sync.Mutex
	buf    bytes.Buffer
	target *Output
}

// NewBufferedOutput creates a buffer in front of target
func NewBufferedOutput(target *Output) *BufferedOutput {
	return &BufferedOutput{target: target}
}

// Verbosity returns the wrapped output's current verbosity
func (b *BufferedOutput) Verbosity() core.Verbosity {
	return b.target.Verbosity()
}

// Decorated reports whether the wrapped output wants ANSI decoration
func (b *BufferedOutput) Decorated() bool {
	return b.target.Decorated()
}

// Write appends one message to the buffer
func (b *BufferedOutput) Write(msg string, newlineAlready bool) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.buf.WriteString(msg)
	if !newlineAlready {
		b.buf.WriteByte('\n')
	}
	return nil
}

// Len returns the number of buffered bytes
func (b *BufferedOutput) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Len()
}

// Flush forwards the buffered content to the wrapped output and
// empties the buffer. Flushing an empty buffer writes nothing.
func (b *BufferedOutput) Flush() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.buf.Len() == 0 {
		return nil
	}
	err := b.target.Write(b.buf.String(), true)
	b.buf.Reset()
	return err
}
