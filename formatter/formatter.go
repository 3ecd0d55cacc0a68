package formatter

import (
	"bytes"
	"sync"

	"github.com/viserio/monolog-bridge/core"
)

// Formatter defines the interface for log record formatters.
//
// Formatted output never carries a trailing newline; the output sink
// decides whether a newline is appended when the line is written.
type Formatter interface {
	// Format formats a log record into bytes
	Format(record *core.Record) ([]byte, error)
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a log record into the given buffer.
	FormatRecord(record *core.Record, buf *bytes.Buffer)
}

// Config holds common formatter configuration
type Config struct {
	// TimestampFormat specifies the time layout (empty for "15:04:05")
	TimestampFormat string
	// Decorated wraps the level name and channel in ANSI color
	Decorated bool
	// Detailed puts context and extra data on their own lines below
	// the message instead of appending them inline
	Detailed bool
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
