package term

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	"github.com/viserio/monolog-bridge/core"
)

// Sink is the destination for rendered log lines. Verbosity and
// decoration are read on every write decision, never cached, so a
// sink whose verbosity is toggled mid-run changes behavior
// immediately.
type Sink interface {
	// Write emits one message. When newlineAlready is false a
	// trailing newline is appended.
	Write(msg string, newlineAlready bool) error

	// Verbosity returns the sink's current verbosity
	Verbosity() core.Verbosity

	// Decorated reports whether the sink wants ANSI decoration
	Decorated() bool
}

// Output is a verbosity-aware writer around an io.Writer, typically
// stdout or stderr.
type Output struct {
	mu        sync.Mutex
	w         io.Writer
	verbosity core.Verbosity
	decorated bool
}

// NewOutput creates an Output with the given verbosity. Decoration
// defaults to whether the writer is an interactive terminal.
func NewOutput(w io.Writer, verbosity core.Verbosity) *Output {
	if w == nil {
		w = os.Stdout
	}
	return &Output{
		w:         w,
		verbosity: verbosity,
		decorated: IsTerminal(w),
	}
}

// Verbosity returns the current verbosity of the output
func (o *Output) Verbosity() core.Verbosity {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.verbosity
}

// SetVerbosity changes the verbosity of the output. The change is
// visible to anything holding the output on its next write decision.
func (o *Output) SetVerbosity(v core.Verbosity) {
	o.mu.Lock()
	o.verbosity = v
	o.mu.Unlock()
}

// Decorated reports whether ANSI decoration is enabled
func (o *Output) Decorated() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.decorated
}

// SetDecorated enables or disables ANSI decoration
func (o *Output) SetDecorated(decorated bool) {
	o.mu.Lock()
	o.decorated = decorated
	o.mu.Unlock()
}

// IsQuiet reports whether the verbosity is Quiet
func (o *Output) IsQuiet() bool { return o.Verbosity() == core.VerbosityQuiet }

// IsVerbose reports whether the verbosity is Verbose or above
func (o *Output) IsVerbose() bool { return o.Verbosity() >= core.VerbosityVerbose }

// IsVeryVerbose reports whether the verbosity is VeryVerbose or above
func (o *Output) IsVeryVerbose() bool { return o.Verbosity() >= core.VerbosityVeryVerbose }

// IsDebug reports whether the verbosity is Debug
func (o *Output) IsDebug() bool { return o.Verbosity() == core.VerbosityDebug }

// Write emits one message to the underlying writer
func (o *Output) Write(msg string, newlineAlready bool) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, err := io.WriteString(o.w, msg); err != nil {
		return err
	}
	if !newlineAlready {
		if _, err := io.WriteString(o.w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// Writer returns the underlying io.Writer
func (o *Output) Writer() io.Writer {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w
}

// IsTerminal reports whether the writer is an interactive terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
