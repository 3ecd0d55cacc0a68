package formatter

import (
	"bytes"

	"github.com/fatih/color"

	"github.com/viserio/monolog-bridge/core"
)

// levelNameWidth is the column the bracketed channel starts at; level
// names shorter than this are right-padded, longer ones are kept whole.
const levelNameWidth = 9

// ConsoleFormatter renders a record as a single fixed-layout terminal
// line:
//
//	16:21:54 INFO      [app] My info message [] []
//
// Context and extra data are appended as JSON objects, or as the
// literal token [] when empty so the line shape stays uniform. In
// detailed mode each of the two collections moves to its own line
// below the message.
type ConsoleFormatter struct {
	Config
}

// NewConsoleFormatter creates a new console formatter
func NewConsoleFormatter(cfg Config) *ConsoleFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = "15:04:05"
	}
	return &ConsoleFormatter{Config: cfg}
}

// severityColors maps severities to their terminal decoration. Color
// output is forced on each entry so that a decorated formatter writes
// markup regardless of whether the process is attached to a TTY; the
// decoration decision belongs to the output sink, not to this table.
var severityColors = func() map[core.Severity]*color.Color {
	m := map[core.Severity]*color.Color{
		core.SeverityDebug:     color.New(color.FgHiBlack),
		core.SeverityInfo:      color.New(color.FgGreen),
		core.SeverityNotice:    color.New(color.FgCyan),
		core.SeverityWarning:   color.New(color.FgYellow),
		core.SeverityError:     color.New(color.FgRed),
		core.SeverityCritical:  color.New(color.FgRed, color.Bold),
		core.SeverityAlert:     color.New(color.FgHiRed, color.Bold),
		core.SeverityEmergency: color.New(color.BgRed, color.FgWhite),
	}
	for _, c := range m {
		c.EnableColor()
	}
	return m
}()

var channelColor = func() *color.Color {
	c := color.New(color.FgMagenta)
	c.EnableColor()
	return c
}()

// Format formats a record as a console line
func (f *ConsoleFormatter) Format(record *core.Record) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(record, buf)

	// Copy buffer content to return
	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatRecord formats a record into the given buffer (implements BufferFormatter).
func (f *ConsoleFormatter) FormatRecord(record *core.Record, buf *bytes.Buffer) {
	// Timestamp - use AppendFormat to avoid string allocation
	buf.Write(record.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteByte(' ')

	// Level name, padded to the channel column
	name := record.Level.String()
	if f.Decorated {
		buf.WriteString(colorFor(record.Level).Sprint(name))
	} else {
		buf.WriteString(name)
	}
	for i := len(name); i < levelNameWidth; i++ {
		buf.WriteByte(' ')
	}
	buf.WriteByte(' ')

	// Channel
	buf.WriteByte('[')
	if f.Decorated {
		buf.WriteString(channelColor.Sprint(record.Channel))
	} else {
		buf.WriteString(record.Channel)
	}
	buf.WriteByte(']')
	buf.WriteByte(' ')

	// Message
	buf.WriteString(record.Message)

	// Context and extra data, always rendered so the shape is uniform
	if f.Detailed {
		buf.WriteByte('\n')
		appendFieldsJSON(buf, record.Context)
		buf.WriteByte('\n')
		appendFieldsJSON(buf, record.Extra)
	} else {
		buf.WriteByte(' ')
		appendFieldsJSON(buf, record.Context)
		buf.WriteByte(' ')
		appendFieldsJSON(buf, record.Extra)
	}
}

func colorFor(s core.Severity) *color.Color {
	if c, ok := severityColors[s]; ok {
		return c
	}
	return severityColors[core.SeverityError]
}
