package formatter

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/valyala/fastjson"

	"github.com/viserio/monolog-bridge/core"
)

func infoRecord() *core.Record {
	return &core.Record{
		Time:    time.Date(2022, 6, 9, 16, 21, 54, 0, time.UTC),
		Level:   core.SeverityInfo,
		Channel: "app",
		Message: "My info message",
	}
}

func TestConsoleFormatter_EmptyContextAndExtra(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	result, err := f.Format(infoRecord())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "16:21:54 INFO      [app] My info message [] []"
	if got := string(result); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_Detailed(t *testing.T) {
	f := NewConsoleFormatter(Config{Detailed: true})

	result, err := f.Format(infoRecord())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := "16:21:54 INFO      [app] My info message\n[]\n[]"
	if got := string(result); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestConsoleFormatter_LevelPadding(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	tests := []struct {
		level core.Severity
		// column the '[' must land on; EMERGENCY is wider than the
		// pad column and must not be truncated
		prefix string
	}{
		{core.SeverityDebug, "16:21:54 DEBUG     ["},
		{core.SeverityNotice, "16:21:54 NOTICE    ["},
		{core.SeverityWarning, "16:21:54 WARNING   ["},
		{core.SeverityCritical, "16:21:54 CRITICAL  ["},
		{core.SeverityEmergency, "16:21:54 EMERGENCY ["},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			r := infoRecord()
			r.Level = tt.level
			result, err := f.Format(r)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if !strings.HasPrefix(string(result), tt.prefix) {
				t.Errorf("Format() = %q, want prefix %q", result, tt.prefix)
			}
		})
	}
}

func TestConsoleFormatter_ContextAndExtraJSON(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	r := infoRecord()
	r.Context = []core.Field{
		core.String("user", "anna"),
		core.Int("attempt", 3),
	}
	r.Extra = []core.Field{
		core.Bool("cached", true),
	}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	want := `16:21:54 INFO      [app] My info message {"user":"anna","attempt":3} {"cached":true}`
	if got := string(result); got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}

	// The serialized collections must be valid JSON
	line := string(result)
	start := strings.Index(line, "{")
	end := strings.Index(line, "} {") + 1
	v, err := fastjson.Parse(line[start:end])
	if err != nil {
		t.Fatalf("context is not valid JSON: %v", err)
	}
	if got := string(v.GetStringBytes("user")); got != "anna" {
		t.Errorf("context user = %q, want %q", got, "anna")
	}
	if got := v.GetInt("attempt"); got != 3 {
		t.Errorf("context attempt = %d, want 3", got)
	}
}

func TestConsoleFormatter_DetailedNonEmpty(t *testing.T) {
	f := NewConsoleFormatter(Config{Detailed: true})

	r := infoRecord()
	r.Context = []core.Field{core.String("k", "v")}
	r.Extra = []core.Field{core.Int("n", 1)}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(string(result), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d: %q", len(lines), result)
	}
	if lines[1] != `{"k":"v"}` {
		t.Errorf("context line = %q", lines[1])
	}
	if lines[2] != `{"n":1}` {
		t.Errorf("extra line = %q", lines[2])
	}
}

func TestConsoleFormatter_JSONEscaping(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	r := infoRecord()
	r.Context = []core.Field{core.String("path", "a\"b\\c\nd")}

	result, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	if !strings.Contains(string(result), `{"path":"a\"b\\c\nd"}`) {
		t.Errorf("Expected escaped context, got: %s", result)
	}
}

func TestConsoleFormatter_Decorated(t *testing.T) {
	f := NewConsoleFormatter(Config{Decorated: true})

	result, err := f.Format(infoRecord())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := string(result)
	if !strings.Contains(output, "\x1b[32mINFO\x1b[0m") {
		t.Errorf("Expected green level name, got: %q", output)
	}
	if !strings.Contains(output, "[\x1b[35mapp\x1b[0m]") {
		t.Errorf("Expected colored channel, got: %q", output)
	}
	// Field order is untouched: level markup comes before the channel
	if strings.Index(output, "INFO") > strings.Index(output, "app") {
		t.Errorf("Decoration reordered fields: %q", output)
	}
}

func TestConsoleFormatter_Deterministic(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	r := infoRecord()
	r.Context = []core.Field{core.String("a", "1"), core.String("b", "2")}

	first, err := f.Format(r)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := f.Format(r)
		if err != nil {
			t.Fatalf("Format() error = %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("Format() not deterministic: %q vs %q", first, again)
		}
	}
}

func TestConsoleFormatter_FormatRecord(t *testing.T) {
	f := NewConsoleFormatter(Config{})

	var buf bytes.Buffer
	f.FormatRecord(infoRecord(), &buf)

	want := "16:21:54 INFO      [app] My info message [] []"
	if got := buf.String(); got != want {
		t.Errorf("FormatRecord() = %q, want %q", got, want)
	}
}

func BenchmarkConsoleFormatter(b *testing.B) {
	f := NewConsoleFormatter(Config{})
	r := infoRecord()
	r.Context = []core.Field{
		core.String("key1", "value1"),
		core.Int("key2", 42),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(r)
	}
}

func BenchmarkConsoleFormatterDetailed(b *testing.B) {
	f := NewConsoleFormatter(Config{Detailed: true})
	r := infoRecord()
	r.Context = []core.Field{
		core.String("key1", "value1"),
		core.Int("key2", 42),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(r)
	}
}
