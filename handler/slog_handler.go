package handler

import (
	"context"
	"log/slog"

	"github.com/viserio/monolog-bridge/core"
)

// SlogHandler adapts a Handler to log/slog.Handler, so the bridge can
// serve as the backend of the standard library's logging front-end.
//
// Per-call record attributes become the record's Context; attributes
// bound earlier via WithAttrs become its Extra, mirroring the split
// between caller-supplied data and data the logger itself carries.
type SlogHandler struct {
	handler Handler
	channel string
	extra   []core.Field
	group   string
}

// NewSlogHandler creates a slog.Handler adapter wrapping the given
// Handler. The channel names the logical stream the records belong to
// and appears bracketed in every rendered line.
func NewSlogHandler(h Handler, channel string) *SlogHandler {
	return &SlogHandler{
		handler: h,
		channel: channel,
	}
}

// Enabled reports whether records at the given level would currently
// be emitted. This is the verbosity gate: it consults the sink's live
// verbosity through the wrapped handler.
func (s *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return s.handler.Accepts(slogLevelToSeverity(level))
}

// Handle converts a slog.Record and routes it through the wrapped handler.
func (s *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	r := core.GetRecord()
	if !record.Time.IsZero() {
		r.Time = record.Time
	}
	r.Level = slogLevelToSeverity(record.Level)
	r.Channel = s.channel
	r.Message = record.Message

	if len(s.extra) > 0 {
		r.Extra = append(r.Extra, s.extra...)
	}

	record.Attrs(func(a slog.Attr) bool {
		r.Context = appendSlogAttr(r.Context, s.group, a)
		return true
	})

	err := s.handler.Handle(r)
	core.PutRecord(r)
	return err
}

// WithAttrs returns a new SlogHandler whose bound attributes carry
// over into every record's Extra data.
func (s *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newExtra := make([]core.Field, len(s.extra), len(s.extra)+len(attrs))
	copy(newExtra, s.extra)
	for _, a := range attrs {
		newExtra = appendSlogAttr(newExtra, s.group, a)
	}
	return &SlogHandler{
		handler: s.handler,
		channel: s.channel,
		extra:   newExtra,
		group:   s.group,
	}
}

// WithGroup returns a new SlogHandler with the given group name.
func (s *SlogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return s
	}
	newGroup := name
	if s.group != "" {
		newGroup = s.group + "." + name
	}
	newExtra := make([]core.Field, len(s.extra))
	copy(newExtra, s.extra)
	return &SlogHandler{
		handler: s.handler,
		channel: s.channel,
		extra:   newExtra,
		group:   newGroup,
	}
}

// slogLevelToSeverity maps slog's sparse level scale onto the RFC 5424
// severities. The four standard levels map directly; levels above
// Error climb the scale in steps of four, matching slog's own spacing.
func slogLevelToSeverity(level slog.Level) core.Severity {
	switch {
	case level >= slog.LevelError+12:
		return core.SeverityEmergency
	case level >= slog.LevelError+8:
		return core.SeverityAlert
	case level >= slog.LevelError+4:
		return core.SeverityCritical
	case level >= slog.LevelError:
		return core.SeverityError
	case level >= slog.LevelWarn:
		return core.SeverityWarning
	case level > slog.LevelInfo:
		return core.SeverityNotice
	case level >= slog.LevelInfo:
		return core.SeverityInfo
	default:
		return core.SeverityDebug
	}
}

// appendSlogAttr converts a slog.Attr to core fields and appends them
// to dst. A group attribute contributes one field per member, with the
// member keys prefixed by the group name; empty groups are elided and
// a group with an empty name inlines its members, following slog's
// conventions.
func appendSlogAttr(dst []core.Field, group string, a slog.Attr) []core.Field {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		prefix := group
		if a.Key != "" {
			prefix = a.Key
			if group != "" {
				prefix = group + "." + a.Key
			}
		}
		for _, member := range a.Value.Group() {
			dst = appendSlogAttr(dst, prefix, member)
		}
		return dst
	}

	return append(dst, slogAttrToField(group, a))
}

// slogAttrToField converts a non-group slog.Attr to a core.Field,
// prepending the group prefix if present.
func slogAttrToField(group string, a slog.Attr) core.Field {
	key := a.Key
	if group != "" {
		key = group + "." + a.Key
	}

	switch a.Value.Kind() {
	case slog.KindString:
		return core.Field{Key: key, Type: core.StringType, Str: a.Value.String()}
	case slog.KindInt64:
		return core.Field{Key: key, Type: core.Int64Type, Int64: a.Value.Int64()}
	case slog.KindFloat64:
		return core.Field{Key: key, Type: core.Float64Type, Float64: a.Value.Float64()}
	case slog.KindBool:
		val := int64(0)
		if a.Value.Bool() {
			val = 1
		}
		return core.Field{Key: key, Type: core.BoolType, Int64: val}
	case slog.KindTime:
		t := a.Value.Time()
		return core.Field{Key: key, Type: core.TimeType, Int64: t.UnixNano()}
	case slog.KindDuration:
		return core.Field{Key: key, Type: core.DurationType, Int64: int64(a.Value.Duration())}
	default:
		return core.Field{Key: key, Type: core.AnyType, Any: a.Value.Any()}
	}
}
