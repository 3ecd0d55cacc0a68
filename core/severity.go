package core

import (
	"fmt"
	"strings"
)

// Severity represents the severity of a log record on the RFC 5424 scale.
type Severity int8

const (
	// SeverityDebug for detailed debugging information
	SeverityDebug Severity = iota
	// SeverityInfo for interesting events
	SeverityInfo
	// SeverityNotice for normal but significant events
	SeverityNotice
	// SeverityWarning for exceptional occurrences that are not errors
	SeverityWarning
	// SeverityError for runtime errors that do not require immediate action
	SeverityError
	// SeverityCritical for critical conditions
	SeverityCritical
	// SeverityAlert for conditions that must be acted on immediately
	SeverityAlert
	// SeverityEmergency for an unusable system
	SeverityEmergency
)

// String returns the string representation of the severity
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "DEBUG"
	case SeverityInfo:
		return "INFO"
	case SeverityNotice:
		return "NOTICE"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	case SeverityCritical:
		return "CRITICAL"
	case SeverityAlert:
		return "ALERT"
	case SeverityEmergency:
		return "EMERGENCY"
	default:
		return "UNKNOWN"
	}
}

// ParseSeverity converts a string to a Severity
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return SeverityDebug, nil
	case "INFO":
		return SeverityInfo, nil
	case "NOTICE":
		return SeverityNotice, nil
	case "WARN", "WARNING":
		return SeverityWarning, nil
	case "ERROR":
		return SeverityError, nil
	case "CRITICAL":
		return SeverityCritical, nil
	case "ALERT":
		return SeverityAlert, nil
	case "EMERGENCY":
		return SeverityEmergency, nil
	default:
		return SeverityInfo, fmt.Errorf("unknown severity %q", s)
	}
}

// Verbosity represents how chatty the console output should be.
// It is controlled by the consumer of the output stream, not by the
// code emitting log records.
type Verbosity int8

const (
	// VerbosityQuiet suppresses everything below errors
	VerbosityQuiet Verbosity = iota
	// VerbosityNormal is the default output level
	VerbosityNormal
	// VerbosityVerbose adds notices (-v)
	VerbosityVerbose
	// VerbosityVeryVerbose adds informational records (-vv)
	VerbosityVeryVerbose
	// VerbosityDebug shows everything (-vvv)
	VerbosityDebug
)

// String returns the string representation of the verbosity
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	case VerbosityNormal:
		return "normal"
	case VerbosityVerbose:
		return "verbose"
	case VerbosityVeryVerbose:
		return "very-verbose"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseVerbosity converts a string to a Verbosity
func ParseVerbosity(s string) (Verbosity, error) {
	switch strings.ToLower(s) {
	case "quiet", "q":
		return VerbosityQuiet, nil
	case "normal", "":
		return VerbosityNormal, nil
	case "verbose", "v":
		return VerbosityVerbose, nil
	case "very-verbose", "vv":
		return VerbosityVeryVerbose, nil
	case "debug", "vvv":
		return VerbosityDebug, nil
	default:
		return VerbosityNormal, fmt.Errorf("unknown verbosity %q", s)
	}
}
