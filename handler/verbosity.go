package handler

import (
	"github.com/viserio/monolog-bridge/core"
)

// VerbosityMap maps a verbosity to the minimum severity a record needs
// to be emitted at that verbosity. A nil or partial map falls back to
// the built-in defaults for every verbosity it does not name.
type VerbosityMap map[core.Verbosity]core.Severity

// defaultThresholds is the built-in policy table: the quieter the
// stream, the higher a record's severity must be.
var defaultThresholds = [...]core.Severity{
	core.VerbosityQuiet:       core.SeverityError,
	core.VerbosityNormal:      core.SeverityWarning,
	core.VerbosityVerbose:     core.SeverityNotice,
	core.VerbosityVeryVerbose: core.SeverityInfo,
	core.VerbosityDebug:       core.SeverityDebug,
}

// DefaultVerbosityMap returns the built-in thresholds as an explicit map
func DefaultVerbosityMap() VerbosityMap {
	m := make(VerbosityMap, len(defaultThresholds))
	for v, s := range defaultThresholds {
		m[core.Verbosity(v)] = s
	}
	return m
}

// Threshold resolves the minimum severity for a verbosity: an explicit
// entry wins, everything else uses the built-in default.
func (m VerbosityMap) Threshold(v core.Verbosity) core.Severity {
	if t, ok := m[v]; ok {
		return t
	}
	if int(v) >= 0 && int(v) < len(defaultThresholds) {
		return defaultThresholds[v]
	}
	return core.SeverityError
}

// Accepts reports whether a record of the given severity passes the
// threshold at the given verbosity.
func (m VerbosityMap) Accepts(v core.Verbosity, severity core.Severity) bool {
	return severity >= m.Threshold(v)
}

// clone copies the map so a handler's thresholds cannot change after
// construction.
func (m VerbosityMap) clone() VerbosityMap {
	if len(m) == 0 {
		return nil
	}
	out := make(VerbosityMap, len(m))
	for v, s := range m {
		out[v] = s
	}
	return out
}
