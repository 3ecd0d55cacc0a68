// Package config loads console output settings from a YAML file and
// applies them to a term.Output, optionally re-applying on file change
// so the verbosity of a running command can be toggled from outside.
package config
