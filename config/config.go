package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/viserio/monolog-bridge/core"
	"github.com/viserio/monolog-bridge/handler"
	"github.com/viserio/monolog-bridge/term"
)

// Config is the on-disk representation of the console output settings.
//
//	verbosity: verbose
//	decorated: true
//	thresholds:
//	  quiet: critical
type Config struct {
	// Verbosity names the output verbosity (quiet, normal, verbose,
	// very-verbose, debug). Empty means normal.
	Verbosity string `yaml:"verbosity"`
	// Decorated forces ANSI decoration on or off; unset keeps the
	// sink's terminal detection.
	Decorated *bool `yaml:"decorated"`
	// Thresholds overrides the minimum severity per verbosity, both
	// sides by name. Verbosities not named keep their defaults.
	Thresholds map[string]string `yaml:"thresholds"`
}

// Load reads and parses a YAML config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if _, err := cfg.VerbosityLevel(); err != nil {
		return nil, err
	}
	if _, err := cfg.VerbosityMap(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// VerbosityLevel resolves the configured verbosity name
func (c *Config) VerbosityLevel() (core.Verbosity, error) {
	return core.ParseVerbosity(c.Verbosity)
}

// VerbosityMap resolves the configured threshold overrides
func (c *Config) VerbosityMap() (handler.VerbosityMap, error) {
	if len(c.Thresholds) == 0 {
		return nil, nil
	}
	m := make(handler.VerbosityMap, len(c.Thresholds))
	for vName, sName := range c.Thresholds {
		v, err := core.ParseVerbosity(vName)
		if err != nil {
			return nil, fmt.Errorf("thresholds: %w", err)
		}
		s, err := core.ParseSeverity(sName)
		if err != nil {
			return nil, fmt.Errorf("thresholds[%s]: %w", vName, err)
		}
		m[v] = s
	}
	return m, nil
}

// Apply pushes the configured verbosity and decoration onto an output.
// The output's consumers see the change on their next write decision.
func (c *Config) Apply(out *term.Output) error {
	v, err := c.VerbosityLevel()
	if err != nil {
		return err
	}
	out.SetVerbosity(v)
	if c.Decorated != nil {
		out.SetDecorated(*c.Decorated)
	}
	return nil
}
