// Package config holds runtime configuration for a harness
// run, loadable from YAML or JSON files with environment
// overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunConfig configures one harness run.
type RunConfig struct {
	// ResultsPath is where the report stream is written.
	// Empty or "-" means stdout.
	ResultsPath string `json:"results_path" yaml:"results_path"`

	// AggregatePath, when set, receives a single aggregate
	// JSON document for the whole run.
	AggregatePath string `json:"aggregate_path" yaml:"aggregate_path"`

	// Pretty indents the aggregate document.
	Pretty bool `json:"pretty" yaml:"pretty"`

	// SummaryLine controls the trailing "Summary: ..." line
	// after the report stream.
	SummaryLine bool `json:"summary_line" yaml:"summary_line"`

	// Verbose enables debug-level console logging.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// LogPath, when set, receives JSON Lines run logs in
	// addition to console output.
	LogPath string `json:"log_path" yaml:"log_path"`

	// MonitorAddr, when set, serves the live monitoring
	// endpoints on this address (e.g. ":8080").
	MonitorAddr string `json:"monitor_addr" yaml:"monitor_addr"`

	// Filter is an allowlist of suite names; empty means run
	// everything.
	Filter []string `json:"filter" yaml:"filter"`
}

// Default returns the configuration used when no file or flags
// override it.
func Default() *RunConfig {
	return &RunConfig{
		ResultsPath: "results.json",
		SummaryLine: true,
	}
}

// Load reads a RunConfig from a YAML or JSON file, layered on
// top of the defaults: keys absent from the file keep their
// default values.
func Load(path string) (*RunConfig, error) {
	if ext := strings.ToLower(
		filepath.Ext(path),
	); ext != ".yaml" && ext != ".yml" && ext != ".json" {
		return nil, fmt.Errorf(
			"config %s: unsupported extension %q",
			path, ext,
		)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(
			"read config %s: %w", path, err,
		)
	}

	cfg := Default()
	// yaml.v3 parses JSON as well: JSON is a YAML subset.
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(
			"parse config %s: %w", path, err,
		)
	}

	return cfg, nil
}

// Allows reports whether the filter admits the given suite
// name. An empty filter admits everything.
func (c *RunConfig) Allows(name string) bool {
	if len(c.Filter) == 0 {
		return true
	}
	for _, f := range c.Filter {
		if f == name {
			return true
		}
	}
	return false
}
