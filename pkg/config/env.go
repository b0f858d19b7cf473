package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names recognized by ApplyEnv. Values
// override whatever the config file provided.
const (
	EnvResults   = "LIGHTTEST_RESULTS"
	EnvAggregate = "LIGHTTEST_AGGREGATE"
	EnvLog       = "LIGHTTEST_LOG"
	EnvMonitor   = "LIGHTTEST_MONITOR"
	EnvVerbose   = "LIGHTTEST_VERBOSE"
	EnvNoSummary = "LIGHTTEST_NO_SUMMARY"
	EnvFilter    = "LIGHTTEST_FILTER"
)

// ApplyEnv overrides config fields from environment variables
// using the given lookup. Boolean variables accept the forms
// strconv.ParseBool accepts; unparseable values are ignored.
func (c *RunConfig) ApplyEnv(
	lookup func(string) (string, bool),
) {
	if v, ok := lookup(EnvResults); ok {
		c.ResultsPath = v
	}
	if v, ok := lookup(EnvAggregate); ok {
		c.AggregatePath = v
	}
	if v, ok := lookup(EnvLog); ok {
		c.LogPath = v
	}
	if v, ok := lookup(EnvMonitor); ok {
		c.MonitorAddr = v
	}
	if v, ok := lookup(EnvVerbose); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Verbose = b
		}
	}
	if v, ok := lookup(EnvNoSummary); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			c.SummaryLine = !b
		}
	}
	if v, ok := lookup(EnvFilter); ok {
		c.Filter = splitFilter(v)
	}
}

// ApplyOSEnv applies overrides from the process environment.
func (c *RunConfig) ApplyOSEnv() {
	c.ApplyEnv(os.LookupEnv)
}

// splitFilter parses a comma-separated suite name list,
// trimming whitespace and dropping empty entries.
func splitFilter(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
