package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func mapLookup(
	m map[string]string,
) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestApplyEnv_Overrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(map[string]string{
		EnvResults:   "env-results.json",
		EnvLog:       "run.log",
		EnvMonitor:   ":7070",
		EnvVerbose:   "true",
		EnvNoSummary: "1",
		EnvFilter:    "observable, harness ,,",
	}))

	assert.Equal(t, "env-results.json", cfg.ResultsPath)
	assert.Equal(t, "run.log", cfg.LogPath)
	assert.Equal(t, ":7070", cfg.MonitorAddr)
	assert.True(t, cfg.Verbose)
	assert.False(t, cfg.SummaryLine)
	assert.Equal(
		t, []string{"observable", "harness"}, cfg.Filter,
	)
}

func TestApplyEnv_UnsetLeavesConfig(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(nil))

	assert.Equal(t, "results.json", cfg.ResultsPath)
	assert.True(t, cfg.SummaryLine)
}

func TestApplyEnv_UnparseableBoolIgnored(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(mapLookup(map[string]string{
		EnvVerbose:   "maybe",
		EnvNoSummary: "kinda",
	}))

	assert.False(t, cfg.Verbose)
	assert.True(t, cfg.SummaryLine)
}

func TestApplyOSEnv_ReadsProcessEnvironment(t *testing.T) {
	t.Setenv(EnvResults, "from-process.json")

	cfg := Default()
	cfg.ApplyOSEnv()

	assert.Equal(t, "from-process.json", cfg.ResultsPath)
}
