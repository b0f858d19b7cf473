package suite

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("relies on POSIX true/false binaries")
	}
}

func TestShellCase_ExitZeroPasses(t *testing.T) {
	skipOnWindows(t)

	c := NewShellCase("ok", "exit 0", "true")
	passed, err := c.Run()
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestShellCase_NonZeroExitFails(t *testing.T) {
	skipOnWindows(t)

	c := NewShellCase("bad", "exit 1", "false")
	passed, err := c.Run()
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestShellCase_MissingCommandIsError(t *testing.T) {
	c := NewShellCase(
		"missing", "no such binary",
		"lighttest-no-such-command-zz",
	)
	passed, err := c.Run()
	require.Error(t, err)
	assert.False(t, passed)
}

func TestShellCaseDir_RunsInWorkDir(t *testing.T) {
	skipOnWindows(t)

	dir := t.TempDir()
	c := NewShellCaseDir(
		"ls", "list temp dir", dir, "ls", ".",
	)
	passed, err := c.Run()
	require.NoError(t, err)
	assert.True(t, passed)
}
