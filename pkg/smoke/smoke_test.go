package smoke

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservableSuite_AllCasesPass(t *testing.T) {
	rep := ObservableSuite().Run()

	assert.True(t, rep.Success)
	assert.Equal(t, rep.Total, rep.Passed)
	for _, c := range rep.Cases {
		assert.True(
			t, c.Passed, "case %s: %s", c.Name, c.Error,
		)
	}
}

func TestHarnessSuite_AllCasesPass(t *testing.T) {
	rep := HarnessSuite().Run()

	assert.True(t, rep.Success)
	assert.Equal(t, rep.Total, rep.Passed)
}

func TestShellSuite_PassesOnPOSIX(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("relies on the POSIX true binary")
	}
	rep := ShellSuite().Run()
	assert.True(t, rep.Success)
}

func TestAll_ReturnsEverySuite(t *testing.T) {
	suites := All()
	require.Len(t, suites, 3)
	assert.Equal(t, "ObservableCell", suites[0].Name())
	assert.Equal(t, "Harness", suites[1].Name())
	assert.Equal(t, "Shell", suites[2].Name())
}
