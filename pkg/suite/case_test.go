package suite

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCase_Run_True(t *testing.T) {
	c := NewCase("t", "returns true", func() bool {
		return true
	})
	passed, err := c.Run()
	require.NoError(t, err)
	assert.True(t, passed)
}

func TestCase_Run_False(t *testing.T) {
	c := NewCase("f", "returns false", func() bool {
		return false
	})
	passed, err := c.Run()
	require.NoError(t, err)
	assert.False(t, passed)
}

func TestCase_Run_PanicString(t *testing.T) {
	c := NewCase("p", "panics with string", func() bool {
		panic("boom")
	})
	passed, err := c.Run()
	require.Error(t, err)
	assert.False(t, passed)
	assert.Equal(t, "boom", err.Error())
}

func TestCase_Run_PanicError(t *testing.T) {
	c := NewCase("p", "panics with error", func() bool {
		panic(errors.New("disk on fire"))
	})
	passed, err := c.Run()
	require.Error(t, err)
	assert.False(t, passed)
	assert.Equal(t, "disk on fire", err.Error())
}

func TestCase_Run_PanicUnknownValue(t *testing.T) {
	c := NewCase("p", "panics with int", func() bool {
		panic(42)
	})
	passed, err := c.Run()
	require.Error(t, err)
	assert.False(t, passed)
	assert.Equal(t, "unknown error", err.Error())
}

func TestCase_Run_NilCheckContained(t *testing.T) {
	c := NewCase("nil", "nil check", nil)
	passed, err := c.Run()
	require.Error(t, err)
	assert.False(t, passed)
}

func TestCase_Run_ExecutesExactlyOnce(t *testing.T) {
	calls := 0
	c := NewCase("once", "counts calls", func() bool {
		calls++
		return true
	})
	_, err := c.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCase_Accessors(t *testing.T) {
	c := NewCase("name", "desc", func() bool { return true })
	assert.Equal(t, "name", c.Name())
	assert.Equal(t, "desc", c.Description())
}
