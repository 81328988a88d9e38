package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Level    int
	Name     string
	Enabled  bool
	LastCall string
}

func newTestConfig() *testConfig {
	return &testConfig{Level: 6, Name: "default"}
}

func withLevel(level int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if level < 0 || level > 9 {
			return errors.New("level out of range")
		}
		c.Level = level
		c.LastCall = "withLevel"

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Name = name
		c.LastCall = "withName"
	})
}

func withEnabled(enabled bool) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.Enabled = enabled
		c.LastCall = "withEnabled"
	})
}

func TestNew(t *testing.T) {
	t.Run("Applies value", func(t *testing.T) {
		c := newTestConfig()
		require.NoError(t, withLevel(9).apply(c))
		require.Equal(t, 9, c.Level)
		require.Equal(t, "withLevel", c.LastCall)
	})

	t.Run("Propagates error", func(t *testing.T) {
		c := newTestConfig()
		require.Error(t, withLevel(10).apply(c))
		require.Equal(t, 6, c.Level)
	})
}

func TestNoError(t *testing.T) {
	c := newTestConfig()
	require.NoError(t, withEnabled(true).apply(c))
	require.True(t, c.Enabled)
	require.Equal(t, "withEnabled", c.LastCall)
}

func TestApply(t *testing.T) {
	t.Run("Applies in order", func(t *testing.T) {
		c := newTestConfig()
		err := Apply(c, withName("first"), withLevel(1), withName("second"))
		require.NoError(t, err)
		require.Equal(t, "second", c.Name)
		require.Equal(t, 1, c.Level)
		require.Equal(t, "withName", c.LastCall)
	})

	t.Run("Stops at first error", func(t *testing.T) {
		c := newTestConfig()
		err := Apply(c, withName("kept"), withLevel(-1), withName("skipped"))
		require.Error(t, err)
		require.Equal(t, "kept", c.Name)
	})

	t.Run("Skips nil options", func(t *testing.T) {
		c := newTestConfig()
		require.NoError(t, Apply[*testConfig](c, nil, withEnabled(true)))
		require.True(t, c.Enabled)
	})

	t.Run("Empty option list", func(t *testing.T) {
		c := newTestConfig()
		require.NoError(t, Apply[*testConfig](c))
		require.Equal(t, newTestConfig(), c)
	})
}

func TestBuild(t *testing.T) {
	t.Run("Defaults only", func(t *testing.T) {
		c, err := Build(newTestConfig)
		require.NoError(t, err)
		require.Equal(t, newTestConfig(), c)
	})

	t.Run("Overrides defaults", func(t *testing.T) {
		c, err := Build(newTestConfig, withLevel(2), withEnabled(true))
		require.NoError(t, err)
		require.Equal(t, 2, c.Level)
		require.Equal(t, "default", c.Name)
		require.True(t, c.Enabled)
	})

	t.Run("Returns zero value on error", func(t *testing.T) {
		c, err := Build(newTestConfig, withLevel(42))
		require.Error(t, err)
		require.Nil(t, c)
	})
}
