package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	depth int
	name  string
}

func withDepth(n int) Option[*testConfig] {
	return New(func(c *testConfig) error {
		if n <= 0 {
			return errors.New("depth must be positive")
		}
		c.depth = n

		return nil
	})
}

func withName(name string) Option[*testConfig] {
	return NoError(func(c *testConfig) {
		c.name = name
	})
}

func TestApply(t *testing.T) {
	t.Run("applies in order", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withDepth(3), withName("a"), withName("b"))
		require.NoError(t, err)
		require.Equal(t, 3, cfg.depth)
		require.Equal(t, "b", cfg.name)
	})

	t.Run("stops at first error", func(t *testing.T) {
		cfg := &testConfig{}
		err := Apply(cfg, withName("a"), withDepth(0), withName("b"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "option 1")
		require.Equal(t, "a", cfg.name)
	})

	t.Run("skips nil", func(t *testing.T) {
		cfg := &testConfig{}
		require.NoError(t, Apply(cfg, nil, withName("x")))
		require.Equal(t, "x", cfg.name)
	})
}
