package config

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigAccessors(t *testing.T) {
	cfg := New(Test{}, "my_key", "my_secret")

	assert.Equal(t, Test{}, cfg.Environment())
	assert.Equal(t, "test", cfg.EnvironmentTag())
	assert.Equal(t, "my_key", cfg.Key())
	assert.Equal(t, "my_secret", cfg.ExposeSecret())
}

func TestConfigSetters(t *testing.T) {
	cfg := New(Test{}, "key", "password")

	cfg.SetEnvironment(Prod{})
	assert.Equal(t, "prod", cfg.EnvironmentTag())
	assert.Equal(t, "fps.atlasground.com", cfg.Environment().FPSHost())

	cfg.SetKey("top secret")
	assert.Equal(t, "top secret", cfg.Key())

	cfg.SetSecret("top secret")
	assert.Equal(t, "top secret", cfg.ExposeSecret())
}

func TestConfigEquality(t *testing.T) {
	t.Run("equal when all three fields match", func(t *testing.T) {
		assert.True(t, New(Prod{}, "k1", "s1").Equal(New(Prod{}, "k1", "s1")))
	})

	t.Run("unequal on differing secret only", func(t *testing.T) {
		assert.False(t, New(Prod{}, "k1", "s1").Equal(New(Prod{}, "k1", "s2")))
	})

	t.Run("unequal on differing key only", func(t *testing.T) {
		assert.False(t, New(Prod{}, "k1", "s1").Equal(New(Prod{}, "k2", "s1")))
	})

	t.Run("unequal on differing environment tag", func(t *testing.T) {
		assert.False(t, New(Prod{}, "k1", "s1").Equal(New(Test{}, "k1", "s1")))
	})

	t.Run("environments compare by tag only", func(t *testing.T) {
		// prodTwinEnvironment has a different host and entrypoint but the
		// same tag, so the Configs compare equal.
		assert.True(t, New(Prod{}, "k1", "s1").Equal(New(prodTwinEnvironment{}, "k1", "s1")))
	})

	t.Run("SetSecret flips equality and ExposeSecret", func(t *testing.T) {
		a := New(Prod{}, "k1", "s1")
		b := New(Prod{}, "k1", "s1")
		require.True(t, a.Equal(b))

		b.SetSecret("s2")
		assert.False(t, a.Equal(b))
		assert.Equal(t, "s2", b.ExposeSecret())

		b.SetSecret("s1")
		assert.True(t, a.Equal(b))
	})
}

func TestConfigFormattingNeverShowsSecret(t *testing.T) {
	cfg := New(Prod{}, "my_key", "hunter2")

	for _, verb := range []string{"%v", "%+v", "%s"} {
		formatted := fmt.Sprintf(verb, cfg)
		assert.NotContains(t, formatted, "hunter2", "verb %s", verb)
		assert.Contains(t, formatted, "prod")
		assert.Contains(t, formatted, "my_key")
	}

	assert.NotContains(t, fmt.Sprintf("%v %+v", &cfg, &cfg), "hunter2")
}
