// Package config holds the validated, environment-aware configuration used
// when creating a Freedom API client.
//
// A Config pairs an ATLAS environment with the key and secret used to
// authenticate against it. Configs are assembled either from explicit values
// or from the ATLAS_ENV, ATLAS_KEY, and ATLAS_SECRET environment variables,
// and the secret is held in a Secret wrapper so that it can never leak
// through logging or default formatting.
package config

import (
	"fmt"

	"github.com/atlasground/freedom-config/logging"
)

// Environment variable names read by the ConfigBuilder loaders.
const (
	// EnvironmentEnvVar names the variable holding the ATLAS environment tag.
	EnvironmentEnvVar = "ATLAS_ENV"

	// KeyEnvVar names the variable holding the ATLAS key.
	KeyEnvVar = "ATLAS_KEY"

	// SecretEnvVar names the variable holding the ATLAS secret.
	SecretEnvVar = "ATLAS_SECRET"
)

// DefaultLoggers is a logging configuration suitable for applications that
// want loader diagnostics on standard output. Builders are silent unless
// SetLoggers is called.
var DefaultLoggers = logging.MakeDefaultLoggers()

// Config is the configuration object for Freedom, used when creating a
// Freedom API client.
//
// A Config is complete by construction: it can only be produced by New or by
// a successful ConfigBuilder.Build, both of which require all three fields.
// The setters replace fields wholesale and never validate.
//
// A Config is safe for concurrent reads. Calls to the setters on a shared
// Config must be serialized by the caller. The environment handle is an
// immutable shared value, so copying a Config is cheap and never re-resolves
// environment state.
type Config struct {
	environment Environment
	key         string
	secret      Secret[string]
}

// New constructs a Config from an environment, key, and secret.
//
//	cfg := config.New(config.Test{}, "my_key", "my_secret")
func New(environment Environment, key, secret string) Config {
	return Config{
		environment: environment,
		key:         key,
		secret:      NewSecret(secret),
	}
}

// Builder returns an empty ConfigBuilder.
//
//	cfg, err := config.Builder().
//		SetEnvironment(config.Test{}).
//		SetKey("my_key").
//		SetSecret("my_secret").
//		Build()
func Builder() *ConfigBuilder {
	return NewConfigBuilder()
}

// FromEnv builds the entire configuration from the ATLAS_ENV, ATLAS_KEY, and
// ATLAS_SECRET environment variables, stopping at the first failure.
func FromEnv() (Config, error) {
	return NewConfigBuilder().FromEnv()
}

// Environment returns the configured ATLAS environment.
func (c *Config) Environment() Environment {
	return c.environment
}

// EnvironmentTag returns the canonical tag of the configured environment.
func (c *Config) EnvironmentTag() string {
	return c.environment.Tag()
}

// Key returns the ATLAS key.
func (c *Config) Key() string {
	return c.key
}

// ExposeSecret returns the ATLAS secret as a plain string.
//
// Use this with extreme care to avoid accidentally leaking the secret.
// Prefer passing the Config around; it never prints the secret.
func (c *Config) ExposeSecret() string {
	return c.secret.Expose()
}

// SetEnvironment replaces the environment.
func (c *Config) SetEnvironment(environment Environment) {
	c.environment = environment
}

// SetKey replaces the key.
func (c *Config) SetKey(key string) {
	c.key = key
}

// SetSecret replaces the secret, wrapping the new value immediately.
func (c *Config) SetSecret(secret string) {
	c.secret = NewSecret(secret)
}

// Equal reports whether two Configs are equivalent: equal environment tags,
// equal keys, and structurally equal secrets. Environments are compared by
// tag only, so two distinct environment types that share a tag compare equal
// here regardless of their hosts or entrypoints.
func (c Config) Equal(other Config) bool {
	return environmentTag(c.environment) == environmentTag(other.environment) &&
		c.key == other.key &&
		c.secret == other.secret
}

// String renders the Config with the secret redacted. fmt does not invoke
// Stringer on unexported struct fields, so Config formats itself rather than
// letting %+v walk its fields.
func (c Config) String() string {
	return fmt.Sprintf("Config{environment:%q, key:%q, secret:%s}",
		environmentTag(c.environment), c.key, c.secret)
}

func environmentTag(e Environment) string {
	if e == nil {
		return ""
	}
	return e.Tag()
}
