package config

import (
	"fmt"
	"os"

	"github.com/atlasground/freedom-config/internal/util"
)

// EnvironmentFromEnv reads ATLAS_ENV and resolves its value against the
// built-in environments. It returns an error wrapping ErrParseEnvironment if
// the variable is unset or if its value matches no built-in environment.
// Custom environments must be set with SetEnvironment instead.
func (b *ConfigBuilder) EnvironmentFromEnv() error {
	value, ok := os.LookupEnv(EnvironmentEnvVar)
	if !ok {
		return fmt.Errorf("%s: %w", EnvironmentEnvVar, ErrParseEnvironment)
	}
	environment, err := ParseEnvironment(value)
	if err != nil {
		return fmt.Errorf("%s: %q: %w", EnvironmentEnvVar, value, err)
	}
	if b.environment != nil {
		b.loggers.Warnf("%s overrides an environment that was already set", EnvironmentEnvVar)
	}
	entrypoint := environment.FreedomEntrypoint()
	b.loggers.Debugf("resolved %s to environment %q (entrypoint %s)",
		EnvironmentEnvVar, environment.Tag(), util.RedactURL(entrypoint.String()))
	b.environment = environment
	return nil
}

// KeyFromEnv reads the key from ATLAS_KEY. It returns an error wrapping
// ErrParseEnvironment if the variable is unset; the value itself is used
// verbatim, with no further validation.
func (b *ConfigBuilder) KeyFromEnv() error {
	value, ok := os.LookupEnv(KeyEnvVar)
	if !ok {
		return fmt.Errorf("%s: %w", KeyEnvVar, ErrParseEnvironment)
	}
	if b.key != nil {
		b.loggers.Warnf("%s overrides a key that was already set", KeyEnvVar)
	}
	b.SetKey(value)
	b.loggers.Debugf("loaded key from %s", KeyEnvVar)
	return nil
}

// SecretFromEnv reads the secret from ATLAS_SECRET, wrapping it immediately.
// It returns an error wrapping ErrParseEnvironment if the variable is unset;
// the value itself is used verbatim, with no further validation.
func (b *ConfigBuilder) SecretFromEnv() error {
	value, ok := os.LookupEnv(SecretEnvVar)
	if !ok {
		return fmt.Errorf("%s: %w", SecretEnvVar, ErrParseEnvironment)
	}
	if b.secret != nil {
		b.loggers.Warnf("%s overrides a secret that was already set", SecretEnvVar)
	}
	b.SetSecret(value)
	b.loggers.Debugf("loaded secret from %s", SecretEnvVar)
	return nil
}

// FromEnv runs the three loaders in order (environment, key, secret) and
// then Build, stopping at the first failure.
func (b *ConfigBuilder) FromEnv() (Config, error) {
	if err := b.EnvironmentFromEnv(); err != nil {
		return Config{}, err
	}
	if err := b.KeyFromEnv(); err != nil {
		return Config{}, err
	}
	if err := b.SecretFromEnv(); err != nil {
		return Config{}, err
	}
	return b.Build()
}
