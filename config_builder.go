package config

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// ConfigBuilder accumulates the fields of a Config and validates their
// presence when Build is called.
//
// Setters may be called in any order, any number of times; later calls
// overwrite earlier ones and never fail. Build consumes the accumulated
// fields, so a builder cannot produce a second Config unless it is
// repopulated first.
type ConfigBuilder struct {
	environment Environment
	key         *string
	secret      *Secret[string]
	loggers     ldlog.Loggers
}

// NewConfigBuilder constructs an empty ConfigBuilder.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{loggers: ldlog.NewDisabledLoggers()}
}

// SetEnvironment sets the environment.
func (b *ConfigBuilder) SetEnvironment(environment Environment) *ConfigBuilder {
	b.environment = environment
	return b
}

// SetKey sets the key.
func (b *ConfigBuilder) SetKey(key string) *ConfigBuilder {
	b.key = &key
	return b
}

// SetSecret sets the secret, wrapping the value immediately.
func (b *ConfigBuilder) SetSecret(secret string) *ConfigBuilder {
	s := NewSecret(secret)
	b.secret = &s
	return b
}

// SetLoggers sets the destination for the diagnostics written by the
// environment-variable loaders. The default is disabled loggers; pass
// DefaultLoggers for standard output. Loader messages name variables and
// environment tags only, never key or secret values.
func (b *ConfigBuilder) SetLoggers(loggers ldlog.Loggers) *ConfigBuilder {
	b.loggers = loggers
	return b
}

// Build validates that the environment, key, and secret are all present and
// produces the Config. The fields are checked in that order, and the first
// absent one is reported: ErrMissingEnvironment, ErrMissingKey, or
// ErrMissingSecret. Each field is cleared as it is consumed.
func (b *ConfigBuilder) Build() (Config, error) {
	environment := b.environment
	b.environment = nil
	if environment == nil {
		return Config{}, ErrMissingEnvironment
	}

	key := b.key
	b.key = nil
	if key == nil {
		return Config{}, ErrMissingKey
	}

	secret := b.secret
	b.secret = nil
	if secret == nil {
		return Config{}, ErrMissingSecret
	}

	return Config{
		environment: environment,
		key:         *key,
		secret:      *secret,
	}, nil
}
