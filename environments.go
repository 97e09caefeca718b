package config

import (
	"net/url"
	"strings"

	ct "github.com/launchdarkly/go-configtypes"
)

// Environment describes an ATLAS deployment environment. Each environment
// has a canonical lowercase tag, a fixed FPS hostname, and a fixed base URL
// for the Freedom API.
//
// The set of environments is open: any type implementing this interface can
// be used with Config, and ParseEnvironment accepts custom environments as
// candidates. Implementations must be immutable so that an Environment value
// can be shared freely between goroutines.
type Environment interface {
	// Tag returns the canonical lowercase tag for the environment, such as
	// "test" or "prod".
	Tag() string

	// FPSHost returns the hostname of the FPS for the environment.
	FPSHost() string

	// FreedomEntrypoint returns the base URL from which all Freedom API
	// requests initiate. The URL always includes the path "/api".
	FreedomEntrypoint() url.URL
}

// Test is the built-in test environment.
type Test struct{}

// Prod is the built-in production environment.
type Prod struct{}

var (
	testEntrypoint = newOptURLAbsoluteMustBeValid("https://test-api.atlasground.com/api")
	prodEntrypoint = newOptURLAbsoluteMustBeValid("https://api.atlasground.com/api")
)

// newOptURLAbsoluteMustBeValid backs the built-in entrypoint constants. A
// malformed built-in URL is a defect in this package rather than a runtime
// input error, so it panics at package initialization instead of surfacing
// when a request is about to be made.
func newOptURLAbsoluteMustBeValid(urlString string) ct.OptURLAbsolute {
	o, err := ct.NewOptURLAbsoluteFromString(urlString)
	if err != nil {
		panic(err)
	}
	return o
}

// Tag returns "test".
func (Test) Tag() string { return "test" }

// FPSHost returns the FPS hostname for the test environment.
func (Test) FPSHost() string { return "fps.test.atlasground.com" }

// FreedomEntrypoint returns the Freedom API entrypoint for the test
// environment.
func (Test) FreedomEntrypoint() url.URL { return *testEntrypoint.Get() }

// Tag returns "prod".
func (Prod) Tag() string { return "prod" }

// FPSHost returns the FPS hostname for the production environment.
func (Prod) FPSHost() string { return "fps.atlasground.com" }

// FreedomEntrypoint returns the Freedom API entrypoint for the production
// environment.
func (Prod) FreedomEntrypoint() url.URL { return *prodEntrypoint.Get() }

// BuiltinEnvironments returns the built-in environments in the order they
// are tried during string resolution: Test, then Prod.
func BuiltinEnvironments() []Environment {
	return []Environment{Test{}, Prod{}}
}

// ParseEnvironment resolves a string to an Environment. The comparison is a
// case-insensitive exact match against each candidate's tag (never a prefix
// or fuzzy match); the first match wins.
//
// With no candidates, the built-in environments are tried in their fixed
// order. Callers that define custom environments pass them as candidates:
//
//	env, err := config.ParseEnvironment(s, Staging{}, config.Prod{})
//
// It returns ErrParseEnvironment if no candidate matches.
func ParseEnvironment(input string, candidates ...Environment) (Environment, error) {
	if len(candidates) == 0 {
		candidates = BuiltinEnvironments()
	}
	for _, e := range candidates {
		if strings.EqualFold(input, e.Tag()) {
			return e, nil
		}
	}
	return nil, ErrParseEnvironment
}
