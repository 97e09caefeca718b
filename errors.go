package config

import "errors"

// Failure kinds surfaced by ConfigBuilder and the environment-variable
// loaders. Errors returned by this package wrap one of these sentinels, so
// callers should match with errors.Is. The set is open-ended; treat any
// other non-nil error as a failure rather than assuming it is one of these.
var (
	// ErrParseEnvironment means an environment variable was unset, or was
	// set but could not be resolved to any known environment.
	ErrParseEnvironment = errors.New("unable to parse the variable from the environment")

	// ErrMissingEnvironment means Build was called with no environment set.
	ErrMissingEnvironment = errors.New("missing environment from builder")

	// ErrMissingKey means Build was called with no key set.
	ErrMissingKey = errors.New("missing key from builder")

	// ErrMissingSecret means Build was called with no secret set.
	ErrMissingSecret = errors.New("missing secret from builder")
)
