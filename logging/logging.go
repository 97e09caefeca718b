// Package logging provides the default log destinations used by
// freedom-config. Applications that already manage their own ldlog.Loggers
// can ignore this package and pass their loggers to
// ConfigBuilder.SetLoggers directly.
package logging

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldlog"
)

// MakeDefaultLoggers returns a Loggers instance with the default
// configuration: standard output and error destinations, a package prefix,
// and a minimum level of Info so that per-variable loader diagnostics stay
// quiet unless explicitly lowered with SetMinLevel.
func MakeDefaultLoggers() ldlog.Loggers {
	loggers := ldlog.NewDefaultLoggers()
	loggers.SetPrefix("[freedom-config]")
	loggers.SetMinLevel(ldlog.Info)
	return loggers
}
