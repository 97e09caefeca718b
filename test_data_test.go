package config

import (
	"net/url"
	"os"
	"strings"
)

// stagingEnvironment is a custom environment used to exercise the open
// environment set.
type stagingEnvironment struct{}

func (stagingEnvironment) Tag() string     { return "staging" }
func (stagingEnvironment) FPSHost() string { return "fps.staging.atlasground.com" }
func (stagingEnvironment) FreedomEntrypoint() url.URL {
	u, err := url.Parse("https://staging-api.atlasground.com/api")
	if err != nil {
		panic(err)
	}
	return *u
}

// prodTwinEnvironment shares Prod's tag but nothing else, for verifying that
// Config equality compares environments by tag only.
type prodTwinEnvironment struct{}

func (prodTwinEnvironment) Tag() string     { return "prod" }
func (prodTwinEnvironment) FPSHost() string { return "fps.elsewhere.example.com" }
func (prodTwinEnvironment) FreedomEntrypoint() url.URL {
	u, err := url.Parse("https://api.elsewhere.example.com/api")
	if err != nil {
		panic(err)
	}
	return *u
}

func withEnvironment(vars map[string]string, action func()) {
	saved := make(map[string]string)
	for _, kv := range os.Environ() {
		p := strings.Index(kv, "=")
		saved[kv[:p]] = kv[p+1:]
	}
	defer func() {
		os.Clearenv()
		for k, v := range saved {
			os.Setenv(k, v)
		}
	}()
	os.Clearenv()
	for k, v := range vars {
		os.Setenv(k, v)
	}
	action()
}
