// Package util contains small helpers shared by the configuration loaders.
package util

import "net/url"

// RedactURL parses a URL string and replaces the password, if any, with
// xxxxx. Custom environments may embed userinfo in their entrypoint URLs, so
// anything logged must pass through here first. Strings that do not parse as
// URLs are returned unchanged.
func RedactURL(inputURL string) string {
	if parsed, err := url.Parse(inputURL); err == nil {
		if parsed != nil && parsed.User != nil {
			if _, hasPW := parsed.User.Password(); hasPW {
				transformed := *parsed
				transformed.User = url.UserPassword(parsed.User.Username(), "xxxxx")
				return transformed.String()
			}
		}
	}
	return inputURL
}
