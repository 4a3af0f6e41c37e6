package config

import "github.com/caarlos0/env/v11"

// parseEnv overlays Config fields from environment variables using the
// struct's env tags. Unset variables leave the current values untouched,
// so defaults survive. A malformed value (e.g. an unparseable duration)
// is a deployment error and panics, matching the flag layer.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
