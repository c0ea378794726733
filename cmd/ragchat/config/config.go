// Package config resolves runtime settings for ragchat.
// There is no config file and nothing is persisted: settings come from
// flags and the environment only.
package config

import (
	"os"

	"ragchat/internal/api"
)

// EndpointEnvVar names the environment variable holding the backend base URL.
const EndpointEnvVar = "RAGCHAT_ENDPOINT"

// Settings holds the resolved runtime configuration.
type Settings struct {
	// Endpoint is the backend base URL, e.g. "http://127.0.0.1:8000".
	Endpoint string
}

// Resolve builds Settings from the given flag value and the environment.
// Precedence: flag > RAGCHAT_ENDPOINT > built-in default.
func Resolve(flagEndpoint string) Settings {
	endpoint := flagEndpoint
	if endpoint == "" {
		endpoint = os.Getenv(EndpointEnvVar)
	}
	if endpoint == "" {
		endpoint = api.DefaultBaseURL
	}

	return Settings{Endpoint: endpoint}
}
