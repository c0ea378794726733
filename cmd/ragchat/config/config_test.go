package config

import (
	"testing"

	"ragchat/internal/api"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Endpoint(t *testing.T) {
	t.Run("default when nothing is set", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "")

		s := Resolve("")
		assert.Equal(t, api.DefaultBaseURL, s.Endpoint)
	})

	t.Run("env overrides default", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "http://rag.internal:8000")

		s := Resolve("")
		assert.Equal(t, "http://rag.internal:8000", s.Endpoint)
	})

	t.Run("flag overrides env", func(t *testing.T) {
		t.Setenv(EndpointEnvVar, "http://rag.internal:8000")

		s := Resolve("http://localhost:9000")
		assert.Equal(t, "http://localhost:9000", s.Endpoint)
	})
}
