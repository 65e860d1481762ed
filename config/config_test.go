package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("VITE_BACKEND_URL", "")
		t.Setenv("BACKEND_TIMEOUT", "")
		t.Setenv("CONTACT_RATE_LIMIT", "")

		cfg := Load()
		assert.Equal(t, DefaultBackendURL, cfg.BackendURL)
		assert.Equal(t, 10*time.Second, cfg.BackendTimeout)
		assert.Equal(t, 10, cfg.ContactRateLimit)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("BackendURL wins over VITE_BACKEND_URL", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "https://api.example.com/")
		t.Setenv("VITE_BACKEND_URL", "https://other.example.com")

		cfg := Load()
		assert.Equal(t, "https://api.example.com", cfg.BackendURL)
	})

	t.Run("VITE_BACKEND_URL fallback", func(t *testing.T) {
		t.Setenv("BACKEND_URL", "")
		t.Setenv("VITE_BACKEND_URL", "https://vite.example.com")

		cfg := Load()
		assert.Equal(t, "https://vite.example.com", cfg.BackendURL)
	})
}

func TestGetEnvDuration(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "Go duration", value: "3s", expected: 3 * time.Second},
		{name: "Bare seconds", value: "7", expected: 7 * time.Second},
		{name: "Invalid falls back", value: "soon", expected: time.Minute},
		{name: "Empty falls back", value: "", expected: time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			assert.Equal(t, tt.expected, getEnvDuration("TEST_DURATION", time.Minute))
		})
	}
}

func TestValidate(t *testing.T) {
	valid := Config{BackendURL: "http://localhost:8000", BackendTimeout: time.Second, ContactRateLimit: 1}
	assert.NoError(t, valid.Validate())

	noScheme := valid
	noScheme.BackendURL = "localhost:8000"
	assert.Error(t, noScheme.Validate())

	noHost := valid
	noHost.BackendURL = "http://"
	assert.Error(t, noHost.Validate())

	badTimeout := valid
	badTimeout.BackendTimeout = 0
	assert.Error(t, badTimeout.Validate())

	badLimit := valid
	badLimit.ContactRateLimit = 0
	assert.Error(t, badLimit.Validate())
}
