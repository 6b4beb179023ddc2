package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "desenvolvemt.local", cfg.LDAPDomain)
	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("REMESSA_ADDR", ":9090")
	t.Setenv("BACKEND_URL", "http://backend.interno:4001")
	t.Setenv("BACKEND_TIMEOUT", "5s")
	t.Setenv("SESSION_TTL", "1h")

	cfg := FromEnv()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "http://backend.interno:4001", cfg.BackendBaseURL)
	assert.Equal(t, 5*time.Second, cfg.BackendTimeout)
	assert.Equal(t, time.Hour, cfg.SessionTTL)
}

func TestFromEnv_IgnoresInvalidDurations(t *testing.T) {
	t.Setenv("BACKEND_TIMEOUT", "not-a-duration")
	t.Setenv("SESSION_TTL", "-2h")

	cfg := FromEnv()

	assert.Equal(t, 30*time.Second, cfg.BackendTimeout)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
}
