package config

import (
	"os"
	"time"
)

// Server captures the full runtime configuration of the dashboard service.
// Everything is read once at startup; nothing here is a runtime contract.
type Server struct {
	Addr string

	// Directory (LDAP) settings used by the authenticator.
	LDAPURL    string
	LDAPDomain string
	LDAPBaseDN string

	// Remote registration backend.
	BackendBaseURL string
	BackendTimeout time.Duration

	// Session cookie signing.
	SessionSigningKey string
	SessionTTL        time.Duration
}

const (
	defaultBackendTimeout = 30 * time.Second
	defaultSessionTTL     = 12 * time.Hour
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	cfg := Server{
		Addr:              getEnv("REMESSA_ADDR", ":8080"),
		LDAPURL:           getEnv("LDAP_URL", "ldap://192.168.10.10:389"),
		LDAPDomain:        getEnv("LDAP_DOMAIN", "desenvolvemt.local"),
		LDAPBaseDN:        getEnv("LDAP_BASE_DN", "DC=desenvolvemt,DC=local"),
		BackendBaseURL:    getEnv("BACKEND_URL", "http://192.168.10.88:4001"),
		BackendTimeout:    defaultBackendTimeout,
		SessionSigningKey: getEnv("SESSION_SIGNING_KEY", "dev-secret-key-change-in-production"),
		SessionTTL:        defaultSessionTTL,
	}

	if raw := os.Getenv("BACKEND_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.BackendTimeout = d
		}
	}
	if raw := os.Getenv("SESSION_TTL"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.SessionTTL = d
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
