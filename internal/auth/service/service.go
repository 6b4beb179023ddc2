package service

import (
	"context"
	"log/slog"
	"strings"

	"remessa/internal/auth/directory"
	"remessa/internal/auth/models"
	"remessa/internal/platform/metrics"
	dErrors "remessa/pkg/domain-errors"
)

// MessageInvalidCredentials is the single message surfaced for every
// authentication failure. The cause (unreachable directory, bad password,
// search error) is logged but never leaked to the caller.
const MessageInvalidCredentials = "credenciais inválidas"

// Authenticator validates credentials against the corporate directory and
// returns the normalized user profile.
type Authenticator struct {
	dialer  directory.Dialer
	domain  string
	baseDN  string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the Authenticator.
type Option func(*Authenticator)

func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(a *Authenticator) {
		a.metrics = m
	}
}

// New creates an Authenticator bound to a directory endpoint, principal
// domain, and search base DN.
func New(dialer directory.Dialer, domain, baseDN string, opts ...Option) *Authenticator {
	a := &Authenticator{
		dialer: dialer,
		domain: domain,
		baseDN: baseDN,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// Authenticate binds against the directory as username@domain and, on
// success, fetches the user's profile record. Every failure collapses to an
// unauthorized error with a single generic message.
func (a *Authenticator) Authenticate(ctx context.Context, username, password string) (*models.UserProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, a.failure(ctx, username, "missing_credentials", nil)
	}

	conn, err := a.dialer.Dial()
	if err != nil {
		return nil, a.failure(ctx, username, "directory_unreachable", err)
	}
	defer conn.Close()

	principal := username + "@" + a.domain
	if err := conn.Bind(principal, password); err != nil {
		return nil, a.failure(ctx, username, "bind_rejected", err)
	}

	profile := &models.UserProfile{
		Username:    username,
		DisplayName: username,
		Email:       "",
	}

	entry, err := conn.SearchUser(a.baseDN, username)
	if err != nil {
		return nil, a.failure(ctx, username, "profile_search_failed", err)
	}
	if entry != nil {
		if entry.DisplayName != "" {
			profile.DisplayName = entry.DisplayName
		}
		if entry.Mail != "" {
			profile.Email = entry.Mail
		}
		if entry.SAMAccountName != "" {
			profile.Username = entry.SAMAccountName
		}
	}

	a.logger.InfoContext(ctx, "login successful",
		"username", profile.Username,
		"display_name", profile.DisplayName,
	)
	if a.metrics != nil {
		a.metrics.LoginsTotal.Inc()
	}

	return profile, nil
}

// Ping verifies the directory is reachable. Used by the readiness probe.
func (a *Authenticator) Ping() error {
	conn, err := a.dialer.Dial()
	if err != nil {
		return err
	}
	conn.Close()
	return nil
}

func (a *Authenticator) failure(ctx context.Context, username, reason string, cause error) error {
	a.logger.WarnContext(ctx, "login failed",
		"username", username,
		"reason", reason,
		"error", cause,
	)
	if a.metrics != nil {
		a.metrics.AuthFailures.Inc()
	}
	return dErrors.New(dErrors.CodeUnauthorized, MessageInvalidCredentials)
}
