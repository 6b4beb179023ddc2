// Package session implements the client-held session marker as a signed
// cookie. There is no server-side session store: the cookie is the session.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"remessa/internal/auth/models"
	dErrors "remessa/pkg/domain-errors"
)

// CookieName is the session cookie issued on login.
const CookieName = "remessa_sessao"

// Session is the decoded session marker.
type Session struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
}

// Claims are the JWT claims carried by the session cookie.
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and validates session tokens.
type Manager struct {
	signingKey []byte
	ttl        time.Duration
}

// NewManager creates a Manager with the given HMAC signing key and token TTL.
func NewManager(signingKey string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// Issue creates a signed session token for the authenticated profile.
func (m *Manager) Issue(profile *models.UserProfile) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to sign session token")
	}
	return signed, nil
}

// Parse validates a session token and returns the session it carries.
func (m *Manager) Parse(token string) (*Session, error) {
	parsed, err := jwt.ParseWithClaims(token, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, dErrors.New(dErrors.CodeUnauthorized, "unexpected signing method")
		}
		return m.signingKey, nil
	})
	if err != nil || !parsed.Valid {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sessão inválida ou expirada")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "sessão inválida ou expirada")
	}

	return &Session{
		Username:    claims.Username,
		DisplayName: claims.DisplayName,
		Email:       claims.Email,
	}, nil
}

// TTL reports the configured session lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// SetCookie writes the session cookie on a login response.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// ClearCookie expires the session cookie on logout.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

type sessionKey struct{}

// WithSession stores the session in the context.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// FromContext retrieves the session from the context, if present.
func FromContext(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// Identity returns the name attached to outgoing backend requests.
// Falls back to a literal default when no session is present.
func Identity(ctx context.Context) string {
	if s, ok := FromContext(ctx); ok {
		if s.Username != "" {
			return s.Username
		}
		if s.DisplayName != "" {
			return s.DisplayName
		}
	}
	return "Usuario"
}
