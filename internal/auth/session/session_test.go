package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"remessa/internal/auth/models"
)

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		Username:    "jsilva",
		DisplayName: "João Silva",
		Email:       "jsilva@desenvolvemt.local",
	}
}

func TestIssueAndParse(t *testing.T) {
	m := NewManager("test-key", time.Hour)

	token, err := m.Issue(testProfile())
	require.NoError(t, err)

	sess, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "jsilva", sess.Username)
	assert.Equal(t, "João Silva", sess.DisplayName)
	assert.Equal(t, "jsilva@desenvolvemt.local", sess.Email)
}

func TestParse_Rejections(t *testing.T) {
	m := NewManager("test-key", time.Hour)

	t.Run("garbage token", func(t *testing.T) {
		_, err := m.Parse("not-a-token")
		assert.Error(t, err)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		other := NewManager("other-key", time.Hour)
		token, err := other.Issue(testProfile())
		require.NoError(t, err)

		_, err = m.Parse(token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewManager("test-key", time.Nanosecond)
		token, err := short.Issue(testProfile())
		require.NoError(t, err)

		time.Sleep(10 * time.Millisecond)
		_, err = short.Parse(token)
		assert.Error(t, err)
	})
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager("k", 0)
	assert.Equal(t, 12*time.Hour, m.TTL())
}

func TestRequire(t *testing.T) {
	m := NewManager("test-key", time.Hour)
	var gotSession *Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession, _ = FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	t.Run("no cookie -> 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Require(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid cookie -> 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: "bogus"})
		rec := httptest.NewRecorder()
		m.Require(next).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid cookie passes session through", func(t *testing.T) {
		token, err := m.Issue(testProfile())
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
		rec := httptest.NewRecorder()
		m.Require(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotSession)
		assert.Equal(t, "João Silva", gotSession.DisplayName)
	})
}

func TestIdentity(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "Usuario", Identity(ctx))

	ctx = WithSession(ctx, &Session{DisplayName: "João Silva"})
	assert.Equal(t, "João Silva", Identity(ctx))

	ctx = WithSession(ctx, &Session{Username: "jsilva", DisplayName: "João Silva"})
	assert.Equal(t, "jsilva", Identity(ctx))
}
