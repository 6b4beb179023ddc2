package session

import (
	"net/http"

	httpError "remessa/internal/transport/http/error"
	dErrors "remessa/pkg/domain-errors"
)

// Require gates a route group behind a valid session cookie. The decoded
// session is placed in the request context for downstream handlers.
func (m *Manager) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(CookieName)
		if err != nil || cookie.Value == "" {
			httpError.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "login necessário"))
			return
		}

		sess, err := m.Parse(cookie.Value)
		if err != nil {
			httpError.WriteError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
	})
}
