package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"remessa/internal/auth/device"
	"remessa/internal/auth/models"
	"remessa/internal/auth/session"
	"remessa/internal/platform/middleware"
	httpError "remessa/internal/transport/http/error"
	jsonResponse "remessa/internal/transport/http/json"
	dErrors "remessa/pkg/domain-errors"
)

// Service defines the interface for directory authentication.
type Service interface {
	Authenticate(ctx context.Context, username, password string) (*models.UserProfile, error)
}

// Handler handles the login, logout, and session-echo endpoints.
type Handler struct {
	auth     Service
	sessions *session.Manager
	logger   *slog.Logger
}

// New creates an auth Handler.
func New(auth Service, sessions *session.Manager, logger *slog.Logger) *Handler {
	return &Handler{
		auth:     auth,
		sessions: sessions,
		logger:   logger,
	}
}

// Register registers the auth routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
}

// RegisterProtected registers routes that require an existing session.
func (h *Handler) RegisterProtected(r chi.Router) {
	r.Get("/auth/me", h.HandleMe)
}

// HandleLogin implements POST /auth/login.
//
// Input: { "username": "jsilva", "password": "..." }
// Output: { "success": true, "message": "login efetuado", "user": {...} }
// plus the session cookie. Every failure is a 401 with one generic message.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request",
			"error", err,
			"request_id", requestID,
		)
		httpError.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)

	profile, err := h.auth.Authenticate(ctx, creds.Username, creds.Password)
	if err != nil {
		jsonResponse.WriteJSON(w, http.StatusUnauthorized, models.LoginResult{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	token, err := h.sessions.Issue(profile)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to issue session token",
			"error", err,
			"request_id", requestID,
			"username", profile.Username,
		)
		httpError.WriteError(w, err)
		return
	}
	h.sessions.SetCookie(w, token)

	h.logger.InfoContext(ctx, "session issued",
		"request_id", requestID,
		"username", profile.Username,
		"device", device.Describe(r.UserAgent()),
	)

	jsonResponse.WriteJSON(w, http.StatusOK, models.LoginResult{
		Success: true,
		Message: "login efetuado",
		User:    profile,
	})
}

// HandleLogout clears the session cookie. Always succeeds.
func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.sessions.ClearCookie(w)
	jsonResponse.WriteJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// HandleMe echoes the session marker so the front end can decide between the
// login screen and the dashboard on page load.
func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httpError.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "login necessário"))
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, sess)
}
