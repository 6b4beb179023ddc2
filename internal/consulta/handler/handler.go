// Package handler exposes the search/submit orchestrator over HTTP. All
// routes require a session; each session's user gets an isolated
// orchestrator from the registry.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"remessa/internal/auth/session"
	"remessa/internal/backend"
	"remessa/internal/consulta"
	"remessa/internal/platform/middleware"
	httpError "remessa/internal/transport/http/error"
	jsonResponse "remessa/internal/transport/http/json"
	dErrors "remessa/pkg/domain-errors"
)

// Handler handles the dashboard's search, submit, and state endpoints.
type Handler struct {
	registry *consulta.Registry
	logger   *slog.Logger
}

// New creates a consulta Handler.
func New(registry *consulta.Registry, logger *slog.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}

// Register registers the consulta routes with the chi router. The router
// group is expected to sit behind the session middleware.
func (h *Handler) Register(r chi.Router) {
	r.Post("/consulta/rota", h.HandleRota)
	r.Post("/consulta/busca", h.HandleBusca)
	r.Post("/consulta/enviar", h.HandleEnviar)
	r.Get("/consulta/estado", h.HandleEstado)
}

type rotaRequest struct {
	Rota string `json:"rota"`
}

// HandleRota implements POST /consulta/rota.
//
// Input: { "rota": "pessoa-fisica" | "pessoa-juridica" | "socios" | "" }
// Switching the route clears the previous result and cancels any in-flight
// request. Output: the fresh state snapshot.
func (h *Handler) HandleRota(w http.ResponseWriter, r *http.Request) {
	o, ok := h.orchestrator(w, r)
	if !ok {
		return
	}

	var req rotaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}

	route, err := consulta.ParseRoute(req.Rota)
	if err != nil {
		httpError.WriteError(w, err)
		return
	}

	o.SelectRoute(route)
	jsonResponse.WriteJSON(w, http.StatusOK, o.Snapshot())
}

// HandleBusca implements POST /consulta/busca.
//
// Input: { "documento": "...", "status": "..." }. The search runs to
// completion before the snapshot is returned; backend failures land in the
// snapshot's error field, only local validation and the busy gate produce
// an HTTP error.
func (h *Handler) HandleBusca(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(o *consulta.Orchestrator, p backend.SearchParams) error {
		return o.Search(r.Context(), p)
	})
}

// HandleEnviar implements POST /consulta/enviar. Same contract as the
// search endpoint, for the submit-with-update-fallback action.
func (h *Handler) HandleEnviar(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, func(o *consulta.Orchestrator, p backend.SearchParams) error {
		return o.Enviar(r.Context(), p)
	})
}

// HandleEstado implements GET /consulta/estado: the current snapshot, with
// the detail view for the active route.
func (h *Handler) HandleEstado(w http.ResponseWriter, r *http.Request) {
	o, ok := h.orchestrator(w, r)
	if !ok {
		return
	}
	jsonResponse.WriteJSON(w, http.StatusOK, o.Snapshot())
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request, action func(*consulta.Orchestrator, backend.SearchParams) error) {
	ctx := r.Context()
	o, ok := h.orchestrator(w, r)
	if !ok {
		return
	}

	var params backend.SearchParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		httpError.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "Invalid JSON in request body"))
		return
	}

	if err := action(o, params); err != nil {
		h.logger.WarnContext(ctx, "consulta action rejected",
			"error", err,
			"request_id", middleware.GetRequestID(ctx),
			"usuario", session.Identity(ctx),
		)
		httpError.WriteError(w, err)
		return
	}

	jsonResponse.WriteJSON(w, http.StatusOK, o.Snapshot())
}

func (h *Handler) orchestrator(w http.ResponseWriter, r *http.Request) (*consulta.Orchestrator, bool) {
	sess, ok := session.FromContext(r.Context())
	if !ok {
		httpError.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "login necessário"))
		return nil, false
	}
	return h.registry.For(sess.Username), true
}
