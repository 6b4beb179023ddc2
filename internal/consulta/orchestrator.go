// Package consulta is the search/submit orchestrator: it owns the current
// route, dispatches user actions to the backend client, classifies the
// outcome, and keeps the single current-result slot the views are derived
// from.
package consulta

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"remessa/internal/backend"
	"remessa/internal/platform/metrics"
	dErrors "remessa/pkg/domain-errors"
)

// API is the slice of the backend client the orchestrator dispatches to.
type API interface {
	SearchPessoaFisica(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error)
	SearchPessoaJuridica(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error)
	SearchSocios(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error)
	EnviarDados(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error)
	AtualizarDados(ctx context.Context, p backend.SearchParams) (*backend.ApiResponse, error)
}

// genericErrorMessage is the fallback shown when a failure carries no
// message of its own.
const genericErrorMessage = "Erro ao processar a solicitação"

// duplicatePhrases mark a duplicate-submission outcome when found in the
// response message, case-insensitively. The backend answers in Portuguese;
// the English phrase is accepted for older deployments.
var duplicatePhrases = []string{"já existe", "already exists"}

// Orchestrator is one user's search/submit state machine. A busy gate
// rejects overlapping actions, and a generation token discards responses
// that arrive after the route changed, so a late reply for an abandoned
// route can never overwrite the current result.
type Orchestrator struct {
	api     API
	logger  *slog.Logger
	metrics *metrics.Metrics

	mu         sync.Mutex
	route      Route
	busy       bool
	generation uint64
	cancel     context.CancelFunc

	result  *backend.ApiResponse
	erroMsg string
	resumo  Resumo
}

// Option configures the Orchestrator.
type Option func(*Orchestrator)

func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		o.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Orchestrator) {
		o.metrics = m
	}
}

// New creates an Orchestrator in the initial no-route state.
func New(api API, opts ...Option) *Orchestrator {
	o := &Orchestrator{api: api}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o
}

// SelectRoute switches the active search route. Any previous result and
// error are cleared so stale results never linger across route switches,
// and an in-flight request is cancelled and its response discarded.
func (o *Orchestrator) SelectRoute(r Route) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.cancel != nil {
		o.cancel()
		o.cancel = nil
	}
	o.generation++
	o.route = r
	o.busy = false
	o.result = nil
	o.erroMsg = ""
	o.resumo = Resumo{}
}

// Search runs one search on the active route. Local validation failures and
// the busy gate return an error without touching the network; every backend
// outcome is folded into the orchestrator state.
func (o *Orchestrator) Search(ctx context.Context, p backend.SearchParams) error {
	o.mu.Lock()
	if o.route == RouteNone {
		o.mu.Unlock()
		return dErrors.New(dErrors.CodeValidation, "selecione um tipo de consulta")
	}
	if strings.TrimSpace(p.Documento) == "" {
		o.mu.Unlock()
		return dErrors.New(dErrors.CodeValidation, "informe o documento para a consulta")
	}
	if o.busy {
		o.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "já existe uma operação em andamento")
	}
	o.busy = true
	o.generation++
	gen := o.generation
	route := o.route
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.mu.Unlock()
	defer cancel()

	resp, err := o.dispatch(ctx, route, p)
	o.applySearch(gen, route, resp, err)
	return nil
}

func (o *Orchestrator) dispatch(ctx context.Context, route Route, p backend.SearchParams) (*backend.ApiResponse, error) {
	switch route {
	case RoutePessoaFisica:
		return o.api.SearchPessoaFisica(ctx, p)
	case RoutePessoaJuridica:
		return o.api.SearchPessoaJuridica(ctx, p)
	case RouteSocios:
		return o.api.SearchSocios(ctx, p)
	default:
		return nil, dErrors.New(dErrors.CodeInternal, "rota de consulta inválida")
	}
}

// applySearch classifies one search outcome into the result slot. The
// classification order is significant: duplicate message, then not-found,
// then transport error, then success.
func (o *Orchestrator) applySearch(gen uint64, route Route, resp *backend.ApiResponse, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.logger.Info("discarding stale search response",
			"rota", string(route),
		)
		return
	}
	o.busy = false
	o.cancel = nil

	switch {
	case resp != nil && isDuplicateMessage(resp.Message):
		o.erroMsg = resp.Message
		o.result = nil
		o.resumo = Resumo{}
		o.countSearch(route, "duplicado")

	case dErrors.HasCode(err, dErrors.CodeNotFound):
		// Not an error state: a friendly empty panel is rendered.
		o.result = &backend.ApiResponse{
			Success: false,
			Message: "Nenhum registro encontrado",
		}
		o.erroMsg = ""
		o.resumo = Resumo{}
		o.countSearch(route, "nao_encontrado")

	case err != nil:
		o.erroMsg = errorMessage(err)
		o.result = nil
		o.resumo = Resumo{}
		o.countSearch(route, "erro")

	default:
		o.result = resp
		o.erroMsg = ""
		o.resumo = ComputeResumo(resp)
		o.countSearch(route, "sucesso")
	}
}

// Enviar submits the current parameters as a new record and, when the
// submission reports failure, retries as an update with the same
// parameters. Whichever of the two succeeds becomes the stored response.
func (o *Orchestrator) Enviar(ctx context.Context, p backend.SearchParams) error {
	o.mu.Lock()
	if strings.TrimSpace(p.Documento) == "" {
		o.mu.Unlock()
		return dErrors.New(dErrors.CodeValidation, "informe o documento para o envio")
	}
	if o.busy {
		o.mu.Unlock()
		return dErrors.New(dErrors.CodeConflict, "já existe uma operação em andamento")
	}
	o.busy = true
	o.generation++
	gen := o.generation
	ctx, cancel := context.WithCancel(ctx)
	o.cancel = cancel
	o.mu.Unlock()
	defer cancel()

	resp, err := o.api.EnviarDados(ctx, p)
	if err == nil && resp.Success {
		o.applyEnvio(gen, resp, "")
		return nil
	}

	o.logger.Info("submission failed, retrying as update",
		"documento", p.Documento,
		"error", err,
	)

	resp, err = o.api.AtualizarDados(ctx, p)
	switch {
	case err != nil:
		o.applyEnvio(gen, nil, errorMessage(err))
	case !resp.Success:
		o.applyEnvio(gen, nil, messageOrGeneric(resp.Message))
	default:
		o.applyEnvio(gen, resp, "")
	}
	return nil
}

func (o *Orchestrator) applyEnvio(gen uint64, resp *backend.ApiResponse, erroMsg string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if gen != o.generation {
		o.logger.Info("discarding stale submission response")
		return
	}
	o.busy = false
	o.cancel = nil

	if erroMsg != "" {
		o.erroMsg = erroMsg
		o.result = nil
		o.resumo = Resumo{}
		o.countEnvio("erro")
		return
	}

	o.result = resp
	o.erroMsg = ""
	o.resumo = ComputeResumo(resp)
	o.countEnvio("sucesso")
}

func isDuplicateMessage(message string) bool {
	lower := strings.ToLower(message)
	for _, phrase := range duplicatePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func errorMessage(err error) string {
	if err == nil {
		return genericErrorMessage
	}
	return messageOrGeneric(err.Error())
}

func messageOrGeneric(message string) string {
	if message == "" {
		return genericErrorMessage
	}
	return message
}

func (o *Orchestrator) countSearch(route Route, outcome string) {
	if o.metrics != nil {
		o.metrics.SearchesTotal.WithLabelValues(string(route), outcome).Inc()
	}
}

func (o *Orchestrator) countEnvio(outcome string) {
	if o.metrics != nil {
		o.metrics.SubmissionsTotal.WithLabelValues(outcome).Inc()
	}
}
