// Package backend is the typed HTTP client for the remote boleto
// registration API. It owns transport concerns only: identity header,
// timeout, logging, tracing, and error classification. Interpreting a
// not-found as "no records" is the orchestrator's job.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"remessa/internal/auth/session"
	"remessa/internal/platform/metrics"
	dErrors "remessa/pkg/domain-errors"
)

// identityHeader attributes every backend action to the logged-in user.
const identityHeader = "x-user-name"

// Backend endpoint paths, kept exactly as the registration API exposes them.
const (
	pathPessoaJuridica = "/enviar-dados-producao"
	pathPessoaFisica   = "/enviar-dados-fisicos-producao"
	pathSocios         = "/cadastroSocios-producao"
	pathAtualizar      = "/atualizar-dados-producao"
)

// Client calls the registration backend. One fixed timeout applies to every
// request; there is no retry. A timeout surfaces as a timeout domain error.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures the Client.
type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// WithHTTPClient injects a custom http.Client. Useful for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.http = httpClient
	}
}

// NewClient creates a Client for the given base URL and request timeout.
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tracer:  otel.Tracer("remessa/backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// SearchPessoaJuridica looks up a company record by CNPJ.
func (c *Client) SearchPessoaJuridica(ctx context.Context, p SearchParams) (*ApiResponse, error) {
	return c.get(ctx, "searchPessoaJuridica", pathPessoaJuridica, "cnpj", p)
}

// SearchPessoaFisica looks up a person record by CPF.
func (c *Client) SearchPessoaFisica(ctx context.Context, p SearchParams) (*ApiResponse, error) {
	return c.get(ctx, "searchPessoaFisica", pathPessoaFisica, "cpf", p)
}

// SearchSocios looks up partner/shareholder records by name or document.
func (c *Client) SearchSocios(ctx context.Context, p SearchParams) (*ApiResponse, error) {
	return c.get(ctx, "searchSocios", pathSocios, "nome", p)
}

// EnviarDados submits a new record.
func (c *Client) EnviarDados(ctx context.Context, p SearchParams) (*ApiResponse, error) {
	return c.post(ctx, "enviarDados", pathPessoaJuridica, p)
}

// AtualizarDados updates an existing record.
func (c *Client) AtualizarDados(ctx context.Context, p SearchParams) (*ApiResponse, error) {
	return c.post(ctx, "atualizarDados", pathAtualizar, p)
}

func (c *Client) get(ctx context.Context, op, path, docKey string, p SearchParams) (*ApiResponse, error) {
	query := url.Values{}
	query.Set(docKey, p.Documento)
	if p.Status != "" {
		query.Set("status", strings.ToLower(p.Status))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build backend request")
	}
	return c.do(ctx, op, req, nil)
}

func (c *Client) post(ctx context.Context, op, path string, p SearchParams) (*ApiResponse, error) {
	p.Status = strings.ToLower(p.Status)
	body, err := json.Marshal(p)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to encode backend request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to build backend request")
	}
	return c.do(ctx, op, req, body)
}

func (c *Client) do(ctx context.Context, op string, req *http.Request, body []byte) (*ApiResponse, error) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(identityHeader, session.Identity(ctx))

	ctx, span := c.tracer.Start(ctx, "backend."+op, trace.WithAttributes(
		attribute.String("http.method", req.Method),
		attribute.String("url.path", req.URL.Path),
	))
	defer span.End()
	req = req.WithContext(ctx)

	// Best-effort request log; never blocks or fails the call.
	c.logger.InfoContext(ctx, "backend request",
		"method", req.Method,
		"url", req.URL.String(),
		"body_bytes", len(body),
	)

	start := time.Now()
	resp, err := c.http.Do(req)
	if c.metrics != nil {
		c.metrics.BackendLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		return nil, c.transportError(ctx, span, op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.transportError(ctx, span, op, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	c.logger.InfoContext(ctx, "backend response",
		"method", req.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"body_bytes", len(raw),
	)

	var decoded ApiResponse
	decodeErr := json.Unmarshal(raw, &decoded)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		message := "Nenhum registro encontrado"
		if decodeErr == nil && decoded.Message != "" {
			message = decoded.Message
		}
		err := dErrors.New(dErrors.CodeNotFound, message)
		span.SetStatus(codes.Error, message)
		c.countError("not_found")
		return nil, err

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		message := fmt.Sprintf("backend returned status %d", resp.StatusCode)
		if decodeErr == nil && decoded.Message != "" {
			message = decoded.Message
		}
		err := dErrors.New(dErrors.CodeUnavailable, message)
		span.SetStatus(codes.Error, message)
		c.countError("status")
		return nil, err

	case len(raw) == 0 || decodeErr != nil:
		err := dErrors.New(dErrors.CodeUnavailable, "Resposta vazia do servidor")
		span.SetStatus(codes.Error, "undecodable response body")
		c.countError("decode")
		return nil, err
	}

	return &decoded, nil
}

func (c *Client) transportError(ctx context.Context, span trace.Span, op string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	var urlErr *url.Error
	timedOut := errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &urlErr) && urlErr.Timeout())

	if timedOut {
		c.logger.ErrorContext(ctx, "backend request timed out", "operacao", op, "error", err)
		c.countError("timeout")
		return dErrors.Wrap(err, dErrors.CodeTimeout, "tempo de resposta do servidor excedido")
	}

	c.logger.ErrorContext(ctx, "backend request failed", "operacao", op, "error", err)
	c.countError("network")
	return dErrors.Wrap(err, dErrors.CodeUnavailable, "falha de comunicação com o servidor")
}

func (c *Client) countError(kind string) {
	if c.metrics != nil {
		c.metrics.BackendErrors.WithLabelValues(kind).Inc()
	}
}
