package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"remessa/internal/auth/directory"
	authHandler "remessa/internal/auth/handler"
	authService "remessa/internal/auth/service"
	"remessa/internal/auth/session"
	"remessa/internal/backend"
	"remessa/internal/consulta"
	consultaHandler "remessa/internal/consulta/handler"
	"remessa/internal/platform/config"
	"remessa/internal/platform/health"
	"remessa/internal/platform/httpserver"
	"remessa/internal/platform/logger"
	"remessa/internal/platform/metrics"
	"remessa/internal/platform/middleware"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()

	log.Info("initializing remessa",
		"addr", cfg.Addr,
		"ldap_url", cfg.LDAPURL,
		"backend_url", cfg.BackendBaseURL,
	)

	m := metrics.New()

	auth := authService.New(
		directory.NewDialer(cfg.LDAPURL),
		cfg.LDAPDomain,
		cfg.LDAPBaseDN,
		authService.WithLogger(log),
		authService.WithMetrics(m),
	)
	sessions := session.NewManager(cfg.SessionSigningKey, cfg.SessionTTL)

	client := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout,
		backend.WithLogger(log),
		backend.WithMetrics(m),
	)
	registry := consulta.NewRegistry(client,
		consulta.WithLogger(log),
		consulta.WithMetrics(m),
	)

	healthHandler := health.New()
	healthHandler.RegisterCheck("ldap", auth.Ping)

	router := newRouter(log, sessions,
		authHandler.New(auth, sessions, log),
		consultaHandler.New(registry, log),
		healthHandler,
	)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting http server", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("shutting down server gracefully")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped")
}

// newRouter assembles the middleware stack and mounts all route groups. The
// consulta and session-echo routes sit behind the session cookie gate; login,
// health, and metrics stay open.
func newRouter(
	log *slog.Logger,
	sessions *session.Manager,
	auth *authHandler.Handler,
	dashboard *consultaHandler.Handler,
	healthHandler *health.Handler,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(log))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(middleware.Timeout(60 * time.Second))

	healthHandler.Register(r)
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.ContentTypeJSON)
		auth.Register(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessions.Require)
		r.Use(middleware.ContentTypeJSON)
		auth.RegisterProtected(r)
		dashboard.Register(r)
	})

	return r
}
