package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"overstay/internal/api/handlers/http/duration"
	"overstay/internal/api/handlers/http/system"
	"overstay/internal/api/handlers/http/webhook"
	"overstay/internal/config"
	"overstay/internal/metrics"
	"overstay/internal/middleware"
	"overstay/internal/service"
)

const maxBodyBytes = 1 << 20

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

// NewServer wires handlers to the router. ctx bounds background work started
// by middleware; store may be nil for the in-memory backend.
func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, m *metrics.Metrics, store system.Pinger) *Server {
	durationHandler := duration.NewHandler(logger, svc.DurationSetupService)
	webhookHandler := webhook.NewHandler(logger, svc.VisitorEventService)
	systemHandler := system.NewHandler(logger, store)

	r := InitRouter(ctx, cfg, durationHandler, webhookHandler, systemHandler, m, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(
	ctx context.Context,
	cfg *config.Config,
	durationHandler *duration.Handler,
	webhookHandler *webhook.Handler,
	systemHandler *system.Handler,
	m *metrics.Metrics,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(middleware.Recoverer(logger))
	r.Use(m.Middleware)

	// configuration callback from the platform
	r.With(chimw.RequestSize(maxBodyBytes)).Post("/duration", durationHandler.DurationSetup)

	r.Group(func(wr chi.Router) {
		wr.Use(middleware.Limit(ctx, cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.TTL, logger))
		if cfg.Envoy.VerifySignature {
			wr.Use(middleware.VerifySignature(cfg.Envoy.ClientSecret, maxBodyBytes, logger))
		} else {
			logger.Warn("webhook signature verification DISABLED")
			wr.Use(chimw.RequestSize(maxBodyBytes))
		}
		wr.Post("/webhook", webhookHandler.VisitorWebhook)
	})

	r.Get("/health", systemHandler.SystemHealth)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	return r
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Run(ctx context.Context) error {
	port := s.cfg.Http.Port
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:         port,
		Handler:      s.router,
		ReadTimeout:  s.cfg.Http.ReadTimeout,
		WriteTimeout: s.cfg.Http.WriteTimeout,
		IdleTimeout:  30 * time.Second,
	}

	errChan := make(chan error, 1)

	go func() {
		s.logger.Info("Starting HTTP server",
			slog.String("addr", srv.Addr),
			slog.Duration("read_timeout", s.cfg.Http.ReadTimeout),
			slog.Duration("write_timeout", s.cfg.Http.WriteTimeout),
		)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("ListenAndServe error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("Shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
