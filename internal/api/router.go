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

	"crisisAlert/internal/api/handlers/http/admin"
	"crisisAlert/internal/api/handlers/http/public"
	"crisisAlert/internal/api/handlers/http/system"
	"crisisAlert/internal/config"
	"crisisAlert/internal/metrics"
	"crisisAlert/internal/middleware"
	"crisisAlert/internal/service"
)

type Server struct {
	logger *slog.Logger
	router *chi.Mux
	cfg    config.Config
}

func NewServer(ctx context.Context, cfg *config.Config, logger *slog.Logger, svc *service.Service, checks map[string]system.Check) *Server {
	adminHandler := admin.NewHandler(logger, svc, svc)
	publicHandler := public.NewHandler(logger, svc, svc)
	systemHandler := system.NewHandler(logger, checks)

	r := InitRouter(ctx, cfg, adminHandler, publicHandler, systemHandler, logger)

	return &Server{
		logger: logger,
		router: r,
		cfg:    *cfg,
	}
}

func InitRouter(ctx context.Context, cfg *config.Config, adminHandler *admin.Handler, publicHandler *public.Handler, systemHandler *system.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewMux()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)

	authenticate := middleware.Authenticate(cfg.Auth.JWTSecret, cfg.Auth.Issuer, logger)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Route("/admin", func(ar chi.Router) {
			ar.Use(authenticate)
			ar.Use(middleware.RequireAdmin)
			ar.Use(middleware.Limit(ctx, 2, 5, 10*time.Minute, logger))

			ar.Get("/stats", adminHandler.NotificationStats)

			ar.Route("/crisis-events", func(cr chi.Router) {
				cr.Post("/", adminHandler.CreateCrisisEvent)
				cr.Put("/{id}", adminHandler.UpdateCrisisEvent)
				cr.Put("/{id}/deactivate", adminHandler.DeactivateCrisisEvent)
			})
		})

		api.Route("/public/crisis-events", func(pr chi.Router) {
			pr.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			pr.Get("/", publicHandler.ListActive)
			pr.Get("/previews", publicHandler.ActivePreviews)
			pr.Get("/inactive/previews", publicHandler.InactivePreviews)
			pr.Get("/search", publicHandler.Search)
			pr.Get("/nearest", publicHandler.Nearest)
			pr.Get("/{id}", publicHandler.GetCrisisEvent)
			pr.Get("/{id}/changes", publicHandler.Changes)
		})

		api.Route("/user/crisis-events", func(ur chi.Router) {
			ur.Use(authenticate)
			ur.Use(middleware.Limit(ctx, 10, 20, 5*time.Minute, logger))

			ur.Get("/", publicHandler.AffectedEvents)
			ur.Get("/previews", publicHandler.AffectedPreviews)
		})

		api.Get("/health", systemHandler.SystemHealth)
	})

	return r
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
		s.logger.Info("starting HTTP server",
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
		s.logger.Info("shutting down HTTP server", slog.String("reason", ctx.Err().Error()))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Http.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown failed", slog.Any("error", err))
			return err
		}
		return nil

	case err := <-errChan:
		return err
	}
}
