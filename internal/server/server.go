// Package server sets up the HTTP server, router, and all route definitions.
//
// This package is the "wiring" layer — the composition root where the whole
// dependency chain is assembled in one place:
//
//	sqlite.DB → services (one per entity) → handlers → routes
//
// Each layer only receives what it needs: services get repository interfaces
// (not the concrete *sqlite.DB type), handlers get services, and the router
// only sees http.HandlerFunc. main stays minimal — it builds a Config and
// calls New + Start.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/sakif/octofit-tracker/internal/handler"
	"github.com/sakif/octofit-tracker/internal/middleware"
	sqliteRepo "github.com/sakif/octofit-tracker/internal/repository/sqlite"
	"github.com/sakif/octofit-tracker/internal/service"
)

// Config holds server configuration.
type Config struct {
	Port   int
	DBPath string
}

// Server owns the router and the database connection. The connection is
// closed during graceful shutdown so the WAL is flushed and the file lock
// released.
type Server struct {
	router *chi.Mux
	config Config
	logger *slog.Logger
	db     *sqliteRepo.DB
}

// New creates a Server with the full dependency chain wired up.
//
// IMPORT ALIAS:
// repository/sqlite is imported as `sqliteRepo` to avoid confusion with the
// sqlite driver package.
func New(cfg Config, logger *slog.Logger) (*Server, error) {
	db, err := sqliteRepo.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Server{
		router: chi.NewRouter(),
		config: cfg,
		logger: logger,
		db:     db,
	}

	s.setupRoutes()

	return s, nil
}

// setupRoutes configures all middleware and route handlers.
//
// ROUTE STRUCTURE:
// GET    /api                    → resource discovery (name → collection path)
// GET    /api/{resource}         → list (with admin filter query params)
// POST   /api/{resource}         → create
// GET    /api/{resource}/{id}    → retrieve
// PUT    /api/{resource}/{id}    → update (full or partial)
// PATCH  /api/{resource}/{id}    → update (same handler as PUT)
// DELETE /api/{resource}/{id}    → delete (cascades for users and teams)
//
// MIDDLEWARE ORDER MATTERS — it executes in the order added:
// RequestID → RealIP → Recoverer → request logging.
func (s *Server) setupRoutes() {
	s.router.Use(chimiddleware.RequestID) // Adds X-Request-ID header
	s.router.Use(chimiddleware.RealIP)    // Extracts real IP from X-Forwarded-For
	s.router.Use(chimiddleware.Recoverer) // Recovers from panics, returns 500

	s.router.Use(middleware.Logger(s.logger))

	// One validator instance shared by every handler — it's concurrency-safe
	// and caches struct metadata.
	validate := handler.NewValidator()

	// The single *sqlite.DB satisfies every repository interface; each
	// service only sees the interface it was given.
	userService := service.NewUserService(s.db, s.logger)
	teamService := service.NewTeamService(s.db, s.db, s.logger)
	activityService := service.NewActivityService(s.db, s.db, s.logger)
	leaderboardService := service.NewLeaderboardService(s.db, s.db, s.logger)
	workoutService := service.NewWorkoutService(s.db, s.logger)

	userHandler := handler.NewUserHandler(userService, validate, s.logger)
	teamHandler := handler.NewTeamHandler(teamService, validate, s.logger)
	activityHandler := handler.NewActivityHandler(activityService, validate, s.logger)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService, validate, s.logger)
	workoutHandler := handler.NewWorkoutHandler(workoutService, validate, s.logger)
	rootHandler := handler.NewRootHandler()

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/", rootHandler.HandleRoot)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.HandleList)
			r.Post("/", userHandler.HandleCreate)
			r.Get("/{id}", userHandler.HandleGetByID)
			r.Put("/{id}", userHandler.HandleUpdate)
			r.Patch("/{id}", userHandler.HandleUpdate)
			r.Delete("/{id}", userHandler.HandleDelete)
		})

		r.Route("/teams", func(r chi.Router) {
			r.Get("/", teamHandler.HandleList)
			r.Post("/", teamHandler.HandleCreate)
			r.Get("/{id}", teamHandler.HandleGetByID)
			r.Put("/{id}", teamHandler.HandleUpdate)
			r.Patch("/{id}", teamHandler.HandleUpdate)
			r.Delete("/{id}", teamHandler.HandleDelete)
		})

		r.Route("/activities", func(r chi.Router) {
			r.Get("/", activityHandler.HandleList)
			r.Post("/", activityHandler.HandleCreate)
			r.Get("/{id}", activityHandler.HandleGetByID)
			r.Put("/{id}", activityHandler.HandleUpdate)
			r.Patch("/{id}", activityHandler.HandleUpdate)
			r.Delete("/{id}", activityHandler.HandleDelete)
		})

		r.Route("/leaderboard", func(r chi.Router) {
			r.Get("/", leaderboardHandler.HandleList)
			r.Post("/", leaderboardHandler.HandleCreate)
			r.Get("/{id}", leaderboardHandler.HandleGetByID)
			r.Put("/{id}", leaderboardHandler.HandleUpdate)
			r.Patch("/{id}", leaderboardHandler.HandleUpdate)
			r.Delete("/{id}", leaderboardHandler.HandleDelete)
		})

		r.Route("/workouts", func(r chi.Router) {
			r.Get("/", workoutHandler.HandleList)
			r.Post("/", workoutHandler.HandleCreate)
			r.Get("/{id}", workoutHandler.HandleGetByID)
			r.Put("/{id}", workoutHandler.HandleUpdate)
			r.Patch("/{id}", workoutHandler.HandleUpdate)
			r.Delete("/{id}", workoutHandler.HandleDelete)
		})
	})
}

// Router exposes the configured router — used by tests to drive the full
// stack through httptest without opening a socket.
func (s *Server) Router() http.Handler {
	return s.router
}

// Close releases the database connection.
func (s *Server) Close() error {
	return s.db.Close()
}

// Start runs the HTTP server and handles graceful shutdown:
// 1. Stop accepting new connections on SIGINT/SIGTERM
// 2. Wait for in-flight requests to finish (30s timeout)
// 3. Close the database connection
func (s *Server) Start() error {
	defer s.db.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.config.Port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("server starting",
			slog.Int("port", s.config.Port),
			slog.String("database", s.config.DBPath),
		)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}

	case sig := <-quit:
		s.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		s.logger.Info("server stopped gracefully")
	}

	return nil
}
