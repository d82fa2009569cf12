// Package rest exposes the prediction backend over HTTP.
package rest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/matchcast/internal/config"
	"github.com/yourusername/matchcast/internal/metrics"
	"github.com/yourusername/matchcast/internal/service"
)

// Server represents the REST API server
type Server struct {
	server  *http.Server
	handler *Handler
	logger  *logrus.Logger
}

// NewServer creates a new REST API server
func NewServer(cfg *config.Config, fixtures *service.FixtureService, logger *logrus.Logger) *Server {
	handler := NewHandler(fixtures, cfg, logger)

	router := mux.NewRouter()

	// Apply middleware
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggingMiddleware(logger))
	router.Use(CORSMiddleware)

	// Health check and metrics
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")
	router.Handle("/metrics", metrics.Handler()).Methods("GET")

	// API routes
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/teams", handler.GetTeams).Methods("GET")
	api.HandleFunc("/fixtures/next/{teamID}", handler.GetNextFixtures).Methods("GET")
	api.HandleFunc("/fixtures/last/{teamID}", handler.GetLastFixtures).Methods("GET")
	api.HandleFunc("/fixtures/matchday", handler.GetMatchdayFixtures).Methods("GET")

	return &Server{
		handler: handler,
		logger:  logger,
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSec) * time.Second,
			WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSec) * time.Second,
		},
	}
}

// Start starts the REST API server
func (s *Server) Start() error {
	s.logger.WithField("addr", s.server.Addr).Info("Starting HTTP server")
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server != nil {
		return s.server.Shutdown(ctx)
	}
	return nil
}
