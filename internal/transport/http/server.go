package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"undercover/internal/app"
	"undercover/internal/config"
	"undercover/internal/transport/ws"
)

// PresetLister lists the preset categories offered in setup
type PresetLister interface {
	ListCategories() []string
	ListUndercoverCategories() []string
}

// Server represents the HTTP server
type Server struct {
	server   *http.Server
	hub      *app.GameHub
	presets  PresetLister
	config   *config.Config
	limiters *limiterStore
	logger   *slog.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, hub *app.GameHub, presets PresetLister, logger *slog.Logger) *Server {
	s := &Server{
		hub:      hub,
		presets:  presets,
		config:   cfg,
		limiters: newLimiterStore(cfg.HTTP.RateLimitRPS, cfg.HTTP.RateLimitBurst),
		logger:   logger,
	}

	// Set up routes
	mux := http.NewServeMux()
	s.setupRoutes(mux)

	s.server = &http.Server{
		Addr:         cfg.GetAddr(),
		Handler:      s.middleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler returns the root handler with middleware applied
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.sessionHandler(s.handleGetSession))
	mux.HandleFunc("DELETE /api/sessions/{id}", s.handleDeleteSession)

	// Setup
	mux.HandleFunc("POST /api/sessions/{id}/mode", s.sessionHandler(s.handleSelectMode))
	mux.HandleFunc("POST /api/sessions/{id}/back", s.sessionHandler(s.handleBackToModes))
	mux.HandleFunc("PATCH /api/sessions/{id}/setup", s.sessionHandler(s.handleUpdateSetup))
	mux.Handle("POST /api/sessions/{id}/start", s.rateLimit(s.sessionHandler(s.handleStart)))
	mux.HandleFunc("POST /api/sessions/{id}/custom-words", s.sessionHandler(s.handleSubmitCustomWord))

	// Reveal sequence
	mux.HandleFunc("POST /api/sessions/{id}/confirm-player", s.sessionHandler(s.handleConfirmPlayer))
	mux.HandleFunc("POST /api/sessions/{id}/reveal", s.sessionHandler(s.handleTapReveal))
	mux.HandleFunc("POST /api/sessions/{id}/advance", s.sessionHandler(s.handleAdvance))

	// Discussion
	mux.Handle("POST /api/sessions/{id}/hints", s.rateLimit(s.sessionHandler(s.handleRequestHint)))
	mux.HandleFunc("POST /api/sessions/{id}/forgot/open", s.sessionHandler(s.handleOpenForgot))
	mux.HandleFunc("POST /api/sessions/{id}/forgot/select", s.sessionHandler(s.handleSelectForgot))
	mux.HandleFunc("POST /api/sessions/{id}/forgot/confirm", s.sessionHandler(s.handleConfirmForgot))
	mux.HandleFunc("POST /api/sessions/{id}/forgot/close", s.sessionHandler(s.handleCloseForgot))
	mux.HandleFunc("POST /api/sessions/{id}/results", s.sessionHandler(s.handleRevealResults))
	mux.HandleFunc("POST /api/sessions/{id}/reset", s.sessionHandler(s.handleReset))

	// Quit
	mux.HandleFunc("POST /api/sessions/{id}/quit", s.sessionHandler(s.handleRequestQuit))
	mux.HandleFunc("POST /api/sessions/{id}/quit/confirm", s.sessionHandler(s.handleConfirmQuit))
	mux.HandleFunc("POST /api/sessions/{id}/quit/cancel", s.sessionHandler(s.handleCancelQuit))

	mux.HandleFunc("GET /api/presets/categories", s.handleListCategories)
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/stats", s.handleStats)

	// WebSocket
	wsHandler := ws.NewHandler(s.hub, s.logger)
	mux.Handle("GET /ws", wsHandler)
}

// middleware is the chain every request passes through, outermost first
func (s *Server) middleware(next http.Handler) http.Handler {
	return requestID(cors(s.logRequests(next)))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.server.Shutdown(ctx)
}
