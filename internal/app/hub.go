package app

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"undercover/internal/domain"
)

const (
	// DefaultStaleSessionTimeout is how long before an idle session is cleaned up
	DefaultStaleSessionTimeout = 2 * time.Hour

	cleanupInterval = 10 * time.Minute
)

// ErrHubClosed is returned when creating a session after shutdown
var ErrHubClosed = errors.New("game hub is closed")

// GameHub manages all active game sessions
type GameHub struct {
	sessions     map[string]*GameSession
	mu           sync.RWMutex
	materials    Materials
	opts         Options
	staleTimeout time.Duration
	logger       *slog.Logger
	done         chan struct{}
	closed       bool
}

// NewGameHub creates a new game hub
func NewGameHub(materials Materials, opts Options, staleTimeout time.Duration, logger *slog.Logger) *GameHub {
	if staleTimeout <= 0 {
		staleTimeout = DefaultStaleSessionTimeout
	}
	hub := &GameHub{
		sessions:     make(map[string]*GameSession),
		materials:    materials,
		opts:         opts,
		staleTimeout: staleTimeout,
		logger:       logger,
		done:         make(chan struct{}),
	}

	// Start cleanup goroutine
	go hub.cleanupLoop()

	return hub
}

// CreateSession creates a new session in mode selection
func (h *GameHub) CreateSession() (*GameSession, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}

	id := uuid.NewString()
	session := NewGameSession(id, h.materials, h.opts, h.logger)
	h.sessions[id] = session

	h.logger.Info("Session created", "sessionID", id)

	return session, nil
}

// GetSession returns a session by id
func (h *GameHub) GetSession(id string) (*GameSession, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	session, ok := h.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes a session
func (h *GameHub) DeleteSession(id string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	session, ok := h.sessions[id]
	if !ok {
		return domain.ErrSessionNotFound
	}
	session.Close()
	delete(h.sessions, id)
	h.logger.Info("Session deleted", "sessionID", id)
	return nil
}

// GetSessionCount returns the number of active sessions
func (h *GameHub) GetSessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// GetClientCount returns the number of connected clients across all sessions
func (h *GameHub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, session := range h.sessions {
		total += session.ClientCount()
	}
	return total
}

// Close shuts down the hub and all sessions
func (h *GameHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	close(h.done)

	for _, session := range h.sessions {
		session.Close()
	}
	h.sessions = make(map[string]*GameSession)
}

// cleanupLoop periodically cleans up stale sessions
func (h *GameHub) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-h.done:
			return
		case now := <-ticker.C:
			h.cleanupStaleSessions(now)
		}
	}
}

// cleanupStaleSessions removes sessions with no clients that have been idle too long
func (h *GameHub) cleanupStaleSessions(now time.Time) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, session := range h.sessions {
		if session.ClientCount() == 0 && now.Sub(session.LastActive()) > h.staleTimeout {
			session.Close()
			delete(h.sessions, id)
			h.logger.Info("Stale session cleaned up", "sessionID", id)
		}
	}
}
