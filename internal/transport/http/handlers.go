package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"undercover/internal/app"
	"undercover/internal/domain"
)

const maxBodyBytes = 1 << 16

// errInvalidBody marks a request body that could not be decoded
var errInvalidBody = errors.New("invalid request body")

// Response is a standard API response
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

// ErrorInfo contains error details
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// SelectModeRequest is the body of POST /mode
type SelectModeRequest struct {
	Mode string `json:"mode"`
}

// SetupRequest is the body of PATCH /setup; omitted fields are left unchanged
type SetupRequest struct {
	PlayerCount         *int    `json:"playerCount"`
	Category            *string `json:"category"`
	Difficulty          *string `json:"difficulty"`
	TimerDuration       *int    `json:"timerDuration"`
	ImposterHintEnabled *bool   `json:"imposterHintEnabled"`
}

// CustomWordRequest is the body of POST /custom-words
type CustomWordRequest struct {
	Category string `json:"category"`
	Word     string `json:"word"`
}

// SelectForgotRequest is the body of POST /forgot/select
type SelectForgotRequest struct {
	PlayerID int `json:"playerId"`
}

// CategoriesResponse is the response for the preset categories endpoint
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}

// HealthResponse is the response for health check
type HealthResponse struct {
	Status string `json:"status"`
}

// StatsResponse is the response for stats endpoint
type StatsResponse struct {
	ActiveSessions   int `json:"activeSessions"`
	ConnectedClients int `json:"connectedClients"`
}

// sessionAction runs one operation against a looked-up session
type sessionAction func(r *http.Request, gs *app.GameSession) (app.Snapshot, error)

// sessionHandler resolves {id}, runs action and writes the snapshot or the error
func (s *Server) sessionHandler(action sessionAction) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		gs, err := s.hub.GetSession(r.PathValue("id"))
		if err != nil {
			s.sendDomainError(w, err)
			return
		}

		snap, err := action(r, gs)
		if err != nil {
			s.sendDomainError(w, err)
			return
		}
		s.sendSuccess(w, snap)
	}
}

// handleCreateSession handles POST /api/sessions
func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	gs, err := s.hub.CreateSession()
	if err != nil {
		s.logger.Error("failed to create session", "error", err)
		s.sendError(w, http.StatusServiceUnavailable, "CREATION_FAILED", "Failed to create session")
		return
	}

	w.Header().Set("Location", "/api/sessions/"+gs.ID())
	s.sendJSON(w, http.StatusCreated, &Response{Success: true, Data: gs.Snapshot()})
}

// handleDeleteSession handles DELETE /api/sessions/{id}
func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.hub.DeleteSession(r.PathValue("id")); err != nil {
		s.sendDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleGetSession(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.Snapshot(), nil
}

func (s *Server) handleSelectMode(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	var req SelectModeRequest
	if err := decodeJSON(r, &req); err != nil {
		return app.Snapshot{}, err
	}
	mode, err := domain.ParseMode(req.Mode)
	if err != nil {
		return app.Snapshot{}, err
	}
	return gs.SelectMode(mode)
}

func (s *Server) handleBackToModes(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.BackToModes()
}

func (s *Server) handleUpdateSetup(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	var req SetupRequest
	if err := decodeJSON(r, &req); err != nil {
		return app.Snapshot{}, err
	}

	update := domain.SetupUpdate{
		PlayerCount:         req.PlayerCount,
		Category:            req.Category,
		TimerDuration:       req.TimerDuration,
		ImposterHintEnabled: req.ImposterHintEnabled,
	}
	if req.Difficulty != nil {
		d, err := domain.ParseDifficulty(*req.Difficulty)
		if err != nil {
			return app.Snapshot{}, err
		}
		update.Difficulty = &d
	}
	return gs.UpdateSetup(update)
}

// Generator calls outlive a dropped client; the provider's timeout bounds them.
// A cancelled fetch would otherwise start the round on a fallback word.
func (s *Server) handleStart(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.Start(context.WithoutCancel(r.Context()))
}

func (s *Server) handleSubmitCustomWord(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	var req CustomWordRequest
	if err := decodeJSON(r, &req); err != nil {
		return app.Snapshot{}, err
	}
	return gs.SubmitCustomWord(req.Category, req.Word)
}

func (s *Server) handleConfirmPlayer(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.ConfirmPlayer()
}

func (s *Server) handleTapReveal(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.TapReveal()
}

func (s *Server) handleAdvance(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.Advance()
}

func (s *Server) handleRequestHint(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.RequestHint(context.WithoutCancel(r.Context()))
}

func (s *Server) handleOpenForgot(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.OpenForgot()
}

func (s *Server) handleSelectForgot(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	var req SelectForgotRequest
	if err := decodeJSON(r, &req); err != nil {
		return app.Snapshot{}, err
	}
	return gs.SelectForgot(req.PlayerID)
}

func (s *Server) handleConfirmForgot(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.ConfirmForgot()
}

func (s *Server) handleCloseForgot(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.CloseForgot()
}

func (s *Server) handleRevealResults(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.RevealResults()
}

func (s *Server) handleReset(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.Reset()
}

func (s *Server) handleRequestQuit(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.RequestQuit()
}

func (s *Server) handleConfirmQuit(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.ConfirmQuit()
}

func (s *Server) handleCancelQuit(r *http.Request, gs *app.GameSession) (app.Snapshot, error) {
	return gs.CancelQuit()
}

// handleListCategories handles GET /api/presets/categories
func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	undercover, _ := strconv.ParseBool(r.URL.Query().Get("undercover"))

	categories := s.presets.ListCategories()
	if undercover {
		categories = s.presets.ListUndercoverCategories()
	}
	s.sendSuccess(w, &CategoriesResponse{Categories: append([]string{domain.RandomCategory}, categories...)})
}

// handleHealth handles GET /api/health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &HealthResponse{
		Status: "ok",
	})
}

// handleStats handles GET /api/stats
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	s.sendSuccess(w, &StatsResponse{
		ActiveSessions:   s.hub.GetSessionCount(),
		ConnectedClients: s.hub.GetClientCount(),
	})
}

// decodeJSON decodes a bounded JSON body into v
func decodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %v", errInvalidBody, err)
	}
	return nil
}

// statusFor maps a domain or app error to an HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody), domain.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrMaterialsUnavailable):
		return http.StatusServiceUnavailable
	case app.ErrorCode(err) != app.ErrCodeInternal:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// sendDomainError writes err as an error envelope with its stable code
func (s *Server) sendDomainError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	code := app.ErrorCode(err)
	message := err.Error()

	switch {
	case errors.Is(err, errInvalidBody):
		code = app.ErrCodeInvalidMessage
	case status == http.StatusInternalServerError:
		s.logger.Error("request failed", "error", err)
		message = "Internal server error"
	case errors.Is(err, domain.ErrMaterialsUnavailable):
		message = domain.ErrMaterialsUnavailable.Error()
	}
	s.sendError(w, status, code, message)
}

// sendSuccess sends a successful JSON response
func (s *Server) sendSuccess(w http.ResponseWriter, data interface{}) {
	s.sendJSON(w, http.StatusOK, &Response{
		Success: true,
		Data:    data,
	})
}

// sendError sends an error JSON response
func (s *Server) sendError(w http.ResponseWriter, status int, code, message string) {
	s.sendJSON(w, status, &Response{
		Success: false,
		Error: &ErrorInfo{
			Code:    code,
			Message: message,
		},
	})
}

func (s *Server) sendJSON(w http.ResponseWriter, status int, resp *Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.logger.Debug("failed to write response", "error", err)
	}
}
