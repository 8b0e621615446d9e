package app

import (
	"errors"

	"undercover/internal/domain"
)

// Error codes shared by the HTTP and WebSocket transports
const (
	ErrCodeSessionNotFound      = "SESSION_NOT_FOUND"
	ErrCodeInvalidPhase         = "INVALID_PHASE"
	ErrCodeInvalidMode          = "INVALID_MODE"
	ErrCodeInvalidDifficulty    = "INVALID_DIFFICULTY"
	ErrCodeInvalidPlayerCount   = "INVALID_PLAYER_COUNT"
	ErrCodeNotEnoughPlayers     = "NOT_ENOUGH_PLAYERS"
	ErrCodeBlankCategory        = "BLANK_CATEGORY"
	ErrCodeBlankCustomField     = "BLANK_CUSTOM_FIELD"
	ErrCodeInvalidTimer         = "INVALID_TIMER"
	ErrCodeNotRevealed          = "NOT_REVEALED"
	ErrCodeAlreadyRevealing     = "ALREADY_REVEALING"
	ErrCodePlayerNotFound       = "PLAYER_NOT_FOUND"
	ErrCodeInvalidModalStep     = "INVALID_MODAL_STEP"
	ErrCodeQuitNotRequested     = "QUIT_NOT_REQUESTED"
	ErrCodeMaterialsUnavailable = "MATERIALS_UNAVAILABLE"
	ErrCodeBusy                 = "BUSY"
	ErrCodeSessionChanged       = "SESSION_CHANGED"
	ErrCodeInvalidMessage       = "INVALID_MESSAGE"
	ErrCodeRateLimited          = "RATE_LIMITED"
	ErrCodeInternal             = "INTERNAL_ERROR"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{domain.ErrSessionNotFound, ErrCodeSessionNotFound},
	{domain.ErrInvalidPhase, ErrCodeInvalidPhase},
	{domain.ErrInvalidTransition, ErrCodeInvalidPhase},
	{domain.ErrInvalidMode, ErrCodeInvalidMode},
	{domain.ErrInvalidDifficulty, ErrCodeInvalidDifficulty},
	{domain.ErrInvalidPlayerCount, ErrCodeInvalidPlayerCount},
	{domain.ErrNotEnoughPlayers, ErrCodeNotEnoughPlayers},
	{domain.ErrBlankCategory, ErrCodeBlankCategory},
	{domain.ErrBlankCustomField, ErrCodeBlankCustomField},
	{domain.ErrInvalidTimer, ErrCodeInvalidTimer},
	{domain.ErrNotRevealed, ErrCodeNotRevealed},
	{domain.ErrAlreadyRevealing, ErrCodeAlreadyRevealing},
	{domain.ErrPlayerNotFound, ErrCodePlayerNotFound},
	{domain.ErrModalClosed, ErrCodeInvalidModalStep},
	{domain.ErrInvalidModalStep, ErrCodeInvalidModalStep},
	{domain.ErrQuitNotRequested, ErrCodeQuitNotRequested},
	{domain.ErrMaterialsUnavailable, ErrCodeMaterialsUnavailable},
	{domain.ErrBusy, ErrCodeBusy},
	{ErrSessionChanged, ErrCodeSessionChanged},
	{domain.ErrUnknownCommand, ErrCodeInvalidMessage},
}

// ErrorCode maps an error to its stable client-facing code
func ErrorCode(err error) string {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code
		}
	}
	return ErrCodeInternal
}
