package domain

import "errors"

// Domain errors
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrInvalidPhase         = errors.New("invalid action for current phase")
	ErrInvalidTransition    = errors.New("invalid phase transition")
	ErrInvalidMode          = errors.New("unknown game mode")
	ErrInvalidDifficulty    = errors.New("unknown difficulty")
	ErrInvalidPlayerCount   = errors.New("player count out of range")
	ErrNotEnoughPlayers     = errors.New("minimum 3 players required")
	ErrBlankCategory        = errors.New("please enter a category")
	ErrBlankCustomField     = errors.New("please fill in both fields")
	ErrInvalidTimer         = errors.New("timer must be off, or a whole number of minutes")
	ErrNotRevealed          = errors.New("card has not been revealed yet")
	ErrAlreadyRevealing     = errors.New("card is already revealing")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrModalClosed          = errors.New("forgot-word modal is not open")
	ErrInvalidModalStep     = errors.New("invalid step for forgot-word modal")
	ErrQuitNotRequested     = errors.New("quit has not been requested")
	ErrMaterialsUnavailable = errors.New("failed to generate word, try again")
	ErrBusy                 = errors.New("request already in progress")
	ErrUnknownCommand       = errors.New("unknown command")
)

// IsValidationError reports whether err is a user input validation error
func IsValidationError(err error) bool {
	switch {
	case errors.Is(err, ErrInvalidMode),
		errors.Is(err, ErrInvalidDifficulty),
		errors.Is(err, ErrInvalidPlayerCount),
		errors.Is(err, ErrNotEnoughPlayers),
		errors.Is(err, ErrBlankCategory),
		errors.Is(err, ErrBlankCustomField),
		errors.Is(err, ErrInvalidTimer):
		return true
	}
	return false
}
