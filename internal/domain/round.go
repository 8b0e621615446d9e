package domain

import (
	"strings"

	"github.com/samber/lo"
)

// MaterialsRequest is what the materials provider is asked for at round start
type MaterialsRequest struct {
	Mode       Mode       `json:"mode"`
	Category   string     `json:"category"`
	Difficulty Difficulty `json:"difficulty"`
	WantHint   bool       `json:"wantHint"`
}

// RoundMaterials are the secret word(s) and optional hint for a round
type RoundMaterials struct {
	Category     string `json:"category"`
	SecretWord   string `json:"secretWord"`
	ImposterWord string `json:"imposterWord,omitempty"`
	ImposterHint string `json:"imposterHint,omitempty"`
}

// Assignment is the outcome of role assignment for one round
type Assignment struct {
	Players          []Player
	ImposterIndex    int
	StartingPlayerID int
}

// AssignRoles picks one imposter seat and an independent starting player
func AssignRoles(playerCount int, rng RandSource) Assignment {
	imposterIdx := rng.Intn(playerCount)
	startID := rng.Intn(playerCount) + 1

	players := lo.Times(playerCount, func(i int) Player {
		return Player{ID: i + 1, IsImposter: i == imposterIdx}
	})

	return Assignment{
		Players:          players,
		ImposterIndex:    imposterIdx,
		StartingPlayerID: startID,
	}
}

// InitializeRound assigns roles, stores the materials and hands the device to player 1
func (s *Session) InitializeRound(m RoundMaterials) error {
	if s.Phase != PhaseSetup && s.Phase != PhaseCustomInput {
		return ErrInvalidPhase
	}
	if strings.TrimSpace(m.SecretWord) == "" {
		return ErrMaterialsUnavailable
	}
	if s.PlayerCount < s.settings.MinPlayers {
		return ErrNotEnoughPlayers
	}

	a := AssignRoles(s.PlayerCount, s.rng)

	if m.Category != "" {
		s.Category = m.Category
	}
	s.SecretWord = m.SecretWord
	s.ImposterWord = ""
	if s.Mode.IsUndercover() {
		s.ImposterWord = m.ImposterWord
	}
	s.ImposterHint = ""
	if !s.Mode.IsUndercover() {
		s.ImposterHint = m.ImposterHint
	}

	s.Players = a.Players
	s.ImposterIndex = a.ImposterIndex
	s.StartingPlayerID = a.StartingPlayerID
	s.CurrentPlayerIndex = 0
	s.TimeLeft = s.TimerDuration
	s.Hints = []string{}
	s.Reveal = RevealState{Stage: RevealHidden, Generation: s.Reveal.Generation}
	s.Forgot = closedForgotModal()
	s.QuitPending = false

	return s.transition(PhasePassDevice)
}

// Imposter returns the imposter of the current round
func (s *Session) Imposter() (Player, error) {
	if s.ImposterIndex < 0 || s.ImposterIndex >= len(s.Players) {
		return Player{}, ErrPlayerNotFound
	}
	return s.Players[s.ImposterIndex], nil
}
