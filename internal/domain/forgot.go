package domain

// ForgotStep is a step of the forgot-word modal
type ForgotStep string

const (
	ForgotSelect  ForgotStep = "SELECT"
	ForgotConfirm ForgotStep = "CONFIRM"
	ForgotReveal  ForgotStep = "REVEAL"
)

// ForgotModal is the transient state of the in-discussion re-reveal flow.
// PlayerID is 0 when no player is selected.
type ForgotModal struct {
	IsOpen   bool       `json:"isOpen"`
	Step     ForgotStep `json:"step"`
	PlayerID int        `json:"playerId,omitempty"`
}

func closedForgotModal() ForgotModal {
	return ForgotModal{IsOpen: false, Step: ForgotSelect}
}

// OpenForgot opens the modal at the player selection step
func (s *Session) OpenForgot() error {
	if s.Phase != PhaseGameActive {
		return ErrInvalidPhase
	}
	s.Forgot = ForgotModal{IsOpen: true, Step: ForgotSelect}
	return nil
}

// SelectForgotPlayer picks the player who forgot their word
func (s *Session) SelectForgotPlayer(playerID int) error {
	if s.Phase != PhaseGameActive {
		return ErrInvalidPhase
	}
	if !s.Forgot.IsOpen {
		return ErrModalClosed
	}
	if s.Forgot.Step != ForgotSelect {
		return ErrInvalidModalStep
	}
	if _, err := s.PlayerByID(playerID); err != nil {
		return err
	}
	s.Forgot = ForgotModal{IsOpen: true, Step: ForgotConfirm, PlayerID: playerID}
	return nil
}

// ConfirmForgot is the privacy gate before showing the card again
func (s *Session) ConfirmForgot() error {
	if s.Phase != PhaseGameActive {
		return ErrInvalidPhase
	}
	if !s.Forgot.IsOpen {
		return ErrModalClosed
	}
	if s.Forgot.Step != ForgotConfirm {
		return ErrInvalidModalStep
	}
	s.Forgot.Step = ForgotReveal
	return nil
}

// ForgotCard returns the selected player's card, recomputed from session fields
func (s *Session) ForgotCard() (RoleCard, error) {
	if !s.Forgot.IsOpen {
		return RoleCard{}, ErrModalClosed
	}
	if s.Forgot.Step != ForgotReveal {
		return RoleCard{}, ErrInvalidModalStep
	}
	return s.CardFor(s.Forgot.PlayerID)
}

// CloseForgot discards the modal state from any step
func (s *Session) CloseForgot() {
	s.Forgot = closedForgotModal()
}
