package domain

// HintRequest is the input of the discussion prompt generator
type HintRequest struct {
	Category   string
	SecretWord string
}

// HintRequest returns what the generator needs for a new discussion prompt
func (s *Session) HintRequest() (HintRequest, error) {
	if s.Phase != PhaseGameActive {
		return HintRequest{}, ErrInvalidPhase
	}
	return HintRequest{Category: s.Category, SecretWord: s.SecretWord}, nil
}

// AddHint puts a new discussion prompt at the front of the feed
func (s *Session) AddHint(hint string) error {
	if s.Phase != PhaseGameActive {
		return ErrInvalidPhase
	}
	s.Hints = append([]string{hint}, s.Hints...)
	return nil
}
