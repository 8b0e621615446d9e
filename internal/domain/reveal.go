package domain

// RevealStage is the private reveal progress of the current player
type RevealStage string

const (
	RevealHidden     RevealStage = "HIDDEN"
	RevealDecrypting RevealStage = "DECRYPTING"
	RevealRevealed   RevealStage = "REVEALED"
)

// RevealState tracks the tap-to-reveal gesture. Generation increases on every
// tap so a late completion from an earlier turn can be recognised and dropped.
type RevealState struct {
	Stage      RevealStage `json:"stage"`
	Generation uint64      `json:"generation"`
}

// CardKind says which face of the role card a player sees
type CardKind string

const (
	CardImposter CardKind = "IMPOSTER" // category and optional hint, no word
	CardWord     CardKind = "WORD"     // a secret word
)

// RoleCard is what a player sees when their card is revealed
type RoleCard struct {
	PlayerID int      `json:"playerId"`
	Kind     CardKind `json:"kind"`
	Category string   `json:"category"`
	Word     string   `json:"word,omitempty"`
	Hint     string   `json:"hint,omitempty"`
}

// CardFor computes the card for a player from current session fields.
// Imposters get category and hint only; undercover players get their decoy
// word; civilians get the secret word.
func (s *Session) CardFor(playerID int) (RoleCard, error) {
	player, err := s.PlayerByID(playerID)
	if err != nil {
		return RoleCard{}, err
	}

	card := RoleCard{PlayerID: player.ID, Category: s.Category}
	switch player.Role(s.Mode) {
	case RoleImposter:
		card.Kind = CardImposter
		card.Hint = s.ImposterHint
	case RoleUndercover:
		card.Kind = CardWord
		card.Word = s.ImposterWord
	default:
		card.Kind = CardWord
		card.Word = s.SecretWord
	}
	return card, nil
}

// ConfirmPlayer is the "I am Player N" step that leaves the pass screen
func (s *Session) ConfirmPlayer() error {
	if s.Phase != PhasePassDevice {
		return ErrInvalidPhase
	}
	s.Reveal.Stage = RevealHidden
	return s.transition(PhaseRevealRole)
}

// BeginReveal starts the decrypting stage and returns its generation
func (s *Session) BeginReveal() (uint64, error) {
	if s.Phase != PhaseRevealRole {
		return 0, ErrInvalidPhase
	}
	if s.Reveal.Stage != RevealHidden {
		return 0, ErrAlreadyRevealing
	}
	s.Reveal.Generation++
	s.Reveal.Stage = RevealDecrypting
	return s.Reveal.Generation, nil
}

// CompleteReveal flips a decrypting card to revealed. It reports false and
// changes nothing when generation no longer matches the current tap.
func (s *Session) CompleteReveal(generation uint64) bool {
	if s.Phase != PhaseRevealRole || s.Reveal.Stage != RevealDecrypting || s.Reveal.Generation != generation {
		return false
	}
	s.Reveal.Stage = RevealRevealed
	return true
}

// CurrentCard returns the current player's card once it is revealed
func (s *Session) CurrentCard() (RoleCard, error) {
	if s.Phase != PhaseRevealRole {
		return RoleCard{}, ErrInvalidPhase
	}
	if s.Reveal.Stage != RevealRevealed {
		return RoleCard{}, ErrNotRevealed
	}
	player, err := s.CurrentPlayer()
	if err != nil {
		return RoleCard{}, err
	}
	return s.CardFor(player.ID)
}

// Advance moves from a revealed card to the next player, or to discussion after the last one
func (s *Session) Advance() error {
	if s.Phase != PhaseRevealRole {
		return ErrInvalidPhase
	}
	if s.Reveal.Stage != RevealRevealed {
		return ErrNotRevealed
	}

	s.Reveal.Stage = RevealHidden

	if s.CurrentPlayerIndex < len(s.Players)-1 {
		s.CurrentPlayerIndex++
		return s.transition(PhasePassDevice)
	}

	s.TimeLeft = s.TimerDuration
	return s.transition(PhaseGameActive)
}
