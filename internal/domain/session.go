package domain

import (
	"strings"
)

// Settings are the process-wide limits and the initial template values
type Settings struct {
	MinPlayers            int `json:"minPlayers"`
	MaxPlayers            int `json:"maxPlayers"`
	DefaultPlayerCount    int `json:"defaultPlayerCount"`
	DefaultTimerSeconds   int `json:"defaultTimerSeconds"`
	MaxCustomTimerMinutes int `json:"maxCustomTimerMinutes"`
}

// DefaultSettings returns the default session settings
func DefaultSettings() Settings {
	return Settings{
		MinPlayers:            3,
		MaxPlayers:            20,
		DefaultPlayerCount:    4,
		DefaultTimerSeconds:   300,
		MaxCustomTimerMinutes: 120,
	}
}

// Session is the single mutable root of a pass-the-device game.
// Every transition goes through its methods (or Apply).
type Session struct {
	Phase Phase `json:"phase"`
	Mode  Mode  `json:"mode"`

	PlayerCount         int        `json:"playerCount"`
	Category            string     `json:"category"`
	Difficulty          Difficulty `json:"difficulty"`
	TimerDuration       int        `json:"timerDuration"`
	ImposterHintEnabled bool       `json:"imposterHintEnabled"`

	SecretWord   string `json:"-"`
	ImposterWord string `json:"-"`
	ImposterHint string `json:"-"`

	Players            []Player `json:"-"`
	ImposterIndex      int      `json:"-"`
	StartingPlayerID   int      `json:"startingPlayerId"`
	CurrentPlayerIndex int      `json:"currentPlayerIndex"`

	TimeLeft int      `json:"timeLeft"`
	Hints    []string `json:"hints"`

	CustomWords      []CustomWord `json:"-"`
	CustomInputIndex int          `json:"customInputIndex"`

	Reveal      RevealState `json:"reveal"`
	Forgot      ForgotModal `json:"forgot"`
	QuitPending bool        `json:"quitPending"`

	// Epoch changes on every reset so late async results can be discarded
	Epoch uint64 `json:"epoch"`

	settings Settings
	rng      RandSource
}

// NewSession creates a session in mode selection from the initial template
func NewSession(settings Settings, rng RandSource) *Session {
	if rng == nil {
		rng = DefaultRand()
	}
	s := &Session{settings: settings, rng: rng}
	s.applyTemplate()
	return s
}

// Settings returns the limits this session was created with
func (s *Session) Settings() Settings {
	return s.settings
}

func (s *Session) applyTemplate() {
	epoch := s.Epoch
	*s = Session{
		Phase:            PhaseModeSelection,
		Mode:             ModeAIClassic,
		PlayerCount:      s.settings.DefaultPlayerCount,
		Difficulty:       DifficultyMedium,
		TimerDuration:    s.settings.DefaultTimerSeconds,
		TimeLeft:         s.settings.DefaultTimerSeconds,
		ImposterIndex:    -1,
		StartingPlayerID: 1,
		Hints:            []string{},
		CustomWords:      []CustomWord{},
		Forgot:           closedForgotModal(),
		Epoch:            epoch,
		settings:         s.settings,
		rng:              s.rng,
	}
}

// Reset reinitialises the session from the template and returns to mode selection
func (s *Session) Reset() {
	s.Epoch++
	s.applyTemplate()
}

// transition moves to target if the phase table allows it
func (s *Session) transition(target Phase) error {
	if !s.Phase.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	s.Phase = target
	return nil
}

// SelectMode chooses the game variant and applies its setup defaults
func (s *Session) SelectMode(mode Mode) error {
	if s.Phase != PhaseModeSelection {
		return ErrInvalidPhase
	}
	if !mode.IsValid() {
		return ErrInvalidMode
	}

	s.Mode = mode
	s.Category = ""
	if mode.IsPreset() {
		s.Category = RandomCategory
	}
	s.Difficulty = DifficultyMedium
	s.ImposterHintEnabled = mode == ModeAIClassic

	return s.transition(PhaseSetup)
}

// BackToModes leaves setup without starting a round
func (s *Session) BackToModes() error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	return s.transition(PhaseModeSelection)
}

// SetPlayerCount changes the number of players
func (s *Session) SetPlayerCount(n int) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	if n < s.settings.MinPlayers || n > s.settings.MaxPlayers {
		return ErrInvalidPlayerCount
	}
	s.PlayerCount = n
	return nil
}

// SetCategory changes the category (free text for AI modes, a preset name or "Random" otherwise)
func (s *Session) SetCategory(category string) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	s.Category = category
	return nil
}

// SetDifficulty changes the difficulty
func (s *Session) SetDifficulty(d Difficulty) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	if !d.IsValid() {
		return ErrInvalidDifficulty
	}
	s.Difficulty = d
	return nil
}

// SetTimerDuration sets the discussion timer in seconds; 0 disables it.
// Other values must be a whole number of minutes up to the configured maximum.
func (s *Session) SetTimerDuration(seconds int) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	if seconds != 0 {
		if seconds < 60 || seconds%60 != 0 || seconds/60 > s.settings.MaxCustomTimerMinutes {
			return ErrInvalidTimer
		}
	}
	s.TimerDuration = seconds
	s.TimeLeft = seconds
	return nil
}

// SetImposterHintEnabled toggles the subtle imposter hint
func (s *Session) SetImposterHintEnabled(enabled bool) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}
	s.ImposterHintEnabled = enabled
	return nil
}

// StartStep tells the caller what Start needs next
type StartStep int

const (
	// StepCollectCustomWords means the session moved to custom input
	StepCollectCustomWords StartStep = iota
	// StepFetchMaterials means round materials must be fetched, then InitializeRound called
	StepFetchMaterials
)

// Start validates setup and branches by mode
func (s *Session) Start() (StartStep, error) {
	if s.Phase != PhaseSetup {
		return 0, ErrInvalidPhase
	}
	if s.Mode.IsAI() && strings.TrimSpace(s.Category) == "" {
		return 0, ErrBlankCategory
	}
	if s.PlayerCount < s.settings.MinPlayers {
		return 0, ErrNotEnoughPlayers
	}

	if s.Mode == ModeCustom {
		s.CustomWords = []CustomWord{}
		s.CustomInputIndex = 0
		if err := s.transition(PhaseCustomInput); err != nil {
			return 0, err
		}
		return StepCollectCustomWords, nil
	}

	return StepFetchMaterials, nil
}

// MaterialsRequest describes what the materials provider must produce for this setup
func (s *Session) MaterialsRequest() MaterialsRequest {
	category := strings.TrimSpace(s.Category)
	if s.Mode.IsPreset() && category == "" {
		category = RandomCategory
	}
	return MaterialsRequest{
		Mode:       s.Mode,
		Category:   category,
		Difficulty: s.Difficulty,
		WantHint:   s.ImposterHintEnabled && s.Mode.SupportsImposterHint(),
	}
}

// CurrentPlayer returns the player whose turn it is in the reveal flow
func (s *Session) CurrentPlayer() (Player, error) {
	if !s.Phase.InRevealFlow() {
		return Player{}, ErrInvalidPhase
	}
	if s.CurrentPlayerIndex < 0 || s.CurrentPlayerIndex >= len(s.Players) {
		return Player{}, ErrPlayerNotFound
	}
	return s.Players[s.CurrentPlayerIndex], nil
}

// PlayerByID returns a player by id
func (s *Session) PlayerByID(id int) (Player, error) {
	if id < 1 || id > len(s.Players) {
		return Player{}, ErrPlayerNotFound
	}
	return s.Players[id-1], nil
}

// RevealResults ends discussion
func (s *Session) RevealResults() error {
	if s.Phase != PhaseGameActive {
		return ErrInvalidPhase
	}
	s.Forgot = closedForgotModal()
	return s.transition(PhaseGameOver)
}

// Results returns the round outcome; only available in game over
func (s *Session) Results() (Results, error) {
	if s.Phase != PhaseGameOver {
		return Results{}, ErrInvalidPhase
	}
	imposter := s.Players[s.ImposterIndex]
	res := Results{
		ImposterID:   imposter.ID,
		ImposterRole: imposter.Role(s.Mode),
		Category:     s.Category,
		SecretWord:   s.SecretWord,
	}
	if s.Mode.IsUndercover() {
		res.ImposterWord = s.ImposterWord
	}
	return res, nil
}

// PlayAgain resets after the results screen
func (s *Session) PlayAgain() error {
	if s.Phase != PhaseGameOver {
		return ErrInvalidPhase
	}
	s.Reset()
	return nil
}

// RequestQuit asks for confirmation before abandoning the session.
// It is accepted in every phase.
func (s *Session) RequestQuit() error {
	s.QuitPending = true
	return nil
}

// CancelQuit dismisses a pending quit confirmation
func (s *Session) CancelQuit() error {
	if !s.QuitPending {
		return ErrQuitNotRequested
	}
	s.QuitPending = false
	return nil
}

// ConfirmQuit applies a requested quit
func (s *Session) ConfirmQuit() error {
	if !s.QuitPending {
		return ErrQuitNotRequested
	}
	s.Reset()
	return nil
}

// Results is the round outcome shown on the game over screen
type Results struct {
	ImposterID   int    `json:"imposterId"`
	ImposterRole Role   `json:"imposterRole"`
	Category     string `json:"category"`
	SecretWord   string `json:"secretWord"`
	ImposterWord string `json:"imposterWord,omitempty"`
}
