package domain

// Command is a user-triggered event applied to a session with Apply
type Command interface {
	commandName() string
}

type (
	CmdSelectMode       struct{ Mode Mode }
	CmdBackToModes      struct{}
	CmdUpdateSetup      struct{ Setup SetupUpdate }
	CmdSubmitCustomWord struct{ Category, Word string }
	CmdConfirmPlayer    struct{}
	CmdTapReveal        struct{}
	CmdCompleteReveal   struct{ Generation uint64 }
	CmdAdvance          struct{}
	CmdTimerTick        struct{}
	CmdAddHint          struct{ Hint string }
	CmdOpenForgot       struct{}
	CmdSelectForgot     struct{ PlayerID int }
	CmdConfirmForgot    struct{}
	CmdCloseForgot      struct{}
	CmdRevealResults    struct{}
	CmdPlayAgain        struct{}
	CmdRequestQuit      struct{}
	CmdConfirmQuit      struct{}
	CmdCancelQuit       struct{}
	CmdInitializeRound  struct{ Materials RoundMaterials }
)

func (CmdSelectMode) commandName() string { return "select_mode" }
func (CmdBackToModes) commandName() string { return "back_to_modes" }
func (CmdUpdateSetup) commandName() string { return "update_setup" }
func (CmdSubmitCustomWord) commandName() string { return "submit_custom_word" }
func (CmdConfirmPlayer) commandName() string { return "confirm_player" }
func (CmdTapReveal) commandName() string { return "tap_reveal" }
func (CmdCompleteReveal) commandName() string { return "complete_reveal" }
func (CmdAdvance) commandName() string { return "advance" }
func (CmdTimerTick) commandName() string { return "timer_tick" }
func (CmdAddHint) commandName() string { return "add_hint" }
func (CmdOpenForgot) commandName() string { return "open_forgot" }
func (CmdSelectForgot) commandName() string { return "select_forgot" }
func (CmdConfirmForgot) commandName() string { return "confirm_forgot" }
func (CmdCloseForgot) commandName() string { return "close_forgot" }
func (CmdRevealResults) commandName() string { return "reveal_results" }
func (CmdPlayAgain) commandName() string { return "play_again" }
func (CmdRequestQuit) commandName() string { return "request_quit" }
func (CmdConfirmQuit) commandName() string { return "confirm_quit" }
func (CmdCancelQuit) commandName() string { return "cancel_quit" }
func (CmdInitializeRound) commandName() string { return "initialize_round" }

// CommandName returns a stable name for logging
func CommandName(c Command) string {
	if c == nil {
		return ""
	}
	return c.commandName()
}

// SetupUpdate carries the setup fields to change; nil fields are left alone
type SetupUpdate struct {
	PlayerCount         *int        `json:"playerCount,omitempty"`
	Category            *string     `json:"category,omitempty"`
	Difficulty          *Difficulty `json:"difficulty,omitempty"`
	TimerDuration       *int        `json:"timerDuration,omitempty"`
	ImposterHintEnabled *bool       `json:"imposterHintEnabled,omitempty"`
}

// ApplySetup applies every present field, stopping at the first invalid one.
// Fields are validated before any of them is written.
func (s *Session) ApplySetup(u SetupUpdate) error {
	if s.Phase != PhaseSetup {
		return ErrInvalidPhase
	}

	staged := *s
	if u.PlayerCount != nil {
		if err := staged.SetPlayerCount(*u.PlayerCount); err != nil {
			return err
		}
	}
	if u.Category != nil {
		if err := staged.SetCategory(*u.Category); err != nil {
			return err
		}
	}
	if u.Difficulty != nil {
		if err := staged.SetDifficulty(*u.Difficulty); err != nil {
			return err
		}
	}
	if u.TimerDuration != nil {
		if err := staged.SetTimerDuration(*u.TimerDuration); err != nil {
			return err
		}
	}
	if u.ImposterHintEnabled != nil {
		if err := staged.SetImposterHintEnabled(*u.ImposterHintEnabled); err != nil {
			return err
		}
	}

	*s = staged
	return nil
}

// Apply dispatches a command to the matching transition. The session is left
// unchanged when an error is returned.
func (s *Session) Apply(cmd Command) error {
	switch c := cmd.(type) {
	case CmdSelectMode:
		return s.SelectMode(c.Mode)
	case CmdBackToModes:
		return s.BackToModes()
	case CmdUpdateSetup:
		return s.ApplySetup(c.Setup)
	case CmdSubmitCustomWord:
		_, err := s.SubmitCustomWord(c.Category, c.Word)
		return err
	case CmdConfirmPlayer:
		return s.ConfirmPlayer()
	case CmdTapReveal:
		_, err := s.BeginReveal()
		return err
	case CmdCompleteReveal:
		s.CompleteReveal(c.Generation)
		return nil
	case CmdAdvance:
		return s.Advance()
	case CmdTimerTick:
		s.Tick()
		return nil
	case CmdAddHint:
		return s.AddHint(c.Hint)
	case CmdOpenForgot:
		return s.OpenForgot()
	case CmdSelectForgot:
		return s.SelectForgotPlayer(c.PlayerID)
	case CmdConfirmForgot:
		return s.ConfirmForgot()
	case CmdCloseForgot:
		s.CloseForgot()
		return nil
	case CmdRevealResults:
		return s.RevealResults()
	case CmdPlayAgain:
		return s.PlayAgain()
	case CmdRequestQuit:
		return s.RequestQuit()
	case CmdConfirmQuit:
		return s.ConfirmQuit()
	case CmdCancelQuit:
		return s.CancelQuit()
	case CmdInitializeRound:
		return s.InitializeRound(c.Materials)
	default:
		return ErrUnknownCommand
	}
}
