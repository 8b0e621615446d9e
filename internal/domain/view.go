package domain

import "github.com/samber/lo"

// View is the per-phase read model of a session. Secret content only
// appears on a revealed card, the forgot-word reveal step, and results.
type View struct {
	Phase               Phase        `json:"phase"`
	Mode                Mode         `json:"mode"`
	PlayerCount         int          `json:"playerCount"`
	Category            string       `json:"category"`
	Difficulty          Difficulty   `json:"difficulty"`
	TimerDuration       int          `json:"timerDuration"`
	ImposterHintEnabled bool         `json:"imposterHintEnabled"`
	QuitPending         bool         `json:"quitPending"`
	CustomInput         *CustomView  `json:"customInput,omitempty"`
	Reveal              *RevealView  `json:"reveal,omitempty"`
	Discussion          *Discussion  `json:"discussion,omitempty"`
	Results             *Results     `json:"results,omitempty"`
	Players             []PlayerInfo `json:"players,omitempty"`
}

// CustomView is shown while players enter custom words
type CustomView struct {
	PlayerID  int `json:"playerId"`
	Submitted int `json:"submitted"`
}

// RevealView is shown during the pass/reveal sequence
type RevealView struct {
	PlayerID int         `json:"playerId"`
	Stage    RevealStage `json:"stage"`
	Card     *RoleCard   `json:"card,omitempty"`
}

// Discussion is shown during open discussion
type Discussion struct {
	StartingPlayerID int         `json:"startingPlayerId"`
	TimeLeft         int         `json:"timeLeft"`
	TimerEnabled     bool        `json:"timerEnabled"`
	Hints            []string    `json:"hints"`
	Forgot           ForgotModal `json:"forgot"`
	ForgotCard       *RoleCard   `json:"forgotCard,omitempty"`
}

// View builds the read model for the current phase
func (s *Session) View() View {
	v := View{
		Phase:               s.Phase,
		Mode:                s.Mode,
		PlayerCount:         s.PlayerCount,
		Category:            s.Category,
		Difficulty:          s.Difficulty,
		TimerDuration:       s.TimerDuration,
		ImposterHintEnabled: s.ImposterHintEnabled,
		QuitPending:         s.QuitPending,
	}

	if len(s.Players) > 0 {
		v.Players = lo.Map(s.Players, func(p Player, _ int) PlayerInfo { return p.ToInfo() })
	}

	switch s.Phase {
	case PhaseCustomInput:
		v.CustomInput = &CustomView{PlayerID: s.CustomInputPlayerID(), Submitted: len(s.CustomWords)}
	case PhasePassDevice, PhaseRevealRole:
		if p, err := s.CurrentPlayer(); err == nil {
			rv := &RevealView{PlayerID: p.ID, Stage: RevealHidden}
			if s.Phase == PhaseRevealRole {
				rv.Stage = s.Reveal.Stage
				if card, err := s.CurrentCard(); err == nil {
					rv.Card = &card
				}
			}
			v.Reveal = rv
		}
	case PhaseGameActive:
		d := &Discussion{
			StartingPlayerID: s.StartingPlayerID,
			TimeLeft:         s.TimeLeft,
			TimerEnabled:     s.TimerDuration > 0,
			Hints:            append([]string{}, s.Hints...),
			Forgot:           s.Forgot,
		}
		if card, err := s.ForgotCard(); err == nil {
			d.ForgotCard = &card
		}
		v.Discussion = d
	case PhaseGameOver:
		if res, err := s.Results(); err == nil {
			v.Results = &res
		}
	}

	return v
}
