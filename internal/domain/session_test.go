package domain

import (
	"errors"
	"testing"
)

func newTestSession(draws ...int) *Session {
	return NewSession(DefaultSettings(), &SequenceRand{Values: draws})
}

// playThroughReveals confirms, reveals and advances every player, returning the visit order
func playThroughReveals(t *testing.T, s *Session) []int {
	t.Helper()
	var visited []int
	for s.Phase == PhasePassDevice {
		p, err := s.CurrentPlayer()
		if err != nil {
			t.Fatalf("CurrentPlayer: %v", err)
		}
		visited = append(visited, p.ID)

		if err := s.ConfirmPlayer(); err != nil {
			t.Fatalf("ConfirmPlayer: %v", err)
		}
		gen, err := s.BeginReveal()
		if err != nil {
			t.Fatalf("BeginReveal: %v", err)
		}
		if !s.CompleteReveal(gen) {
			t.Fatal("CompleteReveal returned false for current generation")
		}
		if err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}
	return visited
}

func TestNewSessionTemplate(t *testing.T) {
	s := newTestSession()
	if s.Phase != PhaseModeSelection {
		t.Errorf("Expected phase %s, got %s", PhaseModeSelection, s.Phase)
	}
	if s.PlayerCount != 4 || s.Difficulty != DifficultyMedium || s.TimerDuration != 300 {
		t.Errorf("Unexpected template: players=%d difficulty=%s timer=%d", s.PlayerCount, s.Difficulty, s.TimerDuration)
	}
	if s.ImposterHintEnabled {
		t.Error("Imposter hint should be disabled in the template")
	}
	if s.Forgot.IsOpen || s.Forgot.Step != ForgotSelect || s.Forgot.PlayerID != 0 {
		t.Errorf("Forgot modal should start closed, got %+v", s.Forgot)
	}
}

func TestSelectModeDefaults(t *testing.T) {
	tests := []struct {
		mode     Mode
		category string
		hint     bool
	}{
		{ModeAIClassic, "", true},
		{ModeAIUndercover, "", false},
		{ModePreset, RandomCategory, false},
		{ModePresetUndercover, RandomCategory, false},
		{ModeCustom, "", false},
	}

	for _, tt := range tests {
		s := newTestSession()
		if err := s.SelectMode(tt.mode); err != nil {
			t.Fatalf("SelectMode(%s): %v", tt.mode, err)
		}
		if s.Phase != PhaseSetup {
			t.Errorf("%s: expected setup phase, got %s", tt.mode, s.Phase)
		}
		if s.Category != tt.category {
			t.Errorf("%s: expected category %q, got %q", tt.mode, tt.category, s.Category)
		}
		if s.ImposterHintEnabled != tt.hint {
			t.Errorf("%s: expected hint toggle %v", tt.mode, tt.hint)
		}
	}
}

func TestSelectModeRejectsUnknownAndWrongPhase(t *testing.T) {
	s := newTestSession()
	if err := s.SelectMode("CHESS"); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Expected ErrInvalidMode, got %v", err)
	}
	if err := s.SelectMode(ModeCustom); err != nil {
		t.Fatal(err)
	}
	if err := s.SelectMode(ModePreset); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Expected ErrInvalidPhase, got %v", err)
	}
}

func TestStartValidation(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)

	if _, err := s.Start(); !errors.Is(err, ErrBlankCategory) {
		t.Errorf("Expected ErrBlankCategory, got %v", err)
	}
	if s.Phase != PhaseSetup {
		t.Errorf("Phase should stay in setup, got %s", s.Phase)
	}

	s.SetCategory("   ")
	if _, err := s.Start(); !errors.Is(err, ErrBlankCategory) {
		t.Errorf("Expected ErrBlankCategory for whitespace category, got %v", err)
	}

	if err := s.SetPlayerCount(2); !errors.Is(err, ErrInvalidPlayerCount) {
		t.Errorf("Expected ErrInvalidPlayerCount, got %v", err)
	}
	if err := s.SetPlayerCount(21); !errors.Is(err, ErrInvalidPlayerCount) {
		t.Errorf("Expected ErrInvalidPlayerCount, got %v", err)
	}

	s.SetCategory("Animals")
	step, err := s.Start()
	if err != nil || step != StepFetchMaterials {
		t.Errorf("Expected StepFetchMaterials, got %v, %v", step, err)
	}
}

func TestPresetModesDoNotNeedCategory(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModePreset)
	s.SetCategory("")
	if _, err := s.Start(); err != nil {
		t.Fatalf("Preset start should not require a category: %v", err)
	}
	if req := s.MaterialsRequest(); req.Category != RandomCategory {
		t.Errorf("Expected %q category in request, got %q", RandomCategory, req.Category)
	}
}

func TestSetTimerDuration(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)

	for _, ok := range []int{0, 60, 180, 300, 7200} {
		if err := s.SetTimerDuration(ok); err != nil {
			t.Errorf("SetTimerDuration(%d): %v", ok, err)
		}
	}
	for _, bad := range []int{-60, 30, 90, 7260} {
		if err := s.SetTimerDuration(bad); !errors.Is(err, ErrInvalidTimer) {
			t.Errorf("SetTimerDuration(%d): expected ErrInvalidTimer, got %v", bad, err)
		}
	}
}

func TestApplySetupIsAllOrNothing(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)

	count := 6
	category := "Sports"
	timer := 45
	err := s.ApplySetup(SetupUpdate{PlayerCount: &count, Category: &category, TimerDuration: &timer})
	if !errors.Is(err, ErrInvalidTimer) {
		t.Fatalf("Expected ErrInvalidTimer, got %v", err)
	}
	if s.PlayerCount != 4 || s.Category != "" {
		t.Errorf("Setup should be unchanged after a failed update, got players=%d category=%q", s.PlayerCount, s.Category)
	}

	timer = 180
	if err := s.ApplySetup(SetupUpdate{PlayerCount: &count, Category: &category, TimerDuration: &timer}); err != nil {
		t.Fatal(err)
	}
	if s.PlayerCount != 6 || s.Category != "Sports" || s.TimerDuration != 180 {
		t.Errorf("Setup not applied: %+v", s.View())
	}
}

func TestInitializeRoundInvariants(t *testing.T) {
	for n := 3; n <= 20; n++ {
		for trial := 0; trial < 5; trial++ {
			s := NewSession(DefaultSettings(), nil)
			s.SelectMode(ModeAIClassic)
			s.SetPlayerCount(n)
			s.SetCategory("Animals")
			if _, err := s.Start(); err != nil {
				t.Fatal(err)
			}
			if err := s.InitializeRound(RoundMaterials{SecretWord: "Tiger"}); err != nil {
				t.Fatal(err)
			}

			if len(s.Players) != n {
				t.Fatalf("Expected %d players, got %d", n, len(s.Players))
			}
			imposters := 0
			for i, p := range s.Players {
				if p.ID != i+1 {
					t.Errorf("Player at index %d has id %d", i, p.ID)
				}
				if p.IsImposter {
					imposters++
				}
			}
			if imposters != 1 {
				t.Errorf("Expected exactly one imposter, got %d", imposters)
			}
			if !s.Players[s.ImposterIndex].IsImposter {
				t.Error("imposterIndex does not point at the imposter")
			}
			if s.StartingPlayerID < 1 || s.StartingPlayerID > n {
				t.Errorf("Starting player %d out of range", s.StartingPlayerID)
			}
			if s.CurrentPlayerIndex != 0 || s.Phase != PhasePassDevice {
				t.Errorf("Expected cursor 0 in pass device, got %d in %s", s.CurrentPlayerIndex, s.Phase)
			}
		}
	}
}

func TestInitializeRoundRejectsEmptySecret(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)
	s.SetCategory("Animals")
	s.Start()
	if err := s.InitializeRound(RoundMaterials{SecretWord: " "}); !errors.Is(err, ErrMaterialsUnavailable) {
		t.Errorf("Expected ErrMaterialsUnavailable, got %v", err)
	}
	if s.Phase != PhaseSetup || len(s.Players) != 0 {
		t.Error("Round state must not be partially initialised")
	}
}

func TestStartingPlayerIndependentOfImposter(t *testing.T) {
	same := 0
	const trials = 2000
	for i := 0; i < trials; i++ {
		a := AssignRoles(5, DefaultRand())
		if a.Players[a.ImposterIndex].ID == a.StartingPlayerID {
			same++
		}
	}
	if same == 0 || same == trials {
		t.Errorf("Starting player and imposter look perfectly correlated: %d/%d equal", same, trials)
	}
}

func TestAssignRolesUsesTwoDraws(t *testing.T) {
	a := AssignRoles(4, &SequenceRand{Values: []int{2, 0}})
	if a.ImposterIndex != 2 || a.StartingPlayerID != 1 {
		t.Errorf("Expected imposter index 2 and starter 1, got %d and %d", a.ImposterIndex, a.StartingPlayerID)
	}
}

func TestQuitRequiresConfirmation(t *testing.T) {
	s := newTestSession()
	if err := s.RequestQuit(); err != nil {
		t.Errorf("Quit from mode selection should be accepted, got %v", err)
	}
	if err := s.ConfirmQuit(); err != nil || s.Phase != PhaseModeSelection {
		t.Errorf("Confirmed quit from mode selection: phase=%s err=%v", s.Phase, err)
	}

	s.SelectMode(ModeCustom)
	if err := s.ConfirmQuit(); !errors.Is(err, ErrQuitNotRequested) {
		t.Errorf("Expected ErrQuitNotRequested, got %v", err)
	}
	s.RequestQuit()
	s.CancelQuit()
	if s.Phase != PhaseSetup || s.QuitPending {
		t.Error("Cancelled quit should leave the session alone")
	}

	epoch := s.Epoch
	s.RequestQuit()
	if err := s.ConfirmQuit(); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseModeSelection || s.Mode != ModeAIClassic {
		t.Errorf("Quit should reset to the template, got phase=%s mode=%s", s.Phase, s.Mode)
	}
	if s.Epoch != epoch+1 {
		t.Errorf("Expected epoch %d, got %d", epoch+1, s.Epoch)
	}
}

func TestRoundStartClearsQuitPrompt(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)
	s.SetCategory("Animals")
	if err := s.RequestQuit(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.InitializeRound(RoundMaterials{SecretWord: "Owl"}); err != nil {
		t.Fatal(err)
	}
	if s.QuitPending {
		t.Error("A started round should not carry the setup quit prompt")
	}
	if err := s.ConfirmQuit(); !errors.Is(err, ErrQuitNotRequested) {
		t.Errorf("Expected ErrQuitNotRequested, got %v", err)
	}
}

func TestResetForgetsTimerPreference(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeAIClassic)
	s.SetTimerDuration(0)
	s.RequestQuit()
	s.ConfirmQuit()
	if s.TimerDuration != 300 {
		t.Errorf("Expected timer back at 300, got %d", s.TimerDuration)
	}
}

func TestApplyUnknownCommand(t *testing.T) {
	s := newTestSession()
	if err := s.Apply(nil); !errors.Is(err, ErrUnknownCommand) {
		t.Errorf("Expected ErrUnknownCommand, got %v", err)
	}
}

func TestPhaseTransitionTable(t *testing.T) {
	if !PhaseSetup.CanTransitionTo(PhaseCustomInput) {
		t.Error("Setup should reach custom input")
	}
	if PhasePassDevice.CanTransitionTo(PhaseGameActive) {
		t.Error("Pass device must not skip the reveal")
	}
	if PhaseGameOver.CanTransitionTo(PhaseSetup) {
		t.Error("Game over only resets to mode selection")
	}
	if Phase("NOPE").IsValid() {
		t.Error("Unknown phase reported valid")
	}
}
