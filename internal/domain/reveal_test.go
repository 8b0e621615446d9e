package domain

import (
	"errors"
	"testing"
)

func startedSession(t *testing.T, mode Mode, players int, m RoundMaterials, draws ...int) *Session {
	t.Helper()
	s := newTestSession(draws...)
	if err := s.SelectMode(mode); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPlayerCount(players); err != nil {
		t.Fatal(err)
	}
	if mode.IsAI() {
		s.SetCategory("Animals")
	}
	if _, err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.InitializeRound(m); err != nil {
		t.Fatal(err)
	}
	return s
}

// Scenario A: classic AI, three players, no hint
func TestScenarioClassicRevealSequence(t *testing.T) {
	s := newTestSession(1, 2)
	s.SelectMode(ModeAIClassic)
	s.SetPlayerCount(3)
	s.SetCategory("Animals")
	s.SetDifficulty(DifficultyMedium)
	s.SetImposterHintEnabled(false)

	step, err := s.Start()
	if err != nil || step != StepFetchMaterials {
		t.Fatalf("Start: %v, %v", step, err)
	}
	req := s.MaterialsRequest()
	if req.WantHint {
		t.Error("Hint should not be requested when disabled")
	}
	if err := s.InitializeRound(RoundMaterials{SecretWord: "Giraffe"}); err != nil {
		t.Fatal(err)
	}

	if len(s.Players) != 3 || s.ImposterHint != "" || s.ImposterWord != "" {
		t.Errorf("Unexpected round state: players=%d hint=%q imposterWord=%q", len(s.Players), s.ImposterHint, s.ImposterWord)
	}

	visited := playThroughReveals(t, s)
	if len(visited) != 3 || visited[0] != 1 || visited[1] != 2 || visited[2] != 3 {
		t.Errorf("Expected visit order [1 2 3], got %v", visited)
	}
	if s.Phase != PhaseGameActive {
		t.Errorf("Expected game active, got %s", s.Phase)
	}
	if s.TimeLeft != s.TimerDuration {
		t.Errorf("Expected full timer at discussion start, got %d", s.TimeLeft)
	}
}

func TestRevealCardContents(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		imposter bool
		kind     CardKind
		word     string
		hint     string
	}{
		{"classic civilian", ModeAIClassic, false, CardWord, "Lion", ""},
		{"classic imposter", ModeAIClassic, true, CardImposter, "", "Big cat"},
		{"preset imposter", ModePreset, true, CardImposter, "", "Big cat"},
		{"undercover civilian", ModeAIUndercover, false, CardWord, "Lion", ""},
		{"undercover imposter", ModeAIUndercover, true, CardWord, "Tiger", ""},
		{"preset undercover imposter", ModePresetUndercover, true, CardWord, "Tiger", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// imposter at index 0
			s := startedSession(t, tt.mode, 3, RoundMaterials{
				Category:     "Animals",
				SecretWord:   "Lion",
				ImposterWord: "Tiger",
				ImposterHint: "Big cat",
			}, 0, 0)

			id := 2
			if tt.imposter {
				id = 1
			}
			card, err := s.CardFor(id)
			if err != nil {
				t.Fatal(err)
			}
			if card.Kind != tt.kind || card.Word != tt.word || card.Hint != tt.hint {
				t.Errorf("Unexpected card %+v", card)
			}
			if card.Category != "Animals" {
				t.Errorf("Expected category Animals, got %q", card.Category)
			}
		})
	}
}

func TestCardNeverLeaksOtherSecret(t *testing.T) {
	s := startedSession(t, ModeAIUndercover, 5, RoundMaterials{SecretWord: "Beach", ImposterWord: "Pool"}, 3, 0)
	for _, p := range s.Players {
		card, _ := s.CardFor(p.ID)
		if p.IsImposter && card.Word == "Beach" {
			t.Error("Undercover imposter saw the majority word")
		}
		if !p.IsImposter && card.Word == "Pool" {
			t.Error("Civilian saw the decoy word")
		}
	}
}

func TestRevealStageGuards(t *testing.T) {
	s := startedSession(t, ModeAIClassic, 3, RoundMaterials{SecretWord: "Lion"})

	if _, err := s.BeginReveal(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Reveal before confirming should fail, got %v", err)
	}
	if v := s.View(); v.Reveal == nil || v.Reveal.Card != nil {
		t.Error("Pass device view must not carry a card")
	}

	s.ConfirmPlayer()
	if err := s.Advance(); !errors.Is(err, ErrNotRevealed) {
		t.Errorf("Advance before reveal should fail, got %v", err)
	}

	gen, err := s.BeginReveal()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := s.BeginReveal(); !errors.Is(err, ErrAlreadyRevealing) {
		t.Errorf("Second tap should be rejected, got %v", err)
	}
	if _, err := s.CurrentCard(); !errors.Is(err, ErrNotRevealed) {
		t.Errorf("Card must stay hidden while decrypting, got %v", err)
	}
	if v := s.View(); v.Reveal.Stage != RevealDecrypting || v.Reveal.Card != nil {
		t.Errorf("Decrypting view leaked a card: %+v", v.Reveal)
	}

	if s.CompleteReveal(gen + 1) {
		t.Error("Completion with a foreign generation should be ignored")
	}
	if !s.CompleteReveal(gen) {
		t.Fatal("Completion with the current generation should apply")
	}
	if s.CompleteReveal(gen) {
		t.Error("Completion should only apply once")
	}
	if _, err := s.BeginReveal(); !errors.Is(err, ErrAlreadyRevealing) {
		t.Errorf("Tap on a revealed card should be rejected, got %v", err)
	}

	if err := s.Advance(); err != nil {
		t.Fatal(err)
	}
	if s.Reveal.Stage != RevealHidden || s.Phase != PhasePassDevice || s.CurrentPlayerIndex != 1 {
		t.Errorf("Advance should clear the reveal and move on, got %+v in %s", s.Reveal, s.Phase)
	}
}

func TestStaleRevealFromPreviousTurnIsIgnored(t *testing.T) {
	s := startedSession(t, ModeAIClassic, 3, RoundMaterials{SecretWord: "Lion"})
	s.ConfirmPlayer()
	oldGen, _ := s.BeginReveal()
	s.CompleteReveal(oldGen)
	s.Advance()

	s.ConfirmPlayer()
	newGen, _ := s.BeginReveal()
	if s.CompleteReveal(oldGen) {
		t.Error("Completion left over from player 1 must not reveal player 2")
	}
	if s.Reveal.Stage != RevealDecrypting {
		t.Errorf("Expected decrypting, got %s", s.Reveal.Stage)
	}
	if !s.CompleteReveal(newGen) {
		t.Error("Current completion should apply")
	}
}

func TestGameActiveReachedExactlyOnce(t *testing.T) {
	s := startedSession(t, ModeAIClassic, 4, RoundMaterials{SecretWord: "Lion"})
	playThroughReveals(t, s)
	if s.Phase != PhaseGameActive {
		t.Fatalf("Expected game active, got %s", s.Phase)
	}
	if err := s.Advance(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Advance after the last player should fail, got %v", err)
	}
	if err := s.ConfirmPlayer(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Confirm after the last player should fail, got %v", err)
	}
}

func TestResultsOnlyAfterReveal(t *testing.T) {
	s := startedSession(t, ModeAIUndercover, 3, RoundMaterials{SecretWord: "Guitar", ImposterWord: "Violin"}, 2, 0)
	if _, err := s.Results(); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Results before game over should fail, got %v", err)
	}
	playThroughReveals(t, s)
	if err := s.RevealResults(); err != nil {
		t.Fatal(err)
	}
	res, err := s.Results()
	if err != nil {
		t.Fatal(err)
	}
	if res.ImposterID != 3 || res.ImposterRole != RoleUndercover || res.SecretWord != "Guitar" || res.ImposterWord != "Violin" {
		t.Errorf("Unexpected results %+v", res)
	}

	if err := s.PlayAgain(); err != nil {
		t.Fatal(err)
	}
	if s.Phase != PhaseModeSelection || s.SecretWord != "" || len(s.Players) != 0 {
		t.Error("Play again should clear round state")
	}
}

func TestRoleFor(t *testing.T) {
	tests := []struct {
		isImposter bool
		mode       Mode
		want       Role
	}{
		{false, ModeAIClassic, RoleCivilian},
		{false, ModePresetUndercover, RoleCivilian},
		{true, ModeAIClassic, RoleImposter},
		{true, ModeCustom, RoleImposter},
		{true, ModePreset, RoleImposter},
		{true, ModeAIUndercover, RoleUndercover},
		{true, ModePresetUndercover, RoleUndercover},
	}

	for _, tt := range tests {
		got := RoleFor(tt.isImposter, tt.mode)
		if got != tt.want {
			t.Errorf("RoleFor(%v, %s) = %s, want %s", tt.isImposter, tt.mode, got, tt.want)
		}
		if got.IsImposter() != tt.isImposter {
			t.Errorf("%s.IsImposter() = %v", got, got.IsImposter())
		}
	}
}
