package domain

import (
	"errors"
	"testing"
)

// Scenario B: custom mode with three players
func TestScenarioCustomWords(t *testing.T) {
	s := newTestSession(0, 0, 1)
	s.SelectMode(ModeCustom)
	s.SetPlayerCount(3)

	step, err := s.Start()
	if err != nil || step != StepCollectCustomWords {
		t.Fatalf("Start: %v, %v", step, err)
	}
	if s.Phase != PhaseCustomInput || s.CustomInputPlayerID() != 1 {
		t.Fatalf("Expected custom input for player 1, got %s / %d", s.Phase, s.CustomInputPlayerID())
	}

	entries := [][2]string{{"Food", "Pizza"}, {"Food", "Burger"}, {"Food", "Taco"}}
	for i, e := range entries {
		started, err := s.SubmitCustomWord(e[0], e[1])
		if err != nil {
			t.Fatalf("Submit %d: %v", i, err)
		}
		last := i == len(entries)-1
		if started != last {
			t.Errorf("Submit %d: started=%v", i, started)
		}
		if !last && s.Phase != PhaseCustomInput {
			t.Errorf("Round initialised early after %d entries", i+1)
		}
	}

	if s.Phase != PhasePassDevice {
		t.Fatalf("Expected pass device after last entry, got %s", s.Phase)
	}
	switch s.SecretWord {
	case "Pizza", "Burger", "Taco":
	default:
		t.Errorf("Secret word %q not from collected set", s.SecretWord)
	}
	if s.ImposterWord != "" || s.ImposterHint != "" {
		t.Error("Custom rounds have no imposter word or hint")
	}
	if s.Category != "Food" {
		t.Errorf("Expected category Food, got %q", s.Category)
	}
	if got := s.CustomWords[2]; got.PlayerID != 3 || got.Word != "Taco" {
		t.Errorf("Unexpected last entry %+v", got)
	}
}

func TestCustomWordRejectsBlankFields(t *testing.T) {
	s := newTestSession()
	s.SelectMode(ModeCustom)
	s.Start()

	for _, in := range [][2]string{{"", "Pizza"}, {"Food", ""}, {"  ", "\t"}} {
		if _, err := s.SubmitCustomWord(in[0], in[1]); !errors.Is(err, ErrBlankCustomField) {
			t.Errorf("Expected ErrBlankCustomField for %q, got %v", in, err)
		}
	}
	if len(s.CustomWords) != 0 || s.CustomInputIndex != 0 {
		t.Error("Rejected input must not change state")
	}
}

func TestCustomWordPickCoversEveryEntry(t *testing.T) {
	words := []string{"Pizza", "Burger", "Taco", "Sushi"}
	seen := map[string]bool{}

	for trial := 0; trial < 400; trial++ {
		s := NewSession(DefaultSettings(), nil)
		s.SelectMode(ModeCustom)
		s.SetPlayerCount(len(words))
		s.Start()
		for _, w := range words {
			if _, err := s.SubmitCustomWord("Food", w); err != nil {
				t.Fatal(err)
			}
		}
		seen[s.SecretWord] = true
	}

	for _, w := range words {
		if !seen[w] {
			t.Errorf("Word %q was never selected", w)
		}
	}
}

func TestCustomWordOnlyInCustomInput(t *testing.T) {
	s := newTestSession()
	if _, err := s.SubmitCustomWord("Food", "Pizza"); !errors.Is(err, ErrInvalidPhase) {
		t.Errorf("Expected ErrInvalidPhase, got %v", err)
	}
}
