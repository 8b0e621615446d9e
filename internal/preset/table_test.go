package preset

import (
	"errors"
	"testing"

	"undercover/internal/domain"
)

func TestBuiltInTablesAreComplete(t *testing.T) {
	for name, words := range classicCategories {
		for _, d := range domain.Difficulties {
			if len(words[d]) == 0 {
				t.Errorf("%s has no %s words", name, d)
			}
		}
	}
	for name, pairs := range undercoverCategories {
		for _, d := range domain.Difficulties {
			for _, p := range pairs[d] {
				if p.Secret == "" || p.Imposter == "" || Normalize(p.Secret) == Normalize(p.Imposter) {
					t.Errorf("%s/%s: bad pair %+v", name, d, p)
				}
			}
		}
	}
}

func TestListCategoriesSorted(t *testing.T) {
	table := New(nil)
	got := table.ListCategories()
	if len(got) != len(classicCategories) {
		t.Fatalf("Expected %d categories, got %d", len(classicCategories), len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("Categories not sorted: %v", got)
		}
	}
	if len(table.ListUndercoverCategories()) != len(undercoverCategories) {
		t.Error("Unexpected undercover category count")
	}
}

func TestPickRandomNamedCategory(t *testing.T) {
	table := NewWithData(map[string]Words{
		"Food":    {domain.DifficultyEasy: {"Pizza", "Taco"}},
		"Animals": {domain.DifficultyEasy: {"Dog"}},
	}, nil, &domain.SequenceRand{Values: []int{1}})

	tests := []struct {
		name     string
		category string
		want     Pick
	}{
		{"exact", "Food", Pick{Category: "Food", Word: "Taco"}},
		{"case and space", "  fOOd ", Pick{Category: "Food", Word: "Taco"}},
		{"single word", "animals", Pick{Category: "Animals", Word: "Dog"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := table.PickRandom(domain.DifficultyEasy, tt.category)
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestPickRandomResolvesRandomCategory(t *testing.T) {
	// sorted keys: Animals, Food; draw 1 picks Food, draw 0 picks the word
	table := NewWithData(map[string]Words{
		"Food":    {domain.DifficultyEasy: {"Pizza", "Taco"}},
		"Animals": {domain.DifficultyEasy: {"Dog"}},
	}, nil, &domain.SequenceRand{Values: []int{1, 0}})

	got, err := table.PickRandom(domain.DifficultyEasy, domain.RandomCategory)
	if err != nil {
		t.Fatal(err)
	}
	if got.Category != "Food" || got.Word != "Pizza" {
		t.Errorf("Unexpected pick %+v", got)
	}
}

func TestPickRandomFallsBackAcrossDifficulties(t *testing.T) {
	table := NewWithData(map[string]Words{
		"Food": {domain.DifficultyEasy: {"Pizza"}},
	}, nil, nil)

	got, err := table.PickRandom(domain.DifficultyInsane, "Food")
	if err != nil || got.Word != "Pizza" {
		t.Errorf("Expected fallback to easy words, got %+v, %v", got, err)
	}
}

func TestPickRandomErrors(t *testing.T) {
	table := NewWithData(map[string]Words{"Empty": {}}, map[string]Pairs{}, nil)

	if _, err := table.PickRandom(domain.DifficultyEasy, "Nope"); !errors.Is(err, ErrUnknownCategory) {
		t.Errorf("Expected ErrUnknownCategory, got %v", err)
	}
	if _, err := table.PickRandom(domain.DifficultyEasy, "Empty"); !errors.Is(err, ErrNoWords) {
		t.Errorf("Expected ErrNoWords, got %v", err)
	}
	if _, err := table.PickRandomUndercover(domain.DifficultyEasy, ""); !errors.Is(err, ErrNoWords) {
		t.Errorf("Expected ErrNoWords for empty undercover table, got %v", err)
	}
}

func TestPickRandomUndercover(t *testing.T) {
	table := New(&domain.SequenceRand{Values: []int{0}})
	got, err := table.PickRandomUndercover(domain.DifficultyEasy, "Food & Drinks")
	if err != nil {
		t.Fatal(err)
	}
	want := undercoverCategories["Food & Drinks"][domain.DifficultyEasy][0]
	if got.Category != "Food & Drinks" || got.Pair != want {
		t.Errorf("Expected %+v, got %+v", want, got)
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"  Café  ":         "cafe",
		"FOOD   &  Drinks": "food & drinks",
		"Jalapeño":         "jalapeno",
		"":                 "",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}
