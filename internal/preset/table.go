package preset

import (
	"errors"
	"sort"
	"sync"

	"github.com/samber/lo"

	"undercover/internal/domain"
)

var (
	ErrUnknownCategory = errors.New("unknown preset category")
	ErrNoWords         = errors.New("preset category has no words")
)

// Pick is a classic preset draw
type Pick struct {
	Category string `json:"category"`
	Word     string `json:"word"`
}

// UndercoverPick is an undercover preset draw
type UndercoverPick struct {
	Category string `json:"category"`
	Pair
}

// Table serves random draws from the curated word lists.
// It is safe for concurrent use.
type Table struct {
	classic    map[string]Words
	undercover map[string]Pairs

	mu  sync.Mutex
	rng domain.RandSource
}

// New returns a table over the built-in lists
func New(rng domain.RandSource) *Table {
	return NewWithData(classicCategories, undercoverCategories, rng)
}

// NewWithData returns a table over caller-supplied lists
func NewWithData(classic map[string]Words, undercover map[string]Pairs, rng domain.RandSource) *Table {
	if rng == nil {
		rng = domain.DefaultRand()
	}
	return &Table{classic: classic, undercover: undercover, rng: rng}
}

// ListCategories returns the classic category names, sorted
func (t *Table) ListCategories() []string {
	return sortedKeys(t.classic)
}

// ListUndercoverCategories returns the undercover category names, sorted
func (t *Table) ListUndercoverCategories() []string {
	return sortedKeys(t.undercover)
}

// PickRandom draws a word for the difficulty. category may be a name, blank,
// or "Random" for any category.
func (t *Table) PickRandom(difficulty domain.Difficulty, category string) (Pick, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name, err := t.resolve(sortedKeys(t.classic), category, func(name string) bool {
		return len(t.classic[name].all()) > 0
	})
	if err != nil {
		return Pick{}, err
	}

	words := t.classic[name].forDifficulty(difficulty)
	if len(words) == 0 {
		return Pick{}, ErrNoWords
	}
	return Pick{Category: name, Word: words[t.rng.Intn(len(words))]}, nil
}

// PickRandomUndercover draws a word pair for the difficulty
func (t *Table) PickRandomUndercover(difficulty domain.Difficulty, category string) (UndercoverPick, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	name, err := t.resolve(sortedKeys(t.undercover), category, func(name string) bool {
		return len(t.undercover[name].all()) > 0
	})
	if err != nil {
		return UndercoverPick{}, err
	}

	pairs := t.undercover[name].forDifficulty(difficulty)
	if len(pairs) == 0 {
		return UndercoverPick{}, ErrNoWords
	}
	return UndercoverPick{Category: name, Pair: pairs[t.rng.Intn(len(pairs))]}, nil
}

// resolve maps a requested category onto a table key
func (t *Table) resolve(names []string, category string, usable func(string) bool) (string, error) {
	want := Normalize(category)
	if want == "" || want == Normalize(domain.RandomCategory) {
		candidates := lo.Filter(names, func(name string, _ int) bool { return usable(name) })
		if len(candidates) == 0 {
			return "", ErrNoWords
		}
		return candidates[t.rng.Intn(len(candidates))], nil
	}

	name, ok := lo.Find(names, func(name string) bool { return Normalize(name) == want })
	if !ok {
		return "", ErrUnknownCategory
	}
	return name, nil
}

// forDifficulty returns the words for d, or every word when d has none
func (w Words) forDifficulty(d domain.Difficulty) []string {
	if len(w[d]) > 0 {
		return w[d]
	}
	return w.all()
}

func (w Words) all() []string {
	return lo.FlatMap(domain.Difficulties, func(d domain.Difficulty, _ int) []string { return w[d] })
}

func (p Pairs) forDifficulty(d domain.Difficulty) []Pair {
	if len(p[d]) > 0 {
		return p[d]
	}
	return p.all()
}

func (p Pairs) all() []Pair {
	return lo.FlatMap(domain.Difficulties, func(d domain.Difficulty, _ int) []Pair { return p[d] })
}

func sortedKeys[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	sort.Strings(keys)
	return keys
}
