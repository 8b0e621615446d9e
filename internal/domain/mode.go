package domain

import "strings"

// Mode is the game variant chosen in mode selection
type Mode string

const (
	ModeAIClassic        Mode = "AI_CLASSIC"
	ModeAIUndercover     Mode = "AI_UNDERCOVER"
	ModeCustom           Mode = "CUSTOM"
	ModePreset           Mode = "PRESET"
	ModePresetUndercover Mode = "PRESET_UNDERCOVER"
)

// Modes lists every selectable mode in menu order
var Modes = []Mode{ModeAIClassic, ModeAIUndercover, ModePreset, ModePresetUndercover, ModeCustom}

// IsValid reports whether m is a known mode
func (m Mode) IsValid() bool {
	for _, known := range Modes {
		if m == known {
			return true
		}
	}
	return false
}

// IsUndercover reports whether the imposter receives a decoy word instead of none
func (m Mode) IsUndercover() bool {
	return m == ModeAIUndercover || m == ModePresetUndercover
}

// IsAI reports whether round materials come from the text generator
func (m Mode) IsAI() bool {
	return m == ModeAIClassic || m == ModeAIUndercover
}

// IsPreset reports whether round materials come from the preset tables
func (m Mode) IsPreset() bool {
	return m == ModePreset || m == ModePresetUndercover
}

// SupportsImposterHint reports whether the imposter hint toggle applies to this mode
func (m Mode) SupportsImposterHint() bool {
	return m == ModeAIClassic || m == ModePreset
}

// Difficulty controls how obscure the secret word is
type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
	DifficultyInsane Difficulty = "INSANE"
)

// Difficulties lists every difficulty from easiest to hardest
var Difficulties = []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyInsane}

// IsValid reports whether d is a known difficulty
func (d Difficulty) IsValid() bool {
	for _, known := range Difficulties {
		if d == known {
			return true
		}
	}
	return false
}

// ParseDifficulty parses a difficulty name case-insensitively
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToUpper(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", ErrInvalidDifficulty
	}
	return d, nil
}

// ParseMode parses a mode name case-insensitively
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToUpper(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrInvalidMode
	}
	return m, nil
}

// RandomCategory is the preset category value meaning "pick any category"
const RandomCategory = "Random"
