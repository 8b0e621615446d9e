package domain

import "strings"

// CustomWord is one player's entry in custom mode
type CustomWord struct {
	PlayerID int    `json:"playerId"`
	Category string `json:"category"`
	Word     string `json:"word"`
}

// CustomInputPlayerID is the id of the player currently entering a word
func (s *Session) CustomInputPlayerID() int {
	return s.CustomInputIndex + 1
}

// SubmitCustomWord records the current player's pair. After the last player
// one pair, drawn uniformly from all entries, becomes the round material and
// the round starts. started reports whether that happened.
func (s *Session) SubmitCustomWord(category, word string) (started bool, err error) {
	if s.Phase != PhaseCustomInput {
		return false, ErrInvalidPhase
	}

	category = strings.TrimSpace(category)
	word = strings.TrimSpace(word)
	if category == "" || word == "" {
		return false, ErrBlankCustomField
	}

	s.CustomWords = append(s.CustomWords, CustomWord{
		PlayerID: s.CustomInputIndex + 1,
		Category: category,
		Word:     word,
	})

	if s.CustomInputIndex+1 < s.PlayerCount {
		s.CustomInputIndex++
		return false, nil
	}

	pick := s.CustomWords[s.rng.Intn(len(s.CustomWords))]
	if err := s.InitializeRound(RoundMaterials{Category: pick.Category, SecretWord: pick.Word}); err != nil {
		return false, err
	}
	return true, nil
}
