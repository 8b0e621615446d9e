package materials

import (
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"

	"undercover/internal/preset"
)

// tokens splits normalised text into letter/digit runs
func tokens(s string) []string {
	return strings.FieldsFunc(preset.Normalize(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

// nearToken reports whether a text token names the word token or a close variant.
// Short word tokens only match exactly.
func nearToken(token, word string) bool {
	if token == word {
		return true
	}
	if len([]rune(word)) < 4 {
		return false
	}
	return strings.Contains(token, word) || levenshtein.ComputeDistance(token, word) <= 1
}

// leaksWord reports whether text contains secretWord or a near variant of any of its tokens
func leaksWord(text, secretWord string) bool {
	words := tokens(secretWord)
	for _, t := range tokens(text) {
		for _, w := range words {
			if nearToken(t, w) {
				return true
			}
		}
	}
	return false
}

// tooSimilar reports whether an undercover pair is unusable because the words are equal or near-identical
func tooSimilar(a, b string) bool {
	na, nb := preset.Normalize(a), preset.Normalize(b)
	if na == "" || nb == "" || na == nb {
		return true
	}
	return levenshtein.ComputeDistance(na, nb) <= 1
}

// cleanText trims whitespace and wrapping quotes from a plain text answer
func cleanText(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), `"'`))
}
