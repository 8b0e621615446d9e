package materials

import (
	"fmt"
	"strings"

	"undercover/internal/domain"
)

var difficultyInstructions = map[domain.Difficulty]string{
	domain.DifficultyEasy:   "The word should be very common, simple, and widely known.",
	domain.DifficultyMedium: "The word should be standard vocabulary. Common knowledge.",
	domain.DifficultyHard:   "The word should be challenging, specific, or abstract.",
	domain.DifficultyInsane: "The word should be obscure, highly specific, or complex.",
}

func classicPrompt(category string, difficulty domain.Difficulty, wantHint bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate a secret word for the category %q.\n", category)
	b.WriteString(difficultyInstructions[difficulty])
	if wantHint {
		b.WriteString("\nAlso generate a short, vague hint about the secret word that helps the imposter blend in " +
			"without revealing the word explicitly (e.g. if the word is \"Apple\", the hint might be \"It is a fruit\" or \"It is red\").")
	}
	return b.String()
}

func undercoverPrompt(category string, difficulty domain.Difficulty) string {
	return fmt.Sprintf(`Generate two distinct but related words for the category %q.
1. "secretWord": the main word for the majority.
2. "imposterWord": a different word for the imposter.
The words should be related enough to allow for a confusing conversation (e.g. "Apple" vs "Orange", "Guitar" vs "Violin", "Beach" vs "Pool").
Difficulty level: %s.`, category, difficulty)
}

func hintPrompt(category, secretWord string) string {
	return fmt.Sprintf(`Generate a single, short, vague discussion question about the secret word %q in the category %q to help find the imposter.
Do NOT include the word %q itself or any close variation of it. Discuss attributes without naming it.`, secretWord, category, secretWord)
}

func imposterHintPrompt(category, secretWord string) string {
	return fmt.Sprintf(`Generate a short, subtle hint for an imposter who doesn't know the secret word is %q in the category %q.
The hint should describe a general attribute (like color, usage, size, or category type) so they can blend in.
Do NOT mention the word %q.`, secretWord, category, secretWord)
}
