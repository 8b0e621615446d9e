package materials

import (
	"context"

	"undercover/internal/domain"
)

// Fallback values used whenever the generator fails or answers with unusable output
const (
	FallbackSecretWord        = "Banana"
	FallbackImposterHint      = "It is a fruit"
	FallbackUndercoverSecret  = "Apple"
	FallbackUndercoverDecoy   = "Orange"
	FallbackPartialDecoy      = "Pear"
	FallbackDiscussionHint    = "Ask about the color or material."
	FallbackEmptyHint         = "Ask about the size."
	FallbackEmptyImposterHint = "It is a common item."
)

// FallbackImposterHintFor is the imposter hint used when generation fails for category
func FallbackImposterHintFor(category string) string {
	return "It relates to " + category
}

// Classic is a generated classic round: a secret word and an optional imposter hint
type Classic struct {
	SecretWord   string `json:"secretWord"`
	ImposterHint string `json:"imposterHint,omitempty"`
}

// Undercover is a generated pair of related but distinct words
type Undercover struct {
	SecretWord   string `json:"secretWord"`
	ImposterWord string `json:"imposterWord"`
}

// Provider produces round materials and discussion prompts.
// Every method returns usable non-empty values; failures are replaced by fallbacks.
type Provider interface {
	GenerateClassic(ctx context.Context, category string, difficulty domain.Difficulty, wantHint bool) Classic
	GenerateUndercover(ctx context.Context, category string, difficulty domain.Difficulty) Undercover
	GenerateHint(ctx context.Context, category, secretWord string) string
	GenerateImposterHint(ctx context.Context, category, secretWord string) string
}
