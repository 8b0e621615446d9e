package materials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"undercover/internal/domain"
)

// ErrEmptyResponse is returned by the generator wrapper when no text came back
var ErrEmptyResponse = errors.New("generator returned no text")

// contentGenerator is the slice of the genai client the provider uses
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiConfig holds generator settings
type GeminiConfig struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
}

// GeminiProvider generates round materials with a Gemini model.
// Without an API key it runs offline and always returns the fallbacks.
type GeminiProvider struct {
	gen     contentGenerator
	model   string
	timeout time.Duration
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewGeminiProvider creates a provider from cfg
func NewGeminiProvider(ctx context.Context, cfg GeminiConfig, logger *slog.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		logger.Warn("No generator API key configured, using fallback words")
		return newGeminiProvider(nil, cfg, logger), nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}
	return newGeminiProvider(client.Models, cfg, logger), nil
}

func newGeminiProvider(gen contentGenerator, cfg GeminiConfig, logger *slog.Logger) *GeminiProvider {
	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}
	burst := cfg.RateLimitBurst
	if burst <= 0 {
		burst = 1
	}
	return &GeminiProvider{
		gen:     gen,
		model:   cfg.Model,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(limit, burst),
		logger:  logger,
	}
}

// Offline reports whether the provider has no generator behind it
func (p *GeminiProvider) Offline() bool {
	return p.gen == nil
}

// GenerateClassic implements Provider
func (p *GeminiProvider) GenerateClassic(ctx context.Context, category string, difficulty domain.Difficulty, wantHint bool) Classic {
	fallback := Classic{SecretWord: FallbackSecretWord}
	if wantHint {
		fallback.ImposterHint = FallbackImposterHint
	}

	required := []string{"secretWord"}
	if wantHint {
		required = append(required, "imposterHint")
	}
	text, err := p.generate(ctx, classicPrompt(category, difficulty, wantHint), jsonObjectConfig(required, "secretWord", "imposterHint"))
	if err != nil {
		p.logger.Warn("Classic generation failed", "category", category, "error", err)
		return fallback
	}

	var out Classic
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		p.logger.Warn("Classic generation returned invalid JSON", "category", category, "error", err)
		return fallback
	}
	out.SecretWord = cleanText(out.SecretWord)
	out.ImposterHint = cleanText(out.ImposterHint)
	if out.SecretWord == "" {
		return fallback
	}

	if !wantHint {
		out.ImposterHint = ""
		return out
	}
	if out.ImposterHint == "" || leaksWord(out.ImposterHint, out.SecretWord) {
		p.logger.Debug("Replacing unusable imposter hint", "category", category)
		out.ImposterHint = FallbackImposterHintFor(category)
	}
	return out
}

// GenerateUndercover implements Provider
func (p *GeminiProvider) GenerateUndercover(ctx context.Context, category string, difficulty domain.Difficulty) Undercover {
	fallback := Undercover{SecretWord: FallbackUndercoverSecret, ImposterWord: FallbackUndercoverDecoy}

	text, err := p.generate(ctx, undercoverPrompt(category, difficulty), jsonObjectConfig([]string{"secretWord", "imposterWord"}, "secretWord", "imposterWord"))
	if err != nil {
		p.logger.Warn("Undercover generation failed", "category", category, "error", err)
		return fallback
	}

	var out Undercover
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		p.logger.Warn("Undercover generation returned invalid JSON", "category", category, "error", err)
		return fallback
	}
	out.SecretWord = cleanText(out.SecretWord)
	out.ImposterWord = cleanText(out.ImposterWord)
	if out.SecretWord == "" {
		out.SecretWord = FallbackUndercoverSecret
	}
	if out.ImposterWord == "" {
		out.ImposterWord = FallbackPartialDecoy
	}

	if tooSimilar(out.SecretWord, out.ImposterWord) {
		p.logger.Debug("Replacing near-identical undercover pair", "category", category)
		return fallback
	}
	return out
}

// GenerateHint implements Provider
func (p *GeminiProvider) GenerateHint(ctx context.Context, category, secretWord string) string {
	text, err := p.generate(ctx, hintPrompt(category, secretWord), nil)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return FallbackEmptyHint
		}
		p.logger.Warn("Hint generation failed", "category", category, "error", err)
		return FallbackDiscussionHint
	}

	hint := cleanText(text)
	if hint == "" {
		return FallbackEmptyHint
	}
	if leaksWord(hint, secretWord) {
		p.logger.Debug("Replacing hint that names the secret word", "category", category)
		return FallbackDiscussionHint
	}
	return hint
}

// GenerateImposterHint implements Provider
func (p *GeminiProvider) GenerateImposterHint(ctx context.Context, category, secretWord string) string {
	text, err := p.generate(ctx, imposterHintPrompt(category, secretWord), nil)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) {
			return FallbackEmptyImposterHint
		}
		p.logger.Warn("Imposter hint generation failed", "category", category, "error", err)
		return FallbackImposterHintFor(category)
	}

	hint := cleanText(text)
	if hint == "" {
		return FallbackEmptyImposterHint
	}
	if leaksWord(hint, secretWord) {
		p.logger.Debug("Replacing imposter hint that names the secret word", "category", category)
		return FallbackImposterHintFor(category)
	}
	return hint
}

// generate waits for the limiter, calls the model and returns the response text
func (p *GeminiProvider) generate(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error) {
	if p.gen == nil {
		return "", errors.New("generator offline")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	start := time.Now()
	resp, err := p.gen.GenerateContent(ctx, p.model, genai.Text(prompt), config)
	if err != nil {
		return "", err
	}
	p.logger.Debug("Generator call finished", "model", p.model, "duration", time.Since(start))

	text := responseText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// responseText joins the text parts of the first candidate
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	c := resp.Candidates[0]
	if c == nil || c.Content == nil {
		return ""
	}
	var b strings.Builder
	for _, part := range c.Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	return b.String()
}

// jsonObjectConfig asks for a JSON object with the given string properties
func jsonObjectConfig(required []string, properties ...string) *genai.GenerateContentConfig {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(properties)),
		Required:   required,
	}
	for _, name := range properties {
		schema.Properties[name] = &genai.Schema{Type: genai.TypeString}
	}
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
}
