package materials

import (
	"context"
	"fmt"
	"log/slog"

	"undercover/internal/domain"
	"undercover/internal/preset"
)

// Presets is the preset table lookup the service draws from
type Presets interface {
	PickRandom(difficulty domain.Difficulty, category string) (preset.Pick, error)
	PickRandomUndercover(difficulty domain.Difficulty, category string) (preset.UndercoverPick, error)
}

// Service turns a round request into round materials, branching by mode
type Service struct {
	provider Provider
	presets  Presets
	logger   *slog.Logger
}

// NewService creates a materials service
func NewService(provider Provider, presets Presets, logger *slog.Logger) *Service {
	return &Service{provider: provider, presets: presets, logger: logger}
}

// ForRound fetches materials for req. Generator failures never surface here;
// a preset lookup failure returns domain.ErrMaterialsUnavailable.
func (s *Service) ForRound(ctx context.Context, req domain.MaterialsRequest) (domain.RoundMaterials, error) {
	switch req.Mode {
	case domain.ModeAIClassic:
		c := s.provider.GenerateClassic(ctx, req.Category, req.Difficulty, req.WantHint)
		return domain.RoundMaterials{SecretWord: c.SecretWord, ImposterHint: c.ImposterHint}, nil

	case domain.ModeAIUndercover:
		u := s.provider.GenerateUndercover(ctx, req.Category, req.Difficulty)
		return domain.RoundMaterials{SecretWord: u.SecretWord, ImposterWord: u.ImposterWord}, nil

	case domain.ModePreset:
		pick, err := s.presets.PickRandom(req.Difficulty, req.Category)
		if err != nil {
			s.logger.Warn("Preset lookup failed", "category", req.Category, "difficulty", req.Difficulty, "error", err)
			return domain.RoundMaterials{}, fmt.Errorf("%w: %v", domain.ErrMaterialsUnavailable, err)
		}
		m := domain.RoundMaterials{Category: pick.Category, SecretWord: pick.Word}
		if req.WantHint {
			m.ImposterHint = s.provider.GenerateImposterHint(ctx, pick.Category, pick.Word)
		}
		return m, nil

	case domain.ModePresetUndercover:
		pick, err := s.presets.PickRandomUndercover(req.Difficulty, req.Category)
		if err != nil {
			s.logger.Warn("Preset undercover lookup failed", "category", req.Category, "difficulty", req.Difficulty, "error", err)
			return domain.RoundMaterials{}, fmt.Errorf("%w: %v", domain.ErrMaterialsUnavailable, err)
		}
		return domain.RoundMaterials{Category: pick.Category, SecretWord: pick.Secret, ImposterWord: pick.Imposter}, nil

	default:
		return domain.RoundMaterials{}, fmt.Errorf("%w: %s has no fetched materials", domain.ErrInvalidMode, req.Mode)
	}
}

// Hint generates one discussion prompt for the round
func (s *Service) Hint(ctx context.Context, req domain.HintRequest) string {
	return s.provider.GenerateHint(ctx, req.Category, req.SecretWord)
}
