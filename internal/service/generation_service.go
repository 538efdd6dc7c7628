package service

import (
	"context"
	"fmt"
	"time"

	"marketai/internal/authz"
	"marketai/internal/codec"
	"marketai/internal/logging"
	"marketai/internal/model"
	"marketai/internal/prompt"
	"marketai/internal/repository"
)

// Generator produces text for a system and user prompt.
// *llm.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, apiKey, modelName, systemPrompt, userPrompt string) (string, error)
}

// ModelConfig selects the model and credentials used for generation.
type ModelConfig struct {
	APIKey string
	Model  string
}

// GenerationService runs the role-gated generation pipeline
type GenerationService interface {
	// Generate checks the caller's role for module, calls the model and
	// records the exchange. Nothing is recorded when any step fails.
	Generate(ctx context.Context, user *model.User, module model.Module, inputs map[string]any) (*model.GenerationResult, error)
}

type generationService struct {
	logRepo   repository.RequestLogRepository
	generator Generator
	cfg       ModelConfig
	now       func() time.Time
}

// NewGenerationService creates a new GenerationService
func NewGenerationService(logRepo repository.RequestLogRepository, generator Generator, cfg ModelConfig) GenerationService {
	return &generationService{
		logRepo:   logRepo,
		generator: generator,
		cfg:       cfg,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *generationService) Generate(ctx context.Context, user *model.User, module model.Module, inputs map[string]any) (*model.GenerationResult, error) {
	if _, ok := model.ParseModule(string(module)); !ok {
		return nil, ErrUnknownModule
	}
	if !authz.CanUse(user, authz.ForModule(module)) {
		return nil, ErrForbidden
	}

	pair, err := prompt.Build(module, prompt.Fields(inputs))
	if err != nil {
		return nil, fmt.Errorf("failed to build prompt: %w", err)
	}
	inputsJSON, err := codec.EncodeInputs(inputs)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, s.cfg.APIKey, s.cfg.Model, pair.System, pair.User)
	if err != nil {
		logging.Error().Err(err).Int("user_id", user.ID).Str("module", string(module)).Msg("model call failed")
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	outputJSON, err := codec.EncodeOutput(text)
	if err != nil {
		return nil, err
	}
	log := &model.RequestLog{
		UserID:     user.ID,
		Module:     module,
		InputsJSON: inputsJSON,
		OutputJSON: outputJSON,
		ModelUsed:  s.cfg.Model,
		CreatedAt:  s.now(),
	}
	if err := s.logRepo.Append(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to save request log: %w", err)
	}

	logging.Info().Int("user_id", user.ID).Str("module", string(module)).Int64("log_id", log.ID).Msg("generation recorded")
	return &model.GenerationResult{LogID: log.ID, Result: text}, nil
}
