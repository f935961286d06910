package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/editpilot/llm"
	"github.com/blogem/editpilot/models"
)

// InstructionService interface defines the instruction-to-edit pipeline
type InstructionService interface {
	EditContent(ctx context.Context, req *models.EditRequest) ([]models.EditRecord, error)
	EditKit(ctx context.Context, req *models.KitRequest) (*models.KitPatch, error)
}

// instructionService implements InstructionService interface
type instructionService struct {
	provider llm.Provider
	logger   *zap.Logger
}

// NewInstructionService creates a new instruction service
func NewInstructionService(provider llm.Provider, logger *zap.Logger) InstructionService {
	return &instructionService{
		provider: provider,
		logger:   logger,
	}
}

// EditContent compiles the content prompt, calls the model and normalizes its reply
func (s *instructionService) EditContent(ctx context.Context, req *models.EditRequest) ([]models.EditRecord, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, &ValidationError{Messages: errors}
	}

	capabilities := req.EffectiveCapabilities()
	prompt, err := CompileEditPrompt(req.Dictionary, req.Instruction, req.ImageSlots, capabilities)
	if err != nil {
		return nil, fmt.Errorf("failed to compile edit prompt: %w", err)
	}

	raw, err := s.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	edits, err := NormalizeEditResponse(raw, req.Dictionary, req.ImageSlots, capabilities)
	if err != nil {
		s.logger.Warn("Model returned an unusable edit response", zap.Error(err), zap.Int("raw_length", len(raw)))
		return nil, err
	}

	s.logger.Info("Content edit normalized",
		zap.Int("dictionary_entries", len(req.Dictionary)),
		zap.Int("image_slots", len(req.ImageSlots)),
		zap.Int("edits", len(edits)))

	return edits, nil
}

// EditKit compiles the kit prompt, calls the model and normalizes its reply
func (s *instructionService) EditKit(ctx context.Context, req *models.KitRequest) (*models.KitPatch, error) {
	if errors := req.Validate(); len(errors) > 0 {
		return nil, &ValidationError{Messages: errors}
	}

	prompt, err := CompileKitPrompt(req.KitSettings, req.Instruction)
	if err != nil {
		return nil, fmt.Errorf("failed to compile kit prompt: %w", err)
	}

	raw, err := s.invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	patch, err := NormalizeKitResponse(raw)
	if err != nil {
		s.logger.Warn("Model returned an unusable kit response", zap.Error(err), zap.Int("raw_length", len(raw)))
		return nil, err
	}

	s.logger.Info("Kit edit normalized",
		zap.Int("colors", len(patch.Colors)),
		zap.Int("typography", len(patch.Typography)),
		zap.Bool("settings", len(patch.Settings) > 0))

	return patch, nil
}

// invoke calls the model once; failures are wrapped but never retried
func (s *instructionService) invoke(ctx context.Context, prompt string) (string, error) {
	start := time.Now()
	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		s.logger.Error("Model invocation failed",
			zap.String("provider", s.provider.Name()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err))
		return "", &ModelInvocationError{Provider: s.provider.Name(), Err: err}
	}

	s.logger.Debug("Model invocation finished",
		zap.Int("prompt_length", len(prompt)),
		zap.Int("response_length", len(raw)),
		zap.Duration("elapsed", time.Since(start)))

	return raw, nil
}
