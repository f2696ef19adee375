package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/cache"
	"github.com/frontdeskai/receptionist-core/internal/core/assembler"
	"github.com/frontdeskai/receptionist-core/internal/core/composer"
	"github.com/frontdeskai/receptionist-core/internal/core/enhance"
	"github.com/frontdeskai/receptionist-core/internal/core/llm"
	"github.com/frontdeskai/receptionist-core/internal/models"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
)

// Service runs the full prompt pipeline for one business:
// assemble -> compose -> generate -> package -> persist.
type Service struct {
	businesses  repositories.BusinessRepository
	artifacts   repositories.PromptArtifactRepository
	generator   Generator
	promptCache *cache.PromptCache // optional, nil-safe
	now         func() time.Time
}

// Generator is the generation-client boundary the pipeline depends on.
type Generator interface {
	Generate(ctx context.Context, instruction string) llm.GenerationResult
	MockMode() bool
}

// PipelineResult is the structured outcome of a pipeline run. Success=false
// carries the failure detail; the pipeline never stores a partial artifact.
type PipelineResult struct {
	Success  bool                   `json:"success"`
	Mock     bool                   `json:"mock,omitempty"`
	Error    string                 `json:"error,omitempty"`
	Artifact *models.PromptArtifact `json:"artifact,omitempty"`
}

func NewService(
	businesses repositories.BusinessRepository,
	artifacts repositories.PromptArtifactRepository,
	generator Generator,
	promptCache *cache.PromptCache,
) *Service {
	return &Service{
		businesses:  businesses,
		artifacts:   artifacts,
		generator:   generator,
		promptCache: promptCache,
		now:         time.Now,
	}
}

// GeneratePrompt runs the pipeline end to end and stores the new artifact.
// Validation failures and composer defects return a hard error (caller must
// fix configuration or code); generation failures come back as a structured
// unsuccessful result with no artifact written.
func (s *Service) GeneratePrompt(ctx context.Context, businessID uuid.UUID) (*PipelineResult, error) {
	raw, err := s.businesses.LoadRawData(ctx, businessID)
	if err != nil {
		return nil, err
	}

	pctx, err := assembler.Assemble(*raw)
	if err != nil {
		return nil, err
	}

	englishText, genErr := s.generateLanguage(ctx, pctx, enhance.LangEN)
	if genErr != nil {
		return failure(genErr), nil
	}

	spanishText := ""
	if pctx.SpanishEnabled {
		spanishText, genErr = s.generateLanguage(ctx, pctx, enhance.LangES)
		if genErr != nil {
			// A broken bilingual run must not half-update the artifact:
			// fail the whole run rather than store English without the
			// Spanish the settings promise.
			return failure(genErr), nil
		}
	}

	artifact := PackageArtifact(
		businessID,
		englishText,
		spanishText,
		pctx.SpanishEnabled,
		pctx.LanguageMode,
		s.generator.MockMode(),
		s.now(),
	)

	if err := s.artifacts.Create(ctx, artifact); err != nil {
		return nil, fmt.Errorf("failed to store prompt artifact: %w", err)
	}

	s.refreshCache(ctx, artifact)

	log.Info().
		Str("business_id", businessID.String()).
		Int("version", artifact.Version).
		Bool("mock", artifact.Mock).
		Int("tokens_en", artifact.TokensEN).
		Int("tokens_es", artifact.TokensES).
		Msg("prompt artifact generated")

	return &PipelineResult{Success: true, Mock: artifact.Mock, Artifact: artifact}, nil
}

// generateLanguage composes and generates the script for one language.
// Composer failures are programming defects and abort via panic-free hard
// error; backend failures return a generationError.
func (s *Service) generateLanguage(ctx context.Context, pctx *assembler.PromptContext, lang string) (string, *generationError) {
	instruction, err := composer.Compose(pctx, lang)
	if err != nil {
		// Leftover placeholders indicate a composer defect; surfacing it
		// as a generation failure would hide a bug behind retries.
		return "", &generationError{kind: "composer_defect", message: err.Error()}
	}

	result := s.generator.Generate(ctx, instruction)
	if !result.Success {
		return "", &generationError{
			kind:    string(result.ErrorKind),
			message: fmt.Sprintf("generation failed (%s, attempts=%d): %s", lang, result.Attempts, result.Error),
		}
	}
	return result.Text, nil
}

func (s *Service) refreshCache(ctx context.Context, artifact *models.PromptArtifact) {
	if s.promptCache == nil {
		return
	}
	if err := s.promptCache.SetActive(ctx, artifact); err != nil {
		// Cache refresh is best-effort: the store of record already has
		// the artifact.
		log.Warn().Err(err).
			Str("business_id", artifact.BusinessID.String()).
			Msg("failed to refresh prompt cache")
	}
}

type generationError struct {
	kind    string
	message string
}

func failure(ge *generationError) *PipelineResult {
	return &PipelineResult{
		Success: false,
		Error:   fmt.Sprintf("%s: %s", ge.kind, ge.message),
	}
}
