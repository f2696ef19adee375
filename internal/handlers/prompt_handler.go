package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/cache"
	"github.com/frontdeskai/receptionist-core/internal/core/assembler"
	"github.com/frontdeskai/receptionist-core/internal/core/regen"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
)

type PromptHandler struct {
	artifactRepo repositories.PromptArtifactRepository
	regenService *regen.Service
	promptCache  *cache.PromptCache
}

func NewPromptHandler(artifactRepo repositories.PromptArtifactRepository, regenService *regen.Service, promptCache *cache.PromptCache) *PromptHandler {
	return &PromptHandler{
		artifactRepo: artifactRepo,
		regenService: regenService,
		promptCache:  promptCache,
	}
}

// GetActivePrompt godoc
// @Summary Get the active prompt artifact for a business
// @Description Returns the currently active generated prompt, cache-first
// @Tags Prompts
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} models.PromptArtifact
// @Failure 404 {object} map[string]string
// @Router /businesses/{id}/prompt [get]
func (h *PromptHandler) GetActivePrompt(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	if cached, cacheErr := h.promptCache.GetActive(c.Context(), businessID); cacheErr == nil && cached != nil {
		return c.JSON(cached)
	}

	artifact, err := h.artifactRepo.GetActive(c.Context(), businessID)
	if errors.Is(err, repositories.ErrNoActiveArtifact) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no prompt generated for this business yet",
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to fetch prompt",
		})
	}

	if cacheErr := h.promptCache.SetActive(c.Context(), artifact); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("failed to backfill prompt cache")
	}

	return c.JSON(artifact)
}

// ListPromptVersions godoc
// @Summary List prompt versions for a business
// @Description Returns prompt artifacts newest first
// @Tags Prompts
// @Produce json
// @Param id path string true "Business ID"
// @Param limit query int false "Max versions to return"
// @Success 200 {array} models.PromptArtifact
// @Router /businesses/{id}/prompt/versions [get]
func (h *PromptHandler) ListPromptVersions(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	limit := c.QueryInt("limit", 20)
	artifacts, err := h.artifactRepo.ListVersions(c.Context(), businessID, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list prompt versions",
		})
	}
	return c.JSON(artifacts)
}

// RegeneratePrompt godoc
// @Summary Regenerate the prompt for a business now
// @Description Runs the generation pipeline synchronously and activates the new artifact
// @Tags Prompts
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} pipeline.PipelineResult
// @Failure 422 {object} map[string]string
// @Router /businesses/{id}/regenerate [post]
func (h *PromptHandler) RegeneratePrompt(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	result, err := h.regenService.RegenerateNow(c.Context(), businessID)
	if err != nil {
		var verr *assembler.ValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error": verr.Error(),
				"field": verr.Field,
			})
		}
		log.Error().Err(err).Str("business_id", businessID.String()).Msg("synchronous regeneration failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "regeneration failed",
		})
	}

	if !result.Success {
		return c.Status(fiber.StatusBadGateway).JSON(result)
	}
	return c.JSON(result)
}
