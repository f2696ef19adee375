package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/frontdeskai/receptionist-core/internal/core/regen"
	"github.com/frontdeskai/receptionist-core/internal/models"
)

type QueueHandler struct {
	regenService *regen.Service
	processor    *regen.Processor
}

func NewQueueHandler(regenService *regen.Service, processor *regen.Processor) *QueueHandler {
	return &QueueHandler{
		regenService: regenService,
		processor:    processor,
	}
}

// EnqueueRequest represents the body for queueing a regeneration.
type EnqueueRequest struct {
	Reason string `json:"reason" example:"services_update"`
}

// EnqueueRegeneration godoc
// @Summary Queue a prompt regeneration
// @Description Marks the business's prompt stale. Duplicate requests while a job is pending coalesce into the existing job.
// @Tags Queue
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param data body EnqueueRequest true "Trigger reason"
// @Success 202 {object} models.RegenerationJob
// @Failure 400 {object} map[string]string
// @Router /businesses/{id}/regenerations [post]
func (h *QueueHandler) EnqueueRegeneration(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	var req EnqueueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}

	reason := models.TriggerReason(req.Reason)
	if !models.ValidTriggerReason(reason) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "unknown trigger reason",
		})
	}

	job, err := h.regenService.Enqueue(c.Context(), businessID, reason)
	if err != nil {
		log.Error().Err(err).Str("business_id", businessID.String()).Msg("enqueue failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to queue regeneration",
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(job)
}

// ProcessQueue godoc
// @Summary Drain the regeneration queue
// @Description Claims and runs pending jobs until the queue is empty or the batch limit is reached
// @Tags Queue
// @Produce json
// @Success 200 {object} regen.ProcessReport
// @Router /queue/process [post]
func (h *QueueHandler) ProcessQueue(c *fiber.Ctx) error {
	report, err := h.processor.ProcessPending(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("queue drain failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":  "queue processing failed",
			"report": report,
		})
	}
	return c.JSON(report)
}

// GetQueueStatus godoc
// @Summary Queue depth
// @Description Number of pending regeneration jobs
// @Tags Queue
// @Produce json
// @Success 200 {object} map[string]int64
// @Router /queue/status [get]
func (h *QueueHandler) GetQueueStatus(c *fiber.Ctx) error {
	pending, err := h.regenService.PendingCount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to count pending jobs",
		})
	}
	return c.JSON(fiber.Map{"pending": pending})
}
