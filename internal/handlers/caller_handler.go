package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/frontdeskai/receptionist-core/internal/core/enhance"
	"github.com/frontdeskai/receptionist-core/internal/repositories"
)

type CallerHandler struct {
	callerRepo repositories.CallerProfileRepository
}

func NewCallerHandler(callerRepo repositories.CallerProfileRepository) *CallerHandler {
	return &CallerHandler{callerRepo: callerRepo}
}

// GetCallerContext godoc
// @Summary Caller context for an incoming call
// @Description Returns the prompt fragment and hints for a caller's phone number. Unknown callers get the new-caller context.
// @Tags Callers
// @Produce json
// @Param id path string true "Business ID"
// @Param phone query string true "Caller phone number"
// @Success 200 {object} enhance.CallerContext
// @Failure 400 {object} map[string]string
// @Router /businesses/{id}/caller-context [get]
func (h *CallerHandler) GetCallerContext(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	phone := c.Query("phone")
	if phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "phone is required",
		})
	}

	profile, err := h.callerRepo.GetByPhone(c.Context(), businessID, phone)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to load caller profile",
		})
	}

	return c.JSON(enhance.BuildCallerContext(profile, time.Now()))
}

// RecordCallRequest represents the body for recording a completed call.
type RecordCallRequest struct {
	Phone   string `json:"phone" example:"+15551234567"`
	Outcome string `json:"outcome" example:"appointment_booked"`
}

// RecordCall godoc
// @Summary Record a completed call
// @Description Bumps the caller's call count and outcome, creating the profile on first contact
// @Tags Callers
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param data body RecordCallRequest true "Call outcome"
// @Success 204
// @Failure 400 {object} map[string]string
// @Router /businesses/{id}/calls [post]
func (h *CallerHandler) RecordCall(c *fiber.Ctx) error {
	businessID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid business id",
		})
	}

	var req RecordCallRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request",
		})
	}
	if req.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "phone is required",
		})
	}

	if err := h.callerRepo.RecordCall(c.Context(), businessID, req.Phone, req.Outcome); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to record call",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}
