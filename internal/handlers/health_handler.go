package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/frontdeskai/receptionist-core/internal/core/regen"
)

type HealthHandler struct {
	regenService *regen.Service
}

func NewHealthHandler(regenService *regen.Service) *HealthHandler {
	return &HealthHandler{regenService: regenService}
}

// GetHealth godoc
// @Summary Service health check
// @Description Check if API is alive and report queue depth
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) GetHealth(c *fiber.Ctx) error {
	pending, err := h.regenService.PendingCount(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "degraded",
			"error":  "queue unavailable",
		})
	}

	return c.JSON(fiber.Map{
		"status":       "ok",
		"service":      "receptionist-core",
		"pending_jobs": pending,
	})
}
