package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// HandleHealth handles GET /health. It performs no dependency checks.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(models.HealthResponse{Status: "healthy"})
}
