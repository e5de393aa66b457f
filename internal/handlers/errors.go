package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

// ErrorHandler renders every error returned by a route as
// {"detail": ..., "code": ...}. Document problems keep their 400 status.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code, detail := describeError(err)

	if code >= fiber.StatusInternalServerError {
		log.Printf("❌ %s %s failed: %v\n", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(models.ErrorResponse{
		Detail: detail,
		Code:   code,
	})
}

func describeError(err error) (int, string) {
	var analysisErr *services.AnalysisError
	if errors.As(err, &analysisErr) {
		if analysisErr.IsClientError() {
			return fiber.StatusBadRequest, analysisErr.Error()
		}
		return fiber.StatusInternalServerError, "Error analyzing resume: " + analysisErr.Error()
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code, fiberErr.Message
	}

	return fiber.StatusInternalServerError, "Error analyzing resume: " + err.Error()
}
