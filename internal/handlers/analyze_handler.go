package handlers

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.ResumeAnalyzerService
}

func NewAnalyzeHandler(analyzer services.ResumeAnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
	}
}

// HandleAnalyze handles POST /analyze-resume
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
			Detail: "file is required",
			Code:   fiber.StatusBadRequest,
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return fmt.Errorf("failed to read uploaded file: %w", err)
	}

	upload := &models.ResumeUpload{
		Filename: fileHeader.Filename,
		Content:  content,
	}
	req := models.AnalysisRequest{
		JobTitle: c.FormValue("job_title"),
		Industry: c.FormValue("industry"),
	}

	requestID, _ := c.Locals(requestid.ConfigDefault.ContextKey).(string)

	result, err := h.analyzer.AnalyzeResume(c.UserContext(), requestID, upload, req)
	if err != nil {
		return err
	}

	return c.JSON(result)
}
