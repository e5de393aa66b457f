package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"alfredoptarigan/resume-analyzer/internal/config"
	"alfredoptarigan/resume-analyzer/internal/handlers"
)

const (
	appName    = "Resume Analyzer API"
	appVersion = "1.0.0"
)

// NewApp builds the Fiber application with middleware and routes.
func NewApp(cfg *config.Config, analyzeHandler *handlers.AnalyzeHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      appName,
		ReadTimeout:  30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	// Allow-Headers is left empty so the preflight request headers are echoed back.
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	// Routes
	app.Get("/health", handlers.HandleHealth)
	app.Post("/analyze-resume", analyzeHandler.HandleAnalyze)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": appName,
			"version": appVersion,
			"endpoints": []string{
				"POST /analyze-resume",
				"GET /health",
			},
		})
	})

	return app
}
