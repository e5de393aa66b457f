package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"

	"alfredoptarigan/resume-analyzer/internal/config"
)

type GeminiService interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type geminiService struct {
	client    *genai.Client
	modelName string
	cfg       config.GeminiConfig
}

func NewGeminiService(cfg config.GeminiConfig) (GeminiService, error) {
	ctx := context.Background()

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	log.Printf("🤖 Gemini model: %s\n", cfg.Model)

	return &geminiService{
		client:    client,
		modelName: cfg.Model,
		cfg:       cfg,
	}, nil
}

// GenerateText implements GeminiService.
func (g *geminiService) GenerateText(ctx context.Context, prompt string) (string, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.modelName, genai.Text(prompt), nil)
	if err != nil {
		log.Printf("❌ Gemini API error: %v\n", err)
		return "", fmt.Errorf("failed to generate text: %w", err)
	}

	if resp == nil {
		log.Println("❌ Gemini API returned nil response")
		return "", fmt.Errorf("no response received from Gemini API")
	}

	text := resp.Text()
	if text == "" {
		log.Println("❌ No text content in Gemini response")
		return "", fmt.Errorf("no response received from Gemini API")
	}

	return text, nil
}
