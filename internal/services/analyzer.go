package services

import (
	"context"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/repositories"
)

// MinResumeTextLength is the minimum number of characters the trimmed
// extracted text must contain before the model is called.
const MinResumeTextLength = 50

type ResumeAnalyzerService interface {
	AnalyzeResume(ctx context.Context, requestID string, upload *models.ResumeUpload, req models.AnalysisRequest) (*models.AnalysisResult, error)
}

type resumeAnalyzerService struct {
	extractor     TextExtractor
	geminiService GeminiService
	promptBuilder *PromptBuilder
	logRepo       repositories.AnalysisLogRepository
}

// NewResumeAnalyzerService wires the analysis pipeline. logRepo may be nil,
// in which case no audit rows are written.
func NewResumeAnalyzerService(
	extractor TextExtractor,
	geminiService GeminiService,
	logRepo repositories.AnalysisLogRepository,
) ResumeAnalyzerService {
	return &resumeAnalyzerService{
		extractor:     extractor,
		geminiService: geminiService,
		promptBuilder: NewPromptBuilder(),
		logRepo:       logRepo,
	}
}

// AnalyzeResume implements ResumeAnalyzerService.
func (s *resumeAnalyzerService) AnalyzeResume(
	ctx context.Context,
	requestID string,
	upload *models.ResumeUpload,
	req models.AnalysisRequest,
) (*models.AnalysisResult, error) {
	started := time.Now()

	entry := &models.AnalysisLog{
		RequestID:  requestID,
		FileName:   upload.Filename,
		FileFormat: FileExtension(upload.Filename),
		JobTitle:   req.JobTitle,
		Industry:   req.Industry,
	}

	result, textLength, err := s.analyze(ctx, upload, req)
	entry.TextLength = textLength
	entry.DurationMs = time.Since(started).Milliseconds()
	s.record(entry, result, err)

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *resumeAnalyzerService) analyze(
	ctx context.Context,
	upload *models.ResumeUpload,
	req models.AnalysisRequest,
) (*models.AnalysisResult, int, error) {
	log.Printf("📄 Extracting text from %s (%d bytes)\n", upload.Filename, len(upload.Content))
	resumeText, err := s.extractor.ExtractText(upload.Content, upload.Filename)
	if err != nil {
		log.Printf("❌ Extraction failed for %s: %v\n", upload.Filename, err)
		return nil, 0, err
	}

	textLength := utf8.RuneCountInString(strings.TrimSpace(resumeText))
	if textLength < MinResumeTextLength {
		log.Printf("⚠️  Only %d characters extracted from %s\n", textLength, upload.Filename)
		return nil, textLength, NewAnalysisError(
			ErrKindInsufficientContent,
			"Could not extract meaningful text from the resume file",
			nil,
		)
	}

	prompt := s.promptBuilder.BuildResumeAnalysisPrompt(resumeText, req.JobTitle, req.Industry)
	log.Printf("📝 Resume analysis prompt length: %d characters", len(prompt))

	log.Println("🤖 Analyzing resume with LLM...")
	response, err := s.geminiService.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("❌ Error with Gemini API: %v", err)
		return nil, textLength, NewAnalysisError(ErrKindModel, "Error generating analysis", err)
	}
	log.Printf("✅ Resume analysis response received: %d characters", len(response))

	result, err := ParseAnalysisResponse(response)
	if err != nil {
		log.Printf("❌ Failed to parse resume analysis response: %v", err)
		return nil, textLength, err
	}

	return result, textLength, nil
}

func (s *resumeAnalyzerService) record(entry *models.AnalysisLog, result *models.AnalysisResult, err error) {
	if s.logRepo == nil {
		return
	}

	if err != nil {
		entry.Status = models.StatusFailed
		message := err.Error()
		entry.ErrorMessage = &message

		if kind, ok := KindOf(err); ok {
			errorKind := string(kind)
			entry.ErrorKind = &errorKind
		}
	} else {
		entry.Status = models.StatusCompleted
		score := result.Score
		entry.Score = &score
	}

	if err := s.logRepo.Create(entry); err != nil {
		log.Printf("⚠️  Failed to write analysis log: %v\n", err)
	}
}
