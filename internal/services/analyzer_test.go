package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-analyzer/internal/models"
	"alfredoptarigan/resume-analyzer/internal/testutil"
)

// stubGemini records prompts and replies with a canned response.
type stubGemini struct {
	response string
	err      error
	prompts  []string
}

func (s *stubGemini) GenerateText(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	return s.response, s.err
}

type memoryLogRepo struct {
	entries []*models.AnalysisLog
	err     error
}

func (m *memoryLogRepo) Create(entry *models.AnalysisLog) error {
	m.entries = append(m.entries, entry)
	return m.err
}

const sampleResume = "Jane Doe - Senior Backend Engineer. Built payment services in Go handling 10k rps."

func docxUpload(paragraphs ...string) *models.ResumeUpload {
	return &models.ResumeUpload{Filename: "resume.docx", Content: testutil.BuildDocx(paragraphs...)}
}

func TestAnalyzeResume_Success(t *testing.T) {
	gemini := &stubGemini{response: "```json\n{\"score\": 85, \"analysis\": \"ok\", \"strengths\": [], \"weaknesses\": [], \"suggestions\": []}\n```"}
	repo := &memoryLogRepo{}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, repo)

	result, err := analyzer.AnalyzeResume(context.Background(), "req-1", docxUpload(sampleResume),
		models.AnalysisRequest{JobTitle: "Backend Engineer", Industry: "Fintech"})
	require.NoError(t, err)

	assert.Equal(t, 85, result.Score)
	require.Len(t, gemini.prompts, 1)
	assert.Contains(t, gemini.prompts[0], sampleResume)
	assert.Contains(t, gemini.prompts[0], "The resume is for a Backend Engineer position. The industry is Fintech. ")

	require.Len(t, repo.entries, 1)
	entry := repo.entries[0]
	assert.Equal(t, "req-1", entry.RequestID)
	assert.Equal(t, "resume.docx", entry.FileName)
	assert.Equal(t, "docx", entry.FileFormat)
	assert.Equal(t, models.StatusCompleted, entry.Status)
	require.NotNil(t, entry.Score)
	assert.Equal(t, 85, *entry.Score)
	assert.Nil(t, entry.ErrorKind)
	assert.Equal(t, len(sampleResume), entry.TextLength)
}

func TestAnalyzeResume_InsufficientContentSkipsModel(t *testing.T) {
	gemini := &stubGemini{response: "{}"}
	repo := &memoryLogRepo{}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, repo)

	for _, upload := range []*models.ResumeUpload{
		docxUpload(),
		docxUpload("   ", "Too short"),
		docxUpload(strings.Repeat("x", MinResumeTextLength-1)),
	} {
		_, err := analyzer.AnalyzeResume(context.Background(), "", upload, models.AnalysisRequest{})
		require.Error(t, err)

		kind, _ := KindOf(err)
		assert.Equal(t, ErrKindInsufficientContent, kind)
		assert.Equal(t, "Could not extract meaningful text from the resume file", err.Error())
	}

	assert.Empty(t, gemini.prompts)
	require.Len(t, repo.entries, 3)
	assert.Equal(t, models.StatusFailed, repo.entries[0].Status)
	assert.Equal(t, string(ErrKindInsufficientContent), *repo.entries[0].ErrorKind)
}

func TestAnalyzeResume_ExactlyMinimumLengthCallsModel(t *testing.T) {
	gemini := &stubGemini{response: `{"score": 10}`}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, nil)

	_, err := analyzer.AnalyzeResume(context.Background(), "", docxUpload(strings.Repeat("x", MinResumeTextLength)), models.AnalysisRequest{})
	require.NoError(t, err)
	assert.Len(t, gemini.prompts, 1)
}

func TestAnalyzeResume_UnsupportedFormatSkipsModel(t *testing.T) {
	gemini := &stubGemini{response: "{}"}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, nil)

	for _, name := range []string{"resume.txt", "resume.jpg"} {
		upload := &models.ResumeUpload{Filename: name, Content: []byte(sampleResume)}
		_, err := analyzer.AnalyzeResume(context.Background(), "", upload, models.AnalysisRequest{})
		require.Error(t, err)

		kind, _ := KindOf(err)
		assert.Equal(t, ErrKindUnsupportedFormat, kind)
		assert.Contains(t, err.Error(), FileExtension(name))
	}

	assert.Empty(t, gemini.prompts)
}

func TestAnalyzeResume_ModelFailure(t *testing.T) {
	gemini := &stubGemini{err: errors.New("no response received from Gemini API")}
	repo := &memoryLogRepo{}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, repo)

	_, err := analyzer.AnalyzeResume(context.Background(), "", docxUpload(sampleResume), models.AnalysisRequest{})
	require.Error(t, err)

	kind, _ := KindOf(err)
	assert.Equal(t, ErrKindModel, kind)
	assert.Equal(t, "Error generating analysis: no response received from Gemini API", err.Error())
	assert.ErrorIs(t, err, gemini.err)

	require.Len(t, repo.entries, 1)
	assert.Equal(t, string(ErrKindModel), *repo.entries[0].ErrorKind)
	assert.Nil(t, repo.entries[0].Score)
}

func TestAnalyzeResume_MalformedModelOutput(t *testing.T) {
	gemini := &stubGemini{response: "I cannot produce JSON today."}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, nil)

	_, err := analyzer.AnalyzeResume(context.Background(), "", docxUpload(sampleResume), models.AnalysisRequest{})
	require.Error(t, err)

	kind, _ := KindOf(err)
	assert.Equal(t, ErrKindMalformedOutput, kind)
}

func TestAnalyzeResume_LogWriteFailureIsNotSurfaced(t *testing.T) {
	gemini := &stubGemini{response: `{"score": 60}`}
	repo := &memoryLogRepo{err: errors.New("database unavailable")}
	analyzer := NewResumeAnalyzerService(NewTextExtractor(), gemini, repo)

	result, err := analyzer.AnalyzeResume(context.Background(), "", docxUpload(sampleResume), models.AnalysisRequest{})
	require.NoError(t, err)
	assert.Equal(t, 60, result.Score)
	assert.Len(t, repo.entries, 1)
}
