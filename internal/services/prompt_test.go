package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildResumeAnalysisPrompt_WithContext(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("RESUME BODY", "Backend Engineer", "Fintech")

	assert.Contains(t, prompt, "Analyze the following resume The resume is for a Backend Engineer position. The industry is Fintech. and provide")
	assert.Contains(t, prompt, "RESUME TEXT:\nRESUME BODY\n")
}

func TestBuildResumeAnalysisPrompt_WithoutContext(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("RESUME BODY", "", "")

	assert.Contains(t, prompt, "Analyze the following resume and provide a comprehensive evaluation:")
	assert.NotContains(t, prompt, "The resume is for a")
	assert.NotContains(t, prompt, "The industry is")
}

func TestBuildResumeAnalysisPrompt_IndustryOnly(t *testing.T) {
	pb := NewPromptBuilder()

	prompt := pb.BuildResumeAnalysisPrompt("RESUME BODY", "", "Healthcare")

	assert.Contains(t, prompt, "Analyze the following resume The industry is Healthcare. and provide")
	assert.NotContains(t, prompt, "position.")
}

func TestBuildResumeAnalysisPrompt_Rubric(t *testing.T) {
	prompt := NewPromptBuilder().BuildResumeAnalysisPrompt("x", "", "")

	for _, line := range []string{
		"Content relevance and quality (30%)",
		"Structure and format (20%)",
		"Achievement focus and quantifiable results (25%)",
		"Skills and qualifications match (15%)",
		"Grammar and clarity (10%)",
		`"suggestions": [`,
		`"example": [example of how to implement the suggestion]`,
	} {
		assert.Contains(t, prompt, line)
	}
}
