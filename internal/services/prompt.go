package services

import (
	"fmt"
	"strings"
)

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildResumeAnalysisPrompt creates the prompt for a single resume analysis.
// Job title and industry only appear in the context sentence when set.
func (pb *PromptBuilder) BuildResumeAnalysisPrompt(resumeText, jobTitle, industry string) string {
	return fmt.Sprintf(`Analyze the following resume %sand provide a comprehensive evaluation:

RESUME TEXT:
%s

Please provide your analysis in JSON format with the following structure:
{
  "score": [integer between 1-100],
  "analysis": [overall analysis of the resume in 3-5 paragraphs],
  "strengths": [list of strengths, each as a string],
  "weaknesses": [list of weaknesses, each as a string],
  "suggestions": [
    {
      "area": [area of improvement],
      "suggestion": [detailed suggestion],
      "example": [example of how to implement the suggestion]
    }
  ]
}

Your score should be based on the following criteria:
- Content relevance and quality (30%%)
- Structure and format (20%%)
- Achievement focus and quantifiable results (25%%)
- Skills and qualifications match (15%%)
- Grammar and clarity (10%%)

Provide actionable suggestions with specific examples for improvement.`,
		buildContext(jobTitle, industry), resumeText)
}

func buildContext(jobTitle, industry string) string {
	var context strings.Builder
	if jobTitle != "" {
		context.WriteString(fmt.Sprintf("The resume is for a %s position. ", jobTitle))
	}
	if industry != "" {
		context.WriteString(fmt.Sprintf("The industry is %s. ", industry))
	}
	return context.String()
}
