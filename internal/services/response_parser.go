package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/resume-analyzer/internal/models"
)

// ParseAnalysisResponse maps the model output onto an AnalysisResult.
// Missing or null keys fall back to zero values and empty lists.
func ParseAnalysisResponse(response string) (*models.AnalysisResult, error) {
	result, err := parseAnalysisJSON(extractJSONBlock(response))
	if err != nil {
		return nil, NewAnalysisError(ErrKindMalformedOutput, "Error generating analysis", err)
	}
	return result, nil
}

// extractJSONBlock returns the body of the first fenced block, preferring one
// tagged json. Text without a fence is returned unchanged.
func extractJSONBlock(text string) string {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(text, fence)
		if start == -1 {
			continue
		}

		body := text[start+len(fence):]
		if end := strings.Index(body, "```"); end != -1 {
			body = body[:end]
		}
		return strings.TrimSpace(body)
	}
	return text
}

func parseAnalysisJSON(jsonStr string) (*models.AnalysisResult, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &fields); err != nil {
		return nil, fmt.Errorf("failed to unmarshal JSON: %w", err)
	}
	if fields == nil {
		return nil, fmt.Errorf("expected a JSON object, got null")
	}

	result := &models.AnalysisResult{
		Strengths:   []string{},
		Weaknesses:  []string{},
		Suggestions: []models.Suggestion{},
	}

	score, err := decodeScore(fields["score"])
	if err != nil {
		return nil, err
	}
	result.Score = score

	if err := decodeField(fields, "analysis", &result.Analysis); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "strengths", &result.Strengths); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "weaknesses", &result.Weaknesses); err != nil {
		return nil, err
	}
	if err := decodeField(fields, "suggestions", &result.Suggestions); err != nil {
		return nil, err
	}

	// An explicit null list decodes to nil.
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Weaknesses == nil {
		result.Weaknesses = []string{}
	}
	if result.Suggestions == nil {
		result.Suggestions = []models.Suggestion{}
	}

	return result, nil
}

func decodeField(fields map[string]json.RawMessage, key string, target interface{}) error {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("invalid %q field: %w", key, err)
	}
	return nil
}

// decodeScore accepts integers, fractional numbers (truncated) and numeric
// strings.
func decodeScore(raw json.RawMessage) (int, error) {
	if raw == nil || isNull(raw) {
		return 0, nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return numberToInt(string(number))
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return numberToInt(strings.TrimSpace(text))
	}

	return 0, fmt.Errorf("invalid \"score\" field: %s", string(raw))
}

// numberToInt rejects NaN, infinities and values outside the int32 range.
func numberToInt(s string) (int, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid \"score\" field: %q is not a number", s)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("invalid \"score\" field: %s is out of range", s)
	}
	return int(f), nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
