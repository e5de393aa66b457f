package models

// ResumeUpload is the uploaded document, held in memory for one request.
type ResumeUpload struct {
	Filename string
	Content  []byte
}

// AnalysisRequest carries the optional context inserted into the prompt.
type AnalysisRequest struct {
	JobTitle string `json:"job_title" form:"job_title"`
	Industry string `json:"industry" form:"industry"`
}

type Suggestion struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Example    string `json:"example"`
}

type AnalysisResult struct {
	Score       int          `json:"score"`
	Analysis    string       `json:"analysis"`
	Strengths   []string     `json:"strengths"`
	Weaknesses  []string     `json:"weaknesses"`
	Suggestions []Suggestion `json:"suggestions"`
}
