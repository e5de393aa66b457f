package models

import (
	"time"

	"github.com/google/uuid"
)

type AnalysisStatus string

const (
	StatusCompleted AnalysisStatus = "completed"
	StatusFailed    AnalysisStatus = "failed"
)

// AnalysisLog is one audit row per analysis. It never holds the document,
// its extracted text or the model output.
type AnalysisLog struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	RequestID    string         `gorm:"type:text;index" json:"request_id"`
	FileName     string         `gorm:"type:text" json:"file_name"`
	FileFormat   string         `gorm:"type:text" json:"file_format"`
	JobTitle     string         `gorm:"type:text" json:"job_title"`
	Industry     string         `gorm:"type:text" json:"industry"`
	Status       AnalysisStatus `gorm:"type:text;not null" json:"status"`
	ErrorKind    *string        `gorm:"type:text" json:"error_kind,omitempty"`
	ErrorMessage *string        `gorm:"type:text" json:"error_message,omitempty"`
	Score        *int           `json:"score,omitempty"`
	TextLength   int            `json:"text_length"`
	DurationMs   int64          `json:"duration_ms"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (AnalysisLog) TableName() string {
	return "analysis_logs"
}
