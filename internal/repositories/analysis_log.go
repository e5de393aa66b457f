package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/resume-analyzer/internal/models"
)

type AnalysisLogRepository interface {
	Create(entry *models.AnalysisLog) error
}

type analysisLogRepository struct {
	db *gorm.DB
}

func NewAnalysisLogRepository(db *gorm.DB) AnalysisLogRepository {
	return &analysisLogRepository{db: db}
}

// Create implements AnalysisLogRepository.
func (r *analysisLogRepository) Create(entry *models.AnalysisLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	if err := r.db.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create analysis log: %w", err)
	}
	return nil
}

