package repositories

import (
	"errors"
	"fmt"

	"olibranch/internal/models"

	"gorm.io/gorm"
)

var ErrNoFeeAnalysis = errors.New("no fee analysis recorded")

// feeAnalysisRepository implements FeeAnalysisRepositoryInterface
type feeAnalysisRepository struct {
	db *gorm.DB
}

// NewFeeAnalysisRepository creates a new fee analysis repository
func NewFeeAnalysisRepository(db *gorm.DB) FeeAnalysisRepositoryInterface {
	return &feeAnalysisRepository{db: db}
}

// Save stores a computed analysis, replacing any previous one
func (r *feeAnalysisRepository) Save(record *models.FeeAnalysisRecord) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.FeeAnalysisRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous analysis: %w", err)
		}
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to save analysis: %w", err)
		}
		return nil
	})
}

// Latest retrieves the most recent analysis
func (r *feeAnalysisRepository) Latest() (*models.FeeAnalysisRecord, error) {
	var record models.FeeAnalysisRecord
	if err := r.db.Order("analyzed_at DESC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoFeeAnalysis
		}
		return nil, fmt.Errorf("failed to get latest analysis: %w", err)
	}
	return &record, nil
}

// DeleteAll removes all stored analyses
func (r *feeAnalysisRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.FeeAnalysisRecord{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear analyses: %w", result.Error)
	}
	return result.RowsAffected, nil
}
