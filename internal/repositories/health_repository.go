package repositories

import (
	"errors"
	"fmt"

	"olibranch/internal/models"

	"gorm.io/gorm"
)

var (
	ErrHealthInputsNotFound = errors.New("health inputs not recorded")
	ErrNoHealthHistory      = errors.New("no health snapshots recorded")
)

// healthRepository implements HealthRepositoryInterface
type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository creates a new health repository
func NewHealthRepository(db *gorm.DB) HealthRepositoryInterface {
	return &healthRepository{db: db}
}

// SaveInputs replaces the stored financial snapshot with the given one
func (r *healthRepository) SaveInputs(inputs *models.HealthInputs) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.HealthInputs{}).Error; err != nil {
			return fmt.Errorf("failed to clear previous inputs: %w", err)
		}
		if err := tx.Create(inputs).Error; err != nil {
			return fmt.Errorf("failed to save inputs: %w", err)
		}
		return nil
	})
}

// GetInputs retrieves the current financial snapshot
func (r *healthRepository) GetInputs() (*models.HealthInputs, error) {
	var inputs models.HealthInputs
	if err := r.db.First(&inputs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHealthInputsNotFound
		}
		return nil, fmt.Errorf("failed to get health inputs: %w", err)
	}
	return &inputs, nil
}

// DeleteInputs removes the stored financial snapshot
func (r *healthRepository) DeleteInputs() error {
	if err := r.db.Where("1 = 1").Delete(&models.HealthInputs{}).Error; err != nil {
		return fmt.Errorf("failed to delete health inputs: %w", err)
	}
	return nil
}

// AppendSnapshot adds a score to the history and trims it to the rolling
// limit, dropping the oldest entries first.
func (r *healthRepository) AppendSnapshot(snapshot *models.HealthSnapshot) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snapshot).Error; err != nil {
			return fmt.Errorf("failed to record snapshot: %w", err)
		}

		var count int64
		if err := tx.Model(&models.HealthSnapshot{}).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count snapshots: %w", err)
		}

		if count <= models.HealthHistoryLimit {
			return nil
		}

		var stale []models.HealthSnapshot
		if err := tx.Order("taken_at ASC").
			Limit(int(count) - models.HealthHistoryLimit).
			Find(&stale).Error; err != nil {
			return fmt.Errorf("failed to find stale snapshots: %w", err)
		}
		for i := range stale {
			if err := tx.Delete(&stale[i]).Error; err != nil {
				return fmt.Errorf("failed to trim history: %w", err)
			}
		}
		return nil
	})
}

// GetHistory retrieves the retained snapshots, oldest first
func (r *healthRepository) GetHistory() ([]models.HealthSnapshot, error) {
	var snapshots []models.HealthSnapshot
	if err := r.db.Order("taken_at ASC").Find(&snapshots).Error; err != nil {
		return nil, fmt.Errorf("failed to get health history: %w", err)
	}
	return snapshots, nil
}

// LatestSnapshot retrieves the most recent score
func (r *healthRepository) LatestSnapshot() (*models.HealthSnapshot, error) {
	var snapshot models.HealthSnapshot
	if err := r.db.Order("taken_at DESC").First(&snapshot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoHealthHistory
		}
		return nil, fmt.Errorf("failed to get latest snapshot: %w", err)
	}
	return &snapshot, nil
}
