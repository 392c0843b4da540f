package repositories

import (
	"errors"
	"fmt"

	"olibranch/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// profileRepository implements ProfileRepositoryInterface
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepositoryInterface {
	return &profileRepository{db: db}
}

// Create stores a new intake submission
func (r *profileRepository) Create(profile *models.BusinessProfile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// GetByID retrieves a profile by ID
func (r *profileRepository) GetByID(id uuid.UUID) (*models.BusinessProfile, error) {
	profile := &models.BusinessProfile{ID: id}
	if err := r.db.First(profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetAll retrieves every stored profile, newest first
func (r *profileRepository) GetAll() ([]models.BusinessProfile, error) {
	var profiles []models.BusinessProfile
	if err := r.db.Order("submitted_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to get profiles: %w", err)
	}
	return profiles, nil
}

// GetPage retrieves profiles with pagination, newest first
func (r *profileRepository) GetPage(offset, limit int) ([]models.BusinessProfile, int64, error) {
	var profiles []models.BusinessProfile
	var total int64

	if err := r.db.Model(&models.BusinessProfile{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count profiles: %w", err)
	}

	if err := r.db.Offset(offset).Limit(limit).
		Order("submitted_at DESC").Find(&profiles).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get profiles: %w", err)
	}

	return profiles, total, nil
}

// Count returns the number of stored profiles
func (r *profileRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.BusinessProfile{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count profiles: %w", err)
	}
	return total, nil
}

// DeleteAll removes every stored profile and returns how many were removed
func (r *profileRepository) DeleteAll() (int64, error) {
	result := r.db.Where("1 = 1").Delete(&models.BusinessProfile{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to clear profiles: %w", result.Error)
	}
	return result.RowsAffected, nil
}
