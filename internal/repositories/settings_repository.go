package repositories

import (
	"errors"
	"fmt"

	"olibranch/internal/models"

	"gorm.io/gorm"
)

// settingsRepository implements SettingsRepositoryInterface
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) SettingsRepositoryInterface {
	return &settingsRepository{db: db}
}

// Get retrieves the settings record, creating the defaults on first access.
func (r *settingsRepository) Get() (*models.Settings, error) {
	var settings models.Settings
	err := r.db.First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	settings = models.Settings{GPSRadiusMiles: models.DefaultGPSRadiusMiles}
	if err := r.db.Create(&settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create default settings: %w", err)
	}
	return &settings, nil
}

// Save persists the settings record
func (r *settingsRepository) Save(settings *models.Settings) error {
	if err := r.db.Save(settings).Error; err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
