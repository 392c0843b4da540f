package repositories

import (
	"errors"
	"fmt"

	"olibranch/internal/models"

	"gorm.io/gorm"
)

// subscriptionRepository implements SubscriptionRepositoryInterface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepositoryInterface {
	return &subscriptionRepository{db: db}
}

// Get retrieves the subscription record, creating the free-plan default on
// first access.
func (r *subscriptionRepository) Get() (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub).Error
	if err == nil {
		return &sub, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	sub = models.Subscription{Plan: models.PlanFree}
	if err := r.db.Create(&sub).Error; err != nil {
		return nil, fmt.Errorf("failed to create default subscription: %w", err)
	}
	return &sub, nil
}

// Save persists the subscription record
func (r *subscriptionRepository) Save(sub *models.Subscription) error {
	if err := r.db.Save(sub).Error; err != nil {
		return fmt.Errorf("failed to save subscription: %w", err)
	}
	return nil
}
