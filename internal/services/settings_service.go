package services

import (
	"log/slog"

	"olibranch/internal/models"
	"olibranch/internal/repositories"
)

type settingsService struct {
	settingsRepo repositories.SettingsRepositoryInterface
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repositories.SettingsRepositoryInterface) SettingsServiceInterface {
	return &settingsService{settingsRepo: settingsRepo}
}

// Get retrieves the current settings, creating defaults on first access
func (s *settingsService) Get() (*models.Settings, error) {
	return s.settingsRepo.Get()
}

// Update merges the given preferences over the stored record. Zero-valued
// fields are left unchanged. Payment links are not touched here; they have
// their own replace-wholesale update.
func (s *settingsService) Update(update *models.Settings) (*models.Settings, error) {
	current, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	if update.GPSRadiusMiles > 0 {
		current.GPSRadiusMiles = update.GPSRadiusMiles
	}
	if update.CompanyName != "" {
		current.CompanyName = update.CompanyName
	}
	if update.ContactEmail != "" {
		current.ContactEmail = update.ContactEmail
	}

	if err := s.settingsRepo.Save(current); err != nil {
		return nil, err
	}

	slog.Info("settings updated", "gps_radius", current.GPSRadiusMiles)
	return current, nil
}

// UpdatePaymentLinks replaces the stored payment handles with the given set
func (s *settingsService) UpdatePaymentLinks(links models.PaymentLinks) (*models.Settings, error) {
	current, err := s.settingsRepo.Get()
	if err != nil {
		return nil, err
	}

	current.CashAppLink = links.CashApp
	current.ZelleLink = links.Zelle
	current.VenmoLink = links.Venmo
	current.BankLink = links.BankLink

	if err := s.settingsRepo.Save(current); err != nil {
		return nil, err
	}

	return current, nil
}
