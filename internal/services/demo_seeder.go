package services

import (
	"log/slog"
	"time"

	"olibranch/internal/models"
	"olibranch/internal/repositories"

	"github.com/shopspring/decimal"
)

// SeedSampleProfiles loads the three demo intake submissions when the store
// is empty. Safe to call on every startup.
func SeedSampleProfiles(profileRepo repositories.ProfileRepositoryInterface) error {
	count, err := profileRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, profile := range sampleProfiles() {
		p := profile
		if err := profileRepo.Create(&p); err != nil {
			return err
		}
	}

	slog.Info("seeded demo intake submissions", "count", len(sampleProfiles()))
	return nil
}

func sampleProfiles() []models.BusinessProfile {
	return []models.BusinessProfile{
		{
			SubmittedAt:      time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC),
			Email:            "maria@smallbiz.com",
			BusinessName:     "Maria's Bakery LLC",
			EntityType:       "LLC",
			MonthlyRevenue:   decimal.NewFromInt(12000),
			AccountType:      models.AccountTypeBusiness,
			CashDeposits:     true,
			MonthlyFees:      decimal.NewFromInt(45),
			WantsGrants:      true,
			ImmigrantFounder: true,
			ZipCode:          "10001",
			Consent:          true,
		},
		{
			SubmittedAt:    time.Date(2025, 1, 14, 14, 20, 0, 0, time.UTC),
			Email:          "john@techstart.io",
			BusinessName:   "TechStart Solutions",
			EntityType:     "S-Corp",
			MonthlyRevenue: decimal.NewFromInt(35000),
			AccountType:    models.AccountTypeBusiness,
			MonthlyFees:    decimal.NewFromInt(120),
			WantsGrants:    true,
			VeteranOwned:   true,
			ZipCode:        "94102",
			Consent:        true,
		},
		{
			SubmittedAt:    time.Date(2025, 1, 13, 9, 15, 0, 0, time.UTC),
			Email:          "sarah@freelance.co",
			BusinessName:   "Sarah Design Studio",
			EntityType:     "Sole Proprietor",
			MonthlyRevenue: decimal.NewFromInt(4500),
			AccountType:    models.AccountTypePersonal,
			MonthlyFees:    decimal.NewFromInt(25),
			WantsGrants:    true,
			ZipCode:        "60601",
			Consent:        true,
		},
	}
}
